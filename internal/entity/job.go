package entity

import (
	"time"

	"github.com/google/uuid"
)

// Job represents an upload job for data transfer between layers.
type Job struct {
	ID           uuid.UUID  `json:"id"`
	Name         *string    `json:"name,omitempty"`
	Format       string     `json:"format"`
	Status       string     `json:"status"`
	ErrorMessage *string    `json:"error_message,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	FinishedAt   *time.Time `json:"finished_at,omitempty"`
}
