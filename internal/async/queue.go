package async

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jharrell-gis/geoloader/internal/jobs"
)

// Task is the smallest useful unit: a dispatched upload job waiting to run.
type Task struct {
	JobID       uuid.UUID
	Runner      jobs.Runner
	SubmittedAt time.Time
}

type Queue interface {
	Enqueue(ctx context.Context, task Task) error
	Shutdown(ctx context.Context)
}
