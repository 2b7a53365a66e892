package utils

import (
	"time"

	geoloaderv1 "github.com/jharrell-gis/geoloader/gen/proto/geoloader/v1"
	"github.com/jharrell-gis/geoloader/internal/entity"
)

func strOrEmpty(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func ToPBJob(j *entity.Job) *geoloaderv1.Job {
	finished := ""
	if j.FinishedAt != nil {
		finished = j.FinishedAt.UTC().Format(time.RFC3339)
	}
	return &geoloaderv1.Job{
		Id:           j.ID.String(),
		Name:         strOrEmpty(j.Name),
		Format:       j.Format,
		Status:       j.Status,
		ErrorMessage: strOrEmpty(j.ErrorMessage),
		CreatedAt:    j.CreatedAt.UTC().Format(time.RFC3339),
		FinishedAt:   finished,
	}
}

func ParseYMD(s string) (time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02", s, time.UTC)
	if err != nil {
		return time.Time{}, err
	}
	// strip time to midnight UTC to match DATE semantics
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}
