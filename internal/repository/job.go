package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/jharrell-gis/geoloader/constants"
	"github.com/jharrell-gis/geoloader/gen/ent"
	entjob "github.com/jharrell-gis/geoloader/gen/ent/job"
	"github.com/jharrell-gis/geoloader/internal/entity"
)

// JobRepository is the persistence contract for upload jobs. The workflow only
// ever touches Create and SetStatus; Count and First exist for callers and tests.
type JobRepository interface {
	Create(ctx context.Context, name *string, format constants.Format) (*entity.Job, error)
	SetStatus(ctx context.Context, jobID uuid.UUID, status constants.JobStatus, message *string) error
	GetByID(ctx context.Context, jobID uuid.UUID) (*entity.Job, error)
	Count(ctx context.Context) (int, error)
	First(ctx context.Context) (*entity.Job, error)
	List(ctx context.Context, status *constants.JobStatus, from, to *time.Time) ([]*entity.Job, error)
}

type jobRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewJobRepository(entc *ent.Client, log *slog.Logger) JobRepository {
	if log == nil {
		log = slog.Default()
	}
	return &jobRepo{ent: entc, log: log}
}

func (r *jobRepo) Create(ctx context.Context, name *string, format constants.Format) (*entity.Job, error) {
	create := r.ent.Job.
		Create().
		SetFormat(string(format)).
		SetStatus(string(constants.JobStatusPending))
	if name != nil {
		create = create.SetName(*name)
	}
	row, err := create.Save(ctx)
	if err != nil {
		r.log.Error("job create failed", "format", format, "err", err)
		return nil, err
	}
	r.log.Info("job created", "job_id", row.ID, "format", format)
	return toEntity(row), nil
}

func (r *jobRepo) SetStatus(ctx context.Context, jobID uuid.UUID, status constants.JobStatus, message *string) error {
	update := r.ent.Job.
		UpdateOneID(jobID).
		SetStatus(string(status))
	if status != constants.JobStatusPending {
		update = update.SetFinishedAt(time.Now())
	}
	if message != nil {
		update = update.SetErrorMessage(*message)
	}
	_, err := update.Save(ctx)
	if err != nil {
		r.log.Error("job status update failed", "job_id", jobID, "status", status, "err", err)
		return err
	}
	r.log.Info("job status updated", "job_id", jobID, "status", status)
	return nil
}

func (r *jobRepo) GetByID(ctx context.Context, jobID uuid.UUID) (*entity.Job, error) {
	row, err := r.ent.Job.Get(ctx, jobID)
	if err != nil {
		return nil, err
	}
	return toEntity(row), nil
}

func (r *jobRepo) Count(ctx context.Context) (int, error) {
	return r.ent.Job.Query().Count(ctx)
}

func (r *jobRepo) First(ctx context.Context) (*entity.Job, error) {
	row, err := r.ent.Job.Query().
		Order(ent.Asc(entjob.FieldCreatedAt)).
		First(ctx)
	if err != nil {
		return nil, err
	}
	return toEntity(row), nil
}

func (r *jobRepo) List(ctx context.Context, status *constants.JobStatus, from, to *time.Time) ([]*entity.Job, error) {
	q := r.ent.Job.Query().Order(ent.Asc(entjob.FieldCreatedAt))
	if status != nil {
		q = q.Where(entjob.Status(string(*status)))
	}
	if from != nil {
		q = q.Where(entjob.CreatedAtGTE(*from))
	}
	if to != nil {
		q = q.Where(entjob.CreatedAtLTE(*to))
	}
	rows, err := q.All(ctx)
	if err != nil {
		r.log.Error("job list failed", "err", err)
		return nil, err
	}
	out := make([]*entity.Job, 0, len(rows))
	for _, row := range rows {
		out = append(out, toEntity(row))
	}
	return out, nil
}

func toEntity(row *ent.Job) *entity.Job {
	return &entity.Job{
		ID:           row.ID,
		Name:         row.Name,
		Format:       row.Format,
		Status:       row.Status,
		ErrorMessage: row.ErrorMessage,
		CreatedAt:    row.CreatedAt,
		FinishedAt:   row.FinishedAt,
	}
}
