package jobs

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/jharrell-gis/geoloader/constants"
	"github.com/jharrell-gis/geoloader/internal/entity"
	"github.com/jharrell-gis/geoloader/internal/records"
	"github.com/jharrell-gis/geoloader/internal/repository"
)

// ErrNotImplemented is returned by the base UploadJob's Run. Concrete variants
// override it.
var ErrNotImplemented = errors.New("upload job: run not implemented")

// Runner is the workflow contract every upload job variant satisfies.
type Runner interface {
	// Run drives the publish -> extract -> index pipeline and leaves the
	// bound job in a terminal status.
	Run(ctx context.Context) error
	// CreateRecord builds the metadata record Run would submit, exposed for
	// callers and tests.
	CreateRecord(metadata io.Reader) (records.GeoRecord, error)
	// Job returns the bound job row.
	Job() *entity.Job
}

// UploadJob binds a job row to its store and owns the row's status for the
// duration of a run.
type UploadJob struct {
	job  *entity.Job
	repo repository.JobRepository
	log  *slog.Logger
}

func NewUploadJob(job *entity.Job, repo repository.JobRepository, log *slog.Logger) *UploadJob {
	if log == nil {
		log = slog.Default()
	}
	return &UploadJob{job: job, repo: repo, log: log}
}

func (j *UploadJob) Job() *entity.Job { return j.job }

// Fail persists a FAILED status for the bound job. Repeated calls leave the
// status FAILED. cause may be nil.
func (j *UploadJob) Fail(ctx context.Context, cause error) error {
	var msg *string
	if cause != nil {
		s := cause.Error()
		msg = &s
	}
	if err := j.repo.SetStatus(ctx, j.job.ID, constants.JobStatusFailed, msg); err != nil {
		return err
	}
	j.job.Status = string(constants.JobStatusFailed)
	return nil
}

// Complete persists a COMPLETED status for the bound job.
func (j *UploadJob) Complete(ctx context.Context) error {
	if err := j.repo.SetStatus(ctx, j.job.ID, constants.JobStatusCompleted, nil); err != nil {
		return err
	}
	j.job.Status = string(constants.JobStatusCompleted)
	return nil
}

// Run exists only to define the required signature for variants.
func (j *UploadJob) Run(context.Context) error {
	return ErrNotImplemented
}

// CreateRecord on the base job carries no format knowledge.
func (j *UploadJob) CreateRecord(io.Reader) (records.GeoRecord, error) {
	return records.GeoRecord{}, ErrNotImplemented
}

// failAndReturn marks the job FAILED and hands the triggering error back
// unmodified. A failure persisting the status is logged, never allowed to mask
// the original error.
func (j *UploadJob) failAndReturn(ctx context.Context, cause error) error {
	if err := j.Fail(ctx, cause); err != nil {
		j.log.Error("jobs.fail_status_persist_failed", "job_id", j.job.ID, "err", err)
	}
	return cause
}
