package jobs_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jharrell-gis/geoloader/constants"
	"github.com/jharrell-gis/geoloader/internal/entity"
	"github.com/jharrell-gis/geoloader/internal/jobs"
)

// fakeJobRepo is an in-memory JobRepository for workflow tests.
type fakeJobRepo struct {
	mu          sync.Mutex
	rows        []*entity.Job
	failCreate  error
	statusCalls []constants.JobStatus
}

func (f *fakeJobRepo) Create(_ context.Context, name *string, format constants.Format) (*entity.Job, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failCreate != nil {
		return nil, f.failCreate
	}
	row := &entity.Job{
		ID:        uuid.New(),
		Name:      name,
		Format:    string(format),
		Status:    string(constants.JobStatusPending),
		CreatedAt: time.Now(),
	}
	f.rows = append(f.rows, row)
	return row, nil
}

func (f *fakeJobRepo) SetStatus(_ context.Context, jobID uuid.UUID, status constants.JobStatus, message *string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.statusCalls = append(f.statusCalls, status)
	for _, row := range f.rows {
		if row.ID == jobID {
			row.Status = string(status)
			row.ErrorMessage = message
			return nil
		}
	}
	return errors.New("job not found")
}

func (f *fakeJobRepo) GetByID(_ context.Context, jobID uuid.UUID) (*entity.Job, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, row := range f.rows {
		if row.ID == jobID {
			return row, nil
		}
	}
	return nil, errors.New("job not found")
}

func (f *fakeJobRepo) Count(context.Context) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.rows), nil
}

func (f *fakeJobRepo) First(context.Context) (*entity.Job, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.rows) == 0 {
		return nil, errors.New("no jobs")
	}
	return f.rows[0], nil
}

func (f *fakeJobRepo) List(context.Context, *constants.JobStatus, *time.Time, *time.Time) ([]*entity.Job, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]*entity.Job(nil), f.rows...), nil
}

func TestUploadJobLifecycle(t *testing.T) {
	t.Run("Fail sets FAILED regardless of prior status", func(t *testing.T) {
		repo := &fakeJobRepo{}
		row, err := repo.Create(context.Background(), nil, constants.FormatShapefile)
		require.NoError(t, err)

		job := jobs.NewUploadJob(row, repo, nil)
		require.NoError(t, job.Fail(context.Background(), errors.New("boom")))
		assert.Equal(t, "FAILED", row.Status)

		// repeated calls leave the status FAILED
		require.NoError(t, job.Fail(context.Background(), nil))
		assert.Equal(t, "FAILED", row.Status)
	})

	t.Run("Complete sets COMPLETED regardless of prior status", func(t *testing.T) {
		repo := &fakeJobRepo{}
		row, err := repo.Create(context.Background(), nil, constants.FormatShapefile)
		require.NoError(t, err)

		job := jobs.NewUploadJob(row, repo, nil)
		require.NoError(t, job.Fail(context.Background(), nil))
		require.NoError(t, job.Complete(context.Background()))
		assert.Equal(t, "COMPLETED", row.Status)
	})

	t.Run("base Run is not implemented", func(t *testing.T) {
		job := jobs.NewUploadJob(&entity.Job{}, &fakeJobRepo{}, nil)
		err := job.Run(context.Background())
		assert.ErrorIs(t, err, jobs.ErrNotImplemented)
	})
}
