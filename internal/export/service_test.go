package export_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/jharrell-gis/geoloader/constants"
	"github.com/jharrell-gis/geoloader/internal/entity"
	"github.com/jharrell-gis/geoloader/internal/export"
)

type stubJobRepo struct {
	rows       []*entity.Job
	lastStatus *constants.JobStatus
}

func (s *stubJobRepo) Create(context.Context, *string, constants.Format) (*entity.Job, error) {
	panic("not used")
}

func (s *stubJobRepo) SetStatus(context.Context, uuid.UUID, constants.JobStatus, *string) error {
	panic("not used")
}

func (s *stubJobRepo) GetByID(context.Context, uuid.UUID) (*entity.Job, error) {
	panic("not used")
}

func (s *stubJobRepo) Count(context.Context) (int, error) { return len(s.rows), nil }

func (s *stubJobRepo) First(context.Context) (*entity.Job, error) { return s.rows[0], nil }

func (s *stubJobRepo) List(_ context.Context, status *constants.JobStatus, _, _ *time.Time) ([]*entity.Job, error) {
	s.lastStatus = status
	return s.rows, nil
}

func TestExportJobsXLSX(t *testing.T) {
	name := "test_shapefile"
	failure := "solr: POST http://example.com/update returned 503"
	finished := time.Date(2026, 3, 14, 10, 30, 0, 0, time.UTC)
	repo := &stubJobRepo{rows: []*entity.Job{
		{
			ID:        uuid.New(),
			Name:      &name,
			Format:    "SHAPEFILE",
			Status:    "COMPLETED",
			CreatedAt: finished.Add(-time.Minute),
			FinishedAt: &finished,
		},
		{
			ID:           uuid.New(),
			Format:       "GEOTIFF",
			Status:       "FAILED",
			ErrorMessage: &failure,
			CreatedAt:    finished,
		},
	}}

	svc := export.NewService(repo, nil)
	out, err := svc.ExportJobsXLSX(context.Background(), nil, nil, nil)
	require.NoError(t, err)
	require.NotEmpty(t, out)

	wb, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer wb.Close()

	rows, err := wb.GetRows("Jobs")
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, "Job ID", rows[0][0])
	assert.Equal(t, "test_shapefile", rows[1][1])
	assert.Equal(t, "COMPLETED", rows[1][3])
	assert.Equal(t, "GEOTIFF", rows[2][2])
	assert.Equal(t, failure, rows[2][4])
}

func TestExportJobsXLSXStatusFilter(t *testing.T) {
	repo := &stubJobRepo{}
	svc := export.NewService(repo, nil)

	failed := constants.JobStatusFailed
	_, err := svc.ExportJobsXLSX(context.Background(), &failed, nil, nil)
	require.NoError(t, err)
	require.NotNil(t, repo.lastStatus)
	assert.Equal(t, failed, *repo.lastStatus)
}
