package jobs

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jharrell-gis/geoloader/constants"
	"github.com/jharrell-gis/geoloader/internal/common"
	"github.com/jharrell-gis/geoloader/internal/geoserver"
	"github.com/jharrell-gis/geoloader/internal/repository"
	"github.com/jharrell-gis/geoloader/internal/solr"
)

// Factory routes uploads to a workflow variant by declared media type,
// persisting the job row at dispatch time.
type Factory struct {
	repo      repository.JobRepository
	publisher *geoserver.Client
	indexer   *solr.Client
	workspace string
	log       *slog.Logger
}

func NewFactory(repo repository.JobRepository, publisher *geoserver.Client, indexer *solr.Client, workspace string, log *slog.Logger) *Factory {
	if log == nil {
		log = slog.Default()
	}
	return &Factory{
		repo:      repo,
		publisher: publisher,
		indexer:   indexer,
		workspace: workspace,
		log:       log,
	}
}

// CreateJob maps the upload's media type to a workflow variant, persists a
// PENDING job row, and returns the variant without running it. An unsupported
// media type fails before any row exists. If variant construction fails after
// the row was created, the row is marked FAILED and the construction error
// propagates; a dispatched job is never left PENDING.
func (f *Factory) CreateJob(ctx context.Context, upload Upload) (Runner, error) {
	format, ok := constants.MimeTypes[upload.Mimetype]
	if !ok {
		f.log.Warn("jobs.factory.unsupported_mimetype", "mimetype", upload.Mimetype, "filename", upload.Filename)
		return nil, fmt.Errorf("%w: %s", common.ErrUnsupportedFormat, upload.Mimetype)
	}

	name := upload.LayerName()
	job, err := f.repo.Create(ctx, &name, format)
	if err != nil {
		return nil, err
	}

	base := NewUploadJob(job, f.repo, f.log)
	var runner Runner
	switch format {
	case constants.FormatShapefile:
		runner, err = NewShapefileUploadJob(base, upload, f.publisher, f.indexer, f.workspace)
	case constants.FormatGeoTiff:
		runner, err = NewGeoTiffUploadJob(base, upload, f.publisher, f.indexer, f.workspace)
	default:
		err = fmt.Errorf("%w: %s", common.ErrUnsupportedFormat, upload.Mimetype)
	}
	if err != nil {
		f.log.Error("jobs.factory.construction_failed", "job_id", job.ID, "format", format, "err", err)
		msg := err.Error()
		if serr := f.repo.SetStatus(ctx, job.ID, constants.JobStatusFailed, &msg); serr != nil {
			f.log.Error("jobs.factory.fail_status_persist_failed", "job_id", job.ID, "err", serr)
		}
		return nil, err
	}

	f.log.Info("jobs.factory.dispatched", "job_id", job.ID, "format", format, "layer", name)
	return runner, nil
}
