package jobs

import (
	"context"
	"errors"
	"io"

	"github.com/jharrell-gis/geoloader/internal/geoserver"
	"github.com/jharrell-gis/geoloader/internal/records"
	"github.com/jharrell-gis/geoloader/internal/solr"
)

// ShapefileUploadJob publishes a zipped shapefile to a GeoServer datastore and
// indexes its metadata record.
type ShapefileUploadJob struct {
	*UploadJob
	upload    Upload
	publisher *geoserver.Client
	indexer   *solr.Client
	workspace string
}

func NewShapefileUploadJob(base *UploadJob, upload Upload, publisher *geoserver.Client, indexer *solr.Client, workspace string) (*ShapefileUploadJob, error) {
	if err := validateVariantInputs(upload, publisher, indexer, workspace); err != nil {
		return nil, err
	}
	return &ShapefileUploadJob{
		UploadJob: base,
		upload:    upload,
		publisher: publisher,
		indexer:   indexer,
		workspace: workspace,
	}, nil
}

// CreateRecord builds the metadata record for this upload. A missing metadata
// stream yields a default record; either way the layer id is derived from the
// upload's declared filename, never from the document.
func (j *ShapefileUploadJob) CreateRecord(metadata io.Reader) (records.GeoRecord, error) {
	var rec records.GeoRecord
	if metadata != nil {
		parsed, err := records.ParseFGDC(metadata)
		if err != nil {
			return records.GeoRecord{}, err
		}
		rec = parsed
	}
	rec.LayerID = j.workspace + ":" + j.upload.LayerName()
	return rec, nil
}

// Run drives publish -> extract -> index -> finalize. Publish failure is fatal
// and non-compensable. Index failure triggers exactly one best-effort delete
// of the just-published feature type; the delete's own outcome is discarded
// and the original index error propagates. No path leaves the job PENDING.
func (j *ShapefileUploadJob) Run(ctx context.Context) error {
	name := j.upload.LayerName()

	if err := j.publisher.Publish(ctx, geoserver.DatastorePath(j.workspace, "shp"), j.upload.Data, "application/zip"); err != nil {
		j.log.Error("jobs.shapefile.publish_failed", "job_id", j.job.ID, "layer", name, "err", err)
		return j.failAndReturn(ctx, err)
	}

	rec, err := j.CreateRecord(j.upload.Metadata)
	if err != nil {
		j.log.Error("jobs.shapefile.extract_failed", "job_id", j.job.ID, "layer", name, "err", err)
		return j.failAndReturn(ctx, err)
	}

	if err := j.indexer.Add(ctx, []records.GeoRecord{rec}); err != nil {
		j.log.Error("jobs.shapefile.index_failed", "job_id", j.job.ID, "layer", name, "err", err)
		if derr := j.publisher.DeleteFeatureType(ctx, name); derr != nil {
			j.log.Warn("jobs.shapefile.compensation_failed", "job_id", j.job.ID, "layer", name, "err", derr)
		}
		return j.failAndReturn(ctx, err)
	}

	if err := j.Complete(ctx); err != nil {
		return err
	}
	j.log.Info("jobs.shapefile.completed", "job_id", j.job.ID, "layer", name)
	return nil
}

func validateVariantInputs(upload Upload, publisher *geoserver.Client, indexer *solr.Client, workspace string) error {
	switch {
	case upload.Data == nil:
		return errors.New("upload job: payload data is required")
	case upload.Filename == "":
		return errors.New("upload job: payload filename is required")
	case publisher == nil:
		return errors.New("upload job: publisher client is required")
	case indexer == nil:
		return errors.New("upload job: indexer client is required")
	case workspace == "":
		return errors.New("upload job: workspace is required")
	}
	return nil
}
