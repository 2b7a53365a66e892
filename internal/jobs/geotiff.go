package jobs

import (
	"context"
	"io"

	"github.com/jharrell-gis/geoloader/internal/geoserver"
	"github.com/jharrell-gis/geoloader/internal/records"
	"github.com/jharrell-gis/geoloader/internal/solr"
)

// GeoTiffUploadJob publishes a GeoTIFF to a GeoServer coveragestore and
// indexes its metadata record. Same pipeline as the shapefile variant with the
// raster destination and compensation paths.
type GeoTiffUploadJob struct {
	*UploadJob
	upload    Upload
	publisher *geoserver.Client
	indexer   *solr.Client
	workspace string
}

func NewGeoTiffUploadJob(base *UploadJob, upload Upload, publisher *geoserver.Client, indexer *solr.Client, workspace string) (*GeoTiffUploadJob, error) {
	if err := validateVariantInputs(upload, publisher, indexer, workspace); err != nil {
		return nil, err
	}
	return &GeoTiffUploadJob{
		UploadJob: base,
		upload:    upload,
		publisher: publisher,
		indexer:   indexer,
		workspace: workspace,
	}, nil
}

func (j *GeoTiffUploadJob) CreateRecord(metadata io.Reader) (records.GeoRecord, error) {
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

func (j *GeoTiffUploadJob) Run(ctx context.Context) error {
	name := j.upload.LayerName()

	if err := j.publisher.Publish(ctx, geoserver.CoveragestorePath(j.workspace, "geotiff"), j.upload.Data, "image/tiff"); err != nil {
		j.log.Error("jobs.geotiff.publish_failed", "job_id", j.job.ID, "layer", name, "err", err)
		return j.failAndReturn(ctx, err)
	}

	rec, err := j.CreateRecord(j.upload.Metadata)
	if err != nil {
		j.log.Error("jobs.geotiff.extract_failed", "job_id", j.job.ID, "layer", name, "err", err)
		return j.failAndReturn(ctx, err)
	}

	if err := j.indexer.Add(ctx, []records.GeoRecord{rec}); err != nil {
		j.log.Error("jobs.geotiff.index_failed", "job_id", j.job.ID, "layer", name, "err", err)
		if derr := j.publisher.DeleteCoverage(ctx, name); derr != nil {
			j.log.Warn("jobs.geotiff.compensation_failed", "job_id", j.job.ID, "layer", name, "err", derr)
		}
		return j.failAndReturn(ctx, err)
	}

	if err := j.Complete(ctx); err != nil {
		return err
	}
	j.log.Info("jobs.geotiff.completed", "job_id", j.job.ID, "layer", name)
	return nil
}
