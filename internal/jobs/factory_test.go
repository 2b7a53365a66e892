package jobs_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jharrell-gis/geoloader/internal/common"
	"github.com/jharrell-gis/geoloader/internal/geoserver"
	"github.com/jharrell-gis/geoloader/internal/jobs"
	"github.com/jharrell-gis/geoloader/internal/solr"
)

func newFactory(repo *fakeJobRepo) *jobs.Factory {
	publisher := geoserver.NewClient(common.GeoServerConfig{BaseURL: "http://example.com/geoserver/rest", Workspace: "mit"}, nil)
	indexer := solr.NewClient(common.SolrConfig{BaseURL: "http://example.com/solr"}, nil)
	return jobs.NewFactory(repo, publisher, indexer, "mit", nil)
}

func TestCreateJob(t *testing.T) {
	t.Run("zip uploads dispatch a shapefile job with a pending row", func(t *testing.T) {
		repo := &fakeJobRepo{}
		factory := newFactory(repo)

		runner, err := factory.CreateJob(context.Background(), jobs.Upload{
			Filename: "test_shapefile",
			Mimetype: "application/zip",
			Data:     strings.NewReader("zip bytes"),
		})
		require.NoError(t, err)
		assert.IsType(t, &jobs.ShapefileUploadJob{}, runner)

		n, _ := repo.Count(context.Background())
		assert.Equal(t, 1, n)
		row, err := repo.First(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "PENDING", row.Status)
		assert.Equal(t, "SHAPEFILE", row.Format)
	})

	t.Run("tiff uploads dispatch a geotiff job", func(t *testing.T) {
		repo := &fakeJobRepo{}
		factory := newFactory(repo)

		runner, err := factory.CreateJob(context.Background(), jobs.Upload{
			Filename: "raster.tif",
			Mimetype: "image/tiff",
			Data:     strings.NewReader("tiff bytes"),
		})
		require.NoError(t, err)
		assert.IsType(t, &jobs.GeoTiffUploadJob{}, runner)

		row, err := repo.First(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "GEOTIFF", row.Format)
	})

	t.Run("unsupported media type fails before any row exists", func(t *testing.T) {
		repo := &fakeJobRepo{}
		factory := newFactory(repo)

		_, err := factory.CreateJob(context.Background(), jobs.Upload{
			Filename: "doc.pdf",
			Mimetype: "application/example",
			Data:     strings.NewReader("bytes"),
		})
		assert.ErrorIs(t, err, common.ErrUnsupportedFormat)

		n, _ := repo.Count(context.Background())
		assert.Zero(t, n)
	})

	t.Run("construction failure marks the row FAILED and re-raises", func(t *testing.T) {
		repo := &fakeJobRepo{}
		factory := newFactory(repo)

		// nil payload data makes the variant constructor fail after dispatch
		_, err := factory.CreateJob(context.Background(), jobs.Upload{
			Filename: "test_shapefile",
			Mimetype: "application/zip",
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "payload data is required")

		n, _ := repo.Count(context.Background())
		require.Equal(t, 1, n)
		row, err := repo.First(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "FAILED", row.Status)
		require.NotNil(t, row.ErrorMessage)
		assert.Contains(t, *row.ErrorMessage, "payload data is required")
	})

	t.Run("dispatch never runs the workflow", func(t *testing.T) {
		repo := &fakeJobRepo{}
		factory := newFactory(repo)

		_, err := factory.CreateJob(context.Background(), jobs.Upload{
			Filename: "test_shapefile",
			Mimetype: "application/zip",
			Data:     strings.NewReader("zip bytes"),
		})
		require.NoError(t, err)

		// only the creating insert touched the store, no status transitions
		assert.Empty(t, repo.statusCalls)
	})
}
