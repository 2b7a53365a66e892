package jobs_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jharrell-gis/geoloader/internal/common"
	"github.com/jharrell-gis/geoloader/internal/geoserver"
	"github.com/jharrell-gis/geoloader/internal/jobs"
	"github.com/jharrell-gis/geoloader/internal/records"
	"github.com/jharrell-gis/geoloader/internal/solr"
)

// geoserverRecorder captures REST calls against a stub GeoServer.
type geoserverRecorder struct {
	mu      sync.Mutex
	puts    []string
	deletes []string
	status  int
}

func (g *geoserverRecorder) handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		g.mu.Lock()
		defer g.mu.Unlock()
		url := r.URL.Path
		if r.URL.RawQuery != "" {
			url += "?" + r.URL.RawQuery
		}
		switch r.Method {
		case http.MethodPut:
			g.puts = append(g.puts, url)
		case http.MethodDelete:
			g.deletes = append(g.deletes, url)
		}
		w.WriteHeader(g.status)
	})
}

// solrRecorder captures index submissions against a stub Solr.
type solrRecorder struct {
	mu     sync.Mutex
	bodies [][]byte
	status int
}

func (s *solrRecorder) handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		defer s.mu.Unlock()
		body, _ := io.ReadAll(r.Body)
		s.bodies = append(s.bodies, body)
		w.WriteHeader(s.status)
	})
}

type workflowEnv struct {
	repo    *fakeJobRepo
	factory *jobs.Factory
	gs      *geoserverRecorder
	sx      *solrRecorder
}

func newWorkflowEnv(t *testing.T, gsStatus, solrStatus int) *workflowEnv {
	t.Helper()
	gs := &geoserverRecorder{status: gsStatus}
	sx := &solrRecorder{status: solrStatus}
	gsSrv := httptest.NewServer(gs.handler())
	sxSrv := httptest.NewServer(sx.handler())
	t.Cleanup(gsSrv.Close)
	t.Cleanup(sxSrv.Close)

	repo := &fakeJobRepo{}
	publisher := geoserver.NewClient(common.GeoServerConfig{
		BaseURL:   gsSrv.URL + "/geoserver/rest",
		Workspace: "mit",
	}, nil)
	indexer := solr.NewClient(common.SolrConfig{BaseURL: sxSrv.URL + "/solr"}, nil)
	return &workflowEnv{
		repo:    repo,
		factory: jobs.NewFactory(repo, publisher, indexer, "mit", nil),
		gs:      gs,
		sx:      sx,
	}
}

func openFGDC(t *testing.T) *os.File {
	t.Helper()
	f, err := os.Open("testdata/fgdc.xml")
	require.NoError(t, err)
	t.Cleanup(func() { f.Close() })
	return f
}

func TestShapefileCreateRecord(t *testing.T) {
	env := newWorkflowEnv(t, http.StatusCreated, http.StatusOK)
	runner, err := env.factory.CreateJob(context.Background(), jobs.Upload{
		Filename: "test_shapefile",
		Mimetype: "application/zip",
		Data:     strings.NewReader("zip bytes"),
	})
	require.NoError(t, err)

	t.Run("reads fields from the metadata document", func(t *testing.T) {
		rec, err := runner.CreateRecord(openFGDC(t))
		require.NoError(t, err)
		assert.Equal(t, "Bermuda (Geographic Feature Names, 2003)", rec.Title)
		assert.Equal(t, "Public", rec.Rights)
		assert.Equal(t, "MIT", rec.Provenance)
	})

	t.Run("injects the layer id from the upload filename", func(t *testing.T) {
		rec, err := runner.CreateRecord(openFGDC(t))
		require.NoError(t, err)
		assert.Equal(t, "mit:test_shapefile", rec.LayerID)
	})

	t.Run("no metadata yields a default record with only the layer id", func(t *testing.T) {
		rec, err := runner.CreateRecord(nil)
		require.NoError(t, err)
		assert.Equal(t, records.GeoRecord{LayerID: "mit:test_shapefile"}, rec)
	})
}

func TestShapefileRun(t *testing.T) {
	t.Run("publishes, indexes, and completes", func(t *testing.T) {
		env := newWorkflowEnv(t, http.StatusCreated, http.StatusOK)
		runner, err := env.factory.CreateJob(context.Background(), jobs.Upload{
			Filename: "test_shapefile",
			Mimetype: "application/zip",
			Data:     strings.NewReader("zip bytes"),
			Metadata: openFGDC(t),
		})
		require.NoError(t, err)

		require.NoError(t, runner.Run(context.Background()))

		require.Len(t, env.gs.puts, 1)
		assert.Equal(t, "/geoserver/rest/workspaces/mit/datastores/data/file.shp", env.gs.puts[0])
		assert.Empty(t, env.gs.deletes)

		require.Len(t, env.sx.bodies, 1)
		var docs []map[string]any
		require.NoError(t, json.Unmarshal(env.sx.bodies[0], &docs))
		require.Len(t, docs, 1)
		assert.Equal(t, "mit:test_shapefile", docs[0]["layer_id_s"])
		assert.Equal(t, "Bermuda (Geographic Feature Names, 2003)", docs[0]["dc_title_s"])

		row, err := env.repo.First(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "COMPLETED", row.Status)
	})

	t.Run("publish failure propagates without compensation", func(t *testing.T) {
		env := newWorkflowEnv(t, http.StatusInternalServerError, http.StatusOK)
		runner, err := env.factory.CreateJob(context.Background(), jobs.Upload{
			Filename: "test_shapefile",
			Mimetype: "application/zip",
			Data:     strings.NewReader("zip bytes"),
		})
		require.NoError(t, err)

		err = runner.Run(context.Background())
		var herr *geoserver.HTTPError
		require.ErrorAs(t, err, &herr)
		assert.Equal(t, http.StatusInternalServerError, herr.StatusCode)

		assert.Empty(t, env.gs.deletes, "nothing published, nothing to undo")
		assert.Empty(t, env.sx.bodies)

		row, _ := env.repo.First(context.Background())
		assert.Equal(t, "FAILED", row.Status)
	})

	t.Run("index failure deletes the published feature type once and re-raises", func(t *testing.T) {
		env := newWorkflowEnv(t, http.StatusCreated, http.StatusServiceUnavailable)
		runner, err := env.factory.CreateJob(context.Background(), jobs.Upload{
			Filename: "test_shapefile",
			Mimetype: "application/zip",
			Data:     strings.NewReader("zip bytes"),
			Metadata: openFGDC(t),
		})
		require.NoError(t, err)

		err = runner.Run(context.Background())
		var herr *solr.HTTPError
		require.ErrorAs(t, err, &herr, "the original indexing error propagates, not the delete outcome")
		assert.Equal(t, http.StatusServiceUnavailable, herr.StatusCode)

		require.Len(t, env.gs.deletes, 1)
		assert.Equal(t, "/geoserver/rest/workspaces/mit/datastores/data/featuretypes/test_shapefile?recurse=true", env.gs.deletes[0])

		row, _ := env.repo.First(context.Background())
		assert.Equal(t, "FAILED", row.Status)
	})

	t.Run("each failing job compensates exactly once", func(t *testing.T) {
		env := newWorkflowEnv(t, http.StatusCreated, http.StatusServiceUnavailable)
		for i := 0; i < 2; i++ {
			runner, err := env.factory.CreateJob(context.Background(), jobs.Upload{
				Filename: "test_shapefile",
				Mimetype: "application/zip",
				Data:     strings.NewReader("zip bytes"),
			})
			require.NoError(t, err)
			require.Error(t, runner.Run(context.Background()))
		}
		assert.Len(t, env.gs.deletes, 2, "one delete per failed run, never more")
	})

	t.Run("metadata validation failure fails the job", func(t *testing.T) {
		env := newWorkflowEnv(t, http.StatusCreated, http.StatusOK)
		runner, err := env.factory.CreateJob(context.Background(), jobs.Upload{
			Filename: "test_shapefile",
			Mimetype: "application/zip",
			Data:     strings.NewReader("zip bytes"),
			Metadata: strings.NewReader("<metadata><idinfo></idinfo></metadata>"),
		})
		require.NoError(t, err)

		err = runner.Run(context.Background())
		var verr *records.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Empty(t, env.sx.bodies)

		row, _ := env.repo.First(context.Background())
		assert.Equal(t, "FAILED", row.Status)
	})
}

func TestGeoTiffRun(t *testing.T) {
	t.Run("publishes to the coveragestore and completes", func(t *testing.T) {
		env := newWorkflowEnv(t, http.StatusCreated, http.StatusOK)
		runner, err := env.factory.CreateJob(context.Background(), jobs.Upload{
			Filename: "raster.tif",
			Mimetype: "image/tiff",
			Data:     strings.NewReader("tiff bytes"),
		})
		require.NoError(t, err)

		require.NoError(t, runner.Run(context.Background()))

		require.Len(t, env.gs.puts, 1)
		assert.Equal(t, "/geoserver/rest/workspaces/mit/coveragestores/data/file.geotiff", env.gs.puts[0])

		var docs []map[string]any
		require.Len(t, env.sx.bodies, 1)
		require.NoError(t, json.Unmarshal(env.sx.bodies[0], &docs))
		assert.Equal(t, "mit:raster", docs[0]["layer_id_s"])

		row, _ := env.repo.First(context.Background())
		assert.Equal(t, "COMPLETED", row.Status)
	})

	t.Run("index failure compensates via the coverage path", func(t *testing.T) {
		env := newWorkflowEnv(t, http.StatusCreated, http.StatusBadGateway)
		runner, err := env.factory.CreateJob(context.Background(), jobs.Upload{
			Filename: "raster.tif",
			Mimetype: "image/tiff",
			Data:     strings.NewReader("tiff bytes"),
		})
		require.NoError(t, err)

		err = runner.Run(context.Background())
		var herr *solr.HTTPError
		require.ErrorAs(t, err, &herr)

		require.Len(t, env.gs.deletes, 1)
		assert.Equal(t, "/geoserver/rest/workspaces/mit/coveragestores/data/coverages/raster?recurse=true", env.gs.deletes[0])
	})
}
