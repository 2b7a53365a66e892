package geoserver_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jharrell-gis/geoloader/internal/common"
	"github.com/jharrell-gis/geoloader/internal/geoserver"
)

type capturedRequest struct {
	method      string
	path        string
	query       string
	contentType string
	body        string
}

func newTestClient(t *testing.T, status int, captured *[]capturedRequest) (*geoserver.Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		*captured = append(*captured, capturedRequest{
			method:      r.Method,
			path:        r.URL.Path,
			query:       r.URL.RawQuery,
			contentType: r.Header.Get("Content-type"),
			body:        string(body),
		})
		w.WriteHeader(status)
	}))
	t.Cleanup(srv.Close)
	client := geoserver.NewClient(common.GeoServerConfig{
		BaseURL:   srv.URL + "/geoserver/rest",
		Workspace: "mit",
	}, nil)
	return client, srv
}

func TestPublish(t *testing.T) {
	t.Run("uploads payload to the datastore path", func(t *testing.T) {
		var reqs []capturedRequest
		client, _ := newTestClient(t, http.StatusCreated, &reqs)

		err := client.Publish(context.Background(),
			geoserver.DatastorePath("mit", "shp"),
			strings.NewReader("zip bytes"),
			"application/zip")
		require.NoError(t, err)

		require.Len(t, reqs, 1)
		assert.Equal(t, http.MethodPut, reqs[0].method)
		assert.Equal(t, "/geoserver/rest/workspaces/mit/datastores/data/file.shp", reqs[0].path)
		assert.Equal(t, "application/zip", reqs[0].contentType)
		assert.Equal(t, "zip bytes", reqs[0].body)
	})

	t.Run("non-2xx response is an HTTPError", func(t *testing.T) {
		var reqs []capturedRequest
		client, _ := newTestClient(t, http.StatusInternalServerError, &reqs)

		err := client.Publish(context.Background(),
			geoserver.DatastorePath("mit", "shp"),
			strings.NewReader("zip bytes"),
			"application/zip")
		var herr *geoserver.HTTPError
		require.ErrorAs(t, err, &herr)
		assert.Equal(t, http.StatusInternalServerError, herr.StatusCode)
	})
}

func TestDelete(t *testing.T) {
	t.Run("feature type delete is recursive and workspace scoped", func(t *testing.T) {
		var reqs []capturedRequest
		client, _ := newTestClient(t, http.StatusOK, &reqs)

		require.NoError(t, client.DeleteFeatureType(context.Background(), "test_shapefile"))
		require.Len(t, reqs, 1)
		assert.Equal(t, http.MethodDelete, reqs[0].method)
		assert.Equal(t, "/geoserver/rest/workspaces/mit/datastores/data/featuretypes/test_shapefile", reqs[0].path)
		assert.Equal(t, "recurse=true", reqs[0].query)
	})

	t.Run("coverage delete uses the coveragestore path", func(t *testing.T) {
		var reqs []capturedRequest
		client, _ := newTestClient(t, http.StatusOK, &reqs)

		require.NoError(t, client.DeleteCoverage(context.Background(), "raster"))
		require.Len(t, reqs, 1)
		assert.Equal(t, "/geoserver/rest/workspaces/mit/coveragestores/data/coverages/raster", reqs[0].path)
		assert.Equal(t, "recurse=true", reqs[0].query)
	})

	t.Run("failed delete is an HTTPError", func(t *testing.T) {
		var reqs []capturedRequest
		client, _ := newTestClient(t, http.StatusNotFound, &reqs)

		err := client.DeleteFeatureType(context.Background(), "missing")
		var herr *geoserver.HTTPError
		require.ErrorAs(t, err, &herr)
		assert.Equal(t, http.StatusNotFound, herr.StatusCode)
	})
}

func TestPaths(t *testing.T) {
	assert.Equal(t, "workspaces/mit/datastores/data/file.shp", geoserver.DatastorePath("mit", "shp"))
	assert.Equal(t, "workspaces/mit/coveragestores/data/file.geotiff", geoserver.CoveragestorePath("mit", "geotiff"))
}
