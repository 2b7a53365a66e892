package solr_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jharrell-gis/geoloader/internal/common"
	"github.com/jharrell-gis/geoloader/internal/records"
	"github.com/jharrell-gis/geoloader/internal/solr"
)

func TestAdd(t *testing.T) {
	t.Run("submits records to the update endpoint", func(t *testing.T) {
		var (
			calls int
			path  string
			query string
			body  []byte
		)
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls++
			path = r.URL.Path
			query = r.URL.RawQuery
			body, _ = io.ReadAll(r.Body)
		}))
		defer srv.Close()

		client := solr.NewClient(common.SolrConfig{BaseURL: srv.URL + "/solr/geoblacklight"}, nil)
		rec := records.GeoRecord{
			Title:      "Bermuda (Geographic Feature Names, 2003)",
			Rights:     "Public",
			Provenance: "MIT",
			LayerID:    "mit:test_shapefile",
		}
		require.NoError(t, client.Add(context.Background(), []records.GeoRecord{rec}))

		assert.Equal(t, 1, calls)
		assert.Equal(t, "/solr/geoblacklight/update", path)
		assert.Equal(t, "commit=true", query)

		var docs []map[string]any
		require.NoError(t, json.Unmarshal(body, &docs))
		require.Len(t, docs, 1)
		assert.Equal(t, "mit:test_shapefile", docs[0]["layer_id_s"])
		assert.Equal(t, "Bermuda (Geographic Feature Names, 2003)", docs[0]["dc_title_s"])
	})

	t.Run("non-2xx response is an HTTPError", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer srv.Close()

		client := solr.NewClient(common.SolrConfig{BaseURL: srv.URL}, nil)
		err := client.Add(context.Background(), []records.GeoRecord{{LayerID: "mit:x"}})
		var herr *solr.HTTPError
		require.ErrorAs(t, err, &herr)
		assert.Equal(t, http.StatusBadGateway, herr.StatusCode)
	})

	t.Run("invalid record aborts before any network call", func(t *testing.T) {
		var calls int
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls++
		}))
		defer srv.Close()

		client := solr.NewClient(common.SolrConfig{BaseURL: srv.URL}, nil)
		err := client.Add(context.Background(), []records.GeoRecord{{Title: "no layer id"}})
		var verr *records.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "layer_id_s", verr.Field)
		assert.Zero(t, calls)
	})
}
