package records_test

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jharrell-gis/geoloader/internal/records"
)

func TestParseFGDC(t *testing.T) {
	t.Run("parses a complete FGDC document", func(t *testing.T) {
		f, err := os.Open("testdata/fgdc.xml")
		require.NoError(t, err)
		defer f.Close()

		rec, err := records.ParseFGDC(f)
		require.NoError(t, err)
		assert.Equal(t, "Bermuda (Geographic Feature Names, 2003)", rec.Title)
		assert.Equal(t, "Public", rec.Rights)
		assert.Equal(t, "MIT", rec.Provenance)
		assert.Empty(t, rec.LayerID, "layer id comes from the upload, not the document")
	})

	t.Run("missing title surfaces a validation error naming the field", func(t *testing.T) {
		doc := `<?xml version="1.0"?>
<metadata>
  <idinfo>
    <accconst>Public</accconst>
  </idinfo>
  <distinfo><distrib><cntinfo><cntorgp><cntorg>MIT</cntorg></cntorgp></cntinfo></distrib></distinfo>
</metadata>`
		_, err := records.ParseFGDC(strings.NewReader(doc))
		var verr *records.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "dc_title_s", verr.Field)
	})

	t.Run("missing rights surfaces a validation error naming the field", func(t *testing.T) {
		doc := `<?xml version="1.0"?>
<metadata>
  <idinfo>
    <citation><citeinfo><title>Bermuda</title></citeinfo></citation>
  </idinfo>
  <distinfo><distrib><cntinfo><cntorgp><cntorg>MIT</cntorg></cntorgp></cntinfo></distrib></distinfo>
</metadata>`
		_, err := records.ParseFGDC(strings.NewReader(doc))
		var verr *records.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "dc_rights_s", verr.Field)
	})

	t.Run("garbage input is invalid data, not a validation failure", func(t *testing.T) {
		_, err := records.ParseFGDC(strings.NewReader("not xml at all"))
		var ierr *records.InvalidDataError
		require.ErrorAs(t, err, &ierr)
		var verr *records.ValidationError
		assert.NotErrorAs(t, err, &verr)
	})
}

func TestValidate(t *testing.T) {
	t.Run("record with layer id passes", func(t *testing.T) {
		rec := records.GeoRecord{
			Title:      "Bermuda (Geographic Feature Names, 2003)",
			Rights:     "Public",
			Provenance: "MIT",
			LayerID:    "mit:test_shapefile",
		}
		assert.NoError(t, records.Validate(rec))
	})

	t.Run("default record with layer id passes", func(t *testing.T) {
		assert.NoError(t, records.Validate(records.GeoRecord{LayerID: "mit:raster"}))
	})

	t.Run("missing layer id fails with the field name", func(t *testing.T) {
		err := records.Validate(records.GeoRecord{Title: "Bermuda"})
		var verr *records.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "layer_id_s", verr.Field)
	})
}
