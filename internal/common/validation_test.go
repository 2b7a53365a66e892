package common_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jharrell-gis/geoloader/internal/common"
)

func TestRequired(t *testing.T) {
	assert.Nil(t, common.Required("path", "/data/upload.zip"))
	assert.NotNil(t, common.Required("path", ""))
	assert.NotNil(t, common.Required("path", "   "))
	assert.NotNil(t, common.Required("path", nil))
}

func TestMimeType(t *testing.T) {
	valid := []string{"application/zip", "image/tiff", "application/vnd.geo+json"}
	for _, v := range valid {
		assert.Nil(t, common.MimeType("mimetype", v), v)
	}

	invalid := []string{"zip", "application/", "/tiff", "APPLICATION/ZIP"}
	for _, v := range invalid {
		assert.NotNil(t, common.MimeType("mimetype", v), v)
	}
	assert.NotNil(t, common.MimeType("mimetype", 42))
}

func TestUUID(t *testing.T) {
	assert.Nil(t, common.UUID("job_id", "8b7f4cc2-90aa-4ae2-a1a2-2931e0a00f1f"))
	assert.NotNil(t, common.UUID("job_id", "not-a-uuid"))
	assert.NotNil(t, common.UUID("job_id", 7))
}

func TestValidatorCollectsErrors(t *testing.T) {
	v := common.NewValidator()
	v.Field("path", "", common.Required)
	v.Field("mimetype", "zip", common.MimeType)

	assert.True(t, v.HasErrors())
	assert.Len(t, v.Errors(), 2)
	assert.Error(t, common.ValidateAndReturnError(v))

	ok := common.NewValidator()
	ok.Field("path", "/tmp/x.zip", common.Required)
	assert.NoError(t, common.ValidateAndReturnError(ok))
}
