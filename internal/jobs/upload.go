package jobs

import (
	"io"
	"path/filepath"
	"strings"
)

// Upload is the payload handed to the factory: the raw dataset bytes, the
// declared media type and filename, and an optional FGDC metadata stream.
// The workflow only reads from it.
type Upload struct {
	Filename string
	Mimetype string
	Data     io.Reader
	Metadata io.Reader
}

// LayerName is the upload's declared filename without directory components or
// extension. It is how GeoServer addresses the dataset after publication, and
// it forms the suffix of the record's layer id.
func (u Upload) LayerName() string {
	base := filepath.Base(u.Filename)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
