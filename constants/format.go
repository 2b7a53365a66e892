package constants

// Format identifies the upload workflow a job was dispatched to.
type Format string

const (
	FormatShapefile Format = "SHAPEFILE"
	FormatGeoTiff   Format = "GEOTIFF"
)

// Formats holds the allowed values for the format field in Job.
var Formats = []string{string(FormatShapefile), string(FormatGeoTiff)}

// MimeTypes maps a declared upload media type to its workflow format.
// Anything absent from this table is an unsupported upload.
var MimeTypes = map[string]Format{
	"application/zip": FormatShapefile,
	"image/tiff":      FormatGeoTiff,
}
