package records

import (
	"encoding/xml"
	"io"
	"strings"
)

// fgdcDoc is the subset of an FGDC metadata document we read.
type fgdcDoc struct {
	XMLName    xml.Name `xml:"metadata"`
	Title      string   `xml:"idinfo>citation>citeinfo>title"`
	Rights     string   `xml:"idinfo>accconst"`
	Provenance string   `xml:"distinfo>distrib>cntinfo>cntorgp>cntorg"`
}

// ParseFGDC reads an FGDC XML document into a GeoRecord. Documents that do not
// parse as FGDC at all come back as *InvalidDataError; parseable documents
// missing a required element come back as *ValidationError naming the field.
func ParseFGDC(r io.Reader) (GeoRecord, error) {
	var doc fgdcDoc
	dec := xml.NewDecoder(r)
	if err := dec.Decode(&doc); err != nil {
		return GeoRecord{}, &InvalidDataError{Message: "not an FGDC document", Cause: err}
	}

	rec := GeoRecord{
		Title:      strings.TrimSpace(doc.Title),
		Rights:     strings.TrimSpace(doc.Rights),
		Provenance: strings.TrimSpace(doc.Provenance),
	}
	for _, f := range []struct{ name, value string }{
		{"dc_title_s", rec.Title},
		{"dc_rights_s", rec.Rights},
		{"dct_provenance_s", rec.Provenance},
	} {
		if f.value == "" {
			return GeoRecord{}, &ValidationError{Field: f.name, Message: "missing from metadata document"}
		}
	}
	return rec, nil
}
