package records

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// GeoRecord is the normalized metadata record submitted to the search index.
// Field names follow the GeoBlacklight Solr schema.
type GeoRecord struct {
	Title      string `json:"dc_title_s,omitempty"`
	Rights     string `json:"dc_rights_s,omitempty"`
	Provenance string `json:"dct_provenance_s,omitempty"`
	LayerID    string `json:"layer_id_s,omitempty"`
}

// InvalidDataError marks input that is not a metadata record at all:
// unparseable documents, wrong document types.
type InvalidDataError struct {
	Message string
	Cause   error
}

func (e *InvalidDataError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("invalid metadata document: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("invalid metadata document: %s", e.Message)
}

func (e *InvalidDataError) Unwrap() error { return e.Cause }

// ValidationError marks a record that is well-formed but missing a required
// attribute. Field carries the Solr field name.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("record validation failed for field %q: %s", e.Field, e.Message)
}

// recordSchema lists the attributes a record must carry before it may be
// submitted to the index.
var recordSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"dc_title_s":       map[string]any{"type": "string", "minLength": 1},
		"dc_rights_s":      map[string]any{"type": "string", "minLength": 1},
		"dct_provenance_s": map[string]any{"type": "string", "minLength": 1},
		"layer_id_s":       map[string]any{"type": "string", "minLength": 1},
	},
	"required": []any{"layer_id_s"},
}

var compiledSchema = mustCompile(recordSchema)

func mustCompile(schemaMap map[string]any) *jsonschema.Schema {
	b, err := json.Marshal(schemaMap)
	if err != nil {
		panic(fmt.Sprintf("marshal schema: %v", err))
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("record.json", bytes.NewReader(b)); err != nil {
		panic(fmt.Sprintf("add schema: %v", err))
	}
	schema, err := compiler.Compile("record.json")
	if err != nil {
		panic(fmt.Sprintf("compile schema: %v", err))
	}
	return schema
}

// Validate checks that a record carries its required identity attribute. A
// failure comes back as *ValidationError naming the field. An upload without a
// metadata document still indexes a default record, so only the layer id is
// mandatory here.
func Validate(rec GeoRecord) error {
	if rec.LayerID == "" {
		return &ValidationError{Field: "layer_id_s", Message: "is required"}
	}

	// Schema pass catches anything the field loop cannot express.
	b, err := json.Marshal(rec)
	if err != nil {
		return &InvalidDataError{Message: "record is not serializable", Cause: err}
	}
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return &InvalidDataError{Message: "record is not serializable", Cause: err}
	}
	if err := compiledSchema.Validate(v); err != nil {
		return &InvalidDataError{Message: "record does not match schema", Cause: err}
	}
	return nil
}
