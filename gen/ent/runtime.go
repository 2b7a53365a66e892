// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/google/uuid"
	"github.com/jharrell-gis/geoloader/db/ent/schema"
	"github.com/jharrell-gis/geoloader/gen/ent/job"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	jobFields := schema.Job{}.Fields()
	_ = jobFields
	// jobDescFormat is the schema descriptor for format field.
	jobDescFormat := jobFields[2].Descriptor()
	// job.FormatValidator is a validator for the "format" field. It is called by the builders before save.
	job.FormatValidator = func() func(string) error {
		validators := jobDescFormat.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(format string) error {
			for _, fn := range fns {
				if err := fn(format); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// jobDescStatus is the schema descriptor for status field.
	jobDescStatus := jobFields[3].Descriptor()
	// job.DefaultStatus holds the default value on creation for the status field.
	job.DefaultStatus = jobDescStatus.Default.(string)
	// job.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	job.StatusValidator = jobDescStatus.Validators[0].(func(string) error)
	// jobDescCreatedAt is the schema descriptor for created_at field.
	jobDescCreatedAt := jobFields[5].Descriptor()
	// job.DefaultCreatedAt holds the default value on creation for the created_at field.
	job.DefaultCreatedAt = jobDescCreatedAt.Default.(func() time.Time)
	// jobDescID is the schema descriptor for id field.
	jobDescID := jobFields[0].Descriptor()
	// job.DefaultID holds the default value on creation for the id field.
	job.DefaultID = jobDescID.Default.(func() uuid.UUID)
}
