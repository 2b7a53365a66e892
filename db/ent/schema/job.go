package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/jharrell-gis/geoloader/constants"
	"github.com/jharrell-gis/geoloader/utils"

	"github.com/google/uuid"
)

type Job struct{ ent.Schema }

func (Job) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "jobs"},
	}
}

func (Job) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.String("name").Optional().Nillable(),
		field.String("format").NotEmpty().
			Validate(utils.EnumValidator(constants.Formats...)),
		field.String("status").Default(string(constants.JobStatusPending)).
			Validate(utils.EnumValidator(constants.JobStatuses...)),
		field.String("error_message").Optional().Nillable(),
		field.Time("created_at").Default(time.Now),
		field.Time("finished_at").Optional().Nillable(),
	}
}

func (Job) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status", "created_at"),
	}
}
