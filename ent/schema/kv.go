package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	entschema "entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
)

// KV is the key-value table backing the learner profile. The profile is a
// single JSON record under one fixed key.
type KV struct {
	ent.Schema
}

func (KV) Annotations() []entschema.Annotation {
	return []entschema.Annotation{
		entsql.Annotation{Table: "kv"},
	}
}

func (KV) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("key").
			NotEmpty().
			Immutable(),
		field.Bytes("value"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}
