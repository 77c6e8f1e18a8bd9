package store

import (
	"testing"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql/schema"
	"github.com/stretchr/testify/assert"

	entschema "github.com/abhisek/retomath/ent/schema"
)

// columnNames returns the storage names of fields in declaration order.
func columnNames(fields ...[]ent.Field) []string {
	var names []string
	for _, fs := range fields {
		for _, f := range fs {
			d := f.Descriptor()
			if d.StorageKey != "" {
				names = append(names, d.StorageKey)
				continue
			}
			names = append(names, d.Name)
		}
	}
	return names
}

func tableColumns(cols []*schema.Column) []string {
	names := make([]string, len(cols))
	for i, c := range cols {
		names[i] = c.Name
	}
	return names
}

func TestTablesMatchEntSchema(t *testing.T) {
	ev := entschema.LLMRequestEvent{}
	want := columnNames(ev.Fields()[:1], entschema.EventMixin{}.Fields(), ev.Fields()[1:])
	assert.Equal(t, want, tableColumns(llmRequestEventsColumns))
	assert.Equal(t, want, llmEventColumns)

	assert.Equal(t, columnNames(entschema.KV{}.Fields()), tableColumns(kvColumns))
}
