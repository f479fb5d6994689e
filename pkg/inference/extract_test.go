package inference

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/schemascope/schemascope/pkg/models"
)

func TestDocumentFieldsSkipsIdentityKey(t *testing.T) {
	fields := DocumentFields(map[string]any{
		"_id":  primitive.NewObjectID(),
		"name": "Ada",
	}, "")

	assert.NotContains(t, fields, "_id")
	assert.Equal(t, models.FieldTypeString, fields["name"])
}

func TestDocumentFieldsNestedObject(t *testing.T) {
	fields := DocumentFields(map[string]any{
		"a": map[string]any{"b": 1},
	}, "")

	assert.Equal(t, models.FieldMap{
		"a":   models.FieldTypeJSON,
		"a.b": models.FieldTypeInteger,
	}, fields)
}

func TestDocumentFieldsDeepNesting(t *testing.T) {
	fields := DocumentFields(map[string]any{
		"address": primitive.M{
			"city": "Berlin",
			"geo":  primitive.M{"lat": 52.52, "lon": 13.4},
		},
		"tags":   primitive.A{"a", "b"},
		"active": true,
	}, "")

	assert.Equal(t, models.FieldTypeJSON, fields["address"])
	assert.Equal(t, models.FieldTypeString, fields["address.city"])
	assert.Equal(t, models.FieldTypeJSON, fields["address.geo"])
	assert.Equal(t, models.FieldTypeFloat, fields["address.geo.lat"])
	assert.Equal(t, models.FieldTypeStringArray, fields["tags"])
	assert.Equal(t, models.FieldTypeBoolean, fields["active"])
}

func TestDocumentFieldsNestedIdentityKeyKept(t *testing.T) {
	// Only the top-level _id is special-cased.
	fields := DocumentFields(map[string]any{
		"parent": primitive.M{"_id": "ref-1"},
	}, "")

	assert.Equal(t, models.FieldTypeString, fields["parent._id"])
}
