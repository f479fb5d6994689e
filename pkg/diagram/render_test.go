package diagram

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/schemascope/schemascope/pkg/models"
)

func TestRenderSingleCollection(t *testing.T) {
	out := Render(models.UnifiedSchema{
		Collections: []models.CollectionSchema{
			{Name: "users", Fields: models.FieldMap{"name": models.FieldTypeString}},
		},
	})

	assert.Equal(t, "users {\n    string name\n}\n\n", out)
	assert.NotContains(t, out, "||--o{")
}

func TestRenderFieldOrderIsSorted(t *testing.T) {
	out := Render(models.UnifiedSchema{
		Collections: []models.CollectionSchema{
			{Name: "users", Fields: models.FieldMap{
				"zip":  models.FieldTypeString,
				"age":  models.FieldTypeInteger,
				"name": models.FieldTypeString,
			}},
		},
	})

	ageIdx := strings.Index(out, "integer age")
	nameIdx := strings.Index(out, "string name")
	zipIdx := strings.Index(out, "string zip")
	assert.True(t, ageIdx < nameIdx && nameIdx < zipIdx, "fields must render in sorted order:\n%s", out)
}

func TestRenderRelationships(t *testing.T) {
	out := Render(models.UnifiedSchema{
		Collections: []models.CollectionSchema{
			{Name: "orders", Fields: models.FieldMap{"customerId": models.FieldTypeString}},
			{Name: "customers", Fields: models.FieldMap{"name": models.FieldTypeString}},
		},
		Relationships: []models.RelationshipEdge{
			{Source: "orders", Target: "customers", Field: "customerId"},
		},
	})

	assert.Contains(t, out, "    orders ||--o{ customers : references\n")
}

func TestRenderEmptySchema(t *testing.T) {
	assert.Equal(t, "", Render(models.UnifiedSchema{}))
}

func TestRenderNestedValueUsesUnderscoreFlattening(t *testing.T) {
	out := Render(models.UnifiedSchema{
		Collections: []models.CollectionSchema{
			{Name: "users", Fields: models.FieldMap{
				"address": map[string]any{"city": "Berlin"},
			}},
		},
	})

	assert.Contains(t, out, "    string address_city\n")
}

func TestFlattenNestedObjects(t *testing.T) {
	flat := FlattenNested(map[string]any{
		"geo": map[string]any{"lat": 52.5, "lon": 13.4},
	}, "address")

	// Render-stage flattening joins with underscores, not dots, and the
	// parent object itself gets no entry.
	assert.Equal(t, map[string]string{
		"address_geo_lat": "float",
		"address_geo_lon": "float",
	}, flat)
}

func TestFlattenNestedArrayOfObjects(t *testing.T) {
	flat := FlattenNested(map[string]any{
		"items": primitive.A{
			primitive.M{"sku": "a-1", "qty": 2},
			primitive.M{"sku": "b-2"},
		},
	}, "order")

	assert.Equal(t, map[string]string{
		"order_items":          "array",
		"order_items_item_sku": "string",
		"order_items_item_qty": "integer",
	}, flat)
}

func TestFlattenNestedScalarsAndArrays(t *testing.T) {
	flat := FlattenNested(map[string]any{
		"tags":   primitive.A{"a", "b"},
		"scores": primitive.A{1, 2},
		"empty":  primitive.A{},
		"name":   "x",
	}, "")

	assert.Equal(t, map[string]string{
		"tags":   "array<string>",
		"scores": "array<integer>",
		"empty":  "array",
		"name":   "string",
	}, flat)
}

func TestSimplifiedType(t *testing.T) {
	assert.Equal(t, "string", SimplifiedType("x"))
	assert.Equal(t, "boolean", SimplifiedType(true))
	assert.Equal(t, "integer", SimplifiedType(int64(3)))
	assert.Equal(t, "float", SimplifiedType(3.0))
	assert.Equal(t, "json", SimplifiedType(primitive.M{"a": 1}))
	assert.Equal(t, "array", SimplifiedType(primitive.A{}))
	assert.Equal(t, "array<string>", SimplifiedType(primitive.A{"a"}))
	assert.Equal(t, "array<json>", SimplifiedType(primitive.A{primitive.M{}}))
	// Unlike inference.Classify, the fallback here is unknown.
	assert.Equal(t, "unknown", SimplifiedType(primitive.NewObjectID()))
	assert.Equal(t, "unknown", SimplifiedType(nil))
}
