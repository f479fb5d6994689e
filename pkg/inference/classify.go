// Package inference derives structural schemas from sampled documents.
package inference

import (
	"math"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/schemascope/schemascope/pkg/models"
)

// Classify maps a single runtime value to its semantic type tag.
//
// Classification is total: any value yields exactly one tag and the fallback
// for unrecognized shapes (ObjectIDs, timestamps, binary, nil, ...) is string.
// Booleans are checked before integers because BSON decoding can surface
// boolean-like numerics.
func Classify(value any) models.FieldType {
	switch v := value.(type) {
	case string:
		return models.FieldTypeString
	case bool:
		return models.FieldTypeBoolean
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return models.FieldTypeInteger
	case float32:
		return classifyFloat(float64(v))
	case float64:
		return classifyFloat(v)
	case primitive.Decimal128:
		return models.FieldTypeFloat
	case primitive.A:
		return classifySequence([]any(v))
	case []any:
		return classifySequence(v)
	case []string:
		if len(v) == 0 {
			return models.FieldTypeArray
		}
		return models.FieldTypeStringArray
	case primitive.M:
		return models.FieldTypeJSON
	case map[string]any:
		return models.FieldTypeJSON
	default:
		return models.FieldTypeString
	}
}

// classifyFloat keeps Python/JSON parity: a number without a fractional part
// is reported as integer even when decoded as a double.
func classifyFloat(v float64) models.FieldType {
	if v == math.Trunc(v) && !math.IsInf(v, 0) && !math.IsNaN(v) {
		return models.FieldTypeInteger
	}
	return models.FieldTypeFloat
}

// classifySequence inspects only the first element; heterogeneous arrays are
// not detected.
func classifySequence(v []any) models.FieldType {
	if len(v) == 0 {
		return models.FieldTypeArray
	}
	if _, ok := v[0].(string); ok {
		return models.FieldTypeStringArray
	}
	return models.FieldTypeArray
}

// AsDocument normalizes the map shapes the BSON decoder produces into a plain
// map. Returns nil when the value is not a document.
func AsDocument(value any) map[string]any {
	switch v := value.(type) {
	case primitive.M:
		return map[string]any(v)
	case map[string]any:
		return v
	case primitive.D:
		return v.Map()
	default:
		return nil
	}
}
