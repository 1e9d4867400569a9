package query

import (
	"reflect"

	"github.com/Konsultn-Engineering/soql/ast"
)

// ColumnCondition is one (column, operator, value) triple for WhereColumn.
type ColumnCondition struct {
	Column   string
	Operator string
	Value    any
}

// C builds a ColumnCondition.
func C(column, operator string, value any) ColumnCondition {
	return ColumnCondition{Column: column, Operator: operator, Value: value}
}

// Values converts a typed slice into the []any accepted by WhereIn.
func Values[T any](vs ...T) []any {
	out := make([]any, len(vs))
	for i, v := range vs {
		out[i] = v
	}
	return out
}

// listValues reports whether v is a list operand (any slice or array other
// than []byte) and classifies its elements.
func listValues(v any) ([]ast.Value, bool) {
	if v == nil {
		return nil, false
	}
	if vs, ok := v.([]any); ok {
		return ast.ValuesOf(vs), true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return nil, false
		}
		out := make([]ast.Value, rv.Len())
		for i := range out {
			out[i] = ast.ValueOf(rv.Index(i).Interface())
		}
		return out, true
	default:
		return nil, false
	}
}
