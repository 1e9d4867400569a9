package dialect

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/Konsultn-Engineering/soql/ast"
)

type SOQL struct{}

func NewSOQLDialect() Dialect {
	return &SOQL{}
}

func (SOQL) Name() string { return "soql" }

// RenderValue quotes strings without escaping embedded quotes; callers are
// responsible for their content.
func (SOQL) RenderValue(v ast.Value) string {
	switch v.ValueType {
	case ast.ValueNull:
		return "null"
	case ast.ValueBool:
		if b, _ := v.Val.(bool); b {
			return "true"
		}
		return "false"
	case ast.ValueString:
		return "'" + fmt.Sprint(v.Val) + "'"
	case ast.ValueRaw:
		return fmt.Sprint(v.Val)
	default:
		return renderNumeric(v.Val)
	}
}

func (d SOQL) RenderList(vs []ast.Value) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = d.RenderValue(v)
	}
	return strings.Join(parts, ", ")
}

// DateTimeFormat is the SOQL dateTime literal layout, always in UTC.
const DateTimeFormat = "2006-01-02T15:04:05Z"

// RenderDate emits a date operand verbatim. A nil operand, a nil pointer or
// a null Value is written as null.
func (d SOQL) RenderDate(v any) string {
	switch val := v.(type) {
	case nil:
		return "null"
	case string:
		return val
	case time.Time:
		return val.UTC().Format(DateTimeFormat)
	case ast.Value:
		if val.IsNull() {
			return "null"
		}
		return d.RenderDate(val.Val)
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return "null"
		}
		return d.RenderDate(rv.Elem().Interface())
	case reflect.String:
		return rv.String()
	default:
		return fmt.Sprint(v)
	}
}

func renderNumeric(n any) string {
	switch val := n.(type) {
	case nil:
		return "null"
	case int:
		return strconv.Itoa(val)
	case int8, int16, int32, int64:
		return fmt.Sprintf("%d", val)
	case uint, uint8, uint16, uint32, uint64:
		return fmt.Sprintf("%d", val)
	case float32:
		return strconv.FormatFloat(float64(val), 'f', -1, 32)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	}

	rv := reflect.ValueOf(n)
	switch rv.Kind() {
	case reflect.Float32:
		if _, ok := n.(fmt.Stringer); !ok {
			return strconv.FormatFloat(rv.Float(), 'f', -1, 32)
		}
	case reflect.Float64:
		if _, ok := n.(fmt.Stringer); !ok {
			return strconv.FormatFloat(rv.Float(), 'f', -1, 64)
		}
	}
	return fmt.Sprint(n)
}
