package ast

import (
	"fmt"
	"reflect"
	"strconv"

	"github.com/Konsultn-Engineering/soql/utils"
)

type ValueType int

const (
	ValueNull ValueType = iota
	ValueBool
	ValueNumeric
	ValueString
	ValueRaw
)

func (t ValueType) String() string {
	switch t {
	case ValueNull:
		return "null"
	case ValueBool:
		return "bool"
	case ValueNumeric:
		return "numeric"
	case ValueString:
		return "string"
	case ValueRaw:
		return "raw"
	default:
		return "unknown(" + strconv.Itoa(int(t)) + ")"
	}
}

// Value is a typed operand of a condition. The dialect turns it into literal
// text; Val holds a string for ValueString and ValueRaw, a bool for
// ValueBool, nil for ValueNull and the caller's number for ValueNumeric.
type Value struct {
	Val       any
	ValueType ValueType
}

func String(s string) Value { return Value{Val: s, ValueType: ValueString} }

func Bool(b bool) Value { return Value{Val: b, ValueType: ValueBool} }

func Null() Value { return Value{ValueType: ValueNull} }

func Numeric(n any) Value { return Value{Val: n, ValueType: ValueNumeric} }

// Raw is emitted verbatim, without quoting. Date literals use it.
func Raw(s string) Value { return Value{Val: s, ValueType: ValueRaw} }

// ValueOf classifies a dynamic Go value. Named types follow their underlying
// kind, so a `type Stage string` is a string. Pointers are followed and a nil
// pointer is null. Anything else is treated as numeric and later rendered in
// its natural string form.
func ValueOf(v any) Value {
	switch val := v.(type) {
	case nil:
		return Null()
	case Value:
		return val
	case *Value:
		if val == nil {
			return Null()
		}
		return *val
	case string:
		return String(val)
	case bool:
		return Bool(val)
	default:
		return valueOfKind(reflect.ValueOf(v))
	}
}

func valueOfKind(rv reflect.Value) Value {
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return Null()
		}
		return ValueOf(rv.Elem().Interface())
	case reflect.String:
		return String(rv.String())
	case reflect.Bool:
		return Bool(rv.Bool())
	default:
		return Numeric(rv.Interface())
	}
}

// ValuesOf classifies every element of a slice.
func ValuesOf(vs []any) []Value {
	out := make([]Value, len(vs))
	for i, v := range vs {
		out[i] = ValueOf(v)
	}
	return out
}

func (v Value) IsNull() bool { return v.ValueType == ValueNull }

func (v Value) Fingerprint() uint64 {
	s := "val:" + strconv.Itoa(int(v.ValueType)) + ":" + fmt.Sprint(v.Val)
	return utils.FingerprintString(s)
}
