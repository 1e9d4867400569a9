package schema

import (
	"reflect"
)

// SObjectNamer lets a model name its sObject explicitly instead of relying on
// the object naming strategy.
type SObjectNamer interface {
	SObjectName() string
}

// EntityMeta is the selectable shape of a struct.
type EntityMeta struct {
	Type       reflect.Type
	ObjectName string
	Fields     []*FieldMeta
}

type FieldMeta struct {
	GoName string
	Name   string
	Index  []int
	Tag    *ParsedTag
}

// FieldNames returns the API names in declaration order.
func (m *EntityMeta) FieldNames() []string {
	names := make([]string, len(m.Fields))
	for i, f := range m.Fields {
		names[i] = f.Name
	}
	return names
}

var namerType = reflect.TypeOf((*SObjectNamer)(nil)).Elem()

// objectNameOf prefers an SObjectName method declared on the value or the
// pointer receiver.
func objectNameOf(t reflect.Type, strategy ObjectNamingStrategy) string {
	for _, candidate := range []reflect.Type{t, reflect.PointerTo(t)} {
		if candidate.Implements(namerType) {
			namer := reflect.New(t)
			if candidate == t {
				return namer.Elem().Interface().(SObjectNamer).SObjectName()
			}
			return namer.Interface().(SObjectNamer).SObjectName()
		}
	}
	return strategy.ObjectName(t.Name())
}
