package schema

import (
	"strings"

	pluralizer "github.com/gertd/go-pluralize"
)

// Naming utilities that turn Go identifiers into Salesforce API names.

// pluralizeClient is a singleton instance for consistent pluralization behavior.
var pluralizeClient = pluralizer.NewClient()

// customSuffix marks custom fields and custom objects in Salesforce.
const customSuffix = "__c"

// =========================================================================
// Core Interfaces
// =========================================================================

// NamingStrategy defines the complete naming configuration used when a
// struct is introspected.
type NamingStrategy interface {
	FieldNamingStrategy
	ObjectNamingStrategy
}

// FieldNamingStrategy defines how Go field names are converted to field API names.
type FieldNamingStrategy interface {
	// FieldName converts a Go field name to a field API name.
	FieldName(goName string) string
}

// ObjectNamingStrategy defines how Go struct names are converted to sObject names.
type ObjectNamingStrategy interface {
	// ObjectName converts a Go struct name to an sObject name.
	ObjectName(structName string) string
}

// =========================================================================
// Field Naming Strategies
// =========================================================================

// FieldNamingType represents different field naming conventions.
type FieldNamingType int

const (
	FieldVerbatim FieldNamingType = iota // AccountNumber -> AccountNumber
	FieldCustom                          // Region -> Region__c
)

type fieldNamingStrategy struct {
	namingType FieldNamingType
}

// NewFieldNamingStrategy creates a new field naming strategy.
func NewFieldNamingStrategy(namingType FieldNamingType) FieldNamingStrategy {
	return &fieldNamingStrategy{namingType: namingType}
}

func (f *fieldNamingStrategy) FieldName(goName string) string {
	switch f.namingType {
	case FieldCustom:
		return customName(goName)
	default:
		return goName
	}
}

// =========================================================================
// Object Naming Strategies
// =========================================================================

// ObjectNamingType represents different sObject naming conventions.
type ObjectNamingType int

const (
	ObjectSingular       ObjectNamingType = iota // Account -> Account
	ObjectPlural                                 // Contact -> Contacts (child relationship names)
	ObjectCustom                                 // Invoice -> Invoice__c
	ObjectCustomSingular                         // Invoices -> Invoice__c
)

type objectNamingStrategy struct {
	namingType ObjectNamingType
}

// NewObjectNamingStrategy creates a new object naming strategy.
func NewObjectNamingStrategy(namingType ObjectNamingType) ObjectNamingStrategy {
	return &objectNamingStrategy{namingType: namingType}
}

func (o *objectNamingStrategy) ObjectName(structName string) string {
	switch o.namingType {
	case ObjectPlural:
		return pluralize(structName)
	case ObjectCustom:
		return customName(structName)
	case ObjectCustomSingular:
		return customName(singularize(structName))
	default:
		return structName
	}
}

// =========================================================================
// Combined Naming Strategies
// =========================================================================

// CombinedNamingStrategy combines field and object naming strategies.
type CombinedNamingStrategy struct {
	FieldNamingStrategy
	ObjectNamingStrategy
}

// NewCombinedNamingStrategy creates a complete naming strategy.
func NewCombinedNamingStrategy(fields FieldNamingStrategy, objects ObjectNamingStrategy) NamingStrategy {
	return &CombinedNamingStrategy{
		FieldNamingStrategy:  fields,
		ObjectNamingStrategy: objects,
	}
}

// DefaultNamingStrategy keeps Go names as they are, which matches standard
// objects and fields (Account.AccountNumber).
func DefaultNamingStrategy() NamingStrategy {
	return NewCombinedNamingStrategy(
		NewFieldNamingStrategy(FieldVerbatim),
		NewObjectNamingStrategy(ObjectSingular),
	)
}

// CustomObjectStrategy maps structs onto custom objects whose fields are all
// custom as well.
func CustomObjectStrategy() NamingStrategy {
	return NewCombinedNamingStrategy(
		NewFieldNamingStrategy(FieldCustom),
		NewObjectNamingStrategy(ObjectCustom),
	)
}

// =========================================================================
// Conversion Functions
// =========================================================================

func customName(name string) string {
	if name == "" || strings.HasSuffix(name, customSuffix) {
		return name
	}
	return name + customSuffix
}

// pluralize converts singular nouns to their plural forms, keeping the case
// of the first letter.
func pluralize(name string) string {
	if name == "" {
		return ""
	}
	return pluralizeClient.Plural(name)
}

func singularize(name string) string {
	if name == "" {
		return ""
	}
	return pluralizeClient.Singular(name)
}
