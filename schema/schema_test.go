package schema

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =========================================================================
// Test Data Structures
// =========================================================================

type Account struct {
	Id            string
	Name          string
	AccountNumber string
	Region        string    `soql:",custom"`
	OwnerName     string    `soql:"Owner.Name"`
	CreatedDate   time.Time `soql:"CreatedDate"`
	Internal      string    `soql:"-"`
	secret        string
}

type Auditable struct {
	CreatedById      string
	LastModifiedDate time.Time
}

type Contact struct {
	Auditable
	Id       string
	LastName string
}

type Invoice struct {
	Id     string
	Amount float64
}

type Lead struct {
	Id string
}

func (Lead) SObjectName() string { return "Lead" }

type Case struct {
	Id string
}

func (*Case) SObjectName() string { return "Case" }

type BadTag struct {
	Name string `soql:"Name,unknown"`
}

// =========================================================================
// Introspection
// =========================================================================

func TestIntrospectAccount(t *testing.T) {
	ctx := New()

	meta, err := ctx.Introspect(reflect.TypeOf(Account{}))
	require.NoError(t, err)

	assert.Equal(t, "Account", meta.ObjectName)
	assert.Equal(t,
		[]string{"Id", "Name", "AccountNumber", "Region__c", "Owner.Name", "CreatedDate"},
		meta.FieldNames())
	assert.Equal(t, []int{3}, meta.Fields[3].Index)
}

func TestIntrospectPointerAndCache(t *testing.T) {
	ctx := New()

	byValue, err := ctx.IntrospectValue(Account{})
	require.NoError(t, err)

	byPointer, err := ctx.IntrospectValue(&Account{})
	require.NoError(t, err)

	assert.Same(t, byValue, byPointer)
}

func TestIntrospectEmbedded(t *testing.T) {
	meta, err := New().Introspect(reflect.TypeOf(Contact{}))
	require.NoError(t, err)

	assert.Equal(t, []string{"CreatedById", "LastModifiedDate", "Id", "LastName"}, meta.FieldNames())
	assert.Equal(t, []int{0, 1}, meta.Fields[1].Index)
}

func TestIntrospectObjectNamer(t *testing.T) {
	ctx := New(WithNamingStrategy(CustomObjectStrategy()))

	lead, err := ctx.IntrospectValue(Lead{})
	require.NoError(t, err)
	assert.Equal(t, "Lead", lead.ObjectName)

	c, err := ctx.IntrospectValue(Case{})
	require.NoError(t, err)
	assert.Equal(t, "Case", c.ObjectName)
}

func TestIntrospectCustomObjectStrategy(t *testing.T) {
	meta, err := New(WithNamingStrategy(CustomObjectStrategy())).IntrospectValue(Invoice{})
	require.NoError(t, err)

	assert.Equal(t, "Invoice__c", meta.ObjectName)
	assert.Equal(t, []string{"Id__c", "Amount__c"}, meta.FieldNames())
}

func TestIntrospectInvalidModel(t *testing.T) {
	ctx := New()

	_, err := ctx.IntrospectValue(42)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidModel))

	_, err = ctx.IntrospectValue(nil)
	assert.True(t, errors.Is(err, ErrInvalidModel))

	_, err = ctx.Introspect(nil)
	assert.True(t, errors.Is(err, ErrInvalidModel))
}

func TestIntrospectBadTag(t *testing.T) {
	_, err := New().IntrospectValue(BadTag{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown soql tag option")
	assert.Contains(t, err.Error(), "BadTag")
}

func TestIntrospectCustomTagName(t *testing.T) {
	type Opportunity struct {
		Id     string `sf:"Id"`
		Amount string `sf:"Amount__c"`
	}

	meta, err := New(WithTagName("sf")).IntrospectValue(Opportunity{})
	require.NoError(t, err)
	assert.Equal(t, []string{"Id", "Amount__c"}, meta.FieldNames())
}

func TestDefaultIntrospect(t *testing.T) {
	meta, err := Introspect(reflect.TypeOf(&Invoice{}))
	require.NoError(t, err)
	assert.Equal(t, "Invoice", meta.ObjectName)
	assert.NotNil(t, Default())
}

// =========================================================================
// Naming
// =========================================================================

func TestObjectNamingStrategies(t *testing.T) {
	tests := []struct {
		namingType ObjectNamingType
		in         string
		want       string
	}{
		{ObjectSingular, "Account", "Account"},
		{ObjectPlural, "Contact", "Contacts"},
		{ObjectPlural, "Opportunity", "Opportunities"},
		{ObjectCustom, "Invoice", "Invoice__c"},
		{ObjectCustom, "Invoice__c", "Invoice__c"},
		{ObjectCustomSingular, "Invoices", "Invoice__c"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := NewObjectNamingStrategy(tt.namingType).ObjectName(tt.in)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFieldNamingStrategies(t *testing.T) {
	assert.Equal(t, "Name", NewFieldNamingStrategy(FieldVerbatim).FieldName("Name"))
	assert.Equal(t, "Region__c", NewFieldNamingStrategy(FieldCustom).FieldName("Region"))
	assert.Equal(t, "", NewFieldNamingStrategy(FieldCustom).FieldName(""))
}

// =========================================================================
// Tags
// =========================================================================

func TestParseTag(t *testing.T) {
	p := NewTagParser("", NewFieldNamingStrategy(FieldVerbatim))

	tests := []struct {
		name    string
		tag     reflect.StructTag
		want    *ParsedTag
		wantErr bool
	}{
		{"untagged", ``, &ParsedTag{FieldName: "Name"}, false},
		{"explicit", `soql:"FullName"`, &ParsedTag{FieldName: "FullName"}, false},
		{"skip", `soql:"-"`, &ParsedTag{Skip: true}, false},
		{"custom derived", `soql:",custom"`, &ParsedTag{FieldName: "Name__c", Custom: true}, false},
		{"custom explicit", `soql:"Label,custom"`, &ParsedTag{FieldName: "Label__c", Custom: true}, false},
		{"other tag only", `json:"name"`, &ParsedTag{FieldName: "Name"}, false},
		{"unknown option", `soql:"Name,bogus"`, nil, true},
		{"whitespace in name", `soql:"Full Name"`, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := p.ParseTag("Name", tt.tag)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseTagCached(t *testing.T) {
	p := NewTagParser(DefaultTagName, NewFieldNamingStrategy(FieldVerbatim))

	first, err := p.ParseTag("Name", `soql:"FullName"`)
	require.NoError(t, err)
	second, err := p.ParseTag("Name", `soql:"FullName"`)
	require.NoError(t, err)

	assert.Same(t, first, second)
}
