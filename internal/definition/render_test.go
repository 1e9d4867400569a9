package definition

import (
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Konsultn-Engineering/soql/ast"
)

func renderYaml(t *testing.T, doc string) ([]Result, error) {
	t.Helper()
	file, err := Decode(strings.NewReader(doc))
	require.NoError(t, err)
	r, err := NewRenderer(16, zerolog.Nop())
	require.NoError(t, err)
	return r.RenderAll(file)
}

func TestRenderAll(t *testing.T) {
	results, err := renderYaml(t, accountsYaml)
	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.Equal(t, Result{
		Name: "accounts",
		SOQL: "SELECT Id, Name, Description FROM Account WHERE Name = 'Mikhail' ORDER BY Name ASC LIMIT 10 OFFSET 15",
	}, results[0])
	assert.Equal(t, "SELECT Id FROM Contact", results[1].SOQL)
}

func TestRenderConditionKinds(t *testing.T) {
	doc := `
queries:
  - name: kinds
    object: Account
    fields: [Id]
    where:
      - column: IsChecked
        operator: "="
        value: true
      - kind: date
        column: CreatedDate
        operator: ">"
        value: "2019-10-10"
      - kind: in
        column: Name
        values: [a, 3]
        connective: or
      - kind: in
        column: Type
        values: [x]
        negate: true
      - kind: function
        column: Tags__c
        function: INCLUDES
        values: [p, q]
      - column: Amount
        operator: ">="
        value: 2.5
    order_by:
      - column: CreatedDate
        direction: desc
`
	results, err := renderYaml(t, doc)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t,
		"SELECT Id FROM Account WHERE IsChecked = true AND CreatedDate > 2019-10-10 OR Name IN ('a', 3)"+
			" AND Type NOT IN ('x') AND Tags__c INCLUDES('p', 'q') AND Amount >= 2.5 ORDER BY CreatedDate DESC",
		results[0].SOQL)
}

func TestRenderGroups(t *testing.T) {
	doc := `
queries:
  - name: grouped
    object: Account
    fields: [Id]
    where:
      - column: Name
        operator: "="
        value: a
      - group: start
      - column: Type
        operator: "="
        value: b
        connective: OR
      - column: Type
        operator: "="
        value: c
      - group: end
`
	results, err := renderYaml(t, doc)
	require.NoError(t, err)
	assert.Equal(t, "SELECT Id FROM Account WHERE Name = 'a' OR (Type = 'b' AND Type = 'c')", results[0].SOQL)
}

func TestRenderErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want string
	}{
		{
			name: "missing object",
			doc:  "queries:\n  - name: q\n    fields: [Id]\n",
			want: "must contain sObject name",
		},
		{
			name: "unknown kind",
			doc:  "queries:\n  - name: q\n    object: A\n    fields: [Id]\n    where:\n      - kind: between\n        column: X\n",
			want: `unknown condition kind "between"`,
		},
		{
			name: "unknown group",
			doc:  "queries:\n  - name: q\n    object: A\n    fields: [Id]\n    where:\n      - group: middle\n",
			want: `unknown group marker "middle"`,
		},
		{
			name: "unknown connective",
			doc:  "queries:\n  - name: q\n    object: A\n    fields: [Id]\n    where:\n      - column: X\n        operator: \"=\"\n        value: 1\n        connective: xor\n",
			want: `unknown connective "xor"`,
		},
		{
			name: "bad limit",
			doc:  "queries:\n  - name: q\n    object: A\n    fields: [Id]\n    limit: ten\n",
			want: "limit",
		},
		{
			name: "unbalanced groups",
			doc:  "queries:\n  - name: q\n    object: A\n    fields: [Id]\n    where:\n      - group: start\n      - column: X\n        operator: \"=\"\n        value: 1\n",
			want: "unbalanced where groups",
		},
		{
			name: "function without name",
			doc:  "queries:\n  - name: q\n    object: A\n    fields: [Id]\n    where:\n      - kind: function\n        column: X\n",
			want: "function is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := renderYaml(t, tt.doc)
			require.Error(t, err)
			assert.Contains(t, err.Error(), `query "q"`)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestRenderWrapsInvalidQuery(t *testing.T) {
	_, err := renderYaml(t, "queries:\n  - name: q\n    object: A\n")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ast.ErrInvalidQuery))
}

func TestRendererSharesCache(t *testing.T) {
	file, err := Decode(strings.NewReader(`
queries:
  - {name: a, object: Account, fields: [Id]}
  - {name: b, object: Account, fields: [Id]}
`))
	require.NoError(t, err)

	r, err := NewRenderer(8, zerolog.Nop())
	require.NoError(t, err)
	results, err := r.RenderAll(file)
	require.NoError(t, err)
	assert.Equal(t, results[0].SOQL, results[1].SOQL)
	assert.Equal(t, 1, r.qcache.Len())
}
