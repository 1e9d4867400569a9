package query

import (
	"github.com/rs/zerolog"

	"github.com/Konsultn-Engineering/soql/ast"
	"github.com/Konsultn-Engineering/soql/cache"
	"github.com/Konsultn-Engineering/soql/dialect"
	"github.com/Konsultn-Engineering/soql/schema"
	"github.com/Konsultn-Engineering/soql/visitor"
)

// ErrInvalidQuery is wrapped by every error ToSOQL returns for a builder whose
// state cannot be rendered.
var ErrInvalidQuery = ast.ErrInvalidQuery

// QueryBuilder accumulates the parts of a SOQL SELECT through chained calls
// and renders them with ToSOQL. A builder belongs to one goroutine at a time.
type QueryBuilder struct {
	BaseBuilder

	stmt    *ast.SelectStmt
	dialect dialect.Dialect
	qcache  cache.QueryCache
	schema  *schema.Context
	logger  zerolog.Logger
}

// New creates an empty builder using the SOQL dialect and the shared render
// cache unless overridden by options.
func New(options ...Option) *QueryBuilder {
	qb := &QueryBuilder{
		stmt:    ast.NewSelectStmt(),
		dialect: dialect.NewSOQLDialect(),
		qcache:  cache.Shared(),
		schema:  schema.Default(),
		logger:  zerolog.Nop(),
	}

	for _, opt := range options {
		opt(qb)
	}

	return qb
}

// Select appends fields, keeping the order of all calls.
func (qb *QueryBuilder) Select(fields ...string) *QueryBuilder {
	qb.stmt.Fields = append(qb.stmt.Fields, fields...)
	return qb
}

// AddSelect appends one field.
func (qb *QueryBuilder) AddSelect(field string) *QueryBuilder {
	qb.stmt.Fields = append(qb.stmt.Fields, field)
	return qb
}

// SelectStruct appends the fields of a struct model as described by its soql
// tags. Introspection errors are reported by ToSOQL.
func (qb *QueryBuilder) SelectStruct(model any) *QueryBuilder {
	meta, err := qb.schema.IntrospectValue(model)
	if err != nil {
		qb.AddError(err)
		return qb
	}
	return qb.Select(meta.FieldNames()...)
}

// From sets the sObject, replacing any previous one.
func (qb *QueryBuilder) From(object string) *QueryBuilder {
	qb.stmt.Object = object
	return qb
}

// FromStruct sets the sObject named after a struct model.
func (qb *QueryBuilder) FromStruct(model any) *QueryBuilder {
	meta, err := qb.schema.IntrospectValue(model)
	if err != nil {
		qb.AddError(err)
		return qb
	}
	return qb.From(meta.ObjectName)
}

func (qb *QueryBuilder) appendCondition(column, operator, value, connective string) *QueryBuilder {
	qb.stmt.Where.Append(ast.NewCondition(column, operator, value, connective))
	return qb
}

// Where adds "column operator value" joined with AND. Strings are quoted,
// booleans and nil become true/false/null, anything else is written as is.
func (qb *QueryBuilder) Where(column, operator string, value any) *QueryBuilder {
	return qb.WhereWith(column, operator, value, ast.OpAnd)
}

func (qb *QueryBuilder) OrWhere(column, operator string, value any) *QueryBuilder {
	return qb.WhereWith(column, operator, value, ast.OpOr)
}

// WhereWith is Where with an explicit connective.
func (qb *QueryBuilder) WhereWith(column, operator string, value any, connective string) *QueryBuilder {
	return qb.appendCondition(column, operator, qb.dialect.RenderValue(ast.ValueOf(value)), connective)
}

// WhereDate adds a condition whose value is a date literal emitted without
// quotes: "2019-10-10", "TODAY", "LAST_N_DAYS:30" or a time.Time.
func (qb *QueryBuilder) WhereDate(column, operator string, value any) *QueryBuilder {
	return qb.WhereDateWith(column, operator, value, ast.OpAnd)
}

func (qb *QueryBuilder) OrWhereDate(column, operator string, value any) *QueryBuilder {
	return qb.WhereDateWith(column, operator, value, ast.OpOr)
}

func (qb *QueryBuilder) WhereDateWith(column, operator string, value any, connective string) *QueryBuilder {
	return qb.appendCondition(column, operator, qb.dialect.RenderDate(value), connective)
}

// WhereColumn adds one AND condition per triple.
func (qb *QueryBuilder) WhereColumn(conditions []ColumnCondition) *QueryBuilder {
	return qb.WhereColumnWith(conditions, ast.OpAnd)
}

func (qb *QueryBuilder) OrWhereColumn(conditions []ColumnCondition) *QueryBuilder {
	return qb.WhereColumnWith(conditions, ast.OpOr)
}

// WhereColumnWith adds one condition per triple, all with the same connective.
func (qb *QueryBuilder) WhereColumnWith(conditions []ColumnCondition, connective string) *QueryBuilder {
	for _, c := range conditions {
		qb.WhereWith(c.Column, c.Operator, c.Value, connective)
	}
	return qb
}

// WhereIn adds "column IN (v1, v2, ...)".
func (qb *QueryBuilder) WhereIn(column string, values []any) *QueryBuilder {
	return qb.WhereInWith(column, values, ast.OpAnd, false)
}

func (qb *QueryBuilder) WhereNotIn(column string, values []any) *QueryBuilder {
	return qb.WhereInWith(column, values, ast.OpAnd, true)
}

func (qb *QueryBuilder) OrWhereIn(column string, values []any) *QueryBuilder {
	return qb.WhereInWith(column, values, ast.OpOr, false)
}

func (qb *QueryBuilder) OrWhereNotIn(column string, values []any) *QueryBuilder {
	return qb.WhereInWith(column, values, ast.OpOr, true)
}

// WhereInWith prepares every value, and adds an IN or, when negate is set,
// NOT IN condition over the parenthesized list.
func (qb *QueryBuilder) WhereInWith(column string, values []any, connective string, negate bool) *QueryBuilder {
	operator := ast.OpIn
	if negate {
		operator = ast.OpNotIn
	}
	list := "(" + qb.dialect.RenderList(ast.ValuesOf(values)) + ")"
	return qb.appendCondition(column, operator, list, connective)
}

// WhereFunction adds "column function(value)" with no operator in between.
// A slice value is prepared element by element and joined with ", ".
func (qb *QueryBuilder) WhereFunction(column, function string, value any) *QueryBuilder {
	return qb.WhereFunctionWith(column, function, value, ast.OpAnd)
}

func (qb *QueryBuilder) OrWhereFunction(column, function string, value any) *QueryBuilder {
	return qb.WhereFunctionWith(column, function, value, ast.OpOr)
}

func (qb *QueryBuilder) WhereFunctionWith(column, function string, value any, connective string) *QueryBuilder {
	var prepared string
	if list, ok := listValues(value); ok {
		prepared = qb.dialect.RenderList(list)
	} else {
		prepared = qb.dialect.RenderValue(ast.ValueOf(value))
	}
	return qb.appendCondition(column, "", function+"("+prepared+")", connective)
}

// StartWhere opens a parenthesis before the next condition to be added.
func (qb *QueryBuilder) StartWhere() *QueryBuilder {
	qb.stmt.Where.StartGroup()
	return qb
}

// EndWhere closes a parenthesis after the last condition added. Every
// StartWhere needs a matching EndWhere or ToSOQL fails.
func (qb *QueryBuilder) EndWhere() *QueryBuilder {
	qb.stmt.Where.EndGroup()
	return qb
}

// OrderBy appends an ascending sort on column.
func (qb *QueryBuilder) OrderBy(column string) *QueryBuilder {
	return qb.OrderByDirection(column, ast.DirAsc)
}

func (qb *QueryBuilder) OrderByDesc(column string) *QueryBuilder {
	return qb.OrderByDirection(column, ast.DirDesc)
}

// OrderByDirection appends "column direction" to the ORDER BY list. The
// direction is written as given, e.g. "DESC NULLS LAST".
func (qb *QueryBuilder) OrderByDirection(column, direction string) *QueryBuilder {
	qb.stmt.OrderBy = append(qb.stmt.OrderBy, ast.NewOrderByClause(column, direction))
	return qb
}

// Limit sets LIMIT. Zero means no limit: Limit(0) renders no LIMIT clause.
func (qb *QueryBuilder) Limit(limit int) *QueryBuilder {
	qb.stmt.Limit.Count = limit
	return qb
}

// Offset sets OFFSET. Like Limit, zero is not rendered.
func (qb *QueryBuilder) Offset(offset int) *QueryBuilder {
	qb.stmt.Limit.Offset = offset
	return qb
}

// Statement returns a copy of the accumulated state. The copy is detached
// from the builder's pooled statement, so later Reset or Release calls do
// not change it. It returns nil after Release.
func (qb *QueryBuilder) Statement() *ast.SelectStmt {
	return qb.stmt.Clone()
}

// ToSOQL renders the query. It fails with an error wrapping ErrInvalidQuery
// when the sObject or the fields are missing or StartWhere/EndWhere calls are
// unbalanced, and with the first SelectStruct/FromStruct error if any.
// The builder is not modified, so repeated calls return the same text.
func (qb *QueryBuilder) ToSOQL() (string, error) {
	if err := qb.FirstError(); err != nil {
		return "", err
	}

	v := visitor.NewSOQLVisitor(qb.qcache, qb.logger)
	defer v.Release()

	soql, err := v.Build(qb.stmt)
	if err != nil {
		qb.logger.Debug().Err(err).Str("object", qb.stmt.Object).Msg("soql render failed")
		return "", err
	}
	return soql, nil
}

// MustSOQL is ToSOQL for statically known queries; it panics on error.
func (qb *QueryBuilder) MustSOQL() string {
	soql, err := qb.ToSOQL()
	if err != nil {
		panic(err)
	}
	return soql
}

// Reset clears all accumulated state and errors so the builder can be
// filled in again.
func (qb *QueryBuilder) Reset() *QueryBuilder {
	qb.stmt.Release()
	qb.stmt = ast.NewSelectStmt()
	qb.resetErrors()
	return qb
}

// Release returns the builder's statement to the pool. The builder must not
// be used afterwards.
func (qb *QueryBuilder) Release() {
	if qb.stmt != nil {
		qb.stmt.Release()
		qb.stmt = nil
	}
}
