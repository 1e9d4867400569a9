package query

import (
	"github.com/rs/zerolog"

	"github.com/Konsultn-Engineering/soql/cache"
	"github.com/Konsultn-Engineering/soql/dialect"
	"github.com/Konsultn-Engineering/soql/schema"
)

type Option func(*QueryBuilder)

// WithDialect replaces the SOQL value preparation rules.
func WithDialect(d dialect.Dialect) Option {
	return func(qb *QueryBuilder) { qb.dialect = d }
}

// WithCache sets the render cache. Pass a cache of size 0 to disable caching.
func WithCache(c cache.QueryCache) Option {
	return func(qb *QueryBuilder) { qb.qcache = c }
}

// WithLogger sets the logger used for render diagnostics.
func WithLogger(logger zerolog.Logger) Option {
	return func(qb *QueryBuilder) { qb.logger = logger }
}

// WithSchema sets the introspection context used by SelectStruct and FromStruct.
func WithSchema(ctx *schema.Context) Option {
	return func(qb *QueryBuilder) { qb.schema = ctx }
}

// WithNamingStrategy is shorthand for WithSchema(schema.New(schema.WithNamingStrategy(s))).
func WithNamingStrategy(s schema.NamingStrategy) Option {
	return func(qb *QueryBuilder) { qb.schema = schema.New(schema.WithNamingStrategy(s)) }
}
