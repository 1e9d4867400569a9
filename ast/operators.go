package ast

// Comparison operators
const (
	OpEqual              = "="
	OpNotEqual           = "!="
	OpLessThan           = "<"
	OpLessThanOrEqual    = "<="
	OpGreaterThan        = ">"
	OpGreaterThanOrEqual = ">="
	OpLike               = "LIKE"
)

// Set operators
const (
	OpIn       = "IN"
	OpNotIn    = "NOT IN"
	OpIncludes = "INCLUDES"
	OpExcludes = "EXCLUDES"
)

// Logical connectives
const (
	OpAnd = "AND"
	OpOr  = "OR"
)

// Sort directions
const (
	DirAsc  = "ASC"
	DirDesc = "DESC"
)
