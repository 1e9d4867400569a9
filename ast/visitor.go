package ast

type Visitor interface {
	VisitSelect(*SelectStmt) error
	VisitWhereClause(*WhereClause) error
	VisitCondition(*Condition) error
	VisitOrderByClause(*OrderByClause) error
	VisitLimitClause(*LimitClause) error
	Build(root *SelectStmt) (string, error)
	Release()
}
