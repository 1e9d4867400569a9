package ast

import (
	"hash/fnv"

	"github.com/Konsultn-Engineering/soql/utils"
)

type OrderByClause struct {
	Column    string
	Direction string
}

func NewOrderByClause(column, direction string) *OrderByClause {
	clause := orderByClausePool.Get().(*OrderByClause)
	clause.Column = column
	clause.Direction = direction
	return clause
}

func (o *OrderByClause) Type() NodeType         { return NodeOrderBy }
func (o *OrderByClause) Accept(v Visitor) error { return v.VisitOrderByClause(o) }
func (o *OrderByClause) Fingerprint() uint64 {
	h := fnv.New64a()
	utils.WriteString(h, "order:")
	utils.WriteString(h, o.Column)
	utils.WriteString(h, o.Direction)
	return h.Sum64()
}

// String returns the "<column> <direction>" form used in the ORDER BY list.
func (o *OrderByClause) String() string {
	return o.Column + " " + o.Direction
}

func (o *OrderByClause) Release() {
	o.Column = ""
	o.Direction = ""
	orderByClausePool.Put(o)
}
