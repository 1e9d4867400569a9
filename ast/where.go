package ast

import (
	"hash/fnv"

	"github.com/Konsultn-Engineering/soql/utils"
)

// Condition is one filter of the WHERE clause. Value holds the already
// prepared literal text; an empty Operator is omitted when rendering.
type Condition struct {
	Column     string
	Operator   string
	Value      string
	Connective string
}

func NewCondition(column, operator, value, connective string) *Condition {
	c := conditionPool.Get().(*Condition)
	c.Column = column
	c.Operator = operator
	c.Value = value
	c.Connective = connective
	return c
}

func (c *Condition) Type() NodeType         { return NodeCondition }
func (c *Condition) Accept(v Visitor) error { return v.VisitCondition(c) }
func (c *Condition) Fingerprint() uint64 {
	h := fnv.New64a()
	utils.WriteString(h, "cond:")
	utils.WriteString(h, c.Column)
	utils.WriteString(h, c.Operator)
	utils.WriteString(h, c.Value)
	utils.WriteString(h, c.Connective)
	return h.Sum64()
}

func (c *Condition) Release() {
	c.Column = ""
	c.Operator = ""
	c.Value = ""
	c.Connective = ""
	conditionPool.Put(c)
}

// WhereClause keeps conditions in render order plus the grouping markers.
// A value in GroupStarts opens a parenthesis before the condition at that
// index, a value in GroupEnds closes one after it. Repeated indices nest.
type WhereClause struct {
	Conditions  []*Condition
	GroupStarts []int
	GroupEnds   []int
}

func (w *WhereClause) Type() NodeType         { return NodeWhere }
func (w *WhereClause) Accept(v Visitor) error { return v.VisitWhereClause(w) }
func (w *WhereClause) Fingerprint() uint64 {
	h := fnv.New64a()
	utils.WriteString(h, "where:")
	utils.WriteInt(h, len(w.Conditions))
	for _, c := range w.Conditions {
		_, _ = h.Write(utils.U64ToBytes(c.Fingerprint()))
	}
	utils.WriteInt(h, len(w.GroupStarts))
	for _, i := range w.GroupStarts {
		utils.WriteInt(h, i)
	}
	utils.WriteInt(h, len(w.GroupEnds))
	for _, i := range w.GroupEnds {
		utils.WriteInt(h, i)
	}
	return h.Sum64()
}

func (w *WhereClause) appendKey(b []byte) []byte {
	b = utils.AppendInt(b, len(w.Conditions))
	for _, c := range w.Conditions {
		b = utils.AppendString(b, c.Column)
		b = utils.AppendString(b, c.Operator)
		b = utils.AppendString(b, c.Value)
		b = utils.AppendString(b, c.Connective)
	}
	b = utils.AppendInt(b, len(w.GroupStarts))
	for _, i := range w.GroupStarts {
		b = utils.AppendInt(b, i)
	}
	b = utils.AppendInt(b, len(w.GroupEnds))
	for _, i := range w.GroupEnds {
		b = utils.AppendInt(b, i)
	}
	return b
}

func (w *WhereClause) Append(c *Condition) {
	w.Conditions = append(w.Conditions, c)
}

// StartGroup marks the next condition to be appended as a group start.
func (w *WhereClause) StartGroup() {
	w.GroupStarts = append(w.GroupStarts, len(w.Conditions))
}

// EndGroup marks the last appended condition as a group end.
func (w *WhereClause) EndGroup() {
	w.GroupEnds = append(w.GroupEnds, len(w.Conditions)-1)
}

func (w *WhereClause) Opens(i int) int  { return countIndex(w.GroupStarts, i) }
func (w *WhereClause) Closes(i int) int { return countIndex(w.GroupEnds, i) }

func (w *WhereClause) Balanced() bool {
	return len(w.GroupStarts) == len(w.GroupEnds)
}

func (w *WhereClause) Len() int {
	if w == nil {
		return 0
	}
	return len(w.Conditions)
}

func (w *WhereClause) Release() {
	for _, c := range w.Conditions {
		c.Release()
	}
	w.Conditions = w.Conditions[:0]
	w.GroupStarts = w.GroupStarts[:0]
	w.GroupEnds = w.GroupEnds[:0]
}

func countIndex(markers []int, i int) int {
	n := 0
	for _, m := range markers {
		if m == i {
			n++
		}
	}
	return n
}
