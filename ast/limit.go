package ast

import (
	"hash/fnv"
	"strconv"
)

// LimitClause holds LIMIT and OFFSET. Zero means "not set" for both, so a
// limit of 0 is never rendered.
type LimitClause struct {
	Count  int
	Offset int
}

func (l *LimitClause) Type() NodeType         { return NodeLimit }
func (l *LimitClause) Accept(v Visitor) error { return v.VisitLimitClause(l) }
func (l *LimitClause) Fingerprint() uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte("limit:"))
	_, _ = h.Write([]byte(strconv.Itoa(l.Count)))
	_, _ = h.Write([]byte(":"))
	_, _ = h.Write([]byte(strconv.Itoa(l.Offset)))
	return h.Sum64()
}

func (l *LimitClause) IsZero() bool {
	return l.Count == 0 && l.Offset == 0
}
