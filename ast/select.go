package ast

import (
	"fmt"

	"github.com/Konsultn-Engineering/soql/utils"
)

type SelectStmt struct {
	Fields  []string
	Object  string
	Where   *WhereClause
	OrderBy []*OrderByClause
	Limit   *LimitClause
}

func NewSelectStmt() *SelectStmt {
	s := selectStmtPool.Get().(*SelectStmt)
	s.Fields = s.Fields[:0]
	s.Object = ""
	s.Where.Release()
	s.OrderBy = s.OrderBy[:0]
	*s.Limit = LimitClause{}
	return s
}

func (s *SelectStmt) Type() NodeType         { return NodeSelect }
func (s *SelectStmt) Accept(v Visitor) error { return v.VisitSelect(s) }
// Fingerprint hashes Key. Equal fingerprints do not imply equal statements;
// compare keys for that.
func (s *SelectStmt) Fingerprint() uint64 {
	return utils.FingerprintString(s.Key())
}

// Key is an injective encoding of the whole statement: two statements have
// the same key exactly when they hold the same state.
func (s *SelectStmt) Key() string {
	b := make([]byte, 0, 256)
	b = utils.AppendString(b, "select")
	b = utils.AppendString(b, s.Object)
	b = utils.AppendInt(b, len(s.Fields))
	for _, f := range s.Fields {
		b = utils.AppendString(b, f)
	}
	if s.Where != nil {
		b = s.Where.appendKey(b)
	} else {
		b = (&WhereClause{}).appendKey(b)
	}
	b = utils.AppendInt(b, len(s.OrderBy))
	for _, o := range s.OrderBy {
		b = utils.AppendString(b, o.Column)
		b = utils.AppendString(b, o.Direction)
	}
	if s.Limit != nil {
		b = utils.AppendInt(b, s.Limit.Count)
		b = utils.AppendInt(b, s.Limit.Offset)
	} else {
		b = utils.AppendInt(b, 0)
		b = utils.AppendInt(b, 0)
	}
	return string(b)
}

// DistinctFields returns Fields with later duplicates dropped, keeping the
// order of first occurrence.
func (s *SelectStmt) DistinctFields() []string {
	seen := make(map[string]struct{}, len(s.Fields))
	out := make([]string, 0, len(s.Fields))
	for _, f := range s.Fields {
		if _, ok := seen[f]; ok {
			continue
		}
		seen[f] = struct{}{}
		out = append(out, f)
	}
	return out
}

// Validate reports the structural problems that make the statement
// unrenderable. Every returned error wraps ErrInvalidQuery.
func (s *SelectStmt) Validate() error {
	if s.Object == "" {
		return fmt.Errorf("%w: query must contain sObject name", ErrInvalidQuery)
	}
	if len(s.Fields) == 0 {
		return fmt.Errorf("%w: query must contain fields for select", ErrInvalidQuery)
	}
	if s.Where != nil && !s.Where.Balanced() {
		return fmt.Errorf("%w: unbalanced where groups: %d opened, %d closed",
			ErrInvalidQuery, len(s.Where.GroupStarts), len(s.Where.GroupEnds))
	}
	return nil
}

// Clone returns a deep copy that is not backed by the pools, so it stays
// valid after s is released.
func (s *SelectStmt) Clone() *SelectStmt {
	if s == nil {
		return nil
	}
	out := &SelectStmt{
		Fields:  append([]string(nil), s.Fields...),
		Object:  s.Object,
		Where:   &WhereClause{},
		OrderBy: make([]*OrderByClause, len(s.OrderBy)),
		Limit:   &LimitClause{},
	}
	if s.Where != nil {
		out.Where.Conditions = make([]*Condition, len(s.Where.Conditions))
		for i, c := range s.Where.Conditions {
			cp := *c
			out.Where.Conditions[i] = &cp
		}
		out.Where.GroupStarts = append([]int(nil), s.Where.GroupStarts...)
		out.Where.GroupEnds = append([]int(nil), s.Where.GroupEnds...)
	}
	for i, o := range s.OrderBy {
		cp := *o
		out.OrderBy[i] = &cp
	}
	if s.Limit != nil {
		*out.Limit = *s.Limit
	}
	return out
}

func (s *SelectStmt) Release() {
	s.Fields = s.Fields[:0]
	s.Object = ""
	if s.Where != nil {
		s.Where.Release()
	}
	for _, o := range s.OrderBy {
		o.Release()
	}
	s.OrderBy = s.OrderBy[:0]
	if s.Limit != nil {
		*s.Limit = LimitClause{}
	}
	selectStmtPool.Put(s)
}
