package visitor

import (
	"strconv"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/Konsultn-Engineering/soql/ast"
	"github.com/Konsultn-Engineering/soql/cache"
	"github.com/Konsultn-Engineering/soql/utils"
)

var visitorPool = sync.Pool{
	New: func() any {
		return &SOQLVisitor{}
	},
}

// SOQLVisitor renders a SelectStmt into SOQL text. A visitor is not safe for
// concurrent use; take one per render from NewSOQLVisitor and Release it.
type SOQLVisitor struct {
	sb     strings.Builder
	qcache cache.QueryCache
	logger zerolog.Logger
}

func NewSOQLVisitor(q cache.QueryCache, logger zerolog.Logger) *SOQLVisitor {
	v := visitorPool.Get().(*SOQLVisitor)
	v.qcache = q
	v.logger = logger
	v.sb.Reset()
	return v
}

func (v *SOQLVisitor) GetSB() *strings.Builder {
	return &v.sb
}

func (v *SOQLVisitor) Release() {
	v.qcache = nil
	v.logger = zerolog.Nop()
	v.sb.Reset()
	visitorPool.Put(v)
}

func (v *SOQLVisitor) Reset() {
	v.sb.Reset()
}

// Build validates root and returns its SOQL text. Nothing is rendered for an
// invalid statement.
func (v *SOQLVisitor) Build(root *ast.SelectStmt) (string, error) {
	if err := root.Validate(); err != nil {
		return "", err
	}

	key := root.Key()
	fp := utils.FingerprintString(key)

	if v.qcache != nil {
		if cached, ok := v.qcache.Get(fp); ok && cached != nil && cached.Key == key {
			v.logger.Debug().
				Uint64("fingerprint", fp).
				Str("object", cached.Object).
				Msg("soql cache hit")
			return cached.SOQL, nil
		}
	}

	v.sb.Reset()
	if err := root.Accept(v); err != nil {
		return "", err
	}
	soql := v.sb.String()

	if v.qcache != nil {
		v.qcache.Set(fp, &cache.CachedQuery{Key: key, SOQL: soql, Object: root.Object})
	}
	v.logger.Debug().
		Uint64("fingerprint", fp).
		Str("object", root.Object).
		Int("conditions", root.Where.Len()).
		Msg("soql rendered")

	return soql, nil
}

func (v *SOQLVisitor) VisitSelect(s *ast.SelectStmt) error {
	//	SELECT field_list
	//	FROM object
	//	[WHERE condition_list]
	//	[ORDER BY order_list]
	//	[LIMIT count]
	//	[OFFSET count]

	v.sb.WriteString("SELECT ")
	v.sb.WriteString(strings.Join(s.DistinctFields(), ", "))

	v.sb.WriteString(" FROM ")
	v.sb.WriteString(s.Object)

	if s.Where != nil && s.Where.Len() > 0 {
		if err := s.Where.Accept(v); err != nil {
			return err
		}
	}

	if len(s.OrderBy) > 0 {
		v.sb.WriteString(" ORDER BY ")
		for i, o := range s.OrderBy {
			if i > 0 {
				v.sb.WriteString(", ")
			}
			if err := o.Accept(v); err != nil {
				return err
			}
		}
	}

	if s.Limit != nil {
		if err := s.Limit.Accept(v); err != nil {
			return err
		}
	}

	return nil
}

func (v *SOQLVisitor) VisitWhereClause(clause *ast.WhereClause) error {
	if clause == nil || clause.Len() == 0 {
		return nil
	}

	v.sb.WriteString(" WHERE ")

	for i, cond := range clause.Conditions {
		// the connective belongs to the condition being joined
		if i > 0 {
			v.sb.WriteByte(' ')
			v.sb.WriteString(cond.Connective)
			v.sb.WriteByte(' ')
		}

		writeRepeat(&v.sb, '(', clause.Opens(i))
		if err := cond.Accept(v); err != nil {
			return err
		}
		writeRepeat(&v.sb, ')', clause.Closes(i))
	}

	return nil
}

func (v *SOQLVisitor) VisitCondition(c *ast.Condition) error {
	v.sb.WriteString(c.Column)
	if c.Operator != "" {
		v.sb.WriteByte(' ')
		v.sb.WriteString(c.Operator)
	}
	v.sb.WriteByte(' ')
	v.sb.WriteString(c.Value)
	return nil
}

func (v *SOQLVisitor) VisitOrderByClause(clause *ast.OrderByClause) error {
	v.sb.WriteString(clause.String())
	return nil
}

func (v *SOQLVisitor) VisitLimitClause(clause *ast.LimitClause) error {
	if clause.Count != 0 {
		v.sb.WriteString(" LIMIT ")
		v.sb.WriteString(strconv.Itoa(clause.Count))
	}

	if clause.Offset != 0 {
		v.sb.WriteString(" OFFSET ")
		v.sb.WriteString(strconv.Itoa(clause.Offset))
	}

	return nil
}

func writeRepeat(sb *strings.Builder, b byte, n int) {
	for ; n > 0; n-- {
		sb.WriteByte(b)
	}
}

var _ ast.Visitor = (*SOQLVisitor)(nil)
