package definition

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cast"

	"github.com/Konsultn-Engineering/soql/ast"
	"github.com/Konsultn-Engineering/soql/query"
)

// Apply replays the definition onto qb in document order.
func (q *Query) Apply(qb *query.QueryBuilder) error {
	qb.Select(q.Fields...).From(q.Object)

	for i, c := range q.Where {
		if err := c.apply(qb); err != nil {
			return errors.Wrapf(err, "where[%d]", i)
		}
	}

	for i, o := range q.OrderBy {
		if o.Column == "" {
			return errors.Errorf("order_by[%d]: column is required", i)
		}
		direction := strings.ToUpper(strings.TrimSpace(o.Direction))
		if direction == "" {
			direction = ast.DirAsc
		}
		qb.OrderByDirection(o.Column, direction)
	}

	limit, err := toInt(q.Limit)
	if err != nil {
		return errors.Wrap(err, "limit")
	}
	offset, err := toInt(q.Offset)
	if err != nil {
		return errors.Wrap(err, "offset")
	}
	qb.Limit(limit).Offset(offset)

	return nil
}

func (c *Condition) apply(qb *query.QueryBuilder) error {
	if c.Group != "" {
		switch strings.ToLower(c.Group) {
		case GroupStart:
			qb.StartWhere()
		case GroupEnd:
			qb.EndWhere()
		default:
			return errors.Errorf("unknown group marker %q", c.Group)
		}
		return nil
	}

	if c.Column == "" {
		return errors.New("column is required")
	}

	connective, err := normalizeConnective(c.Connective)
	if err != nil {
		return err
	}

	switch strings.ToLower(c.Kind) {
	case "", KindWhere:
		if c.Operator == "" {
			return errors.New("operator is required")
		}
		qb.WhereWith(c.Column, c.Operator, c.Value, connective)
	case KindDate:
		if c.Operator == "" {
			return errors.New("operator is required")
		}
		date, err := cast.ToStringE(c.Value)
		if err != nil {
			return errors.Wrap(err, "date value")
		}
		qb.WhereDateWith(c.Column, c.Operator, date, connective)
	case KindIn:
		values := c.Values
		if values == nil && c.Value != nil {
			values = cast.ToSlice(c.Value)
		}
		qb.WhereInWith(c.Column, values, connective, c.Negate)
	case KindFunction:
		if c.Function == "" {
			return errors.New("function is required")
		}
		value := c.Value
		if c.Values != nil {
			value = c.Values
		}
		qb.WhereFunctionWith(c.Column, c.Function, value, connective)
	default:
		return errors.Errorf("unknown condition kind %q", c.Kind)
	}
	return nil
}

func normalizeConnective(connective string) (string, error) {
	switch strings.ToUpper(strings.TrimSpace(connective)) {
	case "", ast.OpAnd:
		return ast.OpAnd, nil
	case ast.OpOr:
		return ast.OpOr, nil
	default:
		return "", errors.Errorf("unknown connective %q", connective)
	}
}

func toInt(v any) (int, error) {
	if v == nil {
		return 0, nil
	}
	n, err := cast.ToIntE(v)
	if err != nil {
		return 0, err
	}
	return n, nil
}
