package ast

import (
	"sync"
)

var (
	selectStmtPool = sync.Pool{
		New: func() any {
			return &SelectStmt{
				Fields:  make([]string, 0, 16),
				Where:   &WhereClause{Conditions: make([]*Condition, 0, 8)},
				OrderBy: make([]*OrderByClause, 0, 4),
				Limit:   &LimitClause{},
			}
		},
	}

	conditionPool = sync.Pool{
		New: func() any { return &Condition{} },
	}

	orderByClausePool = sync.Pool{
		New: func() any { return &OrderByClause{} },
	}
)
