package ast

import "errors"

// ErrInvalidQuery is wrapped by every structural error found when a
// statement is rendered.
var ErrInvalidQuery = errors.New("invalid query")
