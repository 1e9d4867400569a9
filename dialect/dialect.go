package dialect

import "github.com/Konsultn-Engineering/soql/ast"

type Dialect interface {
	Name() string
	// RenderValue prepares a condition operand as literal text.
	RenderValue(v ast.Value) string
	// RenderList prepares every value and joins them with ", ".
	RenderList(vs []ast.Value) string
	// RenderDate emits a date or datetime operand verbatim, unquoted.
	RenderDate(v any) string
}
