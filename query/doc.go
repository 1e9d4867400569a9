// Package query builds SOQL SELECT statements through a fluent API.
//
// A QueryBuilder accumulates fields, the sObject, filter conditions, groups,
// ordering and paging, and ToSOQL renders them into one string:
//
//	soql, err := query.New().
//		Select("Id", "Name").
//		From("Account").
//		Where("Name", "=", "Mikhail").
//		StartWhere().
//		OrWhereIn("Type", query.Values("Customer", "Partner")).
//		WhereDate("CreatedDate", ">", "LAST_N_DAYS:30").
//		EndWhere().
//		OrderByDesc("CreatedDate").
//		Limit(10).
//		ToSOQL()
//
// Values are inlined as literals, not bound as parameters: strings are
// wrapped in single quotes without escaping, so callers must not pass
// untrusted input. Limit(0) and Offset(0) are treated as unset.
package query
