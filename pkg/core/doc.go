// Package core provides a small, stable facade over colredact's internal
// packages for programs that want to classify and redact tables in-process.
//
// Example:
//
//	t, _ := core.NewTable(core.Column{Name: "Email", Values: []any{"a@b.c"}})
//	res := core.Scan(t)
//	masked := core.Redact(t, res.Columns())
//	_ = core.MarshalResult(os.Stdout, res)
package core
