// Package eval evaluates expr-lang expressions against documents.
//
// The document is bound to the variable doc as plain Go values (see
// [ir.ToAny]).  Besides the expr-lang builtins, expressions may call
//
//	getpath(p)   the value at path p, such as "$.a[0].b" or `$["x.y"]`
//	haspath(p)   whether path p exists
//	getenv(name) the environment variable name
package eval
