// Package schema is a small validation combinator library for flat string
// mappings such as the process environment.
//
// A Schema is an ordered list of Fields. Each Field knows how to report a
// missing value, how to coerce the raw string and which ozzo-validation rules
// the result must satisfy. Parse either returns every typed value or the full
// list of failing fields in declaration order, never a mix of both.
package schema
