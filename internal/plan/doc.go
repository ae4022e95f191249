// Package plan reads, writes, and validates step plans: the serialized form
// of a parse result. Plans let a document be parsed once and materialized
// later, and are checked against an embedded JSON Schema and a semver format
// version before use.
package plan
