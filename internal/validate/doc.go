// Package validate checks extracted type models against the structural
// invariants the generated code relies on.
//
// Catching these at generation time converts what would otherwise be a
// runtime mapping failure (wrong column count, unmatched predicate) into
// a build-time diagnostic.
package validate
