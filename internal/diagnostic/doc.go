// Package diagnostic provides structured build-time errors and warnings
// for the putgen pipeline.
//
// Every diagnostic is attributable to exactly one annotated type (and,
// where possible, one column), so a failing type never aborts processing
// of its siblings.
package diagnostic
