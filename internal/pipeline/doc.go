// Package pipeline wires extraction, validation, synthesis and rendering
// into one run.
//
// Failures are isolated per annotated type: a type that fails any stage
// produces error diagnostics and no output file, while its siblings keep
// flowing through the remaining stages.
package pipeline
