// Package cli implements the putgen command surface.
//
// Every command runs the same pipeline; they differ only in what they do
// with its output: generate writes files, check only reports diagnostics,
// inspect dumps the extracted models.
package cli
