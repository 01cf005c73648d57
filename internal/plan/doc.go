// Package plan synthesizes resolver artifacts from validated type models.
//
// For each model it deterministically produces:
//   - the ordered column-value extraction steps,
//   - the insert plan (target only; never instance-dependent),
//   - the update plan (key predicate plus aligned argument steps).
//
// The synthesizer branches on the extracted access-strategy tags; it never
// inspects Go types again.
package plan
