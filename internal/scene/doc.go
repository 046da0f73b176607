// Package scene defines the data model of a visualization.
//
// A [Scene] arrives in one of two forms:
//
//   - declarative: a list of [Shape] values, each carrying its own
//     [Animation] descriptors, resolved on demand for any time.
//   - precomputed: an ordered list of [Frame] snapshots, each a timestamp
//     and fully resolved [Object] values.
//
// Precomputed frames are the canonical form consumed by the renderer.
// Declarative scenes are converted once at the load boundary (see
// anim.Bake). A loaded Scene is never mutated; a new answer replaces it
// wholesale.
//
// # Time
//
// All timestamps and durations are milliseconds as float64.
package scene
