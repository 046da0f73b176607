// Package viz is the terminal player.
//
// Rendered frames are rasterised into a Braille [Canvas] (2x4 dots per
// cell) and shown next to a status panel using Bubble Tea:
//
//   - [Model]: plays one scene, optionally replaced by scenes arriving
//     on a feed.Hub
//   - [Menu]: picks a built-in demo scene and opens it in a Model
//   - five colour themes
//
// # Key Bindings
//
//	Space - Play/Pause
//	R     - Restart
//	[ ]   - Seek backward/forward
//	0     - Seek to start
//	T     - Cycle color themes
//	?     - Show help overlay
//	Q     - Quit
package viz
