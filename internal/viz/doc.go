// Package viz draws the circle layer in the terminal.
//
// The package hosts a [scene.Component] inside a Bubble Tea program:
//
//   - [Model]: the program model; it maps terminal cells to pixels and
//     drives the component from a frame ticker
//   - [Canvas]: Braille dot canvas with per-cell color compositing
//   - [ScaleSmoother]: spring-smoothed scale changes, shared with the window
//   - Theme selection with 4 built-in color schemes
//
// # Key Bindings
//
//	Space - Pause/Resume animation
//	T     - Cycle color themes
//	Q     - Quit
//
// One terminal cell covers [CellWidthPx] x [CellHeightPx] pixels and one
// Braille dot covers [DotPx] pixels on each side.
package viz
