// Package viz renders trajectories for people: a line chart in the terminal
// and a live animation of the oscillating mass.
//
//   - [RenderConfig]: explicit rendering settings handed to every renderer
//   - [TerminalChart]: position-vs-time chart drawn with asciigraph
//   - [LiveAnimation]: Bubble Tea program that replays a run frame by frame
//   - [Canvas]: Braille-based pixel canvas
//
// Nothing in this package holds process-wide rendering state. Themes, sizes
// and fonts travel inside [RenderConfig].
//
// # Key Bindings (live animation)
//
//	Space - Pause/Resume
//	R     - Restart from the first frame
//	Q     - Quit
package viz
