// Package export writes trajectories to files: an SVG position chart, an
// animated GIF of the moving mass, and CSV/JSON sample dumps.
package export
