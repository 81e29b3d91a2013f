// Package viz animates a vertical throw in the terminal.
//
// The animation is a Bubble Tea program drawing on a Braille [Canvas]: the
// object is a small block in the centre column moving over a ground line,
// with a short trail of previous positions.
//
// # Key Bindings
//
//	Space - Pause/Resume
//	H/L   - Step back/forward while paused
//	R     - Restart
//	T     - Cycle colour theme
//	Q     - Quit
package viz
