// Package viz renders gravitational-wave demonstrations in the terminal.
//
//   - [Canvas]: braille sub-pixel raster, with [Viewport] for world coordinates
//   - [DrawSnapshot]: draws one ring or interferometer frame
//   - [Model]: Bubble Tea program that plays a demo at its frame rate
//   - [Recorder]: captures canvas frames into an animated GIF
//
// # Key Bindings
//
//	Space - Pause/Resume (restarts once the run has finished)
//	R     - Restart from frame 0
//	L     - Toggle looping
//	←/→   - Step one frame while paused
//	T     - Cycle color themes
//	G     - Start/stop GIF recording
//	?     - Show help overlay
package viz
