package config

// Viewer layout configuration
const (
	// Window dimensions in pixels
	WindowWidth  = 1024
	WindowHeight = 768

	// Pixels per world unit when the viewer opens
	DefaultZoom = 8.0
	MinZoom     = 1.0
	MaxZoom     = 64.0

	// World units the camera moves per frame while an arrow key is held
	PanSpeed = 0.5
)

// GetWindowSize returns the recommended window size
func GetWindowSize() (width, height int) {
	return WindowWidth, WindowHeight
}
