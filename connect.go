package denali

import (
	"github.com/rs/zerolog"

	"github.com/Chugach-UI/denali/wl"
)

// Connect opens a connection to the compositor named by WAYLAND_DISPLAY (or
// "wayland-0") under XDG_RUNTIME_DIR, and returns the bootstrap wl_display
// object every other binding is reached through.
func Connect(log zerolog.Logger) (*wl.Display, error) {
	return wl.Connect(log)
}

// ConnectTo is Connect against an explicit socket path, bypassing
// WAYLAND_DISPLAY/XDG_RUNTIME_DIR resolution.
func ConnectTo(path string, log zerolog.Logger) (*wl.Display, error) {
	return wl.ConnectTo(path, log)
}
