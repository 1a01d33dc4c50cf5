package gmsh

import "log/slog"

// Config expresses the startup knobs for a Session. The zero value is a
// valid configuration: no extra arguments, no system configuration files,
// quiet terminal.
type Config struct {
	// Args are processed by the library as if they were command line
	// arguments passed to the gmsh executable (e.g. "-v", "2"). The
	// executable name is prepended automatically.
	Args []string

	// ReadConfigFiles makes the library read the system Gmsh configuration
	// files (gmshrc and gmsh-options) on startup.
	ReadConfigFiles bool

	// Terminal mirrors log messages to the terminal by setting the
	// General.Terminal option right after startup.
	Terminal bool

	// Logger receives session lifecycle events. Leaving it nil binds to
	// slog.Default().
	Logger *slog.Logger
}
