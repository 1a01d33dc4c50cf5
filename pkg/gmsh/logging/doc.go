// Package logging provides a minimal logging facade for the gmsh wrapper.
//
// This package defines a Logger interface that wraps a subset of the standard
// library's log/slog functionality. The interface is intentionally small to
// allow applications to provide custom implementations for testing or
// integration with existing logging systems.
//
// # Logger Interface
//
// The Logger interface provides context-aware logging methods:
//
//	type Logger interface {
//	    Debug(ctx context.Context, msg string, args ...any)
//	    Info(ctx context.Context, msg string, args ...any)
//	    Warn(ctx context.Context, msg string, args ...any)
//	    Error(ctx context.Context, msg string, args ...any)
//	    With(args ...any) Logger
//	}
//
// # Default Implementation
//
// The package provides a default slog-backed implementation:
//
//	import (
//	    "log/slog"
//	    "github.com/meshforge/gmsh-go/pkg/gmsh/logging"
//	)
//
//	// Use default logger (slog.Default())
//	logger := logging.New(nil)
//
//	// Use custom slog.Logger
//	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})
//	customLogger := logging.New(slog.New(handler))
//
// # Usage in Meshing Code
//
// Loggers can be handed to the session so lifecycle transitions and long
// native calls become observable:
//
//	logger := logging.New(nil)
//	logger.Info(ctx, "meshing started", "model", "plate", "dim", 2)
//
// Note that messages emitted by the native library itself are a separate
// stream; capture those through the session's message log instead.
package logging
