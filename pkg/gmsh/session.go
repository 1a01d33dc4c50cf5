package gmsh

import (
	"context"
	"sync"

	"github.com/meshforge/gmsh-go/pkg/gmsh/logging"
)

// optVersion is the read-only option holding the native library version.
const optVersion = "General.Version"

// active is the process-wide session slot. The native library keeps all of
// its state in globals, so at most one Session may exist at a time.
var active struct {
	mu sync.Mutex
	s  *Session
}

// Session represents an initialized instance of the native Gmsh library. All
// other functionality of this package hangs off a Session: options, models,
// file I/O, and the GUI event loop.
//
// A Session serializes calls into the native library. Methods may be invoked
// from multiple goroutines, but they execute one at a time; the native code
// is not reentrant.
type Session struct {
	api nativeAPI
	log logging.Logger

	mu        sync.Mutex
	finalized bool
}

// defaultAPI is swapped for an in-memory implementation in tests.
var defaultAPI nativeAPI = libGmsh{}

// Initialize loads the native Gmsh library and returns the process-wide
// Session. Only one Session may be active at a time; concurrent or repeated
// calls fail with ErrAlreadyInitialized until the current Session is
// finalized.
//
// cfg.Args are forwarded to the native initializer after the conventional
// program name, so callers pass only the extra arguments ("-v", "5", ...).
func Initialize(cfg Config) (*Session, error) {
	return initialize(defaultAPI, cfg)
}

func initialize(api nativeAPI, cfg Config) (*Session, error) {
	active.mu.Lock()
	defer active.mu.Unlock()

	if active.s != nil {
		return nil, ErrAlreadyInitialized
	}

	argv := make([]string, 0, len(cfg.Args)+1)
	argv = append(argv, "gmsh")
	argv = append(argv, cfg.Args...)

	if err := api.Initialize(argv, cfg.ReadConfigFiles); err != nil {
		return nil, remapError(err)
	}

	s := &Session{api: api, log: logging.New(cfg.Logger)}

	if cfg.Terminal {
		if err := api.OptionSetNumber("General.Terminal", 1); err != nil {
			_ = api.Finalize()
			return nil, remapError(err)
		}
	}

	if v, err := api.OptionGetString(optVersion); err == nil {
		s.log.Debug(context.Background(), "gmsh session initialized", "version", v)
	} else {
		s.log.Debug(context.Background(), "gmsh session initialized")
	}

	active.s = s
	return s, nil
}

// IsActive reports whether a Session currently owns the native library.
func IsActive() bool {
	active.mu.Lock()
	defer active.mu.Unlock()
	return active.s != nil
}

// begin acquires the session for one native call sequence. It fails once the
// session has been finalized. Callers must invoke the returned function when
// done.
func (s *Session) begin() (func(), error) {
	if s == nil {
		return nil, ErrFinalized
	}
	s.mu.Lock()
	if s.finalized {
		s.mu.Unlock()
		return nil, ErrFinalized
	}
	return s.mu.Unlock, nil
}

// Finalize shuts down the native library and releases the process-wide
// session slot, allowing a later Initialize to succeed. The method is
// idempotent: calling it on an already finalized (or nil) Session returns
// nil without touching the native layer.
//
// Any Model handles created from the session become unusable.
func (s *Session) Finalize() error {
	if s == nil {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.finalized {
		return nil
	}

	err := s.api.Finalize()

	// The slot is released even when native shutdown reports an error;
	// keeping a half-dead session active would wedge the process.
	s.finalized = true
	active.mu.Lock()
	if active.s == s {
		active.s = nil
	}
	active.mu.Unlock()

	s.log.Debug(context.Background(), "gmsh session finalized")
	return remapError(err)
}

// Open reads a file into the session. The format is deduced from the
// extension: geometry scripts create a new model, mesh and post-processing
// files load into the current one.
func (s *Session) Open(path string) error {
	done, err := s.begin()
	if err != nil {
		return err
	}
	defer done()
	return remapError(s.api.Open(path))
}

// Merge merges a file into the current model, the way File/Merge does in the
// interactive GUI. Handy for overlaying post-processing views.
func (s *Session) Merge(path string) error {
	done, err := s.begin()
	if err != nil {
		return err
	}
	defer done()
	return remapError(s.api.Merge(path))
}

// Write exports the current model to a file. The format is deduced from the
// extension (.msh, .stl, .step, ...).
func (s *Session) Write(path string) error {
	done, err := s.begin()
	if err != nil {
		return err
	}
	defer done()
	return remapError(s.api.Write(path))
}

// Clear destroys all models and post-processing data and starts over with a
// single empty model, as if the session had just been initialized.
func (s *Session) Clear() error {
	done, err := s.begin()
	if err != nil {
		return err
	}
	defer done()
	return remapError(s.api.Clear())
}

// Version reports the version string of the loaded native library.
func (s *Session) Version() (string, error) {
	done, err := s.begin()
	if err != nil {
		return "", err
	}
	defer done()
	v, err := s.api.OptionGetString(optVersion)
	if err != nil {
		return "", remapError(err)
	}
	return v, nil
}

// BeginMessageLog starts recording the messages the native library prints
// while it works (information, warnings, errors). Recorded messages are
// retrieved with MessageLog and recording stops with EndMessageLog.
func (s *Session) BeginMessageLog() error {
	done, err := s.begin()
	if err != nil {
		return err
	}
	defer done()
	return remapError(s.api.LoggerStart())
}

// MessageLog returns the messages recorded since BeginMessageLog.
func (s *Session) MessageLog() ([]string, error) {
	done, err := s.begin()
	if err != nil {
		return nil, err
	}
	defer done()
	msgs, err := s.api.LoggerGet()
	if err != nil {
		return nil, remapError(err)
	}
	return msgs, nil
}

// EndMessageLog stops recording native messages.
func (s *Session) EndMessageLog() error {
	done, err := s.begin()
	if err != nil {
		return err
	}
	defer done()
	return remapError(s.api.LoggerStop())
}

// InitializeGUI creates the FLTK graphical user interface without entering
// its event loop. Most programs want RunGUI instead.
func (s *Session) InitializeGUI() error {
	done, err := s.begin()
	if err != nil {
		return err
	}
	defer done()
	return remapError(s.api.FltkInitialize())
}

// RunGUI opens the interactive Gmsh window and blocks until the user closes
// it. The session keeps serializing native calls, so other goroutines using
// the same Session will block for the duration.
func (s *Session) RunGUI() error {
	done, err := s.begin()
	if err != nil {
		return err
	}
	defer done()
	return remapError(s.api.FltkRun())
}
