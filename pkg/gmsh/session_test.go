package gmsh

import (
	"errors"
	"sync"
	"testing"
)

func TestInitializeRejectsSecondSession(t *testing.T) {
	s, _ := newTestSession(t)

	if _, err := initialize(newFakeNative(), Config{}); !errors.Is(err, ErrAlreadyInitialized) {
		t.Fatalf("second initialize: got %v, want ErrAlreadyInitialized", err)
	}

	if err := s.Finalize(); err != nil {
		t.Fatalf("finalize: %v", err)
	}

	s2, err := initialize(newFakeNative(), Config{})
	if err != nil {
		t.Fatalf("initialize after finalize: %v", err)
	}
	defer s2.Finalize()
}

func TestInitializePrependsProgramName(t *testing.T) {
	f := newFakeNative()
	s, err := initialize(f, Config{Args: []string{"-v", "5"}})
	if err != nil {
		t.Fatalf("initialize: %v", err)
	}
	defer s.Finalize()

	if !traceContains(f.calls(), "Initialize(gmsh -v 5)") {
		t.Fatalf("argv not forwarded, trace: %v", f.calls())
	}
}

func TestInitializeTerminalOption(t *testing.T) {
	f := newFakeNative()
	s, err := initialize(f, Config{Terminal: true})
	if err != nil {
		t.Fatalf("initialize: %v", err)
	}
	defer s.Finalize()

	f.mu.Lock()
	v := f.numberOpts["General.Terminal"]
	f.mu.Unlock()
	if v != 1 {
		t.Fatalf("General.Terminal = %g, want 1", v)
	}
}

func TestInitializeRollsBackOnOptionFailure(t *testing.T) {
	f := newFakeNative()
	f.errs["OptionSetNumber"] = errors.New("boom")

	if _, err := initialize(f, Config{Terminal: true}); err == nil {
		t.Fatal("initialize succeeded despite option failure")
	}
	if f.finalizeCalls != 1 {
		t.Fatalf("finalize calls = %d, want 1", f.finalizeCalls)
	}
	if IsActive() {
		t.Fatal("session left active after failed initialize")
	}

	// The slot must be reusable after the rollback.
	s, err := initialize(newFakeNative(), Config{})
	if err != nil {
		t.Fatalf("initialize after rollback: %v", err)
	}
	defer s.Finalize()
}

func TestFinalizeIsIdempotent(t *testing.T) {
	s, f := newTestSession(t)

	if err := s.Finalize(); err != nil {
		t.Fatalf("first finalize: %v", err)
	}
	if err := s.Finalize(); err != nil {
		t.Fatalf("second finalize: %v", err)
	}
	if f.finalizeCalls != 1 {
		t.Fatalf("native finalize ran %d times, want 1", f.finalizeCalls)
	}
}

func TestNilSessionFinalize(t *testing.T) {
	var s *Session
	if err := s.Finalize(); err != nil {
		t.Fatalf("nil finalize: %v", err)
	}
}

func TestOperationsAfterFinalize(t *testing.T) {
	s, f := newTestSession(t)
	if err := s.Finalize(); err != nil {
		t.Fatalf("finalize: %v", err)
	}
	before := len(f.calls())

	if err := s.Open("plate.geo"); !errors.Is(err, ErrFinalized) {
		t.Fatalf("Open after finalize: got %v, want ErrFinalized", err)
	}
	if err := s.Open("plate.geo"); !errors.Is(err, ErrUsage) {
		t.Fatalf("finalized error does not match ErrUsage: %v", err)
	}
	if _, err := s.Version(); !errors.Is(err, ErrFinalized) {
		t.Fatalf("Version after finalize: got %v, want ErrFinalized", err)
	}

	if got := len(f.calls()); got != before {
		t.Fatalf("native layer reached after finalize: trace grew from %d to %d", before, got)
	}
}

func TestConcurrentInitializeSingleWinner(t *testing.T) {
	const attempts = 8

	var wg sync.WaitGroup
	results := make(chan error, attempts)
	sessions := make(chan *Session, attempts)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s, err := initialize(newFakeNative(), Config{})
			results <- err
			if err == nil {
				sessions <- s
			}
		}()
	}
	wg.Wait()
	close(results)
	close(sessions)

	winners, losers := 0, 0
	for err := range results {
		switch {
		case err == nil:
			winners++
		case errors.Is(err, ErrAlreadyInitialized):
			losers++
		default:
			t.Fatalf("unexpected error from initialize: %v", err)
		}
	}
	if winners != 1 || losers != attempts-1 {
		t.Fatalf("winners = %d, losers = %d, want 1 and %d", winners, losers, attempts-1)
	}

	for s := range sessions {
		if err := s.Finalize(); err != nil {
			t.Fatalf("finalize winner: %v", err)
		}
	}
}

func TestIsActive(t *testing.T) {
	if IsActive() {
		t.Fatal("IsActive true before initialize")
	}
	s, _ := newTestSession(t)
	if !IsActive() {
		t.Fatal("IsActive false while session is live")
	}
	if err := s.Finalize(); err != nil {
		t.Fatalf("finalize: %v", err)
	}
	if IsActive() {
		t.Fatal("IsActive true after finalize")
	}
}

func TestVersionReadsGeneralVersion(t *testing.T) {
	s, _ := newTestSession(t)

	v, err := s.Version()
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	if v != "4.4.3" {
		t.Fatalf("version = %q, want 4.4.3", v)
	}
}

func TestMessageLogRoundTrip(t *testing.T) {
	s, f := newTestSession(t)
	f.mu.Lock()
	f.logLines = []string{"Info: Meshing 1D...", "Info: Done meshing 1D"}
	f.mu.Unlock()

	if err := s.BeginMessageLog(); err != nil {
		t.Fatalf("begin message log: %v", err)
	}
	msgs, err := s.MessageLog()
	if err != nil {
		t.Fatalf("message log: %v", err)
	}
	if len(msgs) != 2 || msgs[0] != "Info: Meshing 1D..." {
		t.Fatalf("unexpected messages: %v", msgs)
	}
	if err := s.EndMessageLog(); err != nil {
		t.Fatalf("end message log: %v", err)
	}

	if !traceContains(f.calls(), "LoggerStart", "LoggerGet", "LoggerStop") {
		t.Fatalf("logger calls out of order: %v", f.calls())
	}
}

func TestSessionFileOperations(t *testing.T) {
	s, f := newTestSession(t)

	if err := s.Open("plate.geo"); err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := s.Merge("view.pos"); err != nil {
		t.Fatalf("merge: %v", err)
	}
	if err := s.Write("plate.msh"); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := s.Clear(); err != nil {
		t.Fatalf("clear: %v", err)
	}

	if !traceContains(f.calls(), "Open(plate.geo)", "Merge(view.pos)", "Write(plate.msh)", "Clear") {
		t.Fatalf("file operations out of order: %v", f.calls())
	}
}
