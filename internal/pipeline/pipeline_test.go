package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/backmassage/capfirst/internal/config"
	"github.com/backmassage/capfirst/internal/logging"
)

func testConfig(root string) config.Config {
	cfg := config.DefaultConfig()
	cfg.RootDir = root
	cfg.ColorMode = config.ColorNever
	return cfg
}

func testLogger(t *testing.T, cfg *config.Config) *logging.Logger {
	t.Helper()
	log, err := logging.NewLogger(cfg)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = log.Close() })
	return log
}

// makeTree builds the fixture:
//
//	alpha/
//	  beta/
//	    deep.txt
//	  notes.txt
//	readme.md
//	Doc.txt
//	9x.txt
func makeTree(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, "alpha", "beta"), 0o755); err != nil {
		t.Fatal(err)
	}
	for _, f := range []string{
		filepath.Join("alpha", "beta", "deep.txt"),
		filepath.Join("alpha", "notes.txt"),
		"readme.md",
		"Doc.txt",
		"9x.txt",
	} {
		if err := os.WriteFile(filepath.Join(root, f), []byte(f), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return root
}

func TestRun_RenamesTree(t *testing.T) {
	root := makeTree(t)
	cfg := testConfig(root)
	log := testLogger(t, &cfg)

	rep, err := Run(context.Background(), &cfg, log)
	if err != nil {
		t.Fatal(err)
	}

	if rep.Stats.Failed != 0 {
		t.Fatalf("failures: %+v", rep.Failures)
	}
	if rep.Stats.Renamed != 5 {
		t.Errorf("Renamed = %d, want 5", rep.Stats.Renamed)
	}
	if rep.Stats.Unchanged != 2 {
		t.Errorf("Unchanged = %d, want 2", rep.Stats.Unchanged)
	}

	// Re-list the tree: folder renames must not have orphaned any child.
	for _, want := range []string{
		filepath.Join("Alpha", "Beta", "Deep.txt"),
		filepath.Join("Alpha", "Notes.txt"),
		"Readme.md",
		"Doc.txt",
		"9x.txt",
	} {
		if _, err := os.Stat(filepath.Join(root, want)); err != nil {
			t.Errorf("missing after run: %s (%v)", want, err)
		}
	}

	// Content followed the rename.
	b, err := os.ReadFile(filepath.Join(root, "Alpha", "Beta", "Deep.txt"))
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != filepath.Join("alpha", "beta", "deep.txt") {
		t.Errorf("content = %q", b)
	}
}

func TestRun_Idempotent(t *testing.T) {
	root := makeTree(t)
	cfg := testConfig(root)
	log := testLogger(t, &cfg)

	if _, err := Run(context.Background(), &cfg, log); err != nil {
		t.Fatal(err)
	}
	rep, err := Run(context.Background(), &cfg, log)
	if err != nil {
		t.Fatal(err)
	}

	if rep.Stats.Renamed != 0 || rep.Stats.Failed != 0 {
		t.Errorf("second run changed things: %+v", rep.Stats)
	}
	if rep.Stats.Unchanged != 7 {
		t.Errorf("Unchanged = %d, want 7", rep.Stats.Unchanged)
	}
}

func TestRun_DryRun(t *testing.T) {
	root := makeTree(t)
	cfg := testConfig(root)
	cfg.DryRun = true
	log := testLogger(t, &cfg)

	rep, err := Run(context.Background(), &cfg, log)
	if err != nil {
		t.Fatal(err)
	}

	if rep.Stats.Renamed != 5 {
		t.Errorf("dry run should report the full plan, Renamed = %d", rep.Stats.Renamed)
	}

	// Nothing on disk may have moved.
	for _, still := range []string{
		filepath.Join("alpha", "beta", "deep.txt"),
		"readme.md",
	} {
		if _, err := os.Stat(filepath.Join(root, still)); err != nil {
			t.Errorf("dry run moved %s: %v", still, err)
		}
	}
}

func TestRun_NonRecursive(t *testing.T) {
	root := makeTree(t)
	cfg := testConfig(root)
	cfg.Recursive = false
	log := testLogger(t, &cfg)

	rep, err := Run(context.Background(), &cfg, log)
	if err != nil {
		t.Fatal(err)
	}
	if rep.Stats.Failed != 0 {
		t.Fatalf("failures: %+v", rep.Failures)
	}

	// Top level renamed, nested names untouched.
	if _, err := os.Stat(filepath.Join(root, "Alpha", "notes.txt")); err != nil {
		t.Errorf("expected Alpha/notes.txt: %v", err)
	}
	if _, err := os.Stat(filepath.Join(root, "Alpha", "beta", "deep.txt")); err != nil {
		t.Errorf("expected untouched nested tree: %v", err)
	}
}

func TestRun_ContinuesPastFailures(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("permission checks do not apply to root")
	}

	root := t.TempDir()
	locked := filepath.Join(root, "Locked")
	if err := os.Mkdir(locked, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(locked, "inner.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(root, "outer.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.Chmod(locked, 0o555); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chmod(locked, 0o755) })

	cfg := testConfig(root)
	log := testLogger(t, &cfg)

	rep, err := Run(context.Background(), &cfg, log)
	if err != nil {
		t.Fatal(err)
	}

	if rep.Stats.Failed != 1 {
		t.Fatalf("Failed = %d, want 1 (failures: %+v)", rep.Stats.Failed, rep.Failures)
	}
	if rep.Stats.Renamed != 1 {
		t.Errorf("Renamed = %d, want 1", rep.Stats.Renamed)
	}
	if _, err := os.Stat(filepath.Join(root, "Outer.txt")); err != nil {
		t.Errorf("sibling should still have been renamed: %v", err)
	}
}

func TestRun_MissingRootIsFatal(t *testing.T) {
	cfg := testConfig(filepath.Join(t.TempDir(), "nope"))
	log := testLogger(t, &cfg)

	if _, err := Run(context.Background(), &cfg, log); err == nil {
		t.Error("Run should fail before forming a plan when the root is unreadable")
	}
}

func TestRun_CancelledContext(t *testing.T) {
	root := makeTree(t)
	cfg := testConfig(root)
	log := testLogger(t, &cfg)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	rep, err := Run(ctx, &cfg, log)
	if err != nil {
		t.Fatal(err)
	}
	if rep.Stats.Renamed != 0 {
		t.Errorf("cancelled run renamed %d entries", rep.Stats.Renamed)
	}
}
