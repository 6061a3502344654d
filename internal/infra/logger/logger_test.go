package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSetupWritesJSONLog(t *testing.T) {
	root := t.TempDir()

	cleanup, err := Setup(Config{Root: root})
	if err != nil {
		t.Fatalf("Setup error: %v", err)
	}

	want := filepath.Join(root, ".brandkit", "logs", "brandkit.log")
	if Path() != want {
		t.Fatalf("expected path=%s, got=%s", want, Path())
	}

	L().Info("xcconfig.generate.done", "keys", 8)
	L().Debug("hidden")

	if err := cleanup(); err != nil {
		t.Fatalf("cleanup error: %v", err)
	}
	if Path() != "" {
		t.Fatalf("expected path reset after cleanup")
	}

	b, err := os.ReadFile(want)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	out := string(b)
	if !strings.Contains(out, `"msg":"logger.initialized"`) || !strings.Contains(out, `"msg":"xcconfig.generate.done"`) {
		t.Fatalf("unexpected log content: %s", out)
	}
	if strings.Contains(out, "hidden") {
		t.Fatalf("debug records must be dropped at info level")
	}
}

func TestSetupFailureKeepsDiscardLogger(t *testing.T) {
	root := t.TempDir()
	// A regular file where the .brandkit directory should go.
	if err := os.WriteFile(filepath.Join(root, ".brandkit"), []byte("x"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	if _, err := Setup(Config{Root: root}); err == nil {
		t.Fatalf("expected error")
	}
	if Path() != "" {
		t.Fatalf("expected no log path")
	}
	L().Info("still safe")
}
