package graphviz

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRenderWritesSourceWhenGraphvizMissing(t *testing.T) {
	r := Renderer{Command: "netscope-no-such-renderer"}
	base := filepath.Join(t.TempDir(), "diagram")

	result, err := r.Render(context.Background(), sampleModel(), base)
	if !errors.Is(err, ErrRendererUnavailable) {
		t.Fatalf("err = %v, want ErrRendererUnavailable", err)
	}
	if result.SourcePath != base+".gv" {
		t.Errorf("source path = %q, want %q", result.SourcePath, base+".gv")
	}
	if result.ImagePath != "" {
		t.Errorf("unexpected image path %q", result.ImagePath)
	}

	data, readErr := os.ReadFile(result.SourcePath)
	if readErr != nil {
		t.Fatalf("read source: %v", readErr)
	}
	if !strings.HasPrefix(string(data), "digraph") {
		t.Errorf("source does not look like DOT: %q", string(data[:40]))
	}
}

func TestRenderReportsUnwritableSource(t *testing.T) {
	r := Renderer{Command: "netscope-no-such-renderer"}
	base := filepath.Join(t.TempDir(), "missing", "diagram")

	result, err := r.Render(context.Background(), sampleModel(), base)
	if err == nil {
		t.Fatal("expected write error")
	}
	if errors.Is(err, ErrRendererUnavailable) {
		t.Fatalf("err = %v, want a write failure", err)
	}
	if result != (Result{}) {
		t.Errorf("unexpected partial result: %+v", result)
	}
}
