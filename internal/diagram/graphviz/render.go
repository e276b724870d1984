package graphviz

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/pankaj-dahiya-devops/netscope/internal/diagram"
)

// ErrRendererUnavailable reports that the dot executable is not on PATH.
// The DOT source is still written; callers degrade to source-only output.
var ErrRendererUnavailable = errors.New("graphviz dot executable not found")

const defaultCommand = "dot"

// Renderer writes diagram models to disk, as DOT source and, when
// Graphviz is installed, as a rendered image.
type Renderer struct {
	// Format is the image format passed to dot. Empty means png.
	Format string
	// Command overrides the executable name. Empty means dot.
	Command string
}

// Result reports the files Render wrote. ImagePath is empty when only the
// source could be produced.
type Result struct {
	SourcePath string
	ImagePath  string
}

// Render writes basePath.gv and renders basePath.<format> next to it. The
// source file is written before rendering is attempted, so it survives a
// missing or failing Graphviz install; a missing install is reported as
// ErrRendererUnavailable with the partial result intact.
func (r Renderer) Render(ctx context.Context, m *diagram.Model, basePath string) (Result, error) {
	format := r.Format
	if format == "" {
		format = "png"
	}
	command := r.Command
	if command == "" {
		command = defaultCommand
	}

	result := Result{SourcePath: basePath + ".gv"}
	if err := os.WriteFile(result.SourcePath, []byte(Source(m)), 0o644); err != nil {
		return Result{}, fmt.Errorf("write diagram source: %w", err)
	}

	binary, err := exec.LookPath(command)
	if err != nil {
		return result, ErrRendererUnavailable
	}

	imagePath := basePath + "." + format
	cmd := exec.CommandContext(ctx, binary, "-T"+format, "-o", imagePath, result.SourcePath)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		if detail := strings.TrimSpace(stderr.String()); detail != "" {
			return result, fmt.Errorf("render diagram: %w: %s", err, detail)
		}
		return result, fmt.Errorf("render diagram: %w", err)
	}

	result.ImagePath = imagePath
	return result, nil
}
