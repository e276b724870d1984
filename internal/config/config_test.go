package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad_Success(t *testing.T) {
	path := writeConfig(t, `
aws:
  default_region: eu-west-1
  default_profile: staging
diagram:
  format: svg
  max_items: 12
`)

	loader, err := NewFileLoader(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cfg, err := loader.Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.AWS.DefaultRegion != "eu-west-1" {
		t.Errorf("DefaultRegion = %q; want eu-west-1", cfg.AWS.DefaultRegion)
	}
	if cfg.AWS.DefaultProfile != "staging" {
		t.Errorf("DefaultProfile = %q; want staging", cfg.AWS.DefaultProfile)
	}
	if cfg.Diagram.Format != "svg" {
		t.Errorf("Diagram.Format = %q; want svg", cfg.Diagram.Format)
	}
	if cfg.Diagram.MaxItems != 12 {
		t.Errorf("Diagram.MaxItems = %d; want 12", cfg.Diagram.MaxItems)
	}
}

func TestLoad_MissingFile_ReturnsEmptyConfig(t *testing.T) {
	loader, err := NewFileLoader(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cfg, err := loader.Load()
	if err != nil {
		t.Fatalf("missing file must not be an error, got: %v", err)
	}
	if cfg == nil {
		t.Fatal("expected empty config, got nil")
	}
	if cfg.AWS.DefaultProfile != "" || cfg.Diagram.MaxItems != 0 {
		t.Errorf("missing file must yield zero-valued config, got %+v", cfg)
	}
}

func TestLoad_MalformedYAML(t *testing.T) {
	path := writeConfig(t, "aws: [not a mapping")

	loader, err := NewFileLoader(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := loader.Load(); err == nil {
		t.Fatal("expected parse error for malformed yaml")
	}
}

func TestLoad_UnsupportedDiagramFormat(t *testing.T) {
	path := writeConfig(t, `
diagram:
  format: pdf
`)

	loader, err := NewFileLoader(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = loader.Load()
	if err == nil {
		t.Fatal("expected error for unsupported format")
	}
	if !strings.Contains(err.Error(), "pdf") {
		t.Errorf("error must name the bad format, got: %v", err)
	}
}

func TestLoad_NegativeMaxItems(t *testing.T) {
	path := writeConfig(t, `
diagram:
  max_items: -3
`)

	loader, err := NewFileLoader(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := loader.Load(); err == nil {
		t.Fatal("expected error for negative max_items")
	}
}

func TestConfigPath_Passthrough(t *testing.T) {
	loader, err := NewFileLoader("/etc/netscope/config.yaml")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := loader.ConfigPath(); got != "/etc/netscope/config.yaml" {
		t.Errorf("ConfigPath() = %q; want /etc/netscope/config.yaml", got)
	}
}

func TestNewFileLoader_EmptyPath_UsesHomeConfig(t *testing.T) {
	loader, err := NewFileLoader("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := filepath.Join(".config", "netscope", "config.yaml")
	if !strings.HasSuffix(loader.ConfigPath(), want) {
		t.Errorf("ConfigPath() = %q; want suffix %q", loader.ConfigPath(), want)
	}
}
