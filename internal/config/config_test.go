package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if err := cfg.Matrix.Validate(); err != nil {
		t.Errorf("default matrix options invalid: %v", err)
	}
	if cfg.Network.Port != 9998 {
		t.Errorf("default port = %d, want 9998", cfg.Network.Port)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	data := `{
		"matrix": {"rows": 32, "cols": 64, "brightness": 80},
		"network": {"port": 12345},
		"labels": {"line1": "Test"}
	}`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Matrix.Rows != 32 || cfg.Matrix.Cols != 64 || cfg.Matrix.Brightness != 80 {
		t.Errorf("matrix overrides not applied: %+v", cfg.Matrix)
	}
	if cfg.Network.Port != 12345 {
		t.Errorf("port = %d, want 12345", cfg.Network.Port)
	}
	// Untouched keys keep their defaults.
	if cfg.Matrix.PWMLSBNanoseconds != Default().Matrix.PWMLSBNanoseconds {
		t.Errorf("unset key lost its default")
	}
	if cfg.Network.Receivers != 2 {
		t.Errorf("receivers = %d, want default 2", cfg.Network.Receivers)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("Load() of a missing file must fail")
	}
}
