package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadConfigurationDefaults(t *testing.T) {
	cfg, err := LoadConfiguration("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Render.EmPixels <= 0 {
		t.Errorf("default em_pixels = %v, want positive", cfg.Render.EmPixels)
	}
	if cfg.Logging.ConsoleLogger.Level == "" {
		t.Errorf("default console log level is empty")
	}
}

func TestLoadConfigurationOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("render:\n  em_pixels: 128\n"), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadConfiguration(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Render.EmPixels != 128 {
		t.Errorf("em_pixels = %v, want 128", cfg.Render.EmPixels)
	}
	// untouched sections keep defaults
	if cfg.Logging.ConsoleLogger.Level == "" {
		t.Errorf("overlay dropped default console logger")
	}
}

func TestLoadConfigurationErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"bad_yaml", "render: ["},
		{"bad_log_level", "logging:\n  console:\n    level: chatty\n"},
		{"bad_log_mode", "logging:\n  file:\n    level: debug\n    mode: rotate\n"},
		{"bad_em_pixels", "render:\n  em_pixels: -1\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			if err := os.WriteFile(path, []byte(tt.data), 0644); err != nil {
				t.Fatal(err)
			}
			if _, err := LoadConfiguration(path); err == nil {
				t.Fatalf("expected error, got none")
			}
		})
	}

	t.Run("missing_file", func(t *testing.T) {
		if _, err := LoadConfiguration(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
			t.Fatalf("expected error, got none")
		}
	})
}

func TestDump(t *testing.T) {
	cfg, err := LoadConfiguration("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	data, err := Dump(cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(string(data), "em_pixels") {
		t.Errorf("dump missing render section:\n%s", data)
	}
}

func TestDumpDefaultIsACopy(t *testing.T) {
	a := DumpDefault()
	if len(a) == 0 {
		t.Fatalf("default configuration is empty")
	}
	a[0] = 'X'
	if b := DumpDefault(); b[0] == 'X' {
		t.Errorf("DumpDefault leaks the embedded slice")
	}
}
