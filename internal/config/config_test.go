package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"tvremote/internal/config"
)

func TestLoadDefaultConfigWhenFileMissing(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)
	t.Chdir(t.TempDir())

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}
	wantPath := filepath.Join(tempHome, ".config", "tvremote", "config.toml")
	if resolved != wantPath {
		t.Fatalf("unexpected resolved path: got %q want %q", resolved, wantPath)
	}
	if cfg.Logging.Format != "console" {
		t.Fatalf("unexpected log format: %q", cfg.Logging.Format)
	}
	if cfg.Logging.Level != "info" {
		t.Fatalf("unexpected log level: %q", cfg.Logging.Level)
	}
	if cfg.Logging.Dir != "" {
		t.Fatalf("expected empty log dir by default, got %q", cfg.Logging.Dir)
	}
	if !cfg.Display.Enabled {
		t.Fatal("expected display enabled by default")
	}
	if cfg.Display.Locale != "pt-BR" {
		t.Fatalf("unexpected locale: %q", cfg.Display.Locale)
	}
	if cfg.Display.Color != config.ColorAuto {
		t.Fatalf("unexpected color mode: %q", cfg.Display.Color)
	}
}

func TestLoadCustomConfigNormalizesValues(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)

	configPath := filepath.Join(t.TempDir(), "config.toml")
	content := `[logging]
format = " JSON "
level = "Debug"
dir = "~/logs"

[display]
enabled = false
locale = " en "
prefix = "[TV] "
color = "NEVER"
`
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists {
		t.Fatal("expected config file to exist")
	}
	if resolved != configPath {
		t.Fatalf("unexpected resolved path: %q", resolved)
	}
	if cfg.Logging.Format != "json" || cfg.Logging.Level != "debug" {
		t.Fatalf("expected normalized logging values, got %+v", cfg.Logging)
	}
	if cfg.Logging.Dir != filepath.Join(tempHome, "logs") {
		t.Fatalf("expected expanded log dir, got %q", cfg.Logging.Dir)
	}
	if cfg.Display.Enabled {
		t.Fatal("expected display disabled")
	}
	if cfg.Display.Locale != "en" {
		t.Fatalf("expected trimmed locale, got %q", cfg.Display.Locale)
	}
	if cfg.Display.Prefix != "[TV] " {
		t.Fatalf("expected prefix preserved verbatim, got %q", cfg.Display.Prefix)
	}
	if cfg.Display.Color != config.ColorNever {
		t.Fatalf("expected lowercased color mode, got %q", cfg.Display.Color)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{name: "format", content: "[logging]\nformat = \"xml\"\n", wantErr: "logging.format"},
		{name: "level", content: "[logging]\nlevel = \"trace\"\n", wantErr: "logging.level"},
		{name: "locale", content: "[display]\nlocale = \"not a tag\"\n", wantErr: "display.locale"},
		{name: "color", content: "[display]\ncolor = \"rainbow\"\n", wantErr: "display.color"},
		{name: "unknown key", content: "[display]\nbrightness = 3\n", wantErr: "parse config"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			if err := os.WriteFile(path, []byte(tt.content), 0o644); err != nil {
				t.Fatalf("write config: %v", err)
			}
			_, _, _, err := config.Load(path)
			if err == nil {
				t.Fatalf("expected error containing %q", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestCreateSampleRoundTripsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample returned error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read sample: %v", err)
	}
	var decoded config.Config
	if err := toml.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("sample config is not valid TOML: %v", err)
	}

	cfg, _, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load sample returned error: %v", err)
	}
	if !exists {
		t.Fatal("expected sample to be found")
	}
	want := config.Default()
	if cfg.Logging != want.Logging || cfg.Display != want.Display {
		t.Fatalf("sample config diverges from defaults: got %+v want %+v", *cfg, want)
	}
}

func TestEnsureDirectoriesCreatesLogDir(t *testing.T) {
	cfg := config.Default()
	cfg.Logging.Dir = filepath.Join(t.TempDir(), "logs", "tv")
	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories returned error: %v", err)
	}
	info, err := os.Stat(cfg.Logging.Dir)
	if err != nil || !info.IsDir() {
		t.Fatalf("expected log directory to exist, err=%v", err)
	}
}
