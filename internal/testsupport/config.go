package testsupport

import (
	"path/filepath"
	"testing"

	"tvremote/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config whose log directory lives in a per-test temp dir.
// It applies any provided options on top of the defaults.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Logging.Dir = filepath.Join(base, "logs")
	cfgVal.Display.Color = config.ColorNever

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}

	for _, opt := range opts {
		opt(builder)
	}

	return builder.cfg
}

// WithLocale sets the display locale on the test config.
func WithLocale(tag string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Display.Locale = tag
	}
}

// WithDisplayDisabled turns off on-screen notifications.
func WithDisplayDisabled() ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Display.Enabled = false
	}
}
