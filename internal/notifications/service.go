package notifications

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"tvremote/internal/config"
	"tvremote/internal/locale"
)

// Service defines the notification surface exposed to the television.
type Service interface {
	NotifyPowerOn(channel int) error
	NotifyInvalidChannel(requested int) error
}

// NewService builds a display-backed notifier writing to w. When the display
// is disabled in cfg, or w is nil, a noop implementation is returned.
func NewService(cfg *config.Config, w io.Writer, printer *locale.Printer) Service {
	if w == nil || (cfg != nil && !cfg.Display.Enabled) {
		return noopService{}
	}
	if printer == nil {
		printer = locale.Default()
	}
	var prefix string
	if cfg != nil {
		prefix = cfg.Display.Prefix
	}
	return &displayService{writer: w, printer: printer, prefix: prefix}
}

// Noop returns a notifier that drops every event.
func Noop() Service {
	return noopService{}
}

type displayService struct {
	mu      sync.Mutex
	writer  io.Writer
	printer *locale.Printer
	prefix  string
}

func (d *displayService) NotifyPowerOn(channel int) error {
	return d.show(d.printer.PowerOn(channel))
}

// The requested number is not part of the on-screen text.
func (d *displayService) NotifyInvalidChannel(int) error {
	return d.show(d.printer.InvalidChannel())
}

func (d *displayService) show(line string) error {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	if _, err := fmt.Fprintf(d.writer, "%s%s\n", d.prefix, line); err != nil {
		return fmt.Errorf("write display notification: %w", err)
	}
	return nil
}

type noopService struct{}

func (noopService) NotifyPowerOn(int) error        { return nil }
func (noopService) NotifyInvalidChannel(int) error { return nil }
