package television

import (
	"errors"
	"fmt"
	"log/slog"

	"tvremote/internal/locale"
	"tvremote/internal/logging"
	"tvremote/internal/notifications"
)

// Channel and volume bounds.
const (
	MinChannel    = 0
	MaxChannel    = 520
	MinVolume     = 0
	MaxVolume     = 100
	DefaultVolume = 50
)

// ErrInvalidChannel is returned by GoToChannel for numbers outside
// [MinChannel, MaxChannel].
var ErrInvalidChannel = errors.New("invalid channel")

// Television is the remote-controlled state of one TV set.
type Television struct {
	currentChannel     int
	lastWatchedChannel int
	volume             int
	muted              bool

	logger   *slog.Logger
	notifier notifications.Service
	printer  *locale.Printer
}

// Option customizes a Television at construction.
type Option func(*Television)

// WithLogger sets the logger; a component attribute is added automatically.
func WithLogger(logger *slog.Logger) Option {
	return func(tv *Television) {
		if logger != nil {
			tv.logger = logging.NewComponentLogger(logger, "television")
		}
	}
}

// WithNotifier sets where power-on and invalid-channel events are shown.
func WithNotifier(notifier notifications.Service) Option {
	return func(tv *Television) {
		if notifier != nil {
			tv.notifier = notifier
		}
	}
}

// WithPrinter sets the language of the status report.
func WithPrinter(printer *locale.Printer) Option {
	return func(tv *Television) {
		if printer != nil {
			tv.printer = printer
		}
	}
}

// New returns a Television tuned to channel 0 at the default volume, unmuted.
func New(opts ...Option) *Television {
	tv := &Television{
		lastWatchedChannel: MinChannel,
		volume:             DefaultVolume,
		muted:              false,
		logger:             logging.NewNop(),
		notifier:           notifications.Noop(),
		printer:            locale.Default(),
	}
	tv.currentChannel = tv.lastWatchedChannel
	for _, opt := range opts {
		opt(tv)
	}
	return tv
}

// PowerOn restores the last watched channel and announces it.
func (tv *Television) PowerOn() int {
	tv.currentChannel = tv.lastWatchedChannel
	tv.logger.Info("powered on", logging.Args(logging.Int("channel", tv.currentChannel))...)
	if err := tv.notifier.NotifyPowerOn(tv.currentChannel); err != nil {
		tv.logger.Warn("power-on notification failed", logging.Args(
			logging.String(logging.FieldEventType, "notify_failed"),
			logging.Error(err),
		)...)
	}
	return tv.currentChannel
}

// ChannelUp moves one channel up; no-op at MaxChannel.
func (tv *Television) ChannelUp() {
	if tv.currentChannel < MaxChannel {
		tv.tune(tv.currentChannel + 1)
	}
}

// ChannelDown moves one channel down; no-op at MinChannel.
func (tv *Television) ChannelDown() {
	if tv.currentChannel > MinChannel {
		tv.tune(tv.currentChannel - 1)
	}
}

// GoToChannel tunes directly to n. Out-of-range numbers leave the state
// untouched, show the invalid-channel message and return ErrInvalidChannel.
func (tv *Television) GoToChannel(n int) error {
	if n < MinChannel || n > MaxChannel {
		err := fmt.Errorf("%w: %d outside [%d, %d]", ErrInvalidChannel, n, MinChannel, MaxChannel)
		tv.logger.Warn("channel rejected", logging.Args(
			logging.String(logging.FieldEventType, "channel_rejected"),
			logging.Int("requested", n),
			logging.Int("channel", tv.currentChannel),
		)...)
		if notifyErr := tv.notifier.NotifyInvalidChannel(n); notifyErr != nil {
			tv.logger.Warn("invalid-channel notification failed", logging.Args(
				logging.String(logging.FieldEventType, "notify_failed"),
				logging.Error(notifyErr),
			)...)
		}
		return err
	}
	tv.tune(n)
	return nil
}

func (tv *Television) tune(channel int) {
	tv.currentChannel = channel
	tv.lastWatchedChannel = channel
	tv.logger.Debug("channel changed", logging.Args(logging.Int("channel", channel))...)
}

// VolumeUp raises the volume by one unless muted or at MaxVolume.
func (tv *Television) VolumeUp() {
	if !tv.muted && tv.volume < MaxVolume {
		tv.volume++
	}
}

// VolumeDown lowers the volume by one unless muted or at MinVolume.
func (tv *Television) VolumeDown() {
	if !tv.muted && tv.volume > MinVolume {
		tv.volume--
	}
}

// Mute closes the mute gate. The stored volume is kept.
func (tv *Television) Mute() {
	tv.muted = true
}

// Unmute opens the mute gate.
func (tv *Television) Unmute() {
	tv.muted = false
}

// Status reports the current channel and the volume, or the muted indicator.
func (tv *Television) Status() string {
	return tv.printer.Status(tv.currentChannel, tv.volume, tv.muted)
}

func (tv *Television) Channel() int { return tv.currentChannel }

func (tv *Television) LastWatchedChannel() int { return tv.lastWatchedChannel }

func (tv *Television) Volume() int { return tv.volume }

func (tv *Television) Muted() bool { return tv.muted }
