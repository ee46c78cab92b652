package remote

import (
	"context"
	"fmt"
	"log/slog"

	"tvremote/internal/logging"
	"tvremote/internal/television"
)

// Controller is the television surface a remote can drive.
type Controller interface {
	PowerOn() int
	ChannelUp()
	ChannelDown()
	GoToChannel(n int) error
	VolumeUp()
	VolumeDown()
	Mute()
	Unmute()
	Status() string
	Snapshot() television.Snapshot
}

// Result is the outcome of one Step.
type Result struct {
	Step   Step
	State  television.Snapshot
	Status string
	Err    error
}

// Session replays steps against a Controller.
type Session struct {
	logger *slog.Logger
}

// NewSession returns a Session logging under the "remote" component.
func NewSession(logger *slog.Logger) *Session {
	return &Session{logger: logging.NewComponentLogger(logger, "remote")}
}

// Run presses every step in order and returns one Result per step. A
// rejected channel is recorded on its Result and does not stop the run;
// context cancellation does, between steps.
func (s *Session) Run(ctx context.Context, tv Controller, steps []Step) ([]Result, error) {
	logger := logging.WithContext(ctx, s.logger)
	results := make([]Result, 0, len(steps))
	for i, step := range steps {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		status, err := Press(tv, step)
		if err != nil {
			logger.Info("step rejected", logging.Args(
				logging.Int("step", i+1),
				logging.String("button", step.Label()),
				logging.Error(err),
			)...)
		} else {
			logger.Debug("step applied", logging.Args(
				logging.Int("step", i+1),
				logging.String("button", step.Label()),
			)...)
		}
		results = append(results, Result{Step: step, State: tv.Snapshot(), Status: status, Err: err})
	}
	return results, nil
}

// Press applies a single step. The status line is returned for ButtonStatus
// only; the error is the last one reported by a ButtonGoTo press.
func Press(tv Controller, step Step) (string, error) {
	var (
		status  string
		lastErr error
	)
	for i := 0; i < step.times(); i++ {
		switch step.Button {
		case ButtonPower:
			tv.PowerOn()
		case ButtonChannelUp:
			tv.ChannelUp()
		case ButtonChannelDown:
			tv.ChannelDown()
		case ButtonGoTo:
			lastErr = tv.GoToChannel(step.Channel)
		case ButtonVolumeUp:
			tv.VolumeUp()
		case ButtonVolumeDown:
			tv.VolumeDown()
		case ButtonMute:
			tv.Mute()
		case ButtonUnmute:
			tv.Unmute()
		case ButtonStatus:
			status = tv.Status()
		default:
			return "", fmt.Errorf("press %s: unknown button", step.Button)
		}
	}
	return status, lastErr
}
