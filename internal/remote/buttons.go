package remote

import "fmt"

// Button is a key on the remote.
type Button int

const (
	ButtonPower Button = iota + 1
	ButtonChannelUp
	ButtonChannelDown
	ButtonGoTo
	ButtonVolumeUp
	ButtonVolumeDown
	ButtonMute
	ButtonUnmute
	ButtonStatus
)

var buttonNames = map[Button]string{
	ButtonPower:       "power",
	ButtonChannelUp:   "ch+",
	ButtonChannelDown: "ch-",
	ButtonGoTo:        "goto",
	ButtonVolumeUp:    "vol+",
	ButtonVolumeDown:  "vol-",
	ButtonMute:        "mute",
	ButtonUnmute:      "unmute",
	ButtonStatus:      "status",
}

func (b Button) String() string {
	if name, ok := buttonNames[b]; ok {
		return name
	}
	return fmt.Sprintf("button(%d)", int(b))
}

// Step is one button press, optionally repeated. Channel is only read by
// ButtonGoTo.
type Step struct {
	Button  Button
	Channel int
	Repeat  int
}

// Label renders the step for tables and logs, e.g. "ch+ x3" or "goto 600".
func (s Step) Label() string {
	label := s.Button.String()
	if s.Button == ButtonGoTo {
		label = fmt.Sprintf("%s %d", label, s.Channel)
	}
	if s.times() > 1 {
		label = fmt.Sprintf("%s x%d", label, s.times())
	}
	return label
}

func (s Step) times() int {
	if s.Repeat < 1 {
		return 1
	}
	return s.Repeat
}

// Walkthrough is the reference session: three channels up, a rejected
// direct entry, volume presses while muted, then one audible press and a
// status report.
func Walkthrough() []Step {
	return []Step{
		{Button: ButtonPower},
		{Button: ButtonChannelUp, Repeat: 3},
		{Button: ButtonGoTo, Channel: 600},
		{Button: ButtonMute},
		{Button: ButtonVolumeUp, Repeat: 5},
		{Button: ButtonUnmute},
		{Button: ButtonVolumeUp},
		{Button: ButtonStatus},
	}
}
