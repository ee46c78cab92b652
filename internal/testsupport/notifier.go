package testsupport

// Event is one notification captured by a Recorder.
type Event struct {
	Kind    string
	Channel int
}

// Event kinds recorded by Recorder.
const (
	EventPowerOn        = "power_on"
	EventInvalidChannel = "invalid_channel"
)

// Recorder is a notifications.Service that keeps every event in memory.
type Recorder struct {
	Events []Event
	Err    error
}

func (r *Recorder) NotifyPowerOn(channel int) error {
	r.Events = append(r.Events, Event{Kind: EventPowerOn, Channel: channel})
	return r.Err
}

func (r *Recorder) NotifyInvalidChannel(requested int) error {
	r.Events = append(r.Events, Event{Kind: EventInvalidChannel, Channel: requested})
	return r.Err
}

// Count returns how many events of kind were recorded.
func (r *Recorder) Count(kind string) int {
	n := 0
	for _, e := range r.Events {
		if e.Kind == kind {
			n++
		}
	}
	return n
}
