package television

// Snapshot is a point-in-time copy of a Television's state.
type Snapshot struct {
	Channel     int  `json:"channel"`
	LastWatched int  `json:"last_watched"`
	Volume      int  `json:"volume"`
	Muted       bool `json:"muted"`
}

// Snapshot copies the current state.
func (tv *Television) Snapshot() Snapshot {
	return Snapshot{
		Channel:     tv.currentChannel,
		LastWatched: tv.lastWatchedChannel,
		Volume:      tv.volume,
		Muted:       tv.muted,
	}
}
