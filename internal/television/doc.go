// Package television holds the state behind a television remote control.
//
// A Television tracks the current channel, the last watched channel, the
// volume level and the mute flag. Channel and volume are saturating counters:
// stepping past a bound is silently ignored. Direct channel entry is the only
// operation that can fail, and it never mutates state when it does. Mute is
// an orthogonal gate that freezes the volume without changing it.
//
// A Television is meant to be driven by a single owner and is not safe for
// concurrent use.
package television
