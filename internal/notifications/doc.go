// Package notifications delivers television events to the viewer.
//
// The default implementation writes one localized line per event to the
// on-screen display configured in config.toml and degrades to a no-op when
// the display is disabled. Television code depends only on the small Service
// interface, so alternative sinks can be added without touching it.
package notifications
