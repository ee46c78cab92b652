// Package remote replays scripted button presses against a television.
//
// A Session walks a list of Steps in order, records the television state
// after each one and keeps going when a direct channel entry is rejected.
// Walkthrough returns the reference sequence used by the demo command.
package remote
