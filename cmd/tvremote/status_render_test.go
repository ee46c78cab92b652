package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"tvremote/internal/config"
	"tvremote/internal/locale"
	"tvremote/internal/remote"
	"tvremote/internal/television"
)

func TestRenderStatusLineNoColor(t *testing.T) {
	if got := renderStatusLine(statusWarn, "invalid", false); got != "invalid" {
		t.Fatalf("unexpected plain line: %q", got)
	}
}

func TestRenderStatusLineWithColor(t *testing.T) {
	got := renderStatusLine(statusWarn, "invalid", true)
	if !strings.HasPrefix(got, ansiYellow) || !strings.HasSuffix(got, ansiReset) {
		t.Fatalf("expected yellow wrapped line, got %q", got)
	}
}

func TestResultRowsShowMutedIndicator(t *testing.T) {
	results := []remote.Result{
		{Step: remote.Step{Button: remote.ButtonMute}, State: television.Snapshot{Channel: 3, LastWatched: 3, Volume: 50, Muted: true}},
		{Step: remote.Step{Button: remote.ButtonGoTo, Channel: 600}, State: television.Snapshot{Channel: 3, LastWatched: 3, Volume: 50}, Err: errors.New("invalid channel")},
	}
	rows := resultRows(results, locale.Default(), false)
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0][4] != "Mudo" {
		t.Fatalf("expected muted indicator, got %q", rows[0][4])
	}
	if rows[0][5] != "ok" {
		t.Fatalf("expected ok outcome, got %q", rows[0][5])
	}
	if rows[1][1] != "goto 600" || rows[1][5] != "invalid channel" {
		t.Fatalf("unexpected rejected row: %v", rows[1])
	}
}

func TestResolveColor(t *testing.T) {
	var buf bytes.Buffer
	if !resolveColor(config.ColorAlways, &buf) {
		t.Fatal("always should colorize")
	}
	if resolveColor(config.ColorNever, &buf) {
		t.Fatal("never should not colorize")
	}
	if resolveColor(config.ColorAuto, &buf) {
		t.Fatal("auto should not colorize non-terminal writers")
	}
}
