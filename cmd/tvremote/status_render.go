package main

import (
	"io"
	"os"
	"strconv"

	"github.com/mattn/go-isatty"

	"tvremote/internal/config"
	"tvremote/internal/locale"
	"tvremote/internal/remote"
)

type statusKind int

const (
	statusOK statusKind = iota
	statusWarn
)

const (
	ansiReset  = "\x1b[0m"
	ansiGreen  = "\x1b[32m"
	ansiYellow = "\x1b[33m"
)

func renderStatusLine(kind statusKind, message string, colorize bool) string {
	if !colorize {
		return message
	}
	switch kind {
	case statusWarn:
		return ansiYellow + message + ansiReset
	default:
		return ansiGreen + message + ansiReset
	}
}

func resultRows(results []remote.Result, printer *locale.Printer, colorize bool) [][]string {
	rows := make([][]string, 0, len(results))
	for i, r := range results {
		volume := strconv.Itoa(r.State.Volume)
		if r.State.Muted {
			volume = printer.Muted()
		}
		outcome := renderStatusLine(statusOK, "ok", colorize)
		if r.Err != nil {
			outcome = renderStatusLine(statusWarn, r.Err.Error(), colorize)
		}
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			r.Step.Label(),
			strconv.Itoa(r.State.Channel),
			strconv.Itoa(r.State.LastWatched),
			volume,
			outcome,
		})
	}
	return rows
}

func renderResults(results []remote.Result, printer *locale.Printer, colorize bool) string {
	headers := []string{"#", "Button", "Channel", "Last", "Volume", "Result"}
	aligns := []columnAlignment{alignRight, alignLeft, alignRight, alignRight, alignRight, alignLeft}
	return renderTable(headers, resultRows(results, printer, colorize), aligns)
}

// resolveColor applies display.color; "auto" colorizes terminals only.
func resolveColor(mode string, writer io.Writer) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	default:
		return shouldColorize(writer)
	}
}

func shouldColorize(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
