package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"webpify/internal/convert"
)

type statusKind int

const (
	statusInfo statusKind = iota
	statusOK
	statusWarn
	statusError
)

const (
	ansiReset  = "\x1b[0m"
	ansiRed    = "\x1b[31m"
	ansiGreen  = "\x1b[32m"
	ansiYellow = "\x1b[33m"
	ansiBlue   = "\x1b[34m"
)

const (
	statusLabelWidth = 14
	statusIndent     = "  "
)

// printSummary renders the end-of-run report for humans.
func printSummary(w io.Writer, result *convert.Result) {
	colorize := shouldColorize(w)
	p := message.NewPrinter(language.English)

	for _, line := range renderSectionHeader("Conversion summary", colorize) {
		fmt.Fprintln(w, line)
	}

	convertedKind := statusOK
	if result.Processed == 0 {
		convertedKind = statusInfo
	}
	failedKind := statusOK
	if len(result.Failed) > 0 {
		failedKind = statusError
	}
	savedKind := statusOK
	if result.SavedBytes < 0 {
		savedKind = statusWarn
	}

	fmt.Fprintln(w, renderStatusLine("Total files", statusInfo, p.Sprintf("%d", result.TotalFiles), colorize))
	fmt.Fprintln(w, renderStatusLine("Converted", convertedKind, p.Sprintf("%d", result.Processed), colorize))
	fmt.Fprintln(w, renderStatusLine("Skipped", statusInfo, p.Sprintf("%d", result.Skipped), colorize))
	fmt.Fprintln(w, renderStatusLine("Failed", failedKind, p.Sprintf("%d", len(result.Failed)), colorize))
	fmt.Fprintln(w, renderStatusLine("Input size", statusInfo, result.TotalInput, colorize))
	fmt.Fprintln(w, renderStatusLine("Space saved", savedKind, fmt.Sprintf("%s (%s)", result.Saved, result.Ratio), colorize))
	fmt.Fprintln(w, renderStatusLine("Duration", statusInfo, result.Duration, colorize))

	if len(result.Failed) == 0 {
		return
	}

	fmt.Fprintln(w)
	for _, line := range renderSectionHeader("Failed files", colorize) {
		fmt.Fprintln(w, line)
	}
	rows := make([][]string, 0, len(result.Failed))
	for _, failure := range result.Failed {
		rows = append(rows, []string{failure.File, failure.Error})
	}
	fmt.Fprintln(w, renderTable([]string{"File", "Error"}, rows))
}

func renderStatusLine(label string, kind statusKind, message string, colorize bool) string {
	statusText := fmt.Sprintf("[%s]", statusKindLabel(kind))
	if message != "" {
		statusText = fmt.Sprintf("%s %s", statusText, message)
	}
	base := fmt.Sprintf("%s%-*s %s", statusIndent, statusLabelWidth, label+":", statusText)
	if colorize {
		if color := statusKindColor(kind); color != "" {
			return color + base + ansiReset
		}
	}
	return base
}

func statusKindLabel(kind statusKind) string {
	switch kind {
	case statusOK:
		return "OK"
	case statusWarn:
		return "WARN"
	case statusError:
		return "ERROR"
	default:
		return "INFO"
	}
}

func statusKindColor(kind statusKind) string {
	switch kind {
	case statusOK:
		return ansiGreen
	case statusWarn:
		return ansiYellow
	case statusError:
		return ansiRed
	case statusInfo:
		return ansiBlue
	default:
		return ""
	}
}

func renderSectionHeader(title string, colorize bool) []string {
	line := fmt.Sprintf("== %s ==", strings.TrimSpace(title))
	rule := strings.Repeat("-", len(line))
	if colorize {
		line = ansiBlue + line + ansiReset
		rule = ansiBlue + rule + ansiReset
	}
	return []string{line, rule}
}

func shouldColorize(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
