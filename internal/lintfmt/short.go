package lintfmt

import (
	"fmt"
	"sort"
	"strings"

	"lyrlint/internal/driver"
)

type shortEntry struct {
	path     string
	line     int
	severity string
	code     string
	message  string
}

// Short renders diagnostics into a stable, single-line-per-entry
// representation suitable for scripting and golden files:
//
//	SEVERITY CODE path:line message
//
// Entries are sorted deterministically; the result is empty when the run
// is clean.
func Short(rep driver.Report) string {
	var entries []shortEntry
	for _, file := range rep.Files {
		for _, d := range file.Errors {
			entries = append(entries, shortEntry{file.Path, d.Line, d.Severity, d.Code, d.Message})
		}
		for _, d := range file.Warnings {
			entries = append(entries, shortEntry{file.Path, d.Line, d.Severity, d.Code, d.Message})
		}
	}
	sort.SliceStable(entries, func(i, j int) bool {
		ei, ej := entries[i], entries[j]
		if ei.path != ej.path {
			return ei.path < ej.path
		}
		if ei.line != ej.line {
			return ei.line < ej.line
		}
		if ei.severity != ej.severity {
			return ei.severity < ej.severity
		}
		if ei.code != ej.code {
			return ei.code < ej.code
		}
		return ei.message < ej.message
	})

	var b strings.Builder
	for i, e := range entries {
		fmt.Fprintf(&b, "%s %s %s:%d %s", e.severity, e.code, e.path, e.line, e.message)
		if i < len(entries)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}
