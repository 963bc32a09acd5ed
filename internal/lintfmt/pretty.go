package lintfmt

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"lyrlint/internal/driver"
)

// PrettyOpts controls the human-readable renderer.
type PrettyOpts struct {
	Color bool
	// Quiet omits per-diagnostic source lines and the clean-file notice.
	Quiet bool
	// Width truncates rendered source lines; 0 keeps the default of 80.
	Width int
}

type palette struct {
	path    *color.Color
	errTag  *color.Color
	warnTag *color.Color
	code    *color.Color
	dim     *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		path:    color.New(color.Bold),
		errTag:  color.New(color.FgRed, color.Bold),
		warnTag: color.New(color.FgYellow, color.Bold),
		code:    color.New(color.FgCyan),
		dim:     color.New(color.Faint),
	}
	if !enabled {
		for _, c := range []*color.Color{p.path, p.errTag, p.warnTag, p.code, p.dim} {
			c.DisableColor()
		}
	}
	return p
}

// Pretty renders the report for terminals: per-file diagnostic listings
// followed by the run summary.
func Pretty(w io.Writer, rep driver.Report, opts PrettyOpts) {
	pal := newPalette(opts.Color)
	width := opts.Width
	if width <= 0 {
		width = 80
	}

	for _, file := range rep.Files {
		fmt.Fprintln(w, pal.path.Sprint(file.Path))
		for _, d := range file.Errors {
			writeDiagnostic(w, pal, pal.errTag, d, width, opts.Quiet)
		}
		for _, d := range file.Warnings {
			writeDiagnostic(w, pal, pal.warnTag, d, width, opts.Quiet)
		}
		fmt.Fprintln(w)
	}

	writeSummary(w, pal, rep)
}

func writeDiagnostic(w io.Writer, pal palette, tag *color.Color, d driver.DiagnosticReport, width int, quiet bool) {
	loc := "file"
	if d.Line > 0 {
		loc = fmt.Sprintf("line %d", d.Line)
	}
	fmt.Fprintf(w, "  %s %s %s: %s", tag.Sprint(d.Severity), pal.dim.Sprint(loc), pal.code.Sprint(d.Code), d.Message)
	if d.Context != "" {
		fmt.Fprintf(w, " (%s)", truncateLyric(d.Context, width/2))
	}
	fmt.Fprintln(w)
	if !quiet && d.Source != "" {
		fmt.Fprintf(w, "      %s\n", pal.dim.Sprint(truncateLyric(d.Source, width-6)))
	}
}

func writeSummary(w io.Writer, pal palette, rep driver.Report) {
	s := rep.Summary
	fmt.Fprintf(w, "Files checked: %d, with issues: %d; errors: %d, warnings: %d\n",
		s.FilesChecked, s.FilesWithIssues, s.TotalErrors, s.TotalWarnings)
	switch rep.Status() {
	case driver.RunFailed:
		fmt.Fprintln(w, pal.errTag.Sprint("linting failed with errors"))
	case driver.RunPassedWithWarnings:
		fmt.Fprintln(w, pal.warnTag.Sprint("linting passed with warnings"))
	case driver.RunPassed:
		fmt.Fprintln(w, "all files passed linting")
	}
}

// truncateLyric trims by display width, not bytes: lyric text is often CJK
// where rune count and column count diverge.
func truncateLyric(s string, width int) string {
	if width <= 0 || runewidth.StringWidth(s) <= width {
		return s
	}
	if width <= 3 {
		return runewidth.Truncate(s, width, "")
	}
	return runewidth.Truncate(s, width, "...")
}
