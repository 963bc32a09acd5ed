package driver

import (
	"os"

	"lyrlint/internal/ass"
	"lyrlint/internal/diag"
	"lyrlint/internal/lint"
)

// Options controls one lint run.
type Options struct {
	// DisabledRules is the global suppression tier (CLI --disable plus
	// project config). Constant for the whole run.
	DisabledRules []string
	// ExtraAcronyms extends the all-caps allow-list from project config.
	ExtraAcronyms []string

	MaxDiagnostics   int
	IgnoreWarnings   bool
	WarningsAsErrors bool

	// Jobs caps parallel workers for multi-file runs (0 = NumCPU).
	Jobs int
	// EnableCache reuses cached results for unchanged files.
	EnableCache bool

	// Progress receives per-file status events (may be nil).
	Progress ProgressSink
}

// FileResult is the outcome for a single file. The Bag is owned by the
// caller once returned; nothing is retained across files.
type FileResult struct {
	Path string
	Bag  *diag.Bag
}

// LintFile lints one subtitle file. A parse failure becomes a single
// file-level diagnostic and stops processing of that file; it is not an
// error of the run itself.
func LintFile(path string, linter *lint.Linter, opts Options) FileResult {
	bag := diag.NewBag(opts.MaxDiagnostics)
	data, err := os.ReadFile(path)
	if err != nil {
		bag.Add(diag.New(diag.ParseFailure, 0, err.Error(), ""))
		return FileResult{Path: path, Bag: bag}
	}
	return lintBytes(path, data, linter, opts)
}

func lintBytes(path string, data []byte, linter *lint.Linter, opts Options) FileResult {
	bag := diag.NewBag(opts.MaxDiagnostics)
	doc, err := ass.Parse(data)
	if err != nil {
		bag.Add(diag.New(diag.ParseFailure, 0, err.Error(), ""))
		return FileResult{Path: path, Bag: bag}
	}
	linter.LintDocument(doc, bag)
	applySeverityOptions(bag, opts)
	return FileResult{Path: path, Bag: bag}
}

// applySeverityOptions rewrites the bag in place for --no-warnings and
// --warnings-as-errors. Parse failures keep their severity either way.
func applySeverityOptions(bag *diag.Bag, opts Options) {
	if !opts.IgnoreWarnings && !opts.WarningsAsErrors {
		return
	}
	items := bag.Items()
	kept := items[:0]
	for _, d := range items {
		if d.Severity == diag.SevWarning {
			if opts.IgnoreWarnings {
				continue
			}
			d.Severity = diag.SevError
		}
		kept = append(kept, d)
	}
	bag.Truncate(len(kept))
}
