package driver

import (
	"lyrlint/internal/diag"
)

// RunStatus is the aggregate outcome of a run.
type RunStatus uint8

const (
	// RunPassed means no issues anywhere.
	RunPassed RunStatus = iota
	// RunPassedWithWarnings means warnings only; exit status stays zero.
	RunPassedWithWarnings
	// RunFailed means at least one error-severity diagnostic.
	RunFailed
)

// DiagnosticReport is the machine-readable shape of one diagnostic.
type DiagnosticReport struct {
	Code     string `json:"code"`
	Line     int    `json:"line"`
	Severity string `json:"severity"`
	Message  string `json:"message"`
	Context  string `json:"context,omitempty"`
	Source   string `json:"source_line,omitempty"`
}

// FileReport groups one file's diagnostics by severity.
type FileReport struct {
	Path     string             `json:"path"`
	Errors   []DiagnosticReport `json:"errors"`
	Warnings []DiagnosticReport `json:"warnings"`
}

// Summary aggregates counters across the whole run.
type Summary struct {
	FilesChecked    int `json:"files_checked"`
	FilesWithIssues int `json:"files_with_issues"`
	TotalErrors     int `json:"total_errors"`
	TotalWarnings   int `json:"total_warnings"`
}

// Report is the full machine-readable result of a run.
type Report struct {
	Summary Summary      `json:"summary"`
	Files   []FileReport `json:"files"`
}

// BuildReport converts per-file results into the aggregate report.
// Files without issues are counted but omitted from Files.
func BuildReport(results []FileResult) Report {
	rep := Report{Files: []FileReport{}}
	rep.Summary.FilesChecked = len(results)
	for _, res := range results {
		res.Bag.Sort()
		fr := FileReport{
			Path:     res.Path,
			Errors:   toReports(res.Bag.Errors()),
			Warnings: toReports(res.Bag.Warnings()),
		}
		rep.Summary.TotalErrors += len(fr.Errors)
		rep.Summary.TotalWarnings += len(fr.Warnings)
		if len(fr.Errors) > 0 || len(fr.Warnings) > 0 {
			rep.Summary.FilesWithIssues++
			rep.Files = append(rep.Files, fr)
		}
	}
	return rep
}

// Status derives the run outcome from the summary.
func (r Report) Status() RunStatus {
	switch {
	case r.Summary.TotalErrors > 0:
		return RunFailed
	case r.Summary.TotalWarnings > 0:
		return RunPassedWithWarnings
	}
	return RunPassed
}

// ExitCode maps the outcome to the process exit status: non-zero iff the
// run produced at least one error.
func (r Report) ExitCode() int {
	if r.Status() == RunFailed {
		return 1
	}
	return 0
}

func toReports(diags []diag.Diagnostic) []DiagnosticReport {
	out := make([]DiagnosticReport, 0, len(diags))
	for _, d := range diags {
		out = append(out, DiagnosticReport{
			Code:     string(d.Code),
			Line:     d.Line,
			Severity: d.Severity.String(),
			Message:  d.Message(),
			Context:  d.Context,
			Source:   d.SourceLine,
		})
	}
	return out
}
