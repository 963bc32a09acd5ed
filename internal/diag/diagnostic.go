package diag

// Diagnostic is one reported guideline violation.
//
// Line is the 1-based index over Dialogue events only; line 0 marks
// file-level diagnostics such as parse failures. Context holds the matched
// substring (may be empty), SourceLine the full normalized text of the
// offending line.
type Diagnostic struct {
	Code       Code
	Severity   Severity
	Line       int
	Context    string
	SourceLine string
}

// New builds a diagnostic, resolving the severity from the registry.
// It panics on an unregistered code (see MustRule).
func New(code Code, line int, context, sourceLine string) Diagnostic {
	return Diagnostic{
		Code:       code,
		Severity:   MustRule(code).Severity,
		Line:       line,
		Context:    context,
		SourceLine: sourceLine,
	}
}

// Message returns the registry message for the diagnostic's code.
func (d Diagnostic) Message() string {
	return MustRule(d.Code).Message
}
