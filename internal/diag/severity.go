package diag

// Severity defines the importance of a diagnostic.
type Severity uint8

const (
	// SevWarning is for style issues that do not fail a run.
	SevWarning Severity = iota
	// SevError is for guideline violations that fail a run.
	SevError
)

func (s Severity) String() string {
	switch s {
	case SevWarning:
		return "WARNING"
	case SevError:
		return "ERROR"
	}
	return "UNKNOWN"
}
