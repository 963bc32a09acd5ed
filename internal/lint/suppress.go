package lint

import (
	"strings"

	"lyrlint/internal/ass"
	"lyrlint/internal/diag"
)

// Directive keywords carried by a Comment event's Effect field, and the
// per-line markers carried by a Dialogue event's Effect field. All are
// matched case-insensitively; unknown effect values are ignored.
const (
	directiveDisable = "lint-disable"
	directiveEnable  = "lint-enable"
	lineWildcard     = "noqa"
	linePrefix       = "skip-"
)

// wildcard silences every code for one line.
const wildcard diag.Code = "*"

// codeSet is a small set of rule codes.
type codeSet map[diag.Code]struct{}

func (s codeSet) has(c diag.Code) bool {
	_, ok := s[c]
	return ok
}

// State tracks which rules are active for the file currently being
// scanned. It is allocated fresh per file and never shared: no directive
// in one file affects another.
//
// Three tiers compose here. The global tier comes from the run
// configuration and is constant for the whole run; the file tier is
// toggled by paired directive comments; the line tier is ephemeral and
// computed per event (see LineSuppressions).
type State struct {
	fileDisabledAll   bool
	fileDisabledRules codeSet
	fileEnabledRules  codeSet
	globalDisabled    codeSet // read-only, shared across files
}

// NewState creates per-file suppression state over the run-wide disabled
// set. The global set is aliased, not copied: it is never mutated after
// startup, so sharing it across files (and goroutines) is safe.
func NewState(globalDisabled codeSet) *State {
	return &State{
		fileDisabledRules: make(codeSet),
		fileEnabledRules:  make(codeSet),
		globalDisabled:    globalDisabled,
	}
}

// ProcessDirective consumes a file-wide directive. Only Comment events are
// directive carriers; everything else is a no-op. The keyword lives in the
// Effect field, the optional rule tokens in the comment's text.
func (s *State) ProcessDirective(ev ass.Event) {
	if ev.Kind != ass.EventComment {
		return
	}
	effect := strings.ToLower(strings.TrimSpace(ev.Effect))
	text := Normalize(ev.Text).Clean
	switch effect {
	case directiveDisable:
		if text == "" {
			s.fileDisabledAll = true
			return
		}
		for _, tok := range strings.Fields(text) {
			s.fileDisabledRules[diag.Normalize(tok)] = struct{}{}
		}
	case directiveEnable:
		if text == "" {
			s.fileDisabledAll = false
			s.fileDisabledRules = make(codeSet)
			return
		}
		for _, tok := range strings.Fields(text) {
			code := diag.Normalize(tok)
			s.fileEnabledRules[code] = struct{}{}
			delete(s.fileDisabledRules, code)
		}
	}
	// Остальные значения Effect игнорируем: это не ошибка.
}

// LineSuppressions parses one event's Effect field into the ephemeral
// per-line suppression set. Independent of directive processing.
func LineSuppressions(ev ass.Event) codeSet {
	effect := strings.TrimSpace(ev.Effect)
	if effect == "" {
		return nil
	}
	if strings.EqualFold(effect, lineWildcard) {
		return codeSet{wildcard: {}}
	}
	var supp codeSet
	for _, tok := range strings.Fields(effect) {
		lower := strings.ToLower(tok)
		if !strings.HasPrefix(lower, linePrefix) {
			continue
		}
		if supp == nil {
			supp = make(codeSet)
		}
		supp[diag.Normalize(tok[len(linePrefix):])] = struct{}{}
	}
	return supp
}

// IsActive reports whether a rule should run for the current line.
// The wildcard is checked first as a fast path; the rest is pure set and
// flag logic, so evaluation order does not affect the result.
func (s *State) IsActive(code diag.Code, lineSupp codeSet) bool {
	if lineSupp.has(wildcard) {
		return false
	}
	if s.fileDisabledAll && !s.fileEnabledRules.has(code) {
		return false
	}
	if s.globalDisabled.has(code) {
		return false
	}
	if s.fileDisabledRules.has(code) && !s.fileEnabledRules.has(code) {
		return false
	}
	return !lineSupp.has(code)
}
