package lint

import (
	"strings"

	"lyrlint/internal/ass"
	"lyrlint/internal/diag"
)

// Options configures a Linter for one run.
type Options struct {
	// DisabledRules is the global suppression tier, supplied once at
	// startup (CLI flag or project config). Tokens are matched
	// case-insensitively; unknown tokens are accepted silently.
	DisabledRules []string

	// ExtraAcronyms extends the all-caps allow-list (DJ, TV, USA, ...).
	ExtraAcronyms []string
}

// check is one independent, stateless rule function.
//
// codes lists every code the function may emit; the catalog validates them
// against the registry at construction, so a typo fails fast instead of
// surfacing as a lint result.
type check struct {
	name  string
	codes []diag.Code
	run   checkFn
}

type checkFn func(l *Linter, ln *line, emit emitFn)

// emitFn records one diagnostic; the pipeline wires suppression into it,
// so checks never see the suppression state.
type emitFn func(code diag.Code, context string)

// line is the per-event input handed to each check.
type line struct {
	number     int    // 1-based over Dialogue events only
	raw        string // original event text, markup included
	clean      string // Normalized.Clean
	rawSpacing string // Normalized.RawSpacing
}

// Linter runs the ordered rule catalog over parsed documents. It carries
// only read-only configuration and is safe for concurrent use; all
// per-file state lives in State and the caller's Bag.
type Linter struct {
	catalog  []check
	global   codeSet
	acronyms map[string]struct{}
}

// defaultAcronyms may appear in all caps without tripping the shouting rule.
var defaultAcronyms = []string{"DJ", "TV", "USA", "UK", "NYC", "LA"}

// New builds a Linter. Panics when any catalog check references a code
// missing from the registry: that is an implementation defect, never a
// user-facing condition.
func New(opts Options) *Linter {
	l := &Linter{
		global:   make(codeSet),
		acronyms: make(map[string]struct{}),
	}
	for _, tok := range opts.DisabledRules {
		if tok = strings.TrimSpace(tok); tok != "" {
			l.global[diag.Normalize(tok)] = struct{}{}
		}
	}
	for _, a := range defaultAcronyms {
		l.acronyms[a] = struct{}{}
	}
	for _, a := range opts.ExtraAcronyms {
		if a = strings.ToUpper(strings.TrimSpace(a)); a != "" {
			l.acronyms[a] = struct{}{}
		}
	}

	// Порядок фиксирован: категории идут в порядке гайдлайна.
	l.catalog = []check{
		{"capitalization", []diag.Code{diag.CapFirstLetter, diag.CapAllCaps, diag.CapTitleCase}, checkCapitalization},
		{"punctuation", []diag.Code{diag.PunctTrailingComma, diag.PunctTrailingPeriod, diag.PunctMultiple, diag.PunctSpaceBefore, diag.PunctNoSpaceAfter}, checkPunctuation},
		{"formatting", []diag.Code{diag.FmtDoubleSpace, diag.FmtEdgeSpace, diag.FmtSmartQuotes, diag.FmtThreeDots}, checkFormatting},
		{"special-characters", []diag.Code{diag.CharBrackets, diag.CharCensorship}, checkSpecialCharacters},
		{"line-breaks", []diag.Code{diag.FmtForcedBreak}, checkLineBreaks},
		{"numbers", []diag.Code{diag.NumWordOverTen}, checkNumbers},
		{"multipliers", []diag.Code{diag.MultParenthesized}, checkMultipliers},
		{"non-vocal-content", []diag.Code{diag.VocalStructureLabel, diag.VocalSoundEffect, diag.VocalOverrideTag}, checkNonVocalContent},
		{"direct-speech", []diag.Code{diag.SpeechNoComma, diag.SpeechLowercase}, checkDirectSpeech},
	}
	for _, c := range l.catalog {
		for _, code := range c.codes {
			diag.MustRule(code)
		}
	}
	return l
}

// LintDocument scans one parsed document and appends diagnostics to bag.
// Suppression state is created fresh here and discarded on return.
func (l *Linter) LintDocument(doc *ass.Document, bag *diag.Bag) {
	state := NewState(l.global)
	lineNo := 0
	for _, ev := range doc.Events {
		switch ev.Kind {
		case ass.EventComment:
			state.ProcessDirective(ev)
		case ass.EventDialogue:
			lineNo++
			l.lintLine(lineNo, ev, state, bag)
		case ass.EventOther:
			// Не проверяем и не читаем директивы.
		}
	}
}

func (l *Linter) lintLine(number int, ev ass.Event, state *State, bag *diag.Bag) {
	norm := Normalize(ev.Text)
	if norm.Clean == "" {
		// Пустая строка: ни одна проверка не запускается.
		return
	}
	supp := LineSuppressions(ev)
	ln := &line{
		number:     number,
		raw:        ev.Text,
		clean:      norm.Clean,
		rawSpacing: norm.RawSpacing,
	}
	emit := func(code diag.Code, context string) {
		if state.IsActive(code, supp) {
			bag.Add(diag.New(code, number, context, norm.Clean))
		}
	}
	for _, c := range l.catalog {
		c.run(l, ln, emit)
	}
}
