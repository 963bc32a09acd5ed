package lint

import (
	"regexp"
	"strings"

	"lyrlint/internal/diag"
)

var (
	// Одна заглавная буква перед точкой — аббревиатура вида "U.S.A."
	acronymPeriodRe = regexp.MustCompile(`[A-Z]\.$`)

	// Runs of terminal punctuation. A trailing ellipsis, optionally after
	// one ! or ? ("...", "!...", "?..."), is the only tolerated run — it is
	// flagged separately as an ellipsis style warning. Everything else in a
	// run of two or more is an error: doubled dots, 4+ dots, !!/??/?! runs
	// and dot-then-mark mixes like "..!".
	punctRunRe = regexp.MustCompile(`[.!?]{2,}`)

	spaceBeforePunctRe  = regexp.MustCompile(`\s+[,.!?;:]`)
	noSpaceAfterPunctRe = regexp.MustCompile(`[,.!?;:][a-zA-Z]`)
)

func checkPunctuation(_ *Linter, ln *line, emit emitFn) {
	text := ln.clean

	if strings.HasSuffix(text, ",") || strings.HasSuffix(text, "、") {
		emit(diag.PunctTrailingComma, trailingRune(text))
	}

	if (strings.HasSuffix(text, ".") || strings.HasSuffix(text, "。")) &&
		!acronymPeriodRe.MatchString(text) &&
		!strings.HasSuffix(text, "...") {
		emit(diag.PunctTrailingPeriod, trailingRune(text))
	}

	for _, run := range punctRunRe.FindAllString(text, -1) {
		if allowedPunctRun(run) {
			continue
		}
		emit(diag.PunctMultiple, run)
		break
	}

	if m := spaceBeforePunctRe.FindString(text); m != "" {
		emit(diag.PunctSpaceBefore, strings.TrimLeft(m, " \t"))
	}

	if m := noSpaceAfterPunctRe.FindString(text); m != "" {
		emit(diag.PunctNoSpaceAfter, m)
	}
}

// allowedPunctRun reports whether a punctuation run is the tolerated
// ellipsis form: exactly three dots, optionally after one ! or ?.
// Note the asymmetry: "!..." passes, "...!" does not.
func allowedPunctRun(run string) bool {
	switch run {
	case "...", "!...", "?...":
		return true
	}
	return false
}

func trailingRune(s string) string {
	runes := []rune(s)
	if len(runes) == 0 {
		return ""
	}
	return string(runes[len(runes)-1])
}
