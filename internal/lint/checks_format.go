package lint

import (
	"strings"

	"lyrlint/internal/diag"
)

var smartQuotes = []rune{'“', '”', '‘', '’'}

func checkFormatting(_ *Linter, ln *line, emit emitFn) {
	// Пробельные проверки смотрят на несвёрнутый вид: после нормализации
	// эти нарушения исчезают.
	if strings.Contains(ln.rawSpacing, "  ") {
		emit(diag.FmtDoubleSpace, "")
	}
	if ln.rawSpacing != strings.TrimSpace(ln.rawSpacing) {
		emit(diag.FmtEdgeSpace, "")
	}

	var offending []rune
	for _, q := range smartQuotes {
		if strings.ContainsRune(ln.clean, q) {
			offending = append(offending, q)
		}
	}
	if len(offending) > 0 {
		emit(diag.FmtSmartQuotes, string(offending))
	}

	for _, run := range punctRunRe.FindAllString(ln.clean, -1) {
		if allowedPunctRun(run) {
			emit(diag.FmtThreeDots, run)
			break
		}
	}
}

func checkLineBreaks(_ *Linter, ln *line, emit emitFn) {
	// Смотрим в сырой текст события: нормализация уже заменила переносы.
	if strings.Contains(ln.raw, `\N`) || strings.Contains(ln.raw, `\n`) {
		emit(diag.FmtForcedBreak, "")
	}
}
