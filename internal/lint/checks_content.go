package lint

import (
	"regexp"
	"strings"

	"lyrlint/internal/diag"
)

var (
	censorshipRe = regexp.MustCompile(`\*\*+`)

	multiplierRe = regexp.MustCompile(`\([xX×]\s*\d+\)`)

	structureLabelRe = regexp.MustCompile(`(?i)\((Verse|Chorus|Bridge|Intro|Outro|Hook|Pre-Chorus)[\s\-][^)]*\)`)
	soundEffectRe    = regexp.MustCompile(`\*[^*]+\*`)

	// Karaoke timing tags (\k, \K, \kf, \ko) are the only override blocks
	// allowed to stay in lyric events.
	karaokeTagRe = regexp.MustCompile(`(?i)\\k`)
)

func checkSpecialCharacters(_ *Linter, ln *line, emit emitFn) {
	if i := strings.IndexAny(ln.clean, "[]"); i >= 0 {
		emit(diag.CharBrackets, string(ln.clean[i]))
	}
	if m := censorshipRe.FindString(ln.clean); m != "" {
		emit(diag.CharCensorship, m)
	}
}

// numberWords maps spelled-out numbers to their values. Order matters: the
// scan reports the first table entry found as a whole word.
var numberWords = []struct {
	word  string
	value int
	re    *regexp.Regexp
}{
	{"eleven", 11, nil}, {"twelve", 12, nil}, {"thirteen", 13, nil},
	{"fourteen", 14, nil}, {"fifteen", 15, nil}, {"sixteen", 16, nil},
	{"seventeen", 17, nil}, {"eighteen", 18, nil}, {"nineteen", 19, nil},
	{"twenty", 20, nil}, {"thirty", 30, nil}, {"forty", 40, nil},
	{"fifty", 50, nil}, {"sixty", 60, nil}, {"seventy", 70, nil},
	{"eighty", 80, nil}, {"ninety", 90, nil},
	{"hundred", 100, nil}, {"thousand", 1000, nil}, {"million", 1000000, nil},
}

func init() {
	for i := range numberWords {
		numberWords[i].re = regexp.MustCompile(`\b` + numberWords[i].word + `\b`)
	}
}

func checkNumbers(_ *Linter, ln *line, emit emitFn) {
	lower := strings.ToLower(ln.clean)
	for _, nw := range numberWords {
		if nw.value > 10 && nw.re.MatchString(lower) {
			// Первое совпадение завершает сканирование.
			emit(diag.NumWordOverTen, nw.word)
			return
		}
	}
}

func checkMultipliers(_ *Linter, ln *line, emit emitFn) {
	if m := multiplierRe.FindString(ln.clean); m != "" {
		emit(diag.MultParenthesized, m)
	}
}

func checkNonVocalContent(_ *Linter, ln *line, emit emitFn) {
	if m := structureLabelRe.FindString(ln.clean); m != "" {
		emit(diag.VocalStructureLabel, m)
	}
	if m := soundEffectRe.FindString(ln.clean); m != "" {
		emit(diag.VocalSoundEffect, m)
	}

	// Единственная проверка, которой разрешено несколько диагностик на
	// строку: по одной на каждый запрещённый блок.
	for _, tag := range overrideTags(ln.raw) {
		if !karaokeTagRe.MatchString(tag) {
			emit(diag.VocalOverrideTag, "{"+tag+"}")
		}
	}
}
