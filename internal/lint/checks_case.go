package lint

import (
	"strings"
	"unicode"

	"lyrlint/internal/diag"
)

// brandPrefixes are mixed-case spellings that legitimately start a line
// with a lower-case letter.
var brandPrefixes = []string{"iPhone", "iPad", "eBay"}

func checkCapitalization(l *Linter, ln *line, emit emitFn) {
	checkFirstLetter(ln, emit)

	words := strings.Fields(ln.clean)

	// Крик капсом — кроме известных аббревиатур.
	var shouted []string
	for _, w := range words {
		if len([]rune(w)) > 1 && isAlphaWord(w) && isUpperWord(w) {
			if _, ok := l.acronyms[w]; !ok {
				shouted = append(shouted, w)
			}
		}
	}
	if len(shouted) > 0 {
		emit(diag.CapAllCaps, strings.Join(shouted, " "))
	}

	// Title Case: больше двух длинных слов и все с заглавной.
	var long []string
	for _, w := range words {
		if len([]rune(w)) > 3 && isAlphaWord(w) {
			long = append(long, w)
		}
	}
	if len(long) > 2 {
		titled := 0
		for _, w := range long {
			if unicode.IsUpper([]rune(w)[0]) {
				titled++
			}
		}
		if titled == len(long) {
			emit(diag.CapTitleCase, "")
		}
	}
}

func checkFirstLetter(ln *line, emit emitFn) {
	var first rune
	for _, r := range ln.clean {
		if unicode.IsLetter(r) {
			first = r
			break
		}
	}
	if first == 0 {
		return
	}
	// Письменности без регистра (CJK, арабская и т.д.) пропускаем целиком.
	if !unicode.IsUpper(first) && !unicode.IsLower(first) {
		return
	}
	if unicode.IsUpper(first) {
		return
	}
	for _, p := range brandPrefixes {
		if strings.HasPrefix(ln.clean, p) {
			return
		}
	}
	word := ln.clean
	if i := strings.IndexFunc(word, unicode.IsSpace); i >= 0 {
		word = word[:i]
	}
	emit(diag.CapFirstLetter, word)
}

// isAlphaWord reports whether every rune in w is a letter.
func isAlphaWord(w string) bool {
	for _, r := range w {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return w != ""
}

// isUpperWord reports whether w is entirely upper case and actually cased.
func isUpperWord(w string) bool {
	return w == strings.ToUpper(w) && w != strings.ToLower(w)
}
