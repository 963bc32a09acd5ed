package lint

import (
	"regexp"
	"strings"
	"unicode"

	"lyrlint/internal/diag"
)

var (
	quoteCapitalRe      = regexp.MustCompile(`"[A-Z]`)
	commaQuoteCapitalRe = regexp.MustCompile(`,\s*"[A-Z]`)
	quotedRe            = regexp.MustCompile(`"([^"]+)"`)
)

func checkDirectSpeech(_ *Linter, ln *line, emit emitFn) {
	text := ln.clean
	if !strings.Contains(text, `"`) {
		return
	}

	// Реплика должна вводиться запятой: text, "Speech". Строки, целиком
	// начинающиеся с цитаты, не трогаем.
	if quoteCapitalRe.MatchString(text) &&
		!commaQuoteCapitalRe.MatchString(text) &&
		!strings.HasPrefix(text, `"`) {
		emit(diag.SpeechNoComma, quoteCapitalRe.FindString(text))
	}

	for _, m := range quotedRe.FindAllStringSubmatch(text, -1) {
		quoted := m[1]
		first, _ := firstRune(quoted)
		if unicode.IsLetter(first) && !unicode.IsUpper(first) {
			emit(diag.SpeechLowercase, quoted)
		}
	}
}

func firstRune(s string) (rune, bool) {
	for _, r := range s {
		return r, true
	}
	return 0, false
}
