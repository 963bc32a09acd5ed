package diag

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Code identifies one guideline rule. Codes are opaque strings of the form
// MX<NNN>: suppression directives carry user-typed tokens that must be
// matched case-insensitively against the registry, so a closed enum would
// not work here.
type Code string

const (
	// Разбор контейнера
	ParseFailure Code = "MX001"

	// Капитализация (1xx)
	CapFirstLetter Code = "MX101"
	CapAllCaps     Code = "MX102"
	CapTitleCase   Code = "MX103"

	// Пунктуация (2xx)
	PunctTrailingComma  Code = "MX201"
	PunctTrailingPeriod Code = "MX202"
	PunctMultiple       Code = "MX203"
	PunctSpaceBefore    Code = "MX204"
	PunctNoSpaceAfter   Code = "MX205"

	// Форматирование и переносы (3xx)
	FmtDoubleSpace Code = "MX301"
	FmtEdgeSpace   Code = "MX302"
	FmtSmartQuotes Code = "MX303"
	FmtThreeDots   Code = "MX304"
	FmtForcedBreak Code = "MX305"

	// Спецсимволы (4xx)
	CharBrackets   Code = "MX401"
	CharCensorship Code = "MX402"

	// Числа (5xx)
	NumWordOverTen Code = "MX501"

	// Множители (6xx)
	MultParenthesized Code = "MX601"

	// Невокальный контент (7xx)
	VocalStructureLabel Code = "MX701"
	VocalSoundEffect    Code = "MX702"
	VocalOverrideTag    Code = "MX703"

	// Прямая речь (8xx)
	SpeechNoComma   Code = "MX801"
	SpeechLowercase Code = "MX802"
)

// Category groups codes by the hundreds digit of their numeric part.
type Category string

const (
	CategoryParse          Category = "parse"
	CategoryCapitalization Category = "capitalization"
	CategoryPunctuation    Category = "punctuation"
	CategoryFormatting     Category = "formatting"
	CategorySpecialChars   Category = "special-characters"
	CategoryNumbers        Category = "numbers"
	CategoryMultipliers    Category = "multipliers"
	CategoryNonVocal       Category = "non-vocal-content"
	CategoryDirectSpeech   Category = "direct-speech"
)

// Rule is one immutable registry entry.
type Rule struct {
	Code     Code
	Message  string
	Severity Severity
}

var registry = map[Code]Rule{
	ParseFailure: {ParseFailure, "Failed to parse subtitle file", SevError},

	CapFirstLetter: {CapFirstLetter, "First letter must be capitalized", SevError},
	CapAllCaps:     {CapAllCaps, "Don't use all caps for emphasis", SevError},
	CapTitleCase:   {CapTitleCase, "Don't capitalize every word (title case)", SevError},

	PunctTrailingComma:  {PunctTrailingComma, "Don't end lines with commas", SevError},
	PunctTrailingPeriod: {PunctTrailingPeriod, "Don't end lines with periods (unless acronym)", SevError},
	PunctMultiple:       {PunctMultiple, "Don't use multiple punctuation marks", SevError},
	PunctSpaceBefore:    {PunctSpaceBefore, "Remove space before punctuation", SevError},
	PunctNoSpaceAfter:   {PunctNoSpaceAfter, "Add space after punctuation", SevError},

	FmtDoubleSpace: {FmtDoubleSpace, "Remove multiple consecutive spaces", SevError},
	FmtEdgeSpace:   {FmtEdgeSpace, "Remove leading/trailing spaces", SevError},
	FmtSmartQuotes: {FmtSmartQuotes, "Use straight quotes (\") instead of smart quotes", SevError},
	FmtThreeDots:   {FmtThreeDots, "Use the single ellipsis glyph (…) instead of three dots", SevWarning},
	FmtForcedBreak: {FmtForcedBreak, "Consider splitting multi-line lyrics into separate events", SevWarning},

	CharBrackets:   {CharBrackets, "Don't use brackets in lyrics", SevError},
	CharCensorship: {CharCensorship, "Don't censor with asterisks; use a hyphen if the audio is censored (e.g. 'f-')", SevError},

	NumWordOverTen: {NumWordOverTen, "Write numbers over 10 numerically, not as words", SevError},

	MultParenthesized: {MultParenthesized, "Don't use multipliers like (x3); transcribe repetitions fully", SevError},

	VocalStructureLabel: {VocalStructureLabel, "Don't include structure labels like (Verse - Artist)", SevError},
	VocalSoundEffect:    {VocalSoundEffect, "Don't include sound effect descriptions like *dial tone*", SevError},
	VocalOverrideTag:    {VocalOverrideTag, "Remove non-karaoke override tags", SevError},

	SpeechNoComma:   {SpeechNoComma, "Direct speech should follow a comma: text, \"Speech\"", SevWarning},
	SpeechLowercase: {SpeechLowercase, "Direct speech must start with a capital letter", SevError},
}

// Lookup returns the registry entry for code.
func Lookup(code Code) (Rule, bool) {
	r, ok := registry[code]
	return r, ok
}

// MustRule returns the registry entry for code and panics when the code is
// unknown. A check referencing an unregistered code is a programmer error,
// not a lint result.
func MustRule(code Code) Rule {
	r, ok := registry[code]
	if !ok {
		panic(fmt.Sprintf("diag: unregistered rule code %q", code))
	}
	return r
}

// Known reports whether code exists in the registry.
func Known(code Code) bool {
	_, ok := registry[code]
	return ok
}

// Normalize upper-cases a user-typed token into canonical code form.
// Unknown tokens pass through unchanged: the suppression mini-language
// accepts them silently.
func Normalize(token string) Code {
	return Code(strings.ToUpper(strings.TrimSpace(token)))
}

// All returns every registered rule sorted by code.
func All() []Rule {
	rules := make([]Rule, 0, len(registry))
	for _, r := range registry {
		rules = append(rules, r)
	}
	sort.Slice(rules, func(i, j int) bool { return rules[i].Code < rules[j].Code })
	return rules
}

// Category derives the rule group from the numeric part of the code.
func (c Code) Category() Category {
	n, err := strconv.Atoi(strings.TrimPrefix(string(c), "MX"))
	if err != nil {
		return CategoryParse
	}
	switch n / 100 {
	case 1:
		return CategoryCapitalization
	case 2:
		return CategoryPunctuation
	case 3:
		return CategoryFormatting
	case 4:
		return CategorySpecialChars
	case 5:
		return CategoryNumbers
	case 6:
		return CategoryMultipliers
	case 7:
		return CategoryNonVocal
	case 8:
		return CategoryDirectSpeech
	}
	return CategoryParse
}

func (c Code) String() string {
	if r, ok := registry[c]; ok {
		return fmt.Sprintf("[%s]: %s", string(c), r.Message)
	}
	return string(c)
}
