package lint

import (
	"strings"
)

// Normalized holds the two views of a dialogue line's text that checks
// operate on.
//
// Clean has override tags removed, break escapes replaced by one space,
// whitespace runs collapsed and edges trimmed. RawSpacing has the same
// markup removal but keeps whitespace exactly as written; spacing checks
// would be vacuous on the collapsed view.
type Normalized struct {
	Clean      string
	RawSpacing string
}

// Normalize strips markup from a dialogue line. Pure function, no side
// effects; Normalize(Normalize(x).Clean).Clean == Normalize(x).Clean.
func Normalize(text string) Normalized {
	stripped := stripTags(text)
	stripped = strings.ReplaceAll(stripped, `\N`, " ")
	stripped = strings.ReplaceAll(stripped, `\n`, " ")
	return Normalized{
		Clean:      strings.Join(strings.Fields(stripped), " "),
		RawSpacing: stripped,
	}
}

// stripTags removes {...} override blocks. Ambiguous nesting is resolved
// leftmost-first, non-greedy: the first '{' through the next '}' is one
// block. A '{' without a closing brace drops the rest of the line, which
// matches how renderers treat the malformed input.
func stripTags(text string) string {
	if !strings.ContainsRune(text, '{') {
		return text
	}
	var b strings.Builder
	b.Grow(len(text))
	for {
		open := strings.IndexByte(text, '{')
		if open < 0 {
			b.WriteString(text)
			break
		}
		b.WriteString(text[:open])
		close := strings.IndexByte(text[open:], '}')
		if close < 0 {
			break
		}
		text = text[open+close+1:]
	}
	return b.String()
}

// overrideTags returns the inner content of every {...} block in emission
// order, using the same leftmost-first, non-greedy policy as stripTags.
func overrideTags(text string) []string {
	var tags []string
	for {
		open := strings.IndexByte(text, '{')
		if open < 0 {
			return tags
		}
		rest := text[open+1:]
		close := strings.IndexByte(rest, '}')
		if close < 0 {
			return tags
		}
		tags = append(tags, rest[:close])
		text = rest[close+1:]
	}
}
