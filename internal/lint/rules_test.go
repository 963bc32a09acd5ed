package lint

import (
	"testing"

	"lyrlint/internal/ass"
	"lyrlint/internal/diag"
)

func dialogue(text string) ass.Event {
	return ass.Event{Kind: ass.EventDialogue, Text: text}
}

func lintEvents(t *testing.T, l *Linter, events ...ass.Event) []diag.Diagnostic {
	t.Helper()
	bag := diag.NewBag(0)
	l.LintDocument(&ass.Document{Events: events}, bag)
	return bag.Items()
}

func lintText(t *testing.T, text string) []diag.Diagnostic {
	t.Helper()
	return lintEvents(t, New(Options{}), dialogue(text))
}

func codesOf(diags []diag.Diagnostic) map[diag.Code]int {
	counts := make(map[diag.Code]int)
	for _, d := range diags {
		counts[d.Code]++
	}
	return counts
}

func TestChecks(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		want    []diag.Code // codes that must fire
		absent  []diag.Code // codes that must not fire
		context map[diag.Code]string
	}{
		{
			name: "clean line",
			text: "Hello there",
		},
		{
			name:    "trailing comma",
			text:    "Hello there,",
			want:    []diag.Code{diag.PunctTrailingComma},
			context: map[diag.Code]string{diag.PunctTrailingComma: ","},
		},
		{
			name: "trailing full-width comma",
			text: "こんにちは、",
			want: []diag.Code{diag.PunctTrailingComma},
		},
		{
			name: "trailing period",
			text: "The end.",
			want: []diag.Code{diag.PunctTrailingPeriod},
		},
		{
			name:   "acronym period allowed",
			text:   "Straight outta U.S.A.",
			absent: []diag.Code{diag.PunctTrailingPeriod},
		},
		{
			name:   "ellipsis not a trailing period",
			text:   "Fading out...",
			want:   []diag.Code{diag.FmtThreeDots},
			absent: []diag.Code{diag.PunctTrailingPeriod, diag.PunctMultiple},
		},
		{
			name:    "doubled dots",
			text:    "So.. yeah",
			want:    []diag.Code{diag.PunctMultiple},
			absent:  []diag.Code{diag.FmtThreeDots},
			context: map[diag.Code]string{diag.PunctMultiple: ".."},
		},
		{
			name:   "four dots",
			text:   "Hold on....",
			want:   []diag.Code{diag.PunctMultiple},
			absent: []diag.Code{diag.FmtThreeDots},
		},
		{
			name: "interrobang run",
			text: "What?!",
			want: []diag.Code{diag.PunctMultiple},
		},
		{
			name:   "mark before ellipsis tolerated",
			text:   "Wait!...",
			want:   []diag.Code{diag.FmtThreeDots},
			absent: []diag.Code{diag.PunctMultiple},
		},
		{
			name:   "question mark before ellipsis tolerated",
			text:   "Really?...",
			want:   []diag.Code{diag.FmtThreeDots},
			absent: []diag.Code{diag.PunctMultiple},
		},
		{
			name:   "mark after ellipsis flagged",
			text:   "No way...!",
			want:   []diag.Code{diag.PunctMultiple},
			absent: []diag.Code{diag.FmtThreeDots},
		},
		{
			name:    "space before punctuation",
			text:    "Hello , friend",
			want:    []diag.Code{diag.PunctSpaceBefore},
			context: map[diag.Code]string{diag.PunctSpaceBefore: ","},
		},
		{
			name:    "missing space after punctuation",
			text:    "Hello,friend",
			want:    []diag.Code{diag.PunctNoSpaceAfter},
			context: map[diag.Code]string{diag.PunctNoSpaceAfter: ",f"},
		},
		{
			name:    "shouting",
			text:    "THIS IS LOUD",
			want:    []diag.Code{diag.CapAllCaps},
			context: map[diag.Code]string{diag.CapAllCaps: "THIS IS LOUD"},
		},
		{
			name:   "acronym allow-list",
			text:   "DJ is here",
			absent: []diag.Code{diag.CapAllCaps},
		},
		{
			name:    "lowercase first letter",
			text:    "hello there",
			want:    []diag.Code{diag.CapFirstLetter},
			context: map[diag.Code]string{diag.CapFirstLetter: "hello"},
		},
		{
			name:   "brand prefix allowed",
			text:   "iPhone in my hand",
			absent: []diag.Code{diag.CapFirstLetter},
		},
		{
			name:   "caseless script skipped",
			text:   "音楽が止まらない",
			absent: []diag.Code{diag.CapFirstLetter},
		},
		{
			name: "title case",
			text: "Every Single Word Starts Upper",
			want: []diag.Code{diag.CapTitleCase},
		},
		{
			name:   "two long words are not title case",
			text:   "Good Morning to you",
			absent: []diag.Code{diag.CapTitleCase},
		},
		{
			name: "smart quotes",
			text: "“Hello” she said",
			want: []diag.Code{diag.FmtSmartQuotes},
		},
		{
			name:    "brackets",
			text:    "Something [Chorus] here",
			want:    []diag.Code{diag.CharBrackets},
			context: map[diag.Code]string{diag.CharBrackets: "["},
		},
		{
			name:   "censorship asterisks",
			text:   "What the ****",
			want:   []diag.Code{diag.CharCensorship},
			absent: []diag.Code{diag.VocalSoundEffect},
		},
		{
			name:    "number word over ten",
			text:    "I got ninety problems",
			want:    []diag.Code{diag.NumWordOverTen},
			context: map[diag.Code]string{diag.NumWordOverTen: "ninety"},
		},
		{
			name:   "number words up to ten allowed",
			text:   "One two ten times over",
			absent: []diag.Code{diag.NumWordOverTen},
		},
		{
			name:   "number word inside another word",
			text:   "The eleventh hour",
			absent: []diag.Code{diag.NumWordOverTen},
		},
		{
			name:    "multiplier",
			text:    "Run it back (x3)",
			want:    []diag.Code{diag.MultParenthesized},
			context: map[diag.Code]string{diag.MultParenthesized: "(x3)"},
		},
		{
			name: "multiplier with multiplication sign",
			text: "Run it back (× 12)",
			want: []diag.Code{diag.MultParenthesized},
		},
		{
			name:    "structure label",
			text:    "La la (Verse - Artist)",
			want:    []diag.Code{diag.VocalStructureLabel},
			context: map[diag.Code]string{diag.VocalStructureLabel: "(Verse - Artist)"},
		},
		{
			name:    "sound effect",
			text:    "Then *dial tone* silence",
			want:    []diag.Code{diag.VocalSoundEffect},
			absent:  []diag.Code{diag.CharCensorship},
			context: map[diag.Code]string{diag.VocalSoundEffect: "*dial tone*"},
		},
		{
			name: "multiplier and structure label are independent",
			text: "Hey (Chorus - Singer) again (x2)",
			want: []diag.Code{diag.MultParenthesized, diag.VocalStructureLabel},
		},
		{
			name:    "speech should follow comma",
			text:    `Then I heard "Wait for me"`,
			want:    []diag.Code{diag.SpeechNoComma},
			absent:  []diag.Code{diag.SpeechLowercase},
			context: map[diag.Code]string{diag.SpeechNoComma: `"W`},
		},
		{
			name:   "speech after comma is fine",
			text:   `She whispered, "Stay close"`,
			absent: []diag.Code{diag.SpeechNoComma, diag.SpeechLowercase},
		},
		{
			name:   "line starting with quote is fine",
			text:   `"Stay close" she whispered`,
			absent: []diag.Code{diag.SpeechNoComma},
		},
		{
			name:    "lowercase speech",
			text:    `She said, "hello there"`,
			want:    []diag.Code{diag.SpeechLowercase},
			context: map[diag.Code]string{diag.SpeechLowercase: "hello there"},
		},
		{
			name:   "capitalized speech",
			text:   `She said, "Hello there"`,
			absent: []diag.Code{diag.SpeechLowercase},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diags := lintText(t, tt.text)
			counts := codesOf(diags)
			if len(tt.want) == 0 && len(tt.absent) == 0 && len(diags) != 0 {
				t.Fatalf("expected clean line, got %v", diags)
			}
			for _, code := range tt.want {
				if counts[code] == 0 {
					t.Errorf("expected %s to fire, got %v", code, counts)
				}
			}
			for _, code := range tt.absent {
				if counts[code] != 0 {
					t.Errorf("expected %s not to fire, got %v", code, counts)
				}
			}
			for code, want := range tt.context {
				for _, d := range diags {
					if d.Code == code && d.Context != want {
						t.Errorf("%s context = %q, want %q", code, d.Context, want)
					}
				}
			}
		})
	}
}

func TestChecks_RawSpacingViews(t *testing.T) {
	t.Run("double space detected pre-collapse", func(t *testing.T) {
		counts := codesOf(lintText(t, "Hello  there"))
		if counts[diag.FmtDoubleSpace] != 1 {
			t.Errorf("expected MX301 once, got %v", counts)
		}
	})
	t.Run("edge whitespace detected pre-trim", func(t *testing.T) {
		counts := codesOf(lintText(t, " Hello there"))
		if counts[diag.FmtEdgeSpace] != 1 {
			t.Errorf("expected MX302 once, got %v", counts)
		}
	})
	t.Run("trailing whitespace trimmed before comma rule", func(t *testing.T) {
		// Запятая остаётся последним значимым символом.
		counts := codesOf(lintText(t, "Hello there,  "))
		if counts[diag.PunctTrailingComma] != 1 {
			t.Errorf("expected MX201 exactly once, got %v", counts)
		}
	})
	t.Run("forced break warning reads raw text", func(t *testing.T) {
		counts := codesOf(lintText(t, `Hello\Nthere`))
		if counts[diag.FmtForcedBreak] != 1 {
			t.Errorf("expected MX305 once, got %v", counts)
		}
	})
}

func TestChecks_OverrideTags(t *testing.T) {
	t.Run("karaoke tags allowed", func(t *testing.T) {
		counts := codesOf(lintText(t, `{\k20}La {\kf35}la {\ko10}la`))
		if counts[diag.VocalOverrideTag] != 0 {
			t.Errorf("karaoke tags must not fire MX703, got %v", counts)
		}
	})
	t.Run("one diagnostic per disallowed block", func(t *testing.T) {
		diags := lintText(t, `{\k20}La {\an8}la {\fad(200,0)}la`)
		var contexts []string
		for _, d := range diags {
			if d.Code == diag.VocalOverrideTag {
				contexts = append(contexts, d.Context)
			}
		}
		if len(contexts) != 2 {
			t.Fatalf("expected 2 MX703 diagnostics, got %d (%v)", len(contexts), contexts)
		}
		if contexts[0] != `{\an8}` || contexts[1] != `{\fad(200,0)}` {
			t.Errorf("unexpected contexts: %v", contexts)
		}
	})
}

func TestLintDocument_EmptyLinesShortCircuit(t *testing.T) {
	diags := lintEvents(t, New(Options{}),
		dialogue(""),
		dialogue("   "),
		dialogue(`{\an8}`),
	)
	if len(diags) != 0 {
		t.Errorf("empty normalized lines must produce nothing, got %v", diags)
	}
}

func TestLintDocument_LineNumbersCountDialogueOnly(t *testing.T) {
	diags := lintEvents(t, New(Options{}),
		comment("", "just a note"),
		dialogue("Hello there"),
		ass.Event{Kind: ass.EventOther, Text: "ignored,"},
		dialogue("Hello there,"),
	)
	if len(diags) != 1 {
		t.Fatalf("expected exactly one diagnostic, got %v", diags)
	}
	if diags[0].Line != 2 {
		t.Errorf("line = %d, want 2 (dialogue events only)", diags[0].Line)
	}
	if diags[0].SourceLine != "Hello there," {
		t.Errorf("source line = %q", diags[0].SourceLine)
	}
}

func TestLintDocument_FileWideDirectives(t *testing.T) {
	l := New(Options{})
	diags := lintEvents(t, l,
		comment("lint-disable", ""),
		dialogue("First line,"),
		dialogue("Second line,"),
		comment("lint-enable", ""),
		dialogue("Third line,"),
	)
	counts := codesOf(diags)
	if counts[diag.PunctTrailingComma] != 1 {
		t.Fatalf("expected exactly one MX201 after lint-enable, got %v", diags)
	}
	if diags[0].Line != 3 {
		t.Errorf("diagnostic on line %d, want 3", diags[0].Line)
	}
}

func TestLintDocument_DirectiveWithCodes(t *testing.T) {
	l := New(Options{})
	diags := lintEvents(t, l,
		comment("lint-disable", "MX201"),
		dialogue("Commas everywhere,"),
		dialogue("shouty SHOUTING"),
	)
	counts := codesOf(diags)
	if counts[diag.PunctTrailingComma] != 0 {
		t.Error("MX201 should be file-disabled")
	}
	if counts[diag.CapAllCaps] != 1 {
		t.Error("other rules must keep firing")
	}
}

func TestLintDocument_LineSuppression(t *testing.T) {
	l := New(Options{})
	diags := lintEvents(t, l,
		ass.Event{Kind: ass.EventDialogue, Text: "Skipped here,", Effect: "skip-MX201"},
		dialogue("Not skipped here,"),
	)
	if len(diags) != 1 {
		t.Fatalf("expected one diagnostic, got %v", diags)
	}
	if diags[0].Line != 2 {
		t.Errorf("suppression leaked to line %d", diags[0].Line)
	}
}

func TestLintDocument_WildcardSuppression(t *testing.T) {
	l := New(Options{})
	diags := lintEvents(t, l,
		ass.Event{Kind: ass.EventDialogue, Text: "terrible,  LOUD [x]", Effect: "noqa"},
	)
	if len(diags) != 0 {
		t.Errorf("noqa must silence everything, got %v", diags)
	}
}

func TestLintDocument_GlobalDisable(t *testing.T) {
	l := New(Options{DisabledRules: []string{"mx201"}})
	for i := 0; i < 2; i++ {
		// Глобальный набор действует в каждом файле одинаково.
		diags := lintEvents(t, l, dialogue("Hello there,"))
		if len(diags) != 0 {
			t.Errorf("run %d: MX201 should be globally disabled, got %v", i, diags)
		}
	}
}

func TestLintDocument_StateResetsBetweenFiles(t *testing.T) {
	l := New(Options{})
	first := lintEvents(t, l,
		comment("lint-disable", ""),
		dialogue("Silenced here,"),
	)
	if len(first) != 0 {
		t.Fatalf("expected no diagnostics in first file, got %v", first)
	}
	second := lintEvents(t, l, dialogue("Fresh file,"))
	if len(second) != 1 {
		t.Errorf("directive leaked across files: %v", second)
	}
}

func TestLintDocument_ExtraAcronyms(t *testing.T) {
	l := New(Options{ExtraAcronyms: []string{"mtv"}})
	diags := lintEvents(t, l, dialogue("Watching MTV tonight"))
	if len(diags) != 0 {
		t.Errorf("configured acronym still fired: %v", diags)
	}
}
