package driver

import (
	"os"
	"testing"

	"lyrlint/internal/diag"
)

func openTestCache(t *testing.T) *ResultCache {
	t.Helper()
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	c, err := OpenResultCache("lyrlint")
	if err != nil {
		t.Fatal(err)
	}
	return c
}

func TestResultCache_RoundTrip(t *testing.T) {
	c := openTestCache(t)
	key := c.KeyFor([]byte("content"), Options{})

	if _, ok := c.Get(key, 0); ok {
		t.Fatal("empty cache must miss")
	}

	bag := diag.NewBag(0)
	bag.Add(diag.New(diag.PunctTrailingComma, 3, ",", "line three,"))
	bag.Add(diag.New(diag.FmtThreeDots, 5, "...", "gone..."))
	if err := c.Put(key, bag); err != nil {
		t.Fatal(err)
	}

	got, ok := c.Get(key, 0)
	if !ok {
		t.Fatal("expected a hit after Put")
	}
	items := got.Items()
	if len(items) != 2 {
		t.Fatalf("items = %v", items)
	}
	if items[0].Code != diag.PunctTrailingComma || items[0].Line != 3 ||
		items[0].Context != "," || items[0].SourceLine != "line three," {
		t.Errorf("first item: %+v", items[0])
	}
	if items[1].Severity != diag.SevWarning {
		t.Errorf("severity lost in round trip: %+v", items[1])
	}
}

func TestResultCache_KeyDependsOnOptions(t *testing.T) {
	c := openTestCache(t)
	content := []byte("same bytes")

	base := c.KeyFor(content, Options{})
	variants := []Options{
		{DisabledRules: []string{"MX201"}},
		{ExtraAcronyms: []string{"MTV"}},
		{IgnoreWarnings: true},
		{WarningsAsErrors: true},
		{MaxDiagnostics: 7},
	}
	for i, opts := range variants {
		if c.KeyFor(content, opts) == base {
			t.Errorf("variant %d must produce a different key", i)
		}
	}

	// Порядок и регистр токенов не меняют ключ.
	a := c.KeyFor(content, Options{DisabledRules: []string{"mx201", "MX501"}})
	b := c.KeyFor(content, Options{DisabledRules: []string{"MX501", "MX201"}})
	if a != b {
		t.Error("token order and case must not change the key")
	}
}

func TestResultCache_CorruptEntryIsAMiss(t *testing.T) {
	c := openTestCache(t)
	key := c.KeyFor([]byte("x"), Options{})
	if err := os.WriteFile(c.pathFor(key), []byte("not msgpack"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, ok := c.Get(key, 0); ok {
		t.Error("corrupt entry must read as a miss")
	}
}

func TestResultCache_NilIsSafe(t *testing.T) {
	var c *ResultCache
	if err := c.Put(cacheKey{}, diag.NewBag(0)); err != nil {
		t.Error("nil cache Put must be a no-op")
	}
	if _, ok := c.Get(cacheKey{}, 0); ok {
		t.Error("nil cache Get must miss")
	}
}
