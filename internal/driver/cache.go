package driver

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/vmihailenco/msgpack/v5"

	"lyrlint/internal/diag"
)

// Current schema version - increment when cachePayload format changes.
const cacheSchemaVersion uint16 = 1

type cacheKey [sha256.Size]byte

// ResultCache хранит результаты проверки по дайджесту содержимого файла.
// Thread-safe for concurrent access.
type ResultCache struct {
	mu  sync.RWMutex
	dir string
}

type cachedDiagnostic struct {
	Code       string
	Severity   uint8
	Line       int
	Context    string
	SourceLine string
}

type cachePayload struct {
	Schema      uint16
	Diagnostics []cachedDiagnostic
}

// OpenResultCache initializes a disk cache at the standard location.
func OpenResultCache(app string) (*ResultCache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	dir := filepath.Join(base, app, "results")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &ResultCache{dir: dir}, nil
}

// KeyFor derives the cache key from the file content and every run option
// that changes the produced diagnostics. Two runs with different disables
// or severity remapping must not share entries.
func (c *ResultCache) KeyFor(content []byte, opts Options) cacheKey {
	h := sha256.New()
	h.Write(content)
	h.Write([]byte{0})

	disabled := make([]string, 0, len(opts.DisabledRules))
	for _, d := range opts.DisabledRules {
		disabled = append(disabled, strings.ToUpper(strings.TrimSpace(d)))
	}
	sort.Strings(disabled)
	acronyms := make([]string, 0, len(opts.ExtraAcronyms))
	for _, a := range opts.ExtraAcronyms {
		acronyms = append(acronyms, strings.ToUpper(strings.TrimSpace(a)))
	}
	sort.Strings(acronyms)

	for _, d := range disabled {
		h.Write([]byte(d))
		h.Write([]byte{1})
	}
	h.Write([]byte{0})
	for _, a := range acronyms {
		h.Write([]byte(a))
		h.Write([]byte{1})
	}
	var flags byte
	if opts.IgnoreWarnings {
		flags |= 1
	}
	if opts.WarningsAsErrors {
		flags |= 2
	}
	h.Write([]byte{0, flags, byte(opts.MaxDiagnostics), byte(opts.MaxDiagnostics >> 8)})

	var key cacheKey
	copy(key[:], h.Sum(nil))
	return key
}

func (c *ResultCache) pathFor(key cacheKey) string {
	return filepath.Join(c.dir, hex.EncodeToString(key[:])+".mp")
}

// Put serializes the bag into the cache. Атомарная замена через rename.
func (c *ResultCache) Put(key cacheKey, bag *diag.Bag) error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	payload := cachePayload{Schema: cacheSchemaVersion}
	for _, d := range bag.Items() {
		payload.Diagnostics = append(payload.Diagnostics, cachedDiagnostic{
			Code:       string(d.Code),
			Severity:   uint8(d.Severity),
			Line:       d.Line,
			Context:    d.Context,
			SourceLine: d.SourceLine,
		})
	}

	p := c.pathFor(key)
	f, err := os.CreateTemp(c.dir, "tmp-*")
	if err != nil {
		return err
	}
	defer func() { _ = os.Remove(f.Name()) }()

	if err := msgpack.NewEncoder(f).Encode(&payload); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(f.Name(), p)
}

// Get reads a cached bag. Returns false on miss, schema mismatch, or any
// decode problem — a broken entry is treated as a miss, never an error.
func (c *ResultCache) Get(key cacheKey, maxDiagnostics int) (*diag.Bag, bool) {
	if c == nil {
		return nil, false
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	f, err := os.Open(c.pathFor(key))
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			// Повреждённый или недоступный файл считаем промахом.
			return nil, false
		}
		return nil, false
	}
	defer func() { _ = f.Close() }()

	var payload cachePayload
	if err := msgpack.NewDecoder(f).Decode(&payload); err != nil {
		return nil, false
	}
	if payload.Schema != cacheSchemaVersion {
		return nil, false
	}
	bag := diag.NewBag(maxDiagnostics)
	for _, d := range payload.Diagnostics {
		code := diag.Code(d.Code)
		if !diag.Known(code) {
			// Запись от другой версии реестра: промах.
			return nil, false
		}
		bag.Add(diag.Diagnostic{
			Code:       code,
			Severity:   diag.Severity(d.Severity),
			Line:       d.Line,
			Context:    d.Context,
			SourceLine: d.SourceLine,
		})
	}
	return bag, true
}
