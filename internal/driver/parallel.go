package driver

import (
	"context"
	"os"
	"runtime"

	"golang.org/x/sync/errgroup"

	"lyrlint/internal/diag"
	"lyrlint/internal/lint"
)

// LintAll lints every file and returns results in input order. Files are
// independent: each worker gets its own suppression state and Bag, the
// shared Linter carries only read-only configuration, so the only
// coordination needed is the result slot per index.
func LintAll(ctx context.Context, files []string, linter *lint.Linter, opts Options) ([]FileResult, error) {
	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}
	if jobs > len(files) {
		jobs = len(files)
	}
	if jobs < 1 {
		jobs = 1
	}

	var cache *ResultCache
	if opts.EnableCache {
		// Кэш опционален: если не открылся, просто работаем без него.
		if c, err := OpenResultCache("lyrlint"); err == nil {
			cache = c
		}
	}

	for _, f := range files {
		publish(opts.Progress, Event{File: f, Status: StatusQueued})
	}

	results := make([]FileResult, len(files))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			publish(opts.Progress, Event{File: path, Status: StatusLinting})
			results[i] = lintOne(path, linter, opts, cache)
			publish(opts.Progress, Event{File: path, Status: statusFor(results[i])})
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func lintOne(path string, linter *lint.Linter, opts Options, cache *ResultCache) FileResult {
	data, err := os.ReadFile(path)
	if err != nil {
		bag := diag.NewBag(opts.MaxDiagnostics)
		bag.Add(diag.New(diag.ParseFailure, 0, err.Error(), ""))
		return FileResult{Path: path, Bag: bag}
	}

	var key cacheKey
	if cache != nil {
		key = cache.KeyFor(data, opts)
		if bag, ok := cache.Get(key, opts.MaxDiagnostics); ok {
			return FileResult{Path: path, Bag: bag}
		}
	}

	res := lintBytes(path, data, linter, opts)
	if cache != nil {
		// Ошибка записи в кэш не влияет на результат прогона.
		_ = cache.Put(key, res.Bag)
	}
	return res
}
