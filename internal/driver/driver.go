// Package driver walks the filesystem, fans lint work out across
// workers, and consults the result cache.
package driver

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"jstyle/internal/config"
	"jstyle/internal/diag"
	"jstyle/internal/engine"
	"jstyle/internal/rule"
	"jstyle/internal/source"
)

// Observer receives per-file progress callbacks. Callbacks may arrive
// from multiple goroutines.
type Observer interface {
	FileStarted(path string)
	FileDone(path string, diagnostics int, err error)
}

// Options tunes a lint run.
type Options struct {
	// Jobs caps worker goroutines; <= 0 means GOMAXPROCS.
	Jobs int
	// Cache short-circuits unchanged files; nil disables caching.
	Cache *ResultCache
	// Observer is notified as files start and finish; may be nil.
	Observer Observer
}

// FileResult pairs one file with its lint outcome.
type FileResult struct {
	Path      string
	Result    *engine.Result
	FromCache bool
	Err       error
}

// skipDirs are never descended into.
var skipDirs = map[string]bool{
	"node_modules": true,
	".git":         true,
}

// listJSFiles returns every *.js file under dir, sorted for a
// deterministic run order. Config-ignored paths are filtered out here
// so ignored files are neither read nor tokenized.
func listJSFiles(dir string, cfg *config.Resolved) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if skipDirs[d.Name()] {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(path, ".js") {
			return nil
		}
		rel, relErr := filepath.Rel(dir, path)
		if relErr != nil {
			rel = path
		}
		if cfg.Ignored(rel) || cfg.Ignored(path) {
			return nil
		}
		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

// ExpandPaths resolves a mix of files and directories into the sorted
// list of lintable files.
func ExpandPaths(paths []string, cfg *config.Resolved) ([]string, error) {
	var files []string
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return nil, err
		}
		if info.IsDir() {
			sub, err := listJSFiles(p, cfg)
			if err != nil {
				return nil, err
			}
			files = append(files, sub...)
			continue
		}
		if !cfg.Ignored(p) {
			files = append(files, p)
		}
	}
	sort.Strings(files)
	return files, nil
}

// LintPaths lints every file found under paths. Files are preloaded
// into one FileSet, then linted in parallel; results come back in file
// order regardless of completion order. A context cancellation stops
// new files from starting and returns the context error.
func LintPaths(ctx context.Context, reg *rule.Registry, cfg *config.Resolved, paths []string, opts Options) (*source.FileSet, []FileResult, error) {
	files, err := ExpandPaths(paths, cfg)
	if err != nil {
		return nil, nil, err
	}

	fileSet := source.NewFileSet()
	if len(paths) == 1 {
		if info, statErr := os.Stat(paths[0]); statErr == nil && info.IsDir() {
			fileSet.SetBaseDir(paths[0])
		}
	}

	results := make([]FileResult, len(files))
	ids := make([]source.FileID, len(files))
	for i, path := range files {
		results[i].Path = path
		id, loadErr := fileSet.Load(path)
		if loadErr != nil {
			results[i].Err = loadErr
			continue
		}
		ids[i] = id
	}
	if len(files) == 0 {
		return fileSet, results, nil
	}

	eng := engine.New(reg, cfg)
	cfgDigest := cfg.Digest()

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))

	for i := range files {
		if results[i].Err != nil {
			continue
		}
		i := i
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			path := results[i].Path
			if opts.Observer != nil {
				opts.Observer.FileStarted(path)
			}
			res, fromCache := lintOne(eng, fileSet, ids[i], cfgDigest, opts.Cache)
			results[i].Result = res
			results[i].FromCache = fromCache
			if opts.Observer != nil {
				opts.Observer.FileDone(path, len(res.Diagnostics), nil)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return fileSet, results, err
	}
	return fileSet, results, nil
}

func lintOne(eng *engine.Engine, fs *source.FileSet, id source.FileID, cfgDigest string, cache *ResultCache) (*engine.Result, bool) {
	file := fs.Get(id)
	if cache != nil {
		if res, ok := cache.Get(file, cfgDigest); ok {
			return res, true
		}
	}
	res := eng.LintFile(fs, id)
	if cache != nil {
		cache.Put(file, cfgDigest, res)
	}
	return res, false
}

// Summary aggregates a run for exit-code and reporting decisions.
type Summary struct {
	Files       int
	FromCache   int
	Failed      int
	Diagnostics int
	Errors      int
	Warnings    int
	Fixable     int
}

// Summarize folds per-file results into totals.
func Summarize(results []FileResult) Summary {
	var s Summary
	for _, fr := range results {
		s.Files++
		if fr.Err != nil {
			s.Failed++
			continue
		}
		if fr.FromCache {
			s.FromCache++
		}
		if fr.Result == nil {
			continue
		}
		s.Diagnostics += len(fr.Result.Diagnostics)
		s.Fixable += fr.Result.FixableCount
		for _, d := range fr.Result.Diagnostics {
			switch {
			case d.Severity >= diag.SevError:
				s.Errors++
			case d.Severity == diag.SevWarning:
				s.Warnings++
			}
		}
	}
	return s
}
