package driver

import (
	"crypto/sha256"
	"encoding/hex"
	"os"
	"path/filepath"
	"sync"

	"github.com/vmihailenco/msgpack/v5"

	"jstyle/internal/diag"
	"jstyle/internal/engine"
	"jstyle/internal/source"
)

// Bump when the payload layout changes; old entries then read as
// misses instead of garbage.
const cacheSchemaVersion uint16 = 1

// ResultCache stores lint results on disk, keyed by content hash plus
// config digest. Spans inside a payload are file-local offsets, so an
// entry stays valid across runs where the file gets a different id.
// Safe for concurrent use.
type ResultCache struct {
	mu  sync.RWMutex
	dir string
}

// OpenResultCache initializes the cache under the user cache dir
// (XDG_CACHE_HOME aware).
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

// OpenResultCacheAt uses an explicit directory; tests rely on this.
func OpenResultCacheAt(dir string) (*ResultCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &ResultCache{dir: dir}, nil
}

type cachedEdit struct {
	Start   uint32
	End     uint32
	NewText string
	OldText string
}

type cachedFix struct {
	ID            string
	Title         string
	Applicability uint8
	IsPreferred   bool
	Edits         []cachedEdit
}

type cachedNote struct {
	Start uint32
	End   uint32
	Msg   string
}

type cachedDiag struct {
	Rule     string
	Severity uint8
	Message  string
	Start    uint32
	End      uint32
	Notes    []cachedNote
	Fixes    []cachedFix
}

type cachePayload struct {
	Schema      uint16
	TokenCount  int
	Truncated   bool
	Diagnostics []cachedDiag
}

func (c *ResultCache) keyFor(file *source.File, cfgDigest string) string {
	h := sha256.New()
	h.Write(file.Hash[:])
	h.Write([]byte(cfgDigest))
	return hex.EncodeToString(h.Sum(nil))
}

func (c *ResultCache) pathFor(key string) string {
	return filepath.Join(c.dir, key+".mp")
}

// Get returns the cached result for the file under the given config
// digest. Any read or decode problem is a miss.
func (c *ResultCache) Get(file *source.File, cfgDigest string) (*engine.Result, bool) {
	if c == nil {
		return nil, false
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	f, err := os.Open(c.pathFor(c.keyFor(file, cfgDigest)))
	if err != nil {
		return nil, false
	}
	defer f.Close() //nolint:errcheck // read-only handle

	var payload cachePayload
	if err := msgpack.NewDecoder(f).Decode(&payload); err != nil {
		return nil, false
	}
	if payload.Schema != cacheSchemaVersion {
		return nil, false
	}
	return rebind(&payload, file), true
}

// Put stores a result. Writes go through a temp file and rename so a
// crash never leaves a torn entry.
func (c *ResultCache) Put(file *source.File, cfgDigest string, res *engine.Result) {
	if c == nil || res == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	payload := flatten(res)
	p := c.pathFor(c.keyFor(file, cfgDigest))
	f, err := os.CreateTemp(c.dir, "tmp-*")
	if err != nil {
		return
	}
	name := f.Name()
	encodeErr := msgpack.NewEncoder(f).Encode(payload)
	closeErr := f.Close()
	if encodeErr != nil || closeErr != nil {
		os.Remove(name) //nolint:errcheck // best effort cleanup
		return
	}
	if err := os.Rename(name, p); err != nil {
		os.Remove(name) //nolint:errcheck // best effort cleanup
	}
}

// Clear wipes all cached results.
func (c *ResultCache) Clear() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	entries, err := os.ReadDir(c.dir)
	if err != nil {
		return err
	}
	var firstErr error
	for _, e := range entries {
		if err := os.Remove(filepath.Join(c.dir, e.Name())); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func flatten(res *engine.Result) *cachePayload {
	payload := &cachePayload{
		Schema:      cacheSchemaVersion,
		TokenCount:  res.TokenCount,
		Truncated:   res.Truncated,
		Diagnostics: make([]cachedDiag, 0, len(res.Diagnostics)),
	}
	for _, d := range res.Diagnostics {
		cd := cachedDiag{
			Rule:     d.Rule,
			Severity: uint8(d.Severity),
			Message:  d.Message,
			Start:    d.Primary.Start,
			End:      d.Primary.End,
		}
		for _, n := range d.Notes {
			cd.Notes = append(cd.Notes, cachedNote{Start: n.Span.Start, End: n.Span.End, Msg: n.Msg})
		}
		for _, fx := range d.Fixes {
			cf := cachedFix{
				ID:            fx.ID,
				Title:         fx.Title,
				Applicability: uint8(fx.Applicability),
				IsPreferred:   fx.IsPreferred,
			}
			for _, e := range fx.Edits {
				cf.Edits = append(cf.Edits, cachedEdit{
					Start:   e.Span.Start,
					End:     e.Span.End,
					NewText: e.NewText,
					OldText: e.OldText,
				})
			}
			cd.Fixes = append(cd.Fixes, cf)
		}
		payload.Diagnostics = append(payload.Diagnostics, cd)
	}
	return payload
}

// rebind reconstructs an engine.Result against the file's current id.
// The fixed content is not cached; it is recomputed only when a caller
// actually fixes, which keeps payloads small.
func rebind(payload *cachePayload, file *source.File) *engine.Result {
	res := &engine.Result{
		FileID:     file.ID,
		Path:       file.Path,
		TokenCount: payload.TokenCount,
		Truncated:  payload.Truncated,
	}
	for _, cd := range payload.Diagnostics {
		d := diag.Diagnostic{
			Rule:     cd.Rule,
			Severity: diag.Severity(cd.Severity),
			Message:  cd.Message,
			Primary:  source.Span{File: file.ID, Start: cd.Start, End: cd.End},
		}
		for _, n := range cd.Notes {
			d.Notes = append(d.Notes, diag.Note{
				Span: source.Span{File: file.ID, Start: n.Start, End: n.End},
				Msg:  n.Msg,
			})
		}
		for _, cf := range cd.Fixes {
			fx := diag.Fix{
				ID:            cf.ID,
				Title:         cf.Title,
				Applicability: diag.Applicability(cf.Applicability),
				IsPreferred:   cf.IsPreferred,
			}
			for _, e := range cf.Edits {
				fx.Edits = append(fx.Edits, diag.TextEdit{
					Span:    source.Span{File: file.ID, Start: e.Start, End: e.End},
					NewText: e.NewText,
					OldText: e.OldText,
				})
			}
			d.Fixes = append(d.Fixes, fx)
		}
		if d.Fixable() {
			res.FixableCount++
		}
		res.Diagnostics = append(res.Diagnostics, d)
	}
	return res
}
