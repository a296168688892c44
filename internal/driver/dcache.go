package driver

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/kdkasad/westwood/internal/diag"
	"github.com/kdkasad/westwood/internal/rules"
	"github.com/kdkasad/westwood/internal/source"
)

// Current schema version - increment when diskPayload format changes
const diskCacheSchemaVersion uint16 = 1

// Digest keys cache entries by file content and rule configuration.
type Digest = [sha256.Size]byte

// DiskCache stores lint results keyed by content digest, so repeated
// runs over an unchanged file skip parsing entirely.
// Thread-safe for concurrent access.
type DiskCache struct {
	mu  sync.RWMutex
	dir string
}

// diskPayload is the serialized form of a cache entry. Spans carry
// precomputed positions because a cache hit has no syntax tree to
// recompute them from. Rule descriptions are stored as codes and
// re-resolved on load, keeping the in-memory pointer identity that
// formatters rely on.
type diskPayload struct {
	// Schema version for safe invalidation when format changes
	Schema uint16

	Diagnostics []cachedDiagnostic
}

type cachedDiagnostic struct {
	RuleCode   string // empty when the diagnostic has no rule
	Severity   uint8
	Message    string
	Violations []cachedSpan
	References []cachedSpan
	Notes      []string
	Suggestion string
}

type cachedSpan struct {
	Filename           string
	StartByte, EndByte uint32
	StartRow, StartCol int
	EndRow, EndCol     int
	Label              string
}

// OpenDiskCache initializes and returns a disk cache at the standard location.
func OpenDiskCache(app string) (*DiskCache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	dir := filepath.Join(base, app)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskCache{dir: dir}, nil
}

func (c *DiskCache) pathFor(key Digest) string {
	hexKey := hex.EncodeToString(key[:])
	// Results live in a subdirectory for easy manual cleanup.
	return filepath.Join(c.dir, "results", hexKey+".mp")
}

// put serializes and writes a result set to the disk cache.
func (c *DiskCache) put(key Digest, diagnostics []diag.Diagnostic) error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	defer func() {
		if err := os.Remove(f.Name()); err != nil && !errors.Is(err, os.ErrNotExist) {
			fmt.Printf("failed to remove temp file: %v", err)
		}
	}()

	enc := msgpack.NewEncoder(f)
	if err := enc.Encode(toDiskPayload(diagnostics)); err != nil {
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	// Atomic replace
	return os.Rename(f.Name(), p)
}

// get reads a result set from the disk cache. A payload whose schema
// or rule codes no longer match the current binary counts as a miss.
func (c *DiskCache) get(filename string, key Digest) ([]diag.Diagnostic, bool) {
	if c == nil {
		return nil, false
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	f, err := os.Open(c.pathFor(key))
	if err != nil {
		return nil, false
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			panic(closeErr)
		}
	}()
	var payload diskPayload
	if err := msgpack.NewDecoder(f).Decode(&payload); err != nil {
		return nil, false
	}
	return fromDiskPayload(&payload, filename)
}

// DropAll invalidates the cache, useful after format changes.
func (c *DiskCache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	old := c.dir + ".old-" + time.Now().Format("20060102150405")
	if err := os.Rename(c.dir, old); err != nil {
		return err
	}
	return os.RemoveAll(old)
}

// cacheKey digests the file content together with the rule options,
// so changing the configuration invalidates prior results.
func cacheKey(code []byte, opts rules.Options) Digest {
	h := sha256.New()
	h.Write(code)
	fmt.Fprintf(h, "|max=%d", opts.MaxLineDiagnostics)
	disabled := append([]string(nil), opts.Disabled...)
	sort.Strings(disabled)
	for _, rc := range disabled {
		fmt.Fprintf(h, "|off=%s", rc)
	}
	var key Digest
	copy(key[:], h.Sum(nil))
	return key
}

func toDiskPayload(diagnostics []diag.Diagnostic) *diskPayload {
	payload := &diskPayload{Schema: diskCacheSchemaVersion}
	payload.Diagnostics = make([]cachedDiagnostic, len(diagnostics))
	for i, d := range diagnostics {
		cd := cachedDiagnostic{
			Severity:   uint8(d.Severity),
			Message:    d.Message,
			Violations: spansToDisk(d.Violations),
			References: spansToDisk(d.References),
			Notes:      d.Notes,
			Suggestion: d.Suggestion,
		}
		if d.Rule != nil {
			cd.RuleCode = d.Rule.Code()
		}
		payload.Diagnostics[i] = cd
	}
	return payload
}

func fromDiskPayload(payload *diskPayload, filename string) ([]diag.Diagnostic, bool) {
	if payload.Schema != diskCacheSchemaVersion {
		return nil, false
	}
	diagnostics := make([]diag.Diagnostic, len(payload.Diagnostics))
	for i, cd := range payload.Diagnostics {
		d := diag.Diagnostic{
			Severity:   diag.Severity(cd.Severity),
			Message:    cd.Message,
			Violations: spansFromDisk(cd.Violations, filename),
			References: spansFromDisk(cd.References, filename),
			Notes:      cd.Notes,
			Suggestion: cd.Suggestion,
		}
		if cd.RuleCode != "" {
			d.Rule = rules.DescriptionByCode(cd.RuleCode)
			if d.Rule == nil {
				return nil, false
			}
		}
		diagnostics[i] = d
	}
	return diagnostics, true
}

func spansToDisk(spans []diag.Span) []cachedSpan {
	if spans == nil {
		return nil
	}
	out := make([]cachedSpan, len(spans))
	for i, s := range spans {
		out[i] = cachedSpan{
			Filename:  s.Filename,
			StartByte: s.Range.StartByte,
			EndByte:   s.Range.EndByte,
			StartRow:  s.Range.Start.Row,
			StartCol:  s.Range.Start.Col,
			EndRow:    s.Range.End.Row,
			EndCol:    s.Range.End.Col,
			Label:     s.Label,
		}
	}
	return out
}

func spansFromDisk(spans []cachedSpan, filename string) []diag.Span {
	if spans == nil {
		return nil
	}
	out := make([]diag.Span, len(spans))
	for i, s := range spans {
		name := s.Filename
		if name == "" {
			name = filename
		}
		out[i] = diag.Span{
			Filename: name,
			Range: source.Range{
				StartByte: s.StartByte,
				EndByte:   s.EndByte,
				Start:     source.Pos{Row: s.StartRow, Col: s.StartCol},
				End:       source.Pos{Row: s.EndRow, Col: s.EndCol},
			},
			Label: s.Label,
		}
	}
	return out
}
