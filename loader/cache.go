package loader

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"os"
	"path/filepath"
	"sync"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/polynizer/fretpath/chord"
)

// tableCacheSchema is bumped whenever tablePayload changes shape.
const tableCacheSchema uint16 = 1

// TableCache keeps msgpack snapshots of parsed chord tables in a directory.
//
// A snapshot is keyed by the absolute source path and is valid only while
// the source keeps the size and modification time it had when the snapshot
// was written. Stale or unreadable snapshots are rebuilt from the source.
//
// A nil *TableCache is valid and simply parses the source every time.
// Safe for concurrent use.
type TableCache struct {
	mu  sync.RWMutex
	dir string
}

// tablePayload is the on-disk form of a parsed table.
type tablePayload struct {
	Schema  uint16
	Source  string
	Size    int64
	ModTime int64 // UnixNano

	Names   []string
	Records []chord.Record
}

// OpenTableCache creates dir if needed and returns a cache rooted there.
// An empty dir disables caching and returns a nil cache.
func OpenTableCache(dir string) (*TableCache, error) {
	if dir == "" {
		return nil, nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &TableCache{dir: dir}, nil
}

// Load returns the table at path, from a snapshot when one is current.
//
// The second return value reports whether the snapshot was used. Failing to
// write a fresh snapshot is not an error; the parsed table is still returned.
func (c *TableCache) Load(path string) (*chord.Table, bool, error) {
	if c == nil {
		tbl, err := LoadTable(path)
		return tbl, false, err
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, false, err
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, false, err
	}

	var p tablePayload
	if ok, _ := c.get(abs, &p); ok && p.fresh(abs, info) {
		tbl, err := p.table()
		if err == nil {
			return tbl, true, nil
		}
	}

	tbl, err := LoadTable(abs)
	if err != nil {
		return nil, false, err
	}
	_ = c.put(abs, newTablePayload(abs, info, tbl))

	return tbl, false, nil
}

// Drop removes the snapshot of path, if any.
func (c *TableCache) Drop(path string) error {
	if c == nil {
		return nil
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	err = os.Remove(c.pathFor(abs))
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

func (c *TableCache) pathFor(abs string) string {
	sum := sha256.Sum256([]byte(abs))
	return filepath.Join(c.dir, "tables", hex.EncodeToString(sum[:])+".mp")
}

func (c *TableCache) put(abs string, payload *tablePayload) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.pathFor(abs)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	defer os.Remove(f.Name())

	if err = msgpack.NewEncoder(f).Encode(payload); err != nil {
		f.Close()
		return err
	}
	if err = f.Close(); err != nil {
		return err
	}
	// Atomic replace.
	return os.Rename(f.Name(), p)
}

func (c *TableCache) get(abs string, out *tablePayload) (bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	f, err := os.Open(c.pathFor(abs))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	defer f.Close()

	if err = msgpack.NewDecoder(f).Decode(out); err != nil {
		return false, err
	}
	return true, nil
}

func newTablePayload(abs string, info os.FileInfo, tbl *chord.Table) *tablePayload {
	names := tbl.Names()
	p := &tablePayload{
		Schema:  tableCacheSchema,
		Source:  abs,
		Size:    info.Size(),
		ModTime: info.ModTime().UnixNano(),
		Names:   names,
		Records: make([]chord.Record, len(names)),
	}
	for i, name := range names {
		p.Records[i], _ = tbl.Lookup(name)
	}
	return p
}

// fresh reports whether p still describes the file at abs.
func (p *tablePayload) fresh(abs string, info os.FileInfo) bool {
	return p.Schema == tableCacheSchema &&
		p.Source == abs &&
		p.Size == info.Size() &&
		p.ModTime == info.ModTime().UnixNano() &&
		len(p.Names) == len(p.Records)
}

func (p *tablePayload) table() (*chord.Table, error) {
	tbl := chord.NewTable()
	for i, name := range p.Names {
		if err := tbl.Add(name, p.Records[i]); err != nil {
			return nil, err
		}
	}
	return tbl, nil
}
