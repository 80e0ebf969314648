package driver

import (
	"crypto/sha256"
	"encoding/hex"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/vmihailenco/msgpack/v5"

	"istudio/internal/ir"
)

// diskCacheSchemaVersion guards against decoding a payload written by an
// older, incompatible CachedModule shape.
const diskCacheSchemaVersion uint16 = 1

// Digest is a content hash, used both as the disk cache key and as the
// identity of a compiled file for change detection.
type Digest [sha256.Size]byte

// HashContent returns the SHA-256 digest of a file's raw bytes.
func HashContent(content []byte) Digest {
	return sha256.Sum256(content)
}

// DiskCache persists lowered IR module skeletons under a content-hash key,
// so an unchanged file's lowering (and downstream constant folding) can be
// skipped on the next build. Safe for concurrent use from CompileDir.
type DiskCache struct {
	mu  sync.RWMutex
	dir string
}

// OpenDiskCache creates (if needed) and returns the cache directory rooted
// at dir, typically ".istudio-cache" beside a project manifest.
func OpenDiskCache(dir string) (*DiskCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskCache{dir: dir}, nil
}

// CachedModule is the on-disk shape of a lowered ir.Module: msgpack encodes
// it directly, since every field is already exported and serializable.
type CachedModule struct {
	Schema    uint16
	Name      string
	Structs   []ir.Struct
	Functions []ir.Function
}

func fromModule(m *ir.Module) *CachedModule {
	return &CachedModule{
		Schema:    diskCacheSchemaVersion,
		Name:      m.Name,
		Structs:   m.Structs,
		Functions: m.Functions,
	}
}

func (c *CachedModule) toModule() *ir.Module {
	return &ir.Module{Name: c.Name, Structs: c.Structs, Functions: c.Functions}
}

func (c *DiskCache) pathFor(key Digest) string {
	return filepath.Join(c.dir, hex.EncodeToString(key[:])+".mp")
}

// Put serializes and atomically writes module under key.
func (c *DiskCache) Put(key Digest, module *CachedModule) error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	path := c.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(path), "tmp-*")
	if err != nil {
		return err
	}
	tmpName := f.Name()
	defer os.Remove(tmpName)

	if err := msgpack.NewEncoder(f).Encode(module); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(tmpName, path)
}

// Get reads and deserializes the module stored under key, if present.
func (c *DiskCache) Get(key Digest, out *CachedModule) (bool, error) {
	if c == nil {
		return false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	f, err := os.Open(c.pathFor(key))
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	defer f.Close()

	if err := msgpack.NewDecoder(f).Decode(out); err != nil {
		return false, err
	}
	if out.Schema != diskCacheSchemaVersion {
		return false, nil
	}
	return true, nil
}

// moduleNameFor derives a stable IR module name from a source path: the
// base filename without its extension.
func moduleNameFor(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
