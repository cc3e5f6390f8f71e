package driver

import (
	"encoding/hex"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/vmihailenco/msgpack/v5"

	"druim/internal/project"
	"druim/internal/token"
)

// Current schema version - increment when tokenPayload format changes
const tokenCacheSchemaVersion uint16 = 1

// TokenCache stores lexed token streams on disk keyed by the source
// content hash, so unchanged files skip the lexer on repeat runs.
// Thread-safe for concurrent access.
type TokenCache struct {
	mu  sync.RWMutex
	dir string
}

type tokenPayload struct {
	// Schema version for safe invalidation when format changes
	Schema uint16
	Tokens []token.Token
}

// OpenTokenCache initializes and returns a token cache at the standard
// location (XDG_CACHE_HOME, falling back to ~/.cache).
func OpenTokenCache(app string) (*TokenCache, error) {
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
	return &TokenCache{dir: dir}, nil
}

func (c *TokenCache) pathFor(key project.Digest) string {
	hexKey := hex.EncodeToString(key[:])
	// Subdirectory "toks" keeps the cache root easy to inspect and clear.
	return filepath.Join(c.dir, "toks", hexKey+".mp")
}

// Put serializes and writes a token stream to the cache.
func (c *TokenCache) Put(key project.Digest, toks []token.Token) error {
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
	defer os.Remove(f.Name())

	enc := msgpack.NewEncoder(f)
	if err := enc.Encode(&tokenPayload{Schema: tokenCacheSchemaVersion, Tokens: toks}); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	// Atomic replace
	return os.Rename(f.Name(), p)
}

// Get reads a token stream from the cache. A missing entry or a
// schema mismatch is a miss, not an error.
func (c *TokenCache) Get(key project.Digest) ([]token.Token, bool, error) {
	if c == nil {
		return nil, false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	f, err := os.Open(c.pathFor(key))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, err
	}
	defer f.Close()

	var payload tokenPayload
	if err := msgpack.NewDecoder(f).Decode(&payload); err != nil {
		return nil, false, err
	}
	if payload.Schema != tokenCacheSchemaVersion {
		return nil, false, nil
	}
	return payload.Tokens, true, nil
}
