package driver_test

import (
	"testing"

	"druim/internal/driver"
	"druim/internal/lexer"
	"druim/internal/project"
	"druim/internal/source"
	"druim/internal/token"
)

func openCache(t *testing.T) *driver.TokenCache {
	t.Helper()
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	c, err := driver.OpenTokenCache("druim-test")
	if err != nil {
		t.Fatalf("OpenTokenCache: %v", err)
	}
	return c
}

func lexText(t *testing.T, text string) []token.Token {
	t.Helper()
	toks, lerr := lexer.New(source.New(text)).Tokenize()
	if lerr != nil {
		t.Fatalf("lexing %q failed: %v", text, lerr)
	}
	return toks
}

func TestTokenCacheRoundTrip(t *testing.T) {
	c := openCache(t)
	text := `a = 1; b = "hi"; c :> a;`
	toks := lexText(t, text)
	key := project.HashText(text)

	if err := c.Put(key, toks); err != nil {
		t.Fatalf("Put: %v", err)
	}
	got, hit, err := c.Get(key)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !hit {
		t.Fatal("want a cache hit")
	}
	if len(got) != len(toks) {
		t.Fatalf("got %d tokens, want %d", len(got), len(toks))
	}
	for i := range toks {
		if got[i] != toks[i] {
			t.Errorf("token %d = %+v, want %+v", i, got[i], toks[i])
		}
	}
}

func TestTokenCacheMiss(t *testing.T) {
	c := openCache(t)
	_, hit, err := c.Get(project.HashText("never stored"))
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if hit {
		t.Fatal("want a miss")
	}
}

func TestTokenCacheNilIsInert(t *testing.T) {
	var c *driver.TokenCache
	if err := c.Put(project.HashText("x"), nil); err != nil {
		t.Fatalf("Put on nil cache: %v", err)
	}
	_, hit, err := c.Get(project.HashText("x"))
	if err != nil || hit {
		t.Fatalf("Get on nil cache: hit=%v err=%v", hit, err)
	}
}

func TestTokenizeServesFromCache(t *testing.T) {
	c := openCache(t)
	dir := t.TempDir()
	path := writeSource(t, dir, "a.dm", "x = 1;\n")
	opts := driver.Options{Cache: c}

	first, err := driver.Tokenize(path, opts)
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}
	second, err := driver.Tokenize(path, opts)
	if err != nil {
		t.Fatalf("Tokenize (cached): %v", err)
	}
	if len(first.Tokens) != len(second.Tokens) {
		t.Fatalf("cached stream has %d tokens, want %d", len(second.Tokens), len(first.Tokens))
	}
	for i := range first.Tokens {
		if first.Tokens[i] != second.Tokens[i] {
			t.Errorf("token %d = %+v, want %+v", i, second.Tokens[i], first.Tokens[i])
		}
	}
}
