package cache

import (
	"context"
	"strings"
	"testing"
)

func TestNullCache(t *testing.T) {
	ctx := context.Background()
	c := NewNullCache()
	defer c.Close()

	// Get always returns miss
	data, hit, err := c.Get(ctx, "key")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if hit {
		t.Error("NullCache.Get should always return miss")
	}
	if data != nil {
		t.Error("NullCache.Get should return nil data")
	}

	// Set does nothing (no error)
	if err := c.Set(ctx, "key", []byte("value")); err != nil {
		t.Errorf("Set error: %v", err)
	}

	// Still a miss after Set
	_, hit, _ = c.Get(ctx, "key")
	if hit {
		t.Error("NullCache should not store data")
	}

	// Delete does nothing (no error)
	if err := c.Delete(ctx, "key"); err != nil {
		t.Errorf("Delete error: %v", err)
	}
}

func TestFileCacheRoundTrip(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache error: %v", err)
	}
	defer c.Close()

	if _, hit, _ := c.Get(ctx, "missing"); hit {
		t.Error("expected miss for unknown key")
	}

	if err := c.Set(ctx, "preview", []byte("png-bytes")); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	data, hit, err := c.Get(ctx, "preview")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if !hit || string(data) != "png-bytes" {
		t.Errorf("Get = %q, %v", data, hit)
	}

	if err := c.Delete(ctx, "preview"); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	if _, hit, _ := c.Get(ctx, "preview"); hit {
		t.Error("expected miss after delete")
	}

	// Deleting again is not an error
	if err := c.Delete(ctx, "preview"); err != nil {
		t.Errorf("second Delete error: %v", err)
	}
}

func TestFileCachePathStable(t *testing.T) {
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if c.Path("k") != c.Path("k") {
		t.Error("Path should be stable for a key")
	}
	if c.Path("a") == c.Path("b") {
		t.Error("different keys should map to different paths")
	}
	if !strings.HasSuffix(c.Path("k"), ".png") {
		t.Error("cache files should carry a .png extension")
	}
}

func TestHash(t *testing.T) {
	// Test determinism
	h1 := Hash([]byte("hello"))
	h2 := Hash([]byte("hello"))
	if h1 != h2 {
		t.Error("Hash should be deterministic")
	}

	// Test different inputs produce different hashes
	h3 := Hash([]byte("world"))
	if h1 == h3 {
		t.Error("Different inputs should produce different hashes")
	}

	// Test hash length (SHA-256 produces 64 hex chars)
	if len(h1) != 64 {
		t.Errorf("Hash length should be 64, got %d", len(h1))
	}
}

func TestKey(t *testing.T) {
	k1 := Key("preview", "text", 64, "center")
	k2 := Key("preview", "text", 64, "center")
	if k1 != k2 {
		t.Error("Key should be deterministic")
	}
	if !strings.HasPrefix(k1, "preview:") {
		t.Errorf("Key = %q, want preview: prefix", k1)
	}
	if k1 == Key("preview", "text", 64, "left") {
		t.Error("different parts should produce different keys")
	}
}
