package cache

import (
	"bytes"
	"fmt"
	"sync"
	"testing"
)

func TestNewCache(t *testing.T) {
	t.Run("String cache", func(t *testing.T) {
		cache := NewCache[string, string]()
		if cache == nil {
			t.Fatal("Expected non-nil cache")
		}
		if cache.items == nil {
			t.Fatal("Expected items map to be initialized")
		}
	})

	t.Run("Complex types cache", func(t *testing.T) {
		type TestStruct struct {
			ID   int
			Name string
		}
		cache := NewCache[string, *TestStruct]()
		if cache == nil {
			t.Fatal("Expected non-nil cache")
		}
	})
}

func TestCache_BasicOperations(t *testing.T) {
	cache := NewCache[string, string]()

	t.Run("Set and Get", func(t *testing.T) {
		cache.Set("test-key", "test-value")

		retrieved, found := cache.Get("test-key")
		if !found {
			t.Fatal("Expected to find the key")
		}
		if retrieved != "test-value" {
			t.Errorf("Expected %q, got %q", "test-value", retrieved)
		}
	})

	t.Run("Get non-existent key", func(t *testing.T) {
		val, found := cache.Get("missing")
		if found {
			t.Error("Expected not to find a missing key")
		}
		if val != "" {
			t.Errorf("Expected zero value, got %q", val)
		}
	})

	t.Run("Delete", func(t *testing.T) {
		cache.Set("to-delete", "v")
		cache.Delete("to-delete")
		if _, found := cache.Get("to-delete"); found {
			t.Error("Expected key to be deleted")
		}
	})

	t.Run("Len and Clear", func(t *testing.T) {
		cache.Clear()
		cache.Set("a", "1")
		cache.Set("b", "2")
		if cache.Len() != 2 {
			t.Errorf("Expected 2 items, got %d", cache.Len())
		}
		cache.Clear()
		if cache.Len() != 0 {
			t.Errorf("Expected empty cache, got %d", cache.Len())
		}
	})
}

func TestCache_Concurrency(t *testing.T) {
	cache := NewCache[string, int]()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			key := fmt.Sprintf("key-%d", i)
			cache.Set(key, i)
			if v, ok := cache.Get(key); !ok || v != i {
				t.Errorf("Expected %s to hold %d, got %d (%v)", key, i, v, ok)
			}
		}(i)
	}
	wg.Wait()

	if cache.Len() != 50 {
		t.Errorf("Expected 50 items, got %d", cache.Len())
	}
}

func TestRenderedContentCache(t *testing.T) {
	ClearRenderedContentCache()

	html := []byte("<p>This is the first post content.</p>")
	SetRenderedContent("hash1", "classic", "github", html)

	t.Run("Hit", func(t *testing.T) {
		cached, found := GetRenderedContent("hash1", "classic", "github")
		if !found {
			t.Fatal("Expected cached content")
		}
		if !bytes.Equal(cached, html) {
			t.Errorf("Expected %q, got %q", html, cached)
		}
	})

	t.Run("Renderer and theme are part of the key", func(t *testing.T) {
		if _, found := GetRenderedContent("hash1", "mmark", "github"); found {
			t.Error("Expected miss for another renderer")
		}
		if _, found := GetRenderedContent("hash1", "classic", "monokai"); found {
			t.Error("Expected miss for another syntax theme")
		}
	})

	t.Run("Clear", func(t *testing.T) {
		ClearRenderedContentCache()
		if _, found := GetRenderedContent("hash1", "classic", "github"); found {
			t.Error("Expected cache to be cleared")
		}
	})
}

func TestAssetCaches(t *testing.T) {
	t.Run("Static hashes are keyed by URL path", func(t *testing.T) {
		SetStaticHash("/static/style.css", "abc")
		if hash, ok := GetStaticHash("/static/style.css"); !ok || hash != "abc" {
			t.Errorf("Expected static hash abc, got %q (%v)", hash, ok)
		}
		if _, ok := GetStaticHash("/static/missing.js"); ok {
			t.Error("Expected no hash for an unknown asset")
		}
	})

	t.Run("Syntax CSS is keyed by theme", func(t *testing.T) {
		SetSyntaxCSS("github", ".chroma{}")
		if css, ok := GetSyntaxCSS("github"); !ok || css != ".chroma{}" {
			t.Errorf("Expected syntax css, got %q (%v)", css, ok)
		}
		if _, ok := GetSyntaxCSS("monokai"); ok {
			t.Error("Expected a miss for a theme never generated")
		}
	})
}
