package cache

import "testing"

func TestLRUGetPut(t *testing.T) {
	c := NewLRU(4)
	if _, ok := c.Get("a"); ok {
		t.Fatalf("empty cache must miss")
	}
	c.Put("a", 1.5)
	if v, ok := c.Get("a"); !ok || v != 1.5 {
		t.Fatalf("Get(a)=%v,%v, want 1.5,true", v, ok)
	}
	c.Put("a", 2.5)
	if v, _ := c.Get("a"); v != 2.5 {
		t.Fatalf("upsert kept stale value %v", v)
	}
	if c.Len() != 1 {
		t.Fatalf("Len=%d after upsert, want 1", c.Len())
	}
}

func TestLRUEvictsOldest(t *testing.T) {
	c := NewLRU(2)
	c.Put("a", 1)
	c.Put("b", 2)
	c.Put("c", 3)
	if _, ok := c.Get("a"); ok {
		t.Fatalf("oldest entry must be evicted at capacity")
	}
	if _, ok := c.Get("b"); !ok {
		t.Fatalf("entry b must survive")
	}
	if _, ok := c.Get("c"); !ok {
		t.Fatalf("entry c must survive")
	}
}

func TestLRUGetRefreshesRecency(t *testing.T) {
	c := NewLRU(2)
	c.Put("a", 1)
	c.Put("b", 2)
	// Touching a makes b the eviction victim.
	c.Get("a")
	c.Put("c", 3)
	if _, ok := c.Get("a"); !ok {
		t.Fatalf("recently read entry must not be evicted")
	}
	if _, ok := c.Get("b"); ok {
		t.Fatalf("least recently used entry must be evicted")
	}
}

func TestLRUMinimumCapacity(t *testing.T) {
	c := NewLRU(0)
	c.Put("a", 1)
	c.Put("b", 2)
	if c.Len() != 1 {
		t.Fatalf("Len=%d, want a capacity floor of 1", c.Len())
	}
}
