package cache

import (
	"testing"
	"time"
)

func TestTTLGetPut(t *testing.T) {
	c := NewTTL(4, time.Minute)
	if _, ok := c.Get("a"); ok {
		t.Fatalf("empty cache must miss")
	}
	c.Put("a", "valor")
	v, ok := c.Get("a")
	if !ok || v.(string) != "valor" {
		t.Fatalf("Get(a)=%v,%v, want valor,true", v, ok)
	}
}

func TestTTLExpiry(t *testing.T) {
	agora := time.Now()
	c := NewTTL(4, time.Minute)
	c.now = func() time.Time { return agora }

	c.Put("a", 1)
	if _, ok := c.Get("a"); !ok {
		t.Fatalf("fresh entry must hit")
	}

	agora = agora.Add(time.Minute + time.Second)
	if _, ok := c.Get("a"); ok {
		t.Fatalf("expired entry must miss")
	}
	if c.Len() != 0 {
		t.Fatalf("expired entry must be dropped on read, Len=%d", c.Len())
	}
}

func TestTTLEvictsExpiredFirst(t *testing.T) {
	agora := time.Now()
	c := NewTTL(2, time.Minute)
	c.now = func() time.Time { return agora }

	c.Put("velha", 1)
	agora = agora.Add(2 * time.Minute)
	c.Put("fresca", 2)
	c.Put("nova", 3)

	if _, ok := c.Get("fresca"); !ok {
		t.Fatalf("fresh entry must survive eviction while an expired one exists")
	}
	if _, ok := c.Get("nova"); !ok {
		t.Fatalf("newly inserted entry must be present")
	}
	if _, ok := c.Get("velha"); ok {
		t.Fatalf("expired entry must be the eviction victim")
	}
}

func TestTTLBoundedWhenFresh(t *testing.T) {
	c := NewTTL(2, time.Hour)
	c.Put("a", 1)
	c.Put("b", 2)
	c.Put("c", 3)
	if c.Len() > 2 {
		t.Fatalf("Len=%d exceeds capacity 2", c.Len())
	}
	if _, ok := c.Get("c"); !ok {
		t.Fatalf("latest insert must be present")
	}
}
