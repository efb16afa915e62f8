package cache

import "testing"

func TestCacheGetAdd(t *testing.T) {
	c, err := New(2)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if _, _, ok := c.Get([]byte("abra")); ok {
		t.Error("Get on empty cache: want miss")
	}

	c.Add([]byte("abra"), 0, 1)
	first, last, ok := c.Get([]byte("abra"))
	if !ok || first != 0 || last != 1 {
		t.Errorf("Get(abra) = (%d,%d,%v), want (0,1,true)", first, last, ok)
	}

	// "a" and "abra" must not collide despite sharing a prefix.
	if _, _, ok := c.Get([]byte("a")); ok {
		t.Error("Get(a) = hit, want miss (distinct key from abra)")
	}
}

func TestCacheEviction(t *testing.T) {
	c, err := New(1)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	c.Add([]byte("a"), 0, 1)
	c.Add([]byte("b"), 2, 3)

	if _, _, ok := c.Get([]byte("a")); ok {
		t.Error("Get(a) after capacity-1 eviction: want miss")
	}
	if _, _, ok := c.Get([]byte("b")); !ok {
		t.Error("Get(b): want hit")
	}
}
