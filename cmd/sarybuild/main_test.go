package main

import "testing"

func TestResolveIndexPoints(t *testing.T) {
	for _, name := range []string{"byte", "word", "line", "paragraph"} {
		if _, err := resolveIndexPoints(name); err != nil {
			t.Errorf("%s: unexpected error: %v", name, err)
		}
	}
	if _, err := resolveIndexPoints("sentence"); err == nil {
		t.Errorf("expected error for unknown strategy")
	}
}
