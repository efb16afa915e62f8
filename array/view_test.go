package array

import (
	"os"
	"path/filepath"
	"testing"
)

func TestWriteAndReadBigEndian(t *testing.T) {
	tests := []struct {
		name  string
		width int
	}{
		{"width4", Width4},
		{"width8", Width8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "x.ary")
			entries := []int{0, 3, 5, 7, 10}
			if err := WriteAll(path, tt.width, entries); err != nil {
				t.Fatalf("WriteAll: %v", err)
			}

			v, err := Open(path, tt.width)
			if err != nil {
				t.Fatalf("Open: %v", err)
			}
			defer v.Close()

			if v.Len() != len(entries) {
				t.Fatalf("Len() = %d, want %d", v.Len(), len(entries))
			}
			for i, want := range entries {
				if got := v.At(i); got != want {
					t.Errorf("At(%d) = %d, want %d", i, got, want)
				}
			}
		})
	}
}

func TestOpenEmptyArray(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.ary")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	v, err := Open(path, Width4)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer v.Close()

	if v.Len() != 0 {
		t.Errorf("Len() = %d, want 0", v.Len())
	}
}

func TestOpenTruncatedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.ary")
	if err := os.WriteFile(path, []byte{1, 2, 3}, 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	if _, err := Open(path, Width4); err == nil {
		t.Error("Open with truncated file: want error, got nil")
	}
}

func TestOpenInvalidWidth(t *testing.T) {
	path := filepath.Join(t.TempDir(), "x.ary")
	os.WriteFile(path, []byte{0, 0, 0, 0}, 0o644)
	if _, err := Open(path, 3); err != ErrInvalidWidth {
		t.Errorf("Open with width 3: got %v, want ErrInvalidWidth", err)
	}
}
