package sim

import (
	"errors"
	"path/filepath"
	"testing"
)

func TestSnapshot(t *testing.T) {
	c := NewChip()
	c.Status = 0x40
	c.DateTime = [7]byte{0x24, 0x01, 0x15, 0x01, 0x21, 0x30, 0x45}

	path := filepath.Join(t.TempDir(), "rtc.sav")
	if err := SaveSnapshot(path, c); err != nil {
		t.Fatal(err)
	}
	restored := NewChip()
	if err := LoadSnapshot(path, restored); err != nil {
		t.Fatal(err)
	}
	if restored.Status != c.Status || restored.DateTime != c.DateTime {
		t.Fatalf("expected %#x % x, got %#x % x", c.Status, c.DateTime, restored.Status, restored.DateTime)
	}
}

func TestSnapshotRejected(t *testing.T) {
	good, _ := NewChip().MarshalBinary()

	flipped := append([]byte(nil), good...)
	flipped[3] ^= 0x10

	tests := map[string]struct {
		b    []byte
		want error
	}{
		"flipped bit": {flipped, ErrSnapshotChecksum},
		"short":       {good[:5], ErrSnapshotSize},
		"empty":       {nil, ErrSnapshotSize},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			c := NewChip()
			c.Status = 0x40
			err := c.UnmarshalBinary(tc.b)
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
			if c.Status != 0x40 {
				t.Fatalf("rejected snapshot changed the chip")
			}
		})
	}
}
