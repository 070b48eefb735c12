package sim

import (
	"errors"
	"fmt"
	"os"

	"github.com/sigurn/crc8"
)

var (
	ErrSnapshotChecksum = errors.New("snapshot checksum mismatch")
	ErrSnapshotSize     = errors.New("snapshot size mismatch")
)

// SnapshotSize is the status register, the date and time registers and a
// CRC-8/MAXIM over both.
const SnapshotSize = 1 + 7 + 1

var crcTable = crc8.MakeTable(crc8.CRC8_MAXIM)

// MarshalBinary encodes the registers of the chip. Transfer state is not
// saved.
func (c *Chip) MarshalBinary() ([]byte, error) {
	b := make([]byte, 0, SnapshotSize)
	b = append(b, c.Status)
	b = append(b, c.DateTime[:]...)
	return append(b, crc8.Checksum(b, crcTable)), nil
}

// UnmarshalBinary restores the registers saved by MarshalBinary.
func (c *Chip) UnmarshalBinary(b []byte) error {
	if len(b) != SnapshotSize {
		return fmt.Errorf("%w: %d bytes", ErrSnapshotSize, len(b))
	}
	if crc8.Checksum(b[:SnapshotSize-1], crcTable) != b[SnapshotSize-1] {
		return ErrSnapshotChecksum
	}
	c.Status = b[0]
	copy(c.DateTime[:], b[1:8])
	return nil
}

// SaveSnapshot writes the registers of c to path.
func SaveSnapshot(path string, c *Chip) error {
	b, _ := c.MarshalBinary()
	return os.WriteFile(path, b, 0o644)
}

// LoadSnapshot restores the registers of c from path.
func LoadSnapshot(path string, c *Chip) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := c.UnmarshalBinary(b); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}
