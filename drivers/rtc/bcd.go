package rtc

import "github.com/clktmr/agbrtc/debug"

var bcdTable = func() (t [100]byte) {
	for i := range t {
		t[i] = byte(i/10<<4 | i%10)
	}
	return
}()

// ToBCD returns n as packed BCD. n must be in [0, 99].
func ToBCD(n int) byte {
	debug.AssertInRange(n, 0, 99, "bcd")
	return bcdTable[n]
}

// FromBCD decodes a packed BCD byte. Invalid digits are not detected, see
// ValidBCD.
func FromBCD(b byte) int {
	return int(b>>4)*10 + int(b&0xf)
}

// ValidBCD reports whether both nibbles of b are decimal digits.
func ValidBCD(b byte) bool {
	return b>>4 <= 9 && b&0xf <= 9
}
