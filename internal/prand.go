package internal

// Prand16 returns the next value of a 16 bit xorshift sequence. Tests use it to
// fill registers with reproducible bit patterns. seed must be non-zero.
func Prand16(seed uint16) uint16 {
	// https://en.wikipedia.org/wiki/Xorshift
	seed ^= seed << 7
	seed ^= seed >> 9
	seed ^= seed << 8
	return seed
}
