package generator

// addressBits is the width of the DDS sample memory address bus.
const addressBits = 17

// ReverseBits17 mirrors the low 17 bits of addr, so bit 0 becomes bit 16.
//
// Older controller firmware wired the address bus in reverse. The current
// encoder writes addresses as-is and does not call this.
func ReverseBits17(addr int) int {
	var result int
	for range addressBits {
		result = (result << 1) | (addr & 1)
		addr >>= 1
	}
	return result
}
