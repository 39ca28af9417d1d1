package isa

// Bit helpers for scattering immediates into a word and gathering them back.

func mask32(width uint8) uint32 {
	if width >= 32 {
		return 0xFFFF_FFFF
	}
	return (uint32(1) << width) - 1
}

// signExtend32 interprets the low width bits of v as a two's complement value.
func signExtend32(v uint32, width uint8) int32 {
	shift := 32 - width
	return int32(v<<shift) >> shift
}

// copyBits moves n bits of src starting at srcPos to dst starting at dstPos.
func copyBits(src uint32, srcPos uint8, dst uint32, dstPos uint8, n uint8) uint32 {
	m := mask32(n)
	dst &^= m << dstPos
	return dst | ((src>>srcPos)&m)<<dstPos
}
