package fast

// Native equivalent of the 32-bit yul functions of slow-mode

type U32 = uint32

func toU32(v uint8) U32 { return uint32(v) }

func shortToU32(v uint16) U32 {
	return uint32(v)
}

func u32Mask() uint32 { // max uint32
	return 0xFFFF_FFFF
}

func signExtend32(v uint32, bit uint32) uint32 {
	switch and32(v, shl32(bit, 1)) {
	case 0:
		// fill with zeroes, by masking
		return and32(v, shr32(31-bit, u32Mask()))
	default:
		// fill with ones, by or-ing
		return or32(v, shl32(bit, shr32(bit, u32Mask())))
	}
}

func iszero32(x uint32) bool {
	return x == 0
}

func not32(x uint32) uint32 {
	return ^x
}

func and32(x, y uint32) uint32 {
	return x & y
}

func or32(x, y uint32) uint32 {
	return x | y
}

func shl32(x, y uint32) uint32 {
	return y << x
}

func shr32(x, y uint32) uint32 {
	return y >> x
}
