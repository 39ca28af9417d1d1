package slow

import "github.com/holiman/uint256"

// These are type-safe pure functions *styled to translate to yul*, to use uint256 variables for 32 bit math.

// U32 is like a Go uint32, always within range, but represented as uint256 in memory with 0 padding.
type U32 uint256.Int

// Val returns the 32 bit value held by v.
func Val(v U32) uint32 {
	return uint32((*uint256.Int)(&v).Uint64())
}

// ToU32 lifts a word into the 256 bit representation.
func ToU32(v uint32) U32 {
	return U32(*uint256.NewInt(uint64(v)))
}

func toU256(v uint8) U256 {
	return *uint256.NewInt(uint64(v))
}

func toU32(v uint8) U32 {
	return U32(toU256(v))
}

func shortToU32(v uint16) U32 {
	return U32(*uint256.NewInt(uint64(v)))
}

func u32Mask() U32 { // max uint32
	return U32(shr(toU256(224), not(U256{}))) // 256-32 = 224
}

func u256ToU32(v U256) U32 {
	return U32(and(v, U256(u32Mask())))
}

// signExtend32 copies bit `bit` of v into all the higher bits of the 32 bit word.
func signExtend32(v U32, bit U32) U32 {
	switch and(U256(v), shl(U256(bit), toU256(1))) {
	case U256{}:
		// fill with zeroes, by masking
		return U32(and(U256(v), shr(sub(toU256(31), U256(bit)), U256(u32Mask()))))
	default:
		// fill with ones, by or-ing
		return U32(or(U256(v), U256(u256ToU32(shl(U256(bit), U256(u32Mask()))))))
	}
}

func iszero32(x U32) bool {
	return iszero(U256(x))
}

func not32(x U32) (out U32) {
	out = u256ToU32(not(U256(x)))
	return
}

func and32(x, y U32) (out U32) {
	out = U32(and(U256(x), U256(y)))
	return
}

func or32(x, y U32) (out U32) {
	out = U32(or(U256(x), U256(y)))
	return
}

// returns y << x, truncated to 32 bits
func shl32(x, y U32) (out U32) {
	out = u256ToU32(shl(U256(x), U256(y)))
	return
}

// returns y >> x
func shr32(x, y U32) (out U32) {
	out = U32(shr(U256(x), U256(y)))
	return
}
