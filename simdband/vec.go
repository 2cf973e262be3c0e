// Package simdband provides the lane-striped vector substrate the DP kernel
// runs over: an L-wide int16 "vector" type, saturating arithmetic on it, the
// within-vector prefix scan used for affine row-gap propagation, and the
// band itself (Band) with its O(1) down-shift.
//
// There is no real SIMD here (no assembly, no compiler intrinsics) — every
// Vec operation is a plain Go loop over L lanes. See DESIGN.md for why: the
// teacher's own amd64 backend is unreachable without the assembly files it
// calls into, and new assembly can't be validated without a Go toolchain.
// This follows the teacher's own portable fallback convention instead.
package simdband

import "math"

// L is the lane count: how many int16 deltas one Vec holds. 8 matches the
// width of a 128-bit SIMD register of 16-bit lanes, the teacher's portable
// (non-AVX2) vector width.
const L = 8

// NegInf is the sentinel score meaning "unreachable" in a delta lane. It is
// i16::MIN in the source material's terms: any arithmetic on it must leave
// it exactly at NegInf, never let it wrap to a finite value.
const NegInf int16 = math.MinInt16

// Vec is one lane-striped vector of L signed 16-bit score deltas (a D or C
// plane stride vector).
type Vec [L]int16

// QueryVec is one lane-striped vector of L query symbol bytes.
type QueryVec [L]byte

// Clamp saturates x into the int16 range, the same saturating arithmetic
// every delta-plane update in the kernel must use.
func Clamp(x int32) int16 {
	if x < math.MinInt16 {
		return math.MinInt16
	}
	if x > math.MaxInt16 {
		return math.MaxInt16
	}
	return int16(x)
}

// SatAdd adds b to a with int16 saturation, except that NegInf plus
// anything stays NegInf (an unreachable cell never becomes reachable by
// arithmetic).
func SatAdd(a int16, b int32) int16 {
	if a == NegInf {
		return NegInf
	}
	return Clamp(int32(a) + b)
}

// Max returns the lane-wise maximum of a and b.
func Max(a, b Vec) Vec {
	var out Vec
	for l := 0; l < L; l++ {
		if a[l] > b[l] {
			out[l] = a[l]
		} else {
			out[l] = b[l]
		}
	}
	return out
}

// HMax returns the largest lane value in v and its lane index (the first
// such lane, on ties), mirroring the kernel's need for both the column
// maximum and its position for the adaptive controller and X-drop.
func HMax(v Vec) (max int16, lane int) {
	max = v[0]
	lane = 0
	for l := 1; l < L; l++ {
		if v[l] > max {
			max = v[l]
			lane = l
		}
	}
	return max, lane
}

// PrefixScanMax computes, for every lane l, the maximum over all k <= l of
// (x[k] - (l-k)*(-gapExtend)), i.e. the best score reachable at lane l via a
// row gap that opened at or before lane k and has been extending since.
// gapExtend is the (non-positive) per-position extension cost.
//
// This is a standard O(log L) Hillis-Steele inclusive max-scan; the source
// material describes the same computation (GLOSSARY: "Prefix scan") seeded
// from stride_gap multiples for a hand-unrolled L=8/16 shuffle network. The
// doubling form below computes the identical result without depending on a
// specific lane count or a byte-shuffle instruction, matching this
// package's portable, non-assembly scope.
func PrefixScanMax(x Vec, gapExtend int16) Vec {
	out := x
	for shift := 1; shift < L; shift <<= 1 {
		var shifted Vec
		for l := 0; l < L; l++ {
			if l >= shift {
				shifted[l] = SatAdd(out[l-shift], int32(gapExtend)*int32(shift))
			} else {
				shifted[l] = NegInf
			}
		}
		out = Max(out, shifted)
	}
	return out
}
