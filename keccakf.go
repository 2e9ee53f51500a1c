package keccak

// This file implements the Keccak-f[1600] permutation, the core of the
// sponge. Nothing in it is exported. For the detailed specification,
// refer to the Keccak web site (https://keccak.team/keccak.html).

import "math/bits"

// roundConstants are the 24 constants XORed into lane 0 by the ι step,
// one per round.
var roundConstants = [24]uint64{
	0x0000000000000001,
	0x0000000000008082,
	0x800000000000808A,
	0x8000000080008000,
	0x000000000000808B,
	0x0000000080000001,
	0x8000000080008081,
	0x8000000000008009,
	0x000000000000008A,
	0x0000000000000088,
	0x0000000080008009,
	0x000000008000000A,
	0x000000008000808B,
	0x800000000000008B,
	0x8000000000008089,
	0x8000000000008003,
	0x8000000000008002,
	0x8000000000000080,
	0x000000000000800A,
	0x800000008000000A,
	0x8000000080008081,
	0x8000000000008080,
	0x0000000080000001,
	0x8000000080008008,
}

// rhoNN is the ρ rotation offset of lane NN, with lanes indexed as
// x + 5*y in the 5x5 grid. Declared as constants rather than a table
// so the compiler emits fixed-width rotates.
const (
	rho01 = 1
	rho02 = 62
	rho03 = 28
	rho04 = 27
	rho05 = 36
	rho06 = 44
	rho07 = 6
	rho08 = 55
	rho09 = 20
	rho10 = 3
	rho11 = 10
	rho12 = 43
	rho13 = 25
	rho14 = 39
	rho15 = 41
	rho16 = 45
	rho17 = 15
	rho18 = 21
	rho19 = 8
	rho20 = 18
	rho21 = 2
	rho22 = 61
	rho23 = 56
	rho24 = 14
)

// keccakF1600 applies the full Keccak-f[1600] permutation to a in
// place: 24 rounds of θ (column-parity diffusion), ρ and π (lane
// rotation and shuffle), χ (nonlinear mixing) and ι (round-constant
// injection). The round body is unrolled; only the round loop remains.
func keccakF1600(a *[25]uint64) {
	var b [25]uint64
	var c, d [5]uint64

	for _, rc := range roundConstants {
		// θ
		c[0] = a[0] ^ a[5] ^ a[10] ^ a[15] ^ a[20]
		c[1] = a[1] ^ a[6] ^ a[11] ^ a[16] ^ a[21]
		c[2] = a[2] ^ a[7] ^ a[12] ^ a[17] ^ a[22]
		c[3] = a[3] ^ a[8] ^ a[13] ^ a[18] ^ a[23]
		c[4] = a[4] ^ a[9] ^ a[14] ^ a[19] ^ a[24]

		d[0] = c[4] ^ bits.RotateLeft64(c[1], 1)
		d[1] = c[0] ^ bits.RotateLeft64(c[2], 1)
		d[2] = c[1] ^ bits.RotateLeft64(c[3], 1)
		d[3] = c[2] ^ bits.RotateLeft64(c[4], 1)
		d[4] = c[3] ^ bits.RotateLeft64(c[0], 1)

		a[0] ^= d[0]
		a[1] ^= d[1]
		a[2] ^= d[2]
		a[3] ^= d[3]
		a[4] ^= d[4]
		a[5] ^= d[0]
		a[6] ^= d[1]
		a[7] ^= d[2]
		a[8] ^= d[3]
		a[9] ^= d[4]
		a[10] ^= d[0]
		a[11] ^= d[1]
		a[12] ^= d[2]
		a[13] ^= d[3]
		a[14] ^= d[4]
		a[15] ^= d[0]
		a[16] ^= d[1]
		a[17] ^= d[2]
		a[18] ^= d[3]
		a[19] ^= d[4]
		a[20] ^= d[0]
		a[21] ^= d[1]
		a[22] ^= d[2]
		a[23] ^= d[3]
		a[24] ^= d[4]

		// ρ and π: b[y + 5*((2x+3y) mod 5)] = rotl(a[x + 5y], rho)
		b[0] = a[0]
		b[1] = bits.RotateLeft64(a[6], rho06)
		b[2] = bits.RotateLeft64(a[12], rho12)
		b[3] = bits.RotateLeft64(a[18], rho18)
		b[4] = bits.RotateLeft64(a[24], rho24)
		b[5] = bits.RotateLeft64(a[3], rho03)
		b[6] = bits.RotateLeft64(a[9], rho09)
		b[7] = bits.RotateLeft64(a[10], rho10)
		b[8] = bits.RotateLeft64(a[16], rho16)
		b[9] = bits.RotateLeft64(a[22], rho22)
		b[10] = bits.RotateLeft64(a[1], rho01)
		b[11] = bits.RotateLeft64(a[7], rho07)
		b[12] = bits.RotateLeft64(a[13], rho13)
		b[13] = bits.RotateLeft64(a[19], rho19)
		b[14] = bits.RotateLeft64(a[20], rho20)
		b[15] = bits.RotateLeft64(a[4], rho04)
		b[16] = bits.RotateLeft64(a[5], rho05)
		b[17] = bits.RotateLeft64(a[11], rho11)
		b[18] = bits.RotateLeft64(a[17], rho17)
		b[19] = bits.RotateLeft64(a[23], rho23)
		b[20] = bits.RotateLeft64(a[2], rho02)
		b[21] = bits.RotateLeft64(a[8], rho08)
		b[22] = bits.RotateLeft64(a[14], rho14)
		b[23] = bits.RotateLeft64(a[15], rho15)
		b[24] = bits.RotateLeft64(a[21], rho21)

		// χ
		a[0] = b[0] ^ (^b[1] & b[2])
		a[1] = b[1] ^ (^b[2] & b[3])
		a[2] = b[2] ^ (^b[3] & b[4])
		a[3] = b[3] ^ (^b[4] & b[0])
		a[4] = b[4] ^ (^b[0] & b[1])
		a[5] = b[5] ^ (^b[6] & b[7])
		a[6] = b[6] ^ (^b[7] & b[8])
		a[7] = b[7] ^ (^b[8] & b[9])
		a[8] = b[8] ^ (^b[9] & b[5])
		a[9] = b[9] ^ (^b[5] & b[6])
		a[10] = b[10] ^ (^b[11] & b[12])
		a[11] = b[11] ^ (^b[12] & b[13])
		a[12] = b[12] ^ (^b[13] & b[14])
		a[13] = b[13] ^ (^b[14] & b[10])
		a[14] = b[14] ^ (^b[10] & b[11])
		a[15] = b[15] ^ (^b[16] & b[17])
		a[16] = b[16] ^ (^b[17] & b[18])
		a[17] = b[17] ^ (^b[18] & b[19])
		a[18] = b[18] ^ (^b[19] & b[15])
		a[19] = b[19] ^ (^b[15] & b[16])
		a[20] = b[20] ^ (^b[21] & b[22])
		a[21] = b[21] ^ (^b[22] & b[23])
		a[22] = b[22] ^ (^b[23] & b[24])
		a[23] = b[23] ^ (^b[24] & b[20])
		a[24] = b[24] ^ (^b[20] & b[21])

		// ι
		a[0] ^= rc
	}
}
