// Package keccak computes original Keccak hashes with fixed 256- and
// 512-bit outputs.
//
// This is the pre-standardization Keccak sponge (domain-separation
// padding byte 0x01), not NIST SHA-3 (0x06): the two produce different
// digests for every input. Go 1.25's stdlib crypto/sha3 only exposes
// the SHA-3 padding, and x/crypto/sha3's legacy constructors wrap the
// sponge in a streaming hash.Hash with per-call allocations. This
// package keeps the whole construction in one place (the pure-Go
// Keccak-f[1600] permutation, block absorption, pad10*1 and squeeze)
// behind two one-shot functions with zero heap allocations.
package keccak

import "encoding/binary"

const (
	// rate256 is the sponge rate for Keccak-256: (1600 - 2*256) / 8 = 136 bytes.
	rate256 = 136
	// rate512 is the sponge rate for Keccak-512: (1600 - 2*512) / 8 = 72 bytes.
	rate512 = 72

	// pad10*1 bits: the domain separator opens the padding right after
	// the input (Keccak uses 0x01, NOT SHA-3's 0x06) and 0x80 closes it
	// on the last byte of the block.
	padStart = 0x01
	padEnd   = 0x80
)

// Sum256 computes the Keccak-256 hash of data. Zero heap allocations.
func Sum256(data []byte) (digest [32]byte) {
	var s sponge
	s.rate = rate256
	s.absorb(data)
	s.padAndPermute()
	s.squeeze(digest[:])
	return
}

// Sum512 computes the Keccak-512 hash of data. Zero heap allocations.
func Sum512(data []byte) (digest [64]byte) {
	var s sponge
	s.rate = rate512
	s.absorb(data)
	s.padAndPermute()
	s.squeeze(digest[:])
	return
}

// sponge is one in-flight hash computation: the 25-lane permutation
// state plus a rate-sized window buffering input until a full block is
// available. A sponge is created per call, lives on the caller's stack
// and is never shared.
type sponge struct {
	a    [25]uint64    // lane state, 5x5 grid linearized as x + 5*y
	buf  [rate256]byte // input window; only buf[:rate] is ever used
	n    int           // bytes currently buffered
	rate int           // block length in bytes: rate256 or rate512
}

// absorb feeds p into the sponge. Whenever a full rate-sized block is
// available it is XORed into the state and permuted; full blocks are
// absorbed straight from p without copying. A trailing partial block
// stays in buf for padAndPermute.
func (s *sponge) absorb(p []byte) {
	if s.n > 0 {
		n := copy(s.buf[s.n:s.rate], p)
		s.n += n
		p = p[n:]
		if s.n == s.rate {
			s.xorIn(s.buf[:s.rate])
			keccakF1600(&s.a)
			s.n = 0
		}
	}

	for len(p) >= s.rate {
		s.xorIn(p[:s.rate])
		keccakF1600(&s.a)
		p = p[s.rate:]
	}

	if len(p) > 0 {
		s.n = copy(s.buf[:], p)
	}
}

// padAndPermute closes the sponge: the buffered partial block (possibly
// empty) is padded with the pad10*1 rule to a full block, absorbed, and
// the final permutation runs. XORing the two pad bytes directly into
// the state is equivalent to building the zero-filled padded block
// first; when only one byte of padding fits (n == rate-1) the start
// and end bits coincide in a single 0x81 byte.
func (s *sponge) padAndPermute() {
	s.xorIn(s.buf[:s.n])
	s.xorInByte(s.n, padStart)
	s.xorInByte(s.rate-1, padEnd)
	keccakF1600(&s.a)
}

// squeeze serializes the leading lanes of the state into out, each
// lane emitted least-significant byte first. len(out) must be a
// multiple of 8 and no more than the rate, so both digest sizes are
// read from the single post-padding permutation.
func (s *sponge) squeeze(out []byte) {
	for i := 0; i < len(out); i += 8 {
		binary.LittleEndian.PutUint64(out[i:], s.a[i/8])
	}
}

// xorIn XORs p into the leading lanes of the state in little-endian
// 8-byte groups, the same byte order squeeze reads back out.
func (s *sponge) xorIn(p []byte) {
	n := len(p) >> 3
	for i := 0; i < n; i++ {
		s.a[i] ^= binary.LittleEndian.Uint64(p[8*i:])
	}
	// trailing bytes of a partial block (< 8)
	for i := n << 3; i < len(p); i++ {
		s.xorInByte(i, p[i])
	}
}

// xorInByte XORs a single byte into the state at byte offset off.
func (s *sponge) xorInByte(off int, b byte) {
	s.a[off/8] ^= uint64(b) << (8 * uint(off&7))
}
