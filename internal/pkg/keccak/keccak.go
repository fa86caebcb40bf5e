// Package keccak implements the Keccak-256 hash function as used by Ethereum.
//
// It is a self-contained sponge construction over the Keccak-f[1600]
// permutation with a 1088-bit rate and a 512-bit capacity. Padding uses the
// original Keccak domain byte (0x01), not the 0x06 byte standardized by NIST
// for SHA3-256, so digests match Ethereum's keccak256 and differ from SHA3.
//
// The package keeps no global mutable state: every call to Sum256 or New
// works on its own state.
package keccak

import (
	"encoding/binary"
	"hash"
	"math/bits"
)

const (
	// Size is the length in bytes of a Keccak-256 digest.
	Size = 32

	// BlockSize is the sponge rate in bytes (17 lanes of 64 bits).
	BlockSize = 136

	rateLanes     = BlockSize / 8
	stateLanes    = 25
	rounds        = 24
	domainPadding = 0x01
	finalPadding  = 0x80
)

// roundConstants are the iota step constants, one per round.
var roundConstants = [rounds]uint64{
	0x0000000000000001, 0x0000000000008082, 0x800000000000808A, 0x8000000080008000,
	0x000000000000808B, 0x0000000080000001, 0x8000000080008081, 0x8000000000008009,
	0x000000000000008A, 0x0000000000000088, 0x0000000080008009, 0x000000008000000A,
	0x000000008000808B, 0x800000000000008B, 0x8000000000008089, 0x8000000000008003,
	0x8000000000008002, 0x8000000000000080, 0x000000000000800A, 0x800000008000000A,
	0x8000000080008081, 0x8000000000008080, 0x0000000080000001, 0x8000000080008008,
}

// rotationOffsets holds the rho rotation for the lane at index x+5*y.
var rotationOffsets = [stateLanes]int{
	0, 1, 62, 28, 27,
	36, 44, 6, 55, 20,
	3, 10, 43, 25, 39,
	41, 45, 15, 21, 8,
	18, 2, 61, 56, 14,
}

// permute applies the 24-round Keccak-f[1600] permutation to the state in place.
// Lanes are addressed as a[x+5*y].
func permute(a *[stateLanes]uint64) {
	var (
		c [5]uint64
		b [stateLanes]uint64
	)

	for round := 0; round < rounds; round++ {
		// theta
		for x := 0; x < 5; x++ {
			c[x] = a[x] ^ a[x+5] ^ a[x+10] ^ a[x+15] ^ a[x+20]
		}
		for x := 0; x < 5; x++ {
			d := c[(x+4)%5] ^ bits.RotateLeft64(c[(x+1)%5], 1)
			for y := 0; y < stateLanes; y += 5 {
				a[y+x] ^= d
			}
		}

		// rho and pi
		for x := 0; x < 5; x++ {
			for y := 0; y < 5; y++ {
				b[y+5*((2*x+3*y)%5)] = bits.RotateLeft64(a[x+5*y], rotationOffsets[x+5*y])
			}
		}

		// chi
		for y := 0; y < stateLanes; y += 5 {
			for x := 0; x < 5; x++ {
				a[y+x] = b[y+x] ^ (^b[y+(x+1)%5] & b[y+(x+2)%5])
			}
		}

		// iota
		a[0] ^= roundConstants[round]
	}
}

// absorb XORs one full rate-sized block into the state and permutes it.
func absorb(a *[stateLanes]uint64, block []byte) {
	for i := 0; i < rateLanes; i++ {
		a[i] ^= binary.LittleEndian.Uint64(block[i*8:])
	}
	permute(a)
}

// digest is a streaming Keccak-256 state. It implements hash.Hash.
type digest struct {
	state [stateLanes]uint64
	buf   [BlockSize]byte
	n     int // bytes buffered in buf
}

// Compile-time assertion that digest implements hash.Hash.
var _ hash.Hash = (*digest)(nil)

// New returns a new hash.Hash computing the Keccak-256 checksum.
func New() hash.Hash {
	return &digest{}
}

// Size returns the digest length in bytes.
func (d *digest) Size() int { return Size }

// BlockSize returns the sponge rate in bytes.
func (d *digest) BlockSize() int { return BlockSize }

// Reset clears the sponge.
func (d *digest) Reset() {
	*d = digest{}
}

// Write absorbs p into the sponge. It never returns an error.
func (d *digest) Write(p []byte) (int, error) {
	written := len(p)

	if d.n > 0 {
		k := copy(d.buf[d.n:], p)
		d.n += k
		p = p[k:]
		if d.n < BlockSize {
			return written, nil
		}
		absorb(&d.state, d.buf[:])
		d.n = 0
	}

	for len(p) >= BlockSize {
		absorb(&d.state, p[:BlockSize])
		p = p[BlockSize:]
	}

	d.n = copy(d.buf[:], p)
	return written, nil
}

// Sum appends the digest of the data written so far to b. It does not change
// the underlying state, so more data can be written afterwards.
func (d *digest) Sum(b []byte) []byte {
	out := d.checkSum()
	return append(b, out[:]...)
}

// checkSum pads a copy of the state and squeezes the 256-bit output.
func (d *digest) checkSum() [Size]byte {
	var (
		state = d.state
		block [BlockSize]byte
	)

	copy(block[:], d.buf[:d.n])
	block[d.n] ^= domainPadding
	block[BlockSize-1] ^= finalPadding
	absorb(&state, block[:])

	var out [Size]byte
	for i := 0; i < Size/8; i++ {
		binary.LittleEndian.PutUint64(out[i*8:], state[i])
	}
	return out
}

// Sum256 returns the Keccak-256 digest of data.
func Sum256(data []byte) [Size]byte {
	var d digest
	d.Write(data)
	return d.checkSum()
}
