// Package xxhash implements the 32-bit and 64-bit variants of the xxHash
// non-cryptographic hash algorithm from scratch. Both digests support
// incremental writes: feeding the input in any chunking produces the same
// result as a single write.
package xxhash

import (
	"encoding/binary"
	"math/bits"
	"unsafe"
)

const (
	prime32x1 uint32 = 0x9E3779B1
	prime32x2 uint32 = 0x85EBCA77
	prime32x3 uint32 = 0xC2B2AE3D
	prime32x4 uint32 = 0x27D4EB2F
	prime32x5 uint32 = 0x165667B1

	prime64x1 uint64 = 0x9E3779B185EBCA87
	prime64x2 uint64 = 0xC2B2AE3D27D4EB4F
	prime64x3 uint64 = 0x165667B19E3779F9
	prime64x4 uint64 = 0x85EBCA77C2B2AE63
	prime64x5 uint64 = 0x27D4EB2F165667C5
)

// Digest32 is a streaming 32-bit xxHash state. It implements hash.Hash32.
type Digest32 struct {
	seed                   uint32
	acc1, acc2, acc3, acc4 uint32
	buf                    [16]byte
	n                      int
	total                  uint64
}

// New32 returns a 32-bit digest seeded with seed.
func New32(seed uint32) *Digest32 {
	d := &Digest32{seed: seed}
	d.Reset()
	return d
}

func (d *Digest32) Reset() {
	d.acc1 = d.seed + prime32x1 + prime32x2
	d.acc2 = d.seed + prime32x2
	d.acc3 = d.seed
	d.acc4 = d.seed - prime32x1
	d.n = 0
	d.total = 0
}

func (d *Digest32) Size() int      { return 4 }
func (d *Digest32) BlockSize() int { return 16 }

// Write feeds p into the hash state. It never fails.
func (d *Digest32) Write(p []byte) (int, error) {
	written := len(p)
	d.total += uint64(len(p))

	if d.n > 0 {
		fill := 16 - d.n
		if len(p) < fill {
			d.n += copy(d.buf[d.n:], p)
			return written, nil
		}
		copy(d.buf[d.n:], p[:fill])
		d.stripe32(d.buf[:])
		p = p[fill:]
		d.n = 0
	}

	for len(p) >= 16 {
		d.stripe32(p[:16])
		p = p[16:]
	}

	d.n = copy(d.buf[:], p)
	return written, nil
}

func (d *Digest32) stripe32(stripe []byte) {
	d.acc1 = round32(d.acc1, binary.LittleEndian.Uint32(stripe[0:4]))
	d.acc2 = round32(d.acc2, binary.LittleEndian.Uint32(stripe[4:8]))
	d.acc3 = round32(d.acc3, binary.LittleEndian.Uint32(stripe[8:12]))
	d.acc4 = round32(d.acc4, binary.LittleEndian.Uint32(stripe[12:16]))
}

func round32(acc, lane uint32) uint32 {
	return bits.RotateLeft32(acc+lane*prime32x2, 13) * prime32x1
}

// Sum32 finalizes the digest without mutating the accumulated state.
func (d *Digest32) Sum32() uint32 {
	var h uint32
	if d.total >= 16 {
		h = bits.RotateLeft32(d.acc1, 1) +
			bits.RotateLeft32(d.acc2, 7) +
			bits.RotateLeft32(d.acc3, 12) +
			bits.RotateLeft32(d.acc4, 18)
	} else {
		h = d.seed + prime32x5
	}

	h += uint32(d.total)

	rem := d.buf[:d.n]
	for ; len(rem) >= 4; rem = rem[4:] {
		h += binary.LittleEndian.Uint32(rem[:4]) * prime32x3
		h = bits.RotateLeft32(h, 17) * prime32x4
	}
	for _, b := range rem {
		h += uint32(b) * prime32x5
		h = bits.RotateLeft32(h, 11) * prime32x1
	}

	h ^= h >> 15
	h *= prime32x2
	h ^= h >> 13
	h *= prime32x3
	h ^= h >> 16
	return h
}

func (d *Digest32) Sum(b []byte) []byte {
	return binary.BigEndian.AppendUint32(b, d.Sum32())
}

// Sum32 computes the 32-bit hash of b in one shot.
func Sum32(b []byte, seed uint32) uint32 {
	d := New32(seed)
	d.Write(b)
	return d.Sum32()
}

// Digest64 is a streaming 64-bit xxHash state. It implements hash.Hash64.
type Digest64 struct {
	seed                   uint64
	acc1, acc2, acc3, acc4 uint64
	buf                    [32]byte
	n                      int
	total                  uint64
}

// New64 returns a 64-bit digest seeded with seed.
func New64(seed uint64) *Digest64 {
	d := &Digest64{seed: seed}
	d.Reset()
	return d
}

func (d *Digest64) Reset() {
	d.acc1 = d.seed + prime64x1 + prime64x2
	d.acc2 = d.seed + prime64x2
	d.acc3 = d.seed
	d.acc4 = d.seed - prime64x1
	d.n = 0
	d.total = 0
}

func (d *Digest64) Size() int      { return 8 }
func (d *Digest64) BlockSize() int { return 32 }

// Write feeds p into the hash state. It never fails.
func (d *Digest64) Write(p []byte) (int, error) {
	written := len(p)
	d.total += uint64(len(p))

	if d.n > 0 {
		fill := 32 - d.n
		if len(p) < fill {
			d.n += copy(d.buf[d.n:], p)
			return written, nil
		}
		copy(d.buf[d.n:], p[:fill])
		d.stripe64(d.buf[:])
		p = p[fill:]
		d.n = 0
	}

	for len(p) >= 32 {
		d.stripe64(p[:32])
		p = p[32:]
	}

	d.n = copy(d.buf[:], p)
	return written, nil
}

func (d *Digest64) stripe64(stripe []byte) {
	d.acc1 = round64(d.acc1, binary.LittleEndian.Uint64(stripe[0:8]))
	d.acc2 = round64(d.acc2, binary.LittleEndian.Uint64(stripe[8:16]))
	d.acc3 = round64(d.acc3, binary.LittleEndian.Uint64(stripe[16:24]))
	d.acc4 = round64(d.acc4, binary.LittleEndian.Uint64(stripe[24:32]))
}

func round64(acc, lane uint64) uint64 {
	return bits.RotateLeft64(acc+lane*prime64x2, 31) * prime64x1
}

func mergeRound64(h, acc uint64) uint64 {
	h ^= bits.RotateLeft64(acc*prime64x2, 31) * prime64x1
	return h*prime64x1 + prime64x4
}

// Sum64 finalizes the digest without mutating the accumulated state.
func (d *Digest64) Sum64() uint64 {
	var h uint64
	if d.total >= 32 {
		h = bits.RotateLeft64(d.acc1, 1) +
			bits.RotateLeft64(d.acc2, 7) +
			bits.RotateLeft64(d.acc3, 12) +
			bits.RotateLeft64(d.acc4, 18)
		h = mergeRound64(h, d.acc1)
		h = mergeRound64(h, d.acc2)
		h = mergeRound64(h, d.acc3)
		h = mergeRound64(h, d.acc4)
	} else {
		h = d.seed + prime64x5
	}

	h += d.total

	rem := d.buf[:d.n]
	for ; len(rem) >= 8; rem = rem[8:] {
		h ^= bits.RotateLeft64(binary.LittleEndian.Uint64(rem[:8])*prime64x2, 31) * prime64x1
		h = bits.RotateLeft64(h, 27)*prime64x1 + prime64x4
	}
	for ; len(rem) >= 4; rem = rem[4:] {
		h ^= uint64(binary.LittleEndian.Uint32(rem[:4])) * prime64x1
		h = bits.RotateLeft64(h, 23)*prime64x2 + prime64x3
	}
	for _, b := range rem {
		h ^= uint64(b) * prime64x5
		h = bits.RotateLeft64(h, 11) * prime64x1
	}

	h ^= h >> 33
	h *= prime64x2
	h ^= h >> 29
	h *= prime64x3
	h ^= h >> 32
	return h
}

func (d *Digest64) Sum(b []byte) []byte {
	return binary.BigEndian.AppendUint64(b, d.Sum64())
}

// Sum64 computes the 64-bit hash of b in one shot.
func Sum64(b []byte, seed uint64) uint64 {
	d := New64(seed)
	d.Write(b)
	return d.Sum64()
}

// Sum64String hashes s with seed 0 without copying the string bytes.
func Sum64String(s string) uint64 {
	if len(s) == 0 {
		return Sum64(nil, 0)
	}
	return Sum64(unsafe.Slice(unsafe.StringData(s), len(s)), 0)
}
