package digest

import (
	"encoding/binary"
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// Seed is the fixed seed used for folded attribute hashes.
const Seed uint64 = 0xdeadbeef

// Hasher hashes data with a seed.
type Hasher func(data []byte, seed uint64) uint64

const (
	NameMurmur64A = "murmur64a"
	NameXXHash64  = "xxhash64"
)

// Lookup returns the hasher registered under name.
func Lookup(name string) (Hasher, error) {
	switch name {
	case "", NameMurmur64A:
		return Murmur64A, nil
	case NameXXHash64:
		return XXHash64, nil
	}
	return nil, fmt.Errorf("digest: unknown hasher %q", name)
}

// Murmur64A is MurmurHash64A over little-endian 8 byte blocks. It is the
// historic hash of the sparse wire format.
func Murmur64A(data []byte, seed uint64) uint64 {
	const (
		m = 0xc6a4a7935bd1e995
		r = 47
	)
	h := seed ^ (uint64(len(data)) * m)

	n := len(data) / 8 * 8
	for i := 0; i < n; i += 8 {
		k := binary.LittleEndian.Uint64(data[i:])
		k *= m
		k ^= k >> r
		k *= m

		h ^= k
		h *= m
	}

	tail := data[n:]
	switch len(tail) {
	case 7:
		h ^= uint64(tail[6]) << 48
		fallthrough
	case 6:
		h ^= uint64(tail[5]) << 40
		fallthrough
	case 5:
		h ^= uint64(tail[4]) << 32
		fallthrough
	case 4:
		h ^= uint64(tail[3]) << 24
		fallthrough
	case 3:
		h ^= uint64(tail[2]) << 16
		fallthrough
	case 2:
		h ^= uint64(tail[1]) << 8
		fallthrough
	case 1:
		h ^= uint64(tail[0])
		h *= m
	}

	h ^= h >> r
	h *= m
	h ^= h >> r
	return h
}

// XXHash64 is seeded XXH64.
func XXHash64(data []byte, seed uint64) uint64 {
	d := xxhash.NewWithSeed(seed)
	_, _ = d.Write(data)
	return d.Sum64()
}
