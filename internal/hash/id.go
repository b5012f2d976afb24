// Package hash wraps xxHash64 for the identifiers and checksums used across the module.
package hash

import (
	"encoding/binary"
	"math/bits"

	"github.com/cespare/xxhash/v2"
)

// Digest computes the xxHash64 of b.
func Digest(b []byte) uint64 {
	return xxhash.Sum64(b)
}

// Fold32 folds a 64-bit hash into 32 bits. The result is never zero.
func Fold32(h uint64) uint32 {
	t := bits.RotateLeft32(uint32(h)+uint32(h>>32), 5) //nolint:gosec
	if t == 0 {
		t = 1
	}

	return t
}

// ProcessTag mixes the identity of a running process into a non-zero 32-bit tag.
//
// Parameters:
//   - pid: Operating system process id
//   - instance: Random per-start identifier, e.g. a UUID
//   - startNanos: Wall-clock start time in nanoseconds
//
// Returns:
//   - uint32: Non-zero tag
func ProcessTag(pid int, instance [16]byte, startNanos int64) uint32 {
	var buf [32]byte
	copy(buf[8:24], instance[:])
	binary.LittleEndian.PutUint64(buf[0:], uint64(pid))         //nolint:gosec
	binary.LittleEndian.PutUint64(buf[24:], uint64(startNanos)) //nolint:gosec

	return Fold32(xxhash.Sum64(buf[:]))
}
