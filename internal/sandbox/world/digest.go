package world

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// Digest returns a fingerprint of the occupied cell set. It ignores colours
// and iteration order, so two worlds with the same occupancy share a digest.
func (w *World) Digest() uint64 {
	var sum uint64
	var buf [24]byte
	for c := range w.blocks {
		binary.LittleEndian.PutUint64(buf[0:], uint64(int64(c.X)))
		binary.LittleEndian.PutUint64(buf[8:], uint64(int64(c.Y)))
		binary.LittleEndian.PutUint64(buf[16:], uint64(int64(c.Z)))
		// Summing keeps the result independent of map order.
		sum += xxhash.Sum64(buf[:])
	}
	return sum
}
