package gridgraph

import (
	"encoding/binary"
	"encoding/hex"
	"math"

	"lukechampine.com/blake3"
)

// digestSize is the BLAKE3 output length in bytes.
const digestSize = 32

// Digest returns a hex BLAKE3-256 fingerprint of the grid inputs: shape,
// cell size, connectivity, barrier mask, costs and labels. Two grids with the
// same digest produce identical cost-distance results.
// Complexity: O(W×H).
func (gg *Grid) Digest() string {
	h := blake3.New(digestSize, nil)
	var buf [8]byte
	put := func(u uint64) {
		binary.LittleEndian.PutUint64(buf[:], u)
		_, _ = h.Write(buf[:])
	}

	put(uint64(gg.Width))
	put(uint64(gg.Height))
	put(math.Float64bits(gg.CellSize))
	put(uint64(gg.Conn))
	for i := range gg.cost {
		if gg.barrier[i] {
			put(math.MaxUint64)
		} else {
			put(math.Float64bits(gg.cost[i]))
		}
		put(uint64(int64(gg.labels[i])))
	}

	return hex.EncodeToString(h.Sum(nil))
}
