package hashidx

import (
	"crypto/rand"
	"encoding/binary"
	"os"
	"time"
	"unsafe"
)

// fallbackSeed is used when every entropy source collapses to zero.
const fallbackSeed = 0xDEADBEEF

// processStart anchors the monotonic clock reading used by mixSeed.
var processStart = time.Now()

// newSeed returns a per-table random seed. OS entropy is preferred; when it is
// unavailable the seed is mixed from the monotonic clock, the wall clock,
// the table address and the process id.
func newSeed(t *Table) uint32 {
	var buf [4]byte
	if _, err := rand.Read(buf[:]); err == nil {
		if s := binary.LittleEndian.Uint32(buf[:]); s != 0 {
			return s
		}
	}
	return mixSeed(
		uint64(time.Since(processStart)),
		uint64(time.Now().UnixNano()),
		uint64(uintptr(unsafe.Pointer(t))),
		uint64(os.Getpid()),
	)
}

// mixSeed folds the given entropy words into 32 bits and runs the result
// through the murmur3 finalizer.
func mixSeed(words ...uint64) uint32 {
	var s uint32
	for _, w := range words {
		s ^= uint32(w)
		s ^= uint32(w >> 32)
	}
	s = fmix32(s)
	if s == 0 {
		return fallbackSeed
	}
	return s
}
