package rng

import "hash/fnv"

// PixelSeed derives a deterministic 32-bit seed from a pixel coordinate, a
// sample index within that pixel, and a domain tag identifying which
// stochastic decision the resulting stream will drive (the renderer uses
// "jitter" and "arealight"). Two calls with identical arguments always produce
// the same seed, independent of goroutine scheduling, tile shape, or
// render thread count — the basis of the renderer's determinism contract.
//
// fnv.New32a is used instead of hash/maphash because maphash's seed is
// randomized per process by design; this needs the opposite property.
func PixelSeed(x, y, sample int, domainTag string) uint32 {
	h := fnv.New32a()
	var buf [12]byte
	putInt32(buf[0:4], int32(x))
	putInt32(buf[4:8], int32(y))
	putInt32(buf[8:12], int32(sample))
	h.Write(buf[:])
	h.Write([]byte(domainTag))
	return h.Sum32()
}

func putInt32(b []byte, v int32) {
	b[0] = byte(v)
	b[1] = byte(v >> 8)
	b[2] = byte(v >> 16)
	b[3] = byte(v >> 24)
}

// ForPixel constructs a fresh PRNG stream for the given pixel/sample/domain
// tuple. Each domain gets its own independent stream so that, for example,
// consuming extra randomness for area-light sampling never perturbs the
// antialiasing offset sequence.
func ForPixel(x, y, sample int, domainTag string) *XorShift32 {
	return NewXorShift32(PixelSeed(x, y, sample, domainTag))
}
