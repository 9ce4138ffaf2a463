package noise

// Seeded value noise used by terrain generation. All functions are pure in
// their arguments: the same seed and coordinates always produce the same
// value, bit for bit.

import "math"

// Spatial hashing primes. The fourth mixes the seed in so that different
// seeds yield decorrelated fields over the same lattice.
const (
	primeX    = 73856093
	primeY    = 19349663
	primeZ    = 83492791
	primeSeed = 0x9e3779b9
)

// PRNG is a xorshift32 generator: one 32-bit word of state, one scramble
// per draw. Same seed, same infinite sequence.
type PRNG struct {
	state uint32
}

// NewPRNG creates a PRNG from a seed. A zero seed is remapped so the
// all-zero fixed point of xorshift is never reachable.
func NewPRNG(seed uint32) *PRNG {
	if seed == 0 {
		seed = primeSeed
	}
	return &PRNG{state: seed}
}

// Next returns the next value in [0, 1).
func (p *PRNG) Next() float64 {
	s := p.state
	s ^= s << 13
	s ^= s >> 17
	s ^= s << 5
	p.state = s
	return float64(s) / (1 << 32)
}

// IntN returns a uniform integer in [0, n) drawn from the stream.
func (p *PRNG) IntN(n int) int {
	return int(p.Next() * float64(n))
}

// scramble is the xorshift avalanche shared by the PRNG and the lattice hash.
func scramble(s uint32) uint32 {
	s ^= s << 13
	s ^= s >> 17
	s ^= s << 5
	return s
}

// latticeHash maps an integer lattice point plus a seed to a value in [0, 1).
func latticeHash(ix, iy, iz, seed int64) float64 {
	h := uint32(ix)*primeX ^ uint32(iy)*primeY ^ uint32(iz)*primeZ ^ uint32(seed)*primeSeed
	return float64(scramble(h)) / (1 << 32)
}

// fade is the smoothstep curve 3t²−2t³, giving first-derivative continuity
// at lattice boundaries.
func fade(t float64) float64 {
	return t * t * (3 - 2*t)
}

func lerp(t, a, b float64) float64 {
	return a + t*(b-a)
}

// ValueNoise2D returns smooth noise in [0, 1) by interpolating the lattice
// hash at the four integer corners around (x, z).
func ValueNoise2D(x, z float64, seed int64) float64 {
	x0 := math.Floor(x)
	z0 := math.Floor(z)
	ix := int64(x0)
	iz := int64(z0)

	u := fade(x - x0)
	v := fade(z - z0)

	a := latticeHash(ix, 0, iz, seed)
	b := latticeHash(ix+1, 0, iz, seed)
	c := latticeHash(ix, 0, iz+1, seed)
	d := latticeHash(ix+1, 0, iz+1, seed)

	return lerp(v, lerp(u, a, b), lerp(u, c, d))
}

// ValueNoise3D is the trilinear analogue of ValueNoise2D over eight corners.
func ValueNoise3D(x, y, z float64, seed int64) float64 {
	x0 := math.Floor(x)
	y0 := math.Floor(y)
	z0 := math.Floor(z)
	ix := int64(x0)
	iy := int64(y0)
	iz := int64(z0)

	u := fade(x - x0)
	v := fade(y - y0)
	w := fade(z - z0)

	bottom := lerp(w,
		lerp(u, latticeHash(ix, iy, iz, seed), latticeHash(ix+1, iy, iz, seed)),
		lerp(u, latticeHash(ix, iy, iz+1, seed), latticeHash(ix+1, iy, iz+1, seed)))
	top := lerp(w,
		lerp(u, latticeHash(ix, iy+1, iz, seed), latticeHash(ix+1, iy+1, iz, seed)),
		lerp(u, latticeHash(ix, iy+1, iz+1, seed), latticeHash(ix+1, iy+1, iz+1, seed)))

	return lerp(v, bottom, top)
}

// octaveSeedStep decorrelates octaves: each octave samples a field derived
// from its own seed rather than a rescaling of the base field. Changing
// this constant changes every generated world for a given seed.
const octaveSeedStep = 1013

// Fractal2D sums octaves of ValueNoise2D at geometrically scaled frequency
// and amplitude. Amplitude starts at 0.5 and the result is not
// renormalized: with persistence 0.5 the output stays below
// 0.5/(1-persistence), and thresholds in callers are tuned against that.
func Fractal2D(x, z float64, seed int64, octaves int, persistence, lacunarity float64) float64 {
	var total float64
	frequency := 1.0
	amplitude := 0.5

	for i := 0; i < octaves; i++ {
		total += ValueNoise2D(x*frequency, z*frequency, seed+int64(i)*octaveSeedStep) * amplitude
		amplitude *= persistence
		frequency *= lacunarity
	}
	return total
}

// Fractal3D is the 3D analogue of Fractal2D.
func Fractal3D(x, y, z float64, seed int64, octaves int, persistence, lacunarity float64) float64 {
	var total float64
	frequency := 1.0
	amplitude := 0.5

	for i := 0; i < octaves; i++ {
		total += ValueNoise3D(x*frequency, y*frequency, z*frequency, seed+int64(i)*octaveSeedStep) * amplitude
		amplitude *= persistence
		frequency *= lacunarity
	}
	return total
}
