package gen

import (
	"blockworld/internal/game/noise"
	"blockworld/internal/game/world"
)

// SeaLevel is the y of the highest water cell in ocean columns.
const SeaLevel = 20

// Tuning literals for the generation passes. These are part of the
// determinism contract: changing any of them changes every world produced
// for a given seed.
const (
	persistence = 0.5
	lacunarity  = 2.0

	baseHeight    = 6
	surfaceMargin = 8 // surface stays this far below the world ceiling
	heightFreq    = 1.0 / 32
	heightOctaves = 5
	heightScale   = 26
	hillFreq      = 1.0 / 18
	hillOctaves   = 3
	hillOffset    = 512 // sample the hill field on shifted coordinates
	hillScale     = 10

	moistureFreq    = 1.0 / 45
	moistureOctaves = 4
	moistureOffset  = 1300
	shoreMoistureMax = 0.55

	hillSeedOffset     = 7
	moistureSeedOffset = 13
	treeSeedOffset     = 11
)

// Generator holds the derived sub-seeds for one generation run. The three
// sub-seeds come from sequential draws of a single PRNG stream seeded by
// the user-facing seed; the same stream then supplies per-tree trunk
// heights, which makes tree shapes generation-order dependent by design.
type Generator struct {
	rng       *noise.PRNG
	biomeSeed int64
	caveSeed  int64
	oreSeed   int64
	treeSeed  int64
}

func newGenerator(seed int64) *Generator {
	rng := noise.NewPRNG(uint32(seed))
	g := &Generator{rng: rng}
	g.biomeSeed = int64(rng.Next() * (1 << 31))
	g.caveSeed = int64(rng.Next() * (1 << 31))
	g.oreSeed = int64(rng.Next() * (1 << 31))
	g.treeSeed = g.biomeSeed + treeSeedOffset
	return g
}

// Generate overwrites every cell of w with terrain derived from seed. It
// is a pure function of (world dimensions, chunk size, seed): the same
// inputs always produce bit-identical block assignment, whatever the
// world held before. All chunks are left dirty for the rebuild consumer.
func Generate(w *world.World, seed int64) {
	g := newGenerator(seed)

	width, depth := w.Width(), w.Depth()
	heights := make([]int, width*depth)

	// First sweep: height, strata, caves, ore, and ocean fill, column by
	// column in fixed order.
	for x := 0; x < width; x++ {
		for z := 0; z < depth; z++ {
			surface := g.fillColumn(w, x, z)
			heights[z*width+x] = surface
		}
	}

	// Second sweep: vegetation. Trees span columns, so they run only after
	// every column's strata are final; canopies then never get clobbered.
	for x := 0; x < width; x++ {
		for z := 0; z < depth; z++ {
			g.decorateColumn(w, x, z, heights[z*width+x])
		}
	}
}
