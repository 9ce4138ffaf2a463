package gen

import (
	"blockworld/internal/game/block"
	"blockworld/internal/game/noise"
	"blockworld/internal/game/world"
)

const (
	oreFreq      = 1.0 / 5
	oreThreshold = 0.8
)

// speckleOre replaces stone with ore where a single-octave 3D field spikes
// above the threshold. Only cells the strata and cave passes left as stone
// are eligible, inside the depth band 3 < y < surface-3.
func (g *Generator) speckleOre(w *world.World, x, z, surface int) {
	fx, fz := float64(x), float64(z)
	for y := 4; y < surface-3; y++ {
		if w.Get(x, y, z) != block.Stone {
			continue
		}
		v := noise.ValueNoise3D(fx*oreFreq, float64(y)*oreFreq, fz*oreFreq, g.oreSeed)
		if v > oreThreshold {
			w.Set(x, y, z, block.Ore)
		}
	}
}
