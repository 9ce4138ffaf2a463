package gen

import (
	"blockworld/internal/game/block"
	"blockworld/internal/game/noise"
	"blockworld/internal/game/world"
)

const (
	caveFreqXZ    = 1.0 / 16
	caveFreqY     = 1.0 / 12
	caveOctaves   = 4
	caveThreshold = 0.62
)

// carveCaves hollows out the column where the 3D cave field exceeds the
// threshold. It runs as a post-pass over the strata: only cells strictly
// between y=3 and the surface are candidates, so caves can open up stone
// and dirt but never break the floor or the surface itself.
func (g *Generator) carveCaves(w *world.World, x, z, surface int) {
	fx, fz := float64(x), float64(z)
	for y := 4; y < surface-1; y++ {
		d := noise.Fractal3D(fx*caveFreqXZ, float64(y)*caveFreqY, fz*caveFreqXZ,
			g.caveSeed, caveOctaves, persistence, lacunarity)
		if d > caveThreshold {
			w.Set(x, y, z, block.Air)
		}
	}
}
