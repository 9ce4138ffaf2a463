package gen

import (
	"blockworld/internal/game/block"
	"blockworld/internal/game/noise"
	"blockworld/internal/game/world"
)

// surfaceHeight combines the smooth height field with a higher-frequency
// hill field into an integer surface y, clamped below the world ceiling.
func (g *Generator) surfaceHeight(w *world.World, x, z int) int {
	fx, fz := float64(x), float64(z)

	h := noise.Fractal2D(fx*heightFreq, fz*heightFreq, g.biomeSeed,
		heightOctaves, persistence, lacunarity)
	hill := noise.Fractal2D((fx+hillOffset)*hillFreq, (fz+hillOffset)*hillFreq,
		g.biomeSeed+hillSeedOffset, hillOctaves, persistence, lacunarity)

	surface := baseHeight + int(h*heightScale+hill*hillScale)
	if surface < 4 {
		surface = 4
	}
	if max := w.Height() - surfaceMargin; surface > max {
		surface = max
	}
	return surface
}

// moisture samples the field that decides shoreline sand vs. grass. It is
// independent of the height fields: different frequency, shifted
// coordinates, its own derived seed.
func (g *Generator) moisture(x, z int) float64 {
	fx, fz := float64(x), float64(z)
	return noise.Fractal2D((fx+moistureOffset)*moistureFreq, (fz+moistureOffset)*moistureFreq,
		g.biomeSeed+moistureSeedOffset, moistureOctaves, persistence, lacunarity)
}

// fillColumn runs the per-column passes in order: strata, cave carving,
// ore speckling, ocean fill. It returns the column's surface height.
func (g *Generator) fillColumn(w *world.World, x, z int) int {
	surface := g.surfaceHeight(w, x, z)

	// Strata. Cell 0 is always the solid floor; the ordering below the
	// surface is stone, then two cells of dirt, then the top cell. Every
	// cell above the surface is written too, so a reset fully overwrites.
	top := block.Grass
	if g.isShoreline(surface, x, z) {
		top = block.Sand
	}
	for y := 0; y < w.Height(); y++ {
		switch {
		case y == 0:
			w.Set(x, y, z, block.Stone)
		case y <= surface-3:
			w.Set(x, y, z, block.Stone)
		case y < surface:
			w.Set(x, y, z, block.Dirt)
		case y == surface:
			w.Set(x, y, z, top)
		default:
			w.Set(x, y, z, block.Air)
		}
	}

	g.carveCaves(w, x, z, surface)
	g.speckleOre(w, x, z, surface)

	// Ocean fill, after the column is otherwise final: everything strictly
	// above the surface up to sea level becomes water. Cells at or below
	// the surface are never touched.
	for y := surface + 1; y <= SeaLevel; y++ {
		w.Set(x, y, z, block.Water)
	}

	return surface
}

// isShoreline holds for columns at or near sea level whose moisture is low
// enough for sand. Moisture plays no other role.
func (g *Generator) isShoreline(surface, x, z int) bool {
	if surface < SeaLevel-2 || surface > SeaLevel+2 {
		return false
	}
	return g.moisture(x, z) < shoreMoistureMax
}
