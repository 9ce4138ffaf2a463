package gen

import (
	"blockworld/internal/game/block"
	"blockworld/internal/game/noise"
	"blockworld/internal/game/world"
)

const (
	treeFreq      = 0.91
	treeThreshold = 0.90
	canopyRadius  = 2
)

// decorateColumn plants a tree on the column when the tree field exceeds
// the placement threshold. Only grass columns above sea level qualify, and
// the top block must have survived cave carving.
func (g *Generator) decorateColumn(w *world.World, x, z, surface int) {
	if surface <= SeaLevel {
		return
	}
	if w.Get(x, surface, z) != block.Grass {
		return
	}
	v := noise.ValueNoise2D(float64(x)*treeFreq, float64(z)*treeFreq, g.treeSeed)
	if v > treeThreshold {
		g.placeTree(w, x, surface+1, z)
	}
}

// placeTree grows a trunk of 3-5 wood cells rooted at (x, rootY, z),
// consuming one PRNG draw for the height, then wraps the trunk top in a
// diamond canopy. Leaves only ever replace air, so canopies never clobber
// trunks, terrain, or each other. Writes past the world edge are dropped
// by the world itself.
func (g *Generator) placeTree(w *world.World, x, rootY, z int) {
	trunk := 3 + g.rng.IntN(3)
	for y := rootY; y < rootY+trunk; y++ {
		w.Set(x, y, z, block.Wood)
	}

	topY := rootY + trunk - 1
	for dy := -canopyRadius; dy <= canopyRadius; dy++ {
		for dx := -canopyRadius; dx <= canopyRadius; dx++ {
			for dz := -canopyRadius; dz <= canopyRadius; dz++ {
				if abs(dx)+abs(dy)+abs(dz) > canopyRadius+1 {
					continue
				}
				tx, ty, tz := x+dx, topY+dy, z+dz
				if w.Get(tx, ty, tz) == block.Air {
					w.Set(tx, ty, tz, block.Leaves)
				}
			}
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
