package phys

import (
	"math"

	"blockworld/internal/game/block"
	"blockworld/internal/game/world"
)

// rayStep is the fixed march length in world units. The march samples the
// grid at constant intervals rather than walking cell boundaries, so the
// same cell may be visited several steps in a row; the contract is the
// same either way: first non-air cell hit, last vacant cell before it.
const rayStep = 0.05

// Cell is an integer voxel coordinate.
type Cell struct {
	X, Y, Z int
}

// Hit is the result of a raycast. When Hit is false the ray ran out of
// range; Prev still holds the last vacant cell visited. When Hit is true,
// Block is the first non-air cell along the ray and Prev is the vacant
// cell immediately before it — the placement anchor.
type Hit struct {
	Hit   bool
	Block Cell
	Prev  Cell
}

// Cast marches from origin along dir, up to maxDist, and returns the
// first occupied cell. dir need not be normalized; a zero direction
// returns a miss at the origin cell.
func Cast(w *world.World, origin, dir Vec3, maxDist float64) Hit {
	l := math.Sqrt(dir.X*dir.X + dir.Y*dir.Y + dir.Z*dir.Z)
	if l == 0 {
		return Hit{Prev: cellAt(origin)}
	}
	sx := dir.X / l * rayStep
	sy := dir.Y / l * rayStep
	sz := dir.Z / l * rayStep

	p := origin
	prev := cellAt(origin)
	for traveled := 0.0; traveled <= maxDist; traveled += rayStep {
		c := cellAt(p)
		k := w.Get(c.X, c.Y, c.Z)
		if k != block.Air {
			return Hit{Hit: true, Block: c, Prev: prev}
		}
		prev = c
		p.X += sx
		p.Y += sy
		p.Z += sz
	}
	return Hit{Prev: prev}
}

func cellAt(p Vec3) Cell {
	return Cell{
		X: int(math.Floor(p.X)),
		Y: int(math.Floor(p.Y)),
		Z: int(math.Floor(p.Z)),
	}
}
