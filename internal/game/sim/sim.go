package sim

import (
	"fmt"
	"time"

	"blockworld/internal/game/block"
	"blockworld/internal/game/phys"
	"blockworld/internal/game/world"
	"blockworld/internal/game/world/gen"
)

// ReachDistance is how far mining and placing can target, in world units.
const ReachDistance = 6.0

// Simulation owns the world and the body exclusively. Everything advances
// on a single timeline: frame time accumulates into fixed ticks, each tick
// steps the body against the grid, and the block target is re-derived from
// the eye ray. Mining and placing are synchronous point mutations between
// ticks; nothing here runs concurrently with anything else.
type Simulation struct {
	w     *world.World
	body  phys.Body
	timer *FixedStep

	seed   int64
	ticks  uint64
	target phys.Hit
	dt     float64
}

// New creates a Simulation with a freshly generated world.
func New(width, height, depth, chunkSize int, seed int64, tps int) (*Simulation, error) {
	if tps <= 0 {
		return nil, fmt.Errorf("invalid tick rate %d", tps)
	}
	w, err := world.New(width, height, depth, chunkSize)
	if err != nil {
		return nil, err
	}
	s := &Simulation{
		w:     w,
		timer: NewFixedStep(tps),
		dt:    1.0 / float64(tps),
	}
	s.Reset(seed)
	return s, nil
}

// World exposes the query and mutation surface for collaborators. The grid
// buffer itself stays private to the world.
func (s *Simulation) World() *world.World { return s.w }

// Body exposes the body for camera placement and look control. Position
// and velocity are still only written by the tick itself.
func (s *Simulation) Body() *phys.Body { return &s.body }

// Target returns the current raycast result, recomputed on every advance.
func (s *Simulation) Target() phys.Hit { return s.target }

// Ticks returns the number of simulation ticks run since the last reset.
func (s *Simulation) Ticks() uint64 { return s.ticks }

// Seed returns the seed of the current world.
func (s *Simulation) Seed() int64 { return s.seed }

// Reset regenerates the world in place from seed and respawns the body at
// the center column's surface. All chunks come out dirty.
func (s *Simulation) Reset(seed int64) {
	s.seed = seed
	s.ticks = 0
	gen.Generate(s.w, seed)

	sx, sz := s.spawnColumn()
	top := s.w.TopSolid(sx, sz)
	s.body = phys.Body{
		Pos: phys.Vec3{X: float64(sx) + 0.5, Y: float64(top + 1), Z: float64(sz) + 0.5},
	}
	s.retarget()
}

// spawnColumn picks the dry column nearest the world center: surface at or
// above sea level, so the body starts on land. An all-ocean world falls
// back to the center column.
func (s *Simulation) spawnColumn() (int, int) {
	cx, cz := s.w.Width()/2, s.w.Depth()/2
	bestX, bestZ := cx, cz
	bestDist := -1
	for z := 0; z < s.w.Depth(); z++ {
		for x := 0; x < s.w.Width(); x++ {
			if s.w.TopSolid(x, z) < gen.SeaLevel {
				continue
			}
			d := (x-cx)*(x-cx) + (z-cz)*(z-cz)
			if bestDist < 0 || d < bestDist {
				bestX, bestZ, bestDist = x, z, d
			}
		}
	}
	return bestX, bestZ
}

// Advance credits elapsed frame time, runs zero or more fixed ticks with
// the given input intents, and re-derives the block target. It returns the
// number of ticks run.
func (s *Simulation) Advance(elapsed time.Duration, in phys.Input) int {
	n := s.timer.Advance(elapsed)
	for i := 0; i < n; i++ {
		s.body.Step(s.w, in, s.dt)
		s.ticks++
	}
	s.retarget()
	return n
}

func (s *Simulation) retarget() {
	origin, dir := s.body.EyeRay()
	s.target = phys.Cast(s.w, origin, dir, ReachDistance)
}

// Mine removes the targeted block, if any. The freed cell's chunk is
// marked dirty by the write itself.
func (s *Simulation) Mine() bool {
	if !s.target.Hit {
		return false
	}
	c := s.target.Block
	s.w.Set(c.X, c.Y, c.Z, block.Air)
	s.retarget()
	return true
}

// Place puts k into the placement anchor, refusing cells that are no
// longer vacant, lie outside the world, or overlap the body.
func (s *Simulation) Place(k block.Kind) bool {
	if !s.target.Hit {
		return false
	}
	c := s.target.Prev
	if !s.w.InBounds(c.X, c.Y, c.Z) {
		return false
	}
	if s.w.Get(c.X, c.Y, c.Z) != block.Air {
		return false
	}
	if s.body.OverlapsCell(c.X, c.Y, c.Z) {
		return false
	}
	s.w.Set(c.X, c.Y, c.Z, k)
	s.retarget()
	return true
}
