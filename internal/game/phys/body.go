package phys

import (
	"math"

	"blockworld/internal/game/block"
	"blockworld/internal/game/world"
)

// Body dimensions and tuning. The capsule is an axis-aligned box: Radius
// in x/z, Height in y, anchored at the feet.
const (
	Radius    = 0.3
	Height    = 1.8
	EyeHeight = 1.62

	walkAccel     = 60.0
	airControl    = 0.25 // fraction of walk authority while airborne
	groundDamping = 0.72 // horizontal velocity kept per tick on the ground
	airDamping    = 0.98 // horizontal velocity kept per tick in the air
	gravity       = 24.0
	jumpSpeed     = 8.5

	groundProbe  = 0.05 // how far below the feet the ground re-check looks
	floorBreachY = -8.0 // below this the body has fallen out of the world
	recoverY     = 26.0 // respawn height after a floor breach, above sea level
)

// Vec3 is a continuous world-space vector.
type Vec3 struct {
	X, Y, Z float64
}

// Input carries one tick's movement intents. Forward and Strafe are in
// [-1, 1] relative to the body's yaw.
type Input struct {
	Forward float64
	Strafe  float64
	Jump    bool
}

// Body is a kinematic first-person body. Position is the feet center.
// Position and velocity are mutated only by Step; yaw and pitch belong to
// whoever handles look input.
type Body struct {
	Pos      Vec3
	Vel      Vec3
	Yaw      float64
	Pitch    float64
	OnGround bool
}

// Facing returns the unit view direction derived from yaw and pitch.
func (b *Body) Facing() Vec3 {
	cp := math.Cos(b.Pitch)
	return Vec3{
		X: cp * math.Sin(b.Yaw),
		Y: math.Sin(b.Pitch),
		Z: -cp * math.Cos(b.Yaw),
	}
}

// EyeRay returns the ray origin at eye height and the facing direction,
// for camera placement and block targeting.
func (b *Body) EyeRay() (origin, dir Vec3) {
	return Vec3{X: b.Pos.X, Y: b.Pos.Y + EyeHeight, Z: b.Pos.Z}, b.Facing()
}

// Step advances the body by one fixed tick of length dt against the grid.
// The integration is axis-separated: x, then z, then y, each displacement
// tested and reverted independently, so a wall hit on one axis still lets
// the body slide along the other.
func (b *Body) Step(w *world.World, in Input, dt float64) {
	groundedAtStart := b.OnGround

	// Horizontal acceleration from intents, rotated by yaw. Air control is
	// a fraction of ground authority.
	sy, cy := math.Sin(b.Yaw), math.Cos(b.Yaw)
	ax := in.Forward*sy + in.Strafe*cy
	az := in.Forward*(-cy) + in.Strafe*sy
	if l := math.Hypot(ax, az); l > 1 {
		ax /= l
		az /= l
	}
	authority := walkAccel
	if !groundedAtStart {
		authority *= airControl
	}
	b.Vel.X += ax * authority * dt
	b.Vel.Z += az * authority * dt

	// Damping after acceleration, every tick.
	damping := airDamping
	if groundedAtStart {
		damping = groundDamping
	}
	b.Vel.X *= damping
	b.Vel.Z *= damping

	// Gravity applies unconditionally, before the ground re-check.
	b.Vel.Y -= gravity * dt

	// Jump overwrites vertical velocity; it never stacks.
	if groundedAtStart && in.Jump {
		b.Vel.Y = jumpSpeed
		b.OnGround = false
	}

	// Axis-separated integration: x, z, then y.
	b.Pos.X += b.Vel.X * dt
	if b.collides(w) {
		b.Pos.X -= b.Vel.X * dt
		b.Vel.X = 0
	}
	b.Pos.Z += b.Vel.Z * dt
	if b.collides(w) {
		b.Pos.Z -= b.Vel.Z * dt
		b.Vel.Z = 0
	}
	dy := b.Vel.Y * dt
	b.Pos.Y += dy
	if b.collides(w) {
		b.Pos.Y -= dy
		if b.Vel.Y < 0 {
			b.OnGround = true
		}
		b.Vel.Y = 0
	}

	// Independent ground re-probe: a point just below the feet, unless the
	// body is moving strongly upward. This catches the standing-still case
	// the axis pass never sees.
	b.OnGround = b.Vel.Y <= 0.1 && b.probeGround(w)

	// Fall-through safety net. Silent recovery, not an error.
	if b.Pos.Y < floorBreachY {
		b.Pos.Y = recoverY
		b.Vel = Vec3{}
	}
}

// collides reports whether the body's box overlaps any collidable cell.
// Water never collides, whatever the catalog says about it.
func (b *Body) collides(w *world.World) bool {
	minX, minY, minZ := b.Pos.X-Radius, b.Pos.Y, b.Pos.Z-Radius
	maxX, maxY, maxZ := b.Pos.X+Radius, b.Pos.Y+Height, b.Pos.Z+Radius
	return boxHitsSolid(w, minX, minY, minZ, maxX, maxY, maxZ)
}

// probeGround tests the body's footprint a small distance below the feet.
func (b *Body) probeGround(w *world.World) bool {
	y := b.Pos.Y - groundProbe
	return boxHitsSolid(w, b.Pos.X-Radius, y, b.Pos.Z-Radius, b.Pos.X+Radius, y, b.Pos.Z+Radius)
}

// boxHitsSolid tests every grid cell overlapped by the box. The epsilon
// keeps a box exactly flush with a cell boundary from counting the next
// cell over.
func boxHitsSolid(w *world.World, minX, minY, minZ, maxX, maxY, maxZ float64) bool {
	const eps = 1e-7
	x0, x1 := int(math.Floor(minX)), int(math.Floor(maxX-eps))
	y0, y1 := int(math.Floor(minY)), int(math.Floor(maxY-eps))
	z0, z1 := int(math.Floor(minZ)), int(math.Floor(maxZ-eps))
	for y := y0; y <= y1; y++ {
		for z := z0; z <= z1; z++ {
			for x := x0; x <= x1; x++ {
				if cellCollides(w.Get(x, y, z)) {
					return true
				}
			}
		}
	}
	return false
}

func cellCollides(k block.Kind) bool {
	return block.IsSolid(k) && k != block.Water
}

// OverlapsCell reports whether the body's box overlaps the given cell.
// Placement uses this to refuse blocks inside the body.
func (b *Body) OverlapsCell(x, y, z int) bool {
	return b.Pos.X+Radius > float64(x) && b.Pos.X-Radius < float64(x+1) &&
		b.Pos.Y+Height > float64(y) && b.Pos.Y < float64(y+1) &&
		b.Pos.Z+Radius > float64(z) && b.Pos.Z-Radius < float64(z+1)
}
