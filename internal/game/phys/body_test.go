package phys

import (
	"math"
	"testing"

	"blockworld/internal/game/block"
	"blockworld/internal/game/world"
)

const dt = 1.0 / 60

func flatWorld(t *testing.T) *world.World {
	t.Helper()
	w, err := world.New(16, 16, 16, 8)
	if err != nil {
		t.Fatalf("world.New: %v", err)
	}
	for z := 0; z < 16; z++ {
		for x := 0; x < 16; x++ {
			w.Set(x, 0, z, block.Stone)
		}
	}
	return w
}

func TestRestingOnFloorReportsGrounded(t *testing.T) {
	w := flatWorld(t)
	b := &Body{Pos: Vec3{X: 2.5, Y: 1, Z: 2.5}}

	b.Step(w, Input{}, dt)

	if !b.OnGround {
		t.Error("body resting on floor should be grounded")
	}
	if b.Vel.Y != 0 {
		t.Errorf("vertical velocity = %f, want 0", b.Vel.Y)
	}
	if math.Abs(b.Pos.Y-1) > 1e-9 {
		t.Errorf("body sank into floor: y = %f", b.Pos.Y)
	}
}

func TestFreeFallNotGrounded(t *testing.T) {
	w := flatWorld(t)
	b := &Body{Pos: Vec3{X: 2.5, Y: 10, Z: 2.5}}

	b.Step(w, Input{}, dt)

	if b.OnGround {
		t.Error("falling body must not report grounded")
	}
	if b.Vel.Y >= 0 {
		t.Errorf("gravity did not apply: vy = %f", b.Vel.Y)
	}
	if b.Pos.Y >= 10 {
		t.Errorf("body did not fall: y = %f", b.Pos.Y)
	}
}

func TestFallLandsOnFloor(t *testing.T) {
	w := flatWorld(t)
	b := &Body{Pos: Vec3{X: 2.5, Y: 5, Z: 2.5}}

	for i := 0; i < 300; i++ {
		b.Step(w, Input{}, dt)
	}

	if !b.OnGround {
		t.Fatal("body never landed")
	}
	if math.Abs(b.Pos.Y-1) > 0.2 {
		t.Errorf("landed at y = %f, want ~1", b.Pos.Y)
	}
}

func TestWallBlocksOneAxisOnly(t *testing.T) {
	w := flatWorld(t)
	// Wall plane at x=4, two cells tall.
	for z := 0; z < 16; z++ {
		w.Set(4, 1, z, block.Stone)
		w.Set(4, 2, z, block.Stone)
	}
	b := &Body{
		Pos:      Vec3{X: 3.65, Y: 1, Z: 2.5},
		Vel:      Vec3{X: 10, Z: 10},
		OnGround: true,
	}
	startX, startZ := b.Pos.X, b.Pos.Z

	b.Step(w, Input{}, dt)

	if b.Vel.X != 0 {
		t.Errorf("x velocity = %f, want 0 (wall hit)", b.Vel.X)
	}
	if math.Abs(b.Pos.X-startX) > 1e-9 {
		t.Errorf("x position penetrated: %f, want %f", b.Pos.X, startX)
	}
	if b.Vel.Z == 0 {
		t.Error("z velocity zeroed despite open z axis")
	}
	if b.Pos.Z <= startZ {
		t.Error("body did not slide along the wall")
	}
}

func TestSingleObstructedAxisZeroesOnlyThatVelocity(t *testing.T) {
	w := flatWorld(t)
	for y := 1; y <= 2; y++ {
		for x := 0; x < 16; x++ {
			w.Set(x, y, 4, block.Stone)
		}
	}
	b := &Body{
		Pos:      Vec3{X: 2.5, Y: 1, Z: 3.65},
		Vel:      Vec3{Z: 10},
		OnGround: true,
	}

	b.Step(w, Input{}, dt)

	if b.Vel.Z != 0 {
		t.Errorf("z velocity = %f, want 0", b.Vel.Z)
	}
	if math.Abs(b.Pos.Z-3.65) > 1e-9 {
		t.Errorf("z position = %f, want 3.65", b.Pos.Z)
	}
}

func TestJumpOverwritesVerticalVelocity(t *testing.T) {
	w := flatWorld(t)
	b := &Body{Pos: Vec3{X: 2.5, Y: 1, Z: 2.5}, OnGround: true}

	b.Step(w, Input{Jump: true}, dt)

	if b.OnGround {
		t.Error("jumping body still grounded after step")
	}
	if b.Vel.Y <= 0 {
		t.Errorf("jump did not launch: vy = %f", b.Vel.Y)
	}
	if b.Pos.Y <= 1 {
		t.Errorf("body did not leave the floor: y = %f", b.Pos.Y)
	}

	// Airborne now; a second jump intent must not re-launch.
	vy := b.Vel.Y
	b.Step(w, Input{Jump: true}, dt)
	if b.Vel.Y > vy {
		t.Error("airborne jump added velocity")
	}
}

func TestWaterNeverCollides(t *testing.T) {
	w := flatWorld(t)
	for y := 1; y < 6; y++ {
		for z := 0; z < 16; z++ {
			for x := 0; x < 16; x++ {
				w.Set(x, y, z, block.Water)
			}
		}
	}
	b := &Body{Pos: Vec3{X: 2.5, Y: 4, Z: 2.5}}

	b.Step(w, Input{}, dt)

	if b.Pos.Y >= 4 {
		t.Error("body should sink through water")
	}
}

func TestWalkInputAcceleratesAlongYaw(t *testing.T) {
	w := flatWorld(t)
	b := &Body{Pos: Vec3{X: 8, Y: 1, Z: 8}, Yaw: 0, OnGround: true}

	// Yaw 0 faces -z; forward intent should move the body toward -z.
	for i := 0; i < 30; i++ {
		b.Step(w, Input{Forward: 1}, dt)
	}

	if b.Pos.Z >= 8 {
		t.Errorf("body moved to z = %f, want < 8", b.Pos.Z)
	}
	if math.Abs(b.Pos.X-8) > 1e-6 {
		t.Errorf("forward walk drifted in x: %f", b.Pos.X)
	}
}

func TestFallThroughRecovery(t *testing.T) {
	w, err := world.New(16, 16, 16, 8) // no floor at all
	if err != nil {
		t.Fatalf("world.New: %v", err)
	}
	b := &Body{Pos: Vec3{X: 2.5, Y: 2, Z: 2.5}}

	for i := 0; i < 600; i++ {
		b.Step(w, Input{}, dt)
		if b.Pos.Y < floorBreachY {
			t.Fatalf("body below breach bound after step: y = %f", b.Pos.Y)
		}
	}
	if b.Pos.Y < floorBreachY {
		t.Errorf("recovery never triggered: y = %f", b.Pos.Y)
	}
}

func TestOverlapsCell(t *testing.T) {
	b := &Body{Pos: Vec3{X: 2.5, Y: 1, Z: 2.5}}
	if !b.OverlapsCell(2, 1, 2) {
		t.Error("body should overlap its own feet cell")
	}
	if !b.OverlapsCell(2, 2, 2) {
		t.Error("body should overlap its head cell")
	}
	if b.OverlapsCell(4, 1, 2) {
		t.Error("body should not overlap a distant cell")
	}
	if b.OverlapsCell(2, 3, 2) {
		t.Error("body should not overlap above its head")
	}
}

func TestFacingUnitLength(t *testing.T) {
	b := &Body{Yaw: 1.2, Pitch: -0.4}
	f := b.Facing()
	l := math.Sqrt(f.X*f.X + f.Y*f.Y + f.Z*f.Z)
	if math.Abs(l-1) > 1e-12 {
		t.Errorf("facing length = %f, want 1", l)
	}
}
