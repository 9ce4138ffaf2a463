package app

import (
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"blockworld/internal/game/block"
	"blockworld/internal/game/config"
	"blockworld/internal/game/phys"
	"blockworld/internal/game/sim"
	"blockworld/internal/render"
)

const (
	lookSpeed = 0.045 // radians per frame while an arrow key is held
	pitchCap  = math.Pi/2 - 0.01

	dayTicks   = 24000 // simulation ticks per full day-night cycle
	nightAlpha = 110   // darkest veil at midnight
)

// hotbar is the set of placeable blocks, selected with the digit keys.
var hotbar = []block.Kind{block.Stone, block.Dirt, block.Sand, block.Wood, block.Leaves}

// Game adapts the simulation to ebiten's update/draw loop. It owns only
// presentation state: the painter, the hotbar selection, and the frame
// clock. Everything that affects the world goes through the simulation.
type Game struct {
	sim     *sim.Simulation
	painter *render.Painter
	cfg     *config.Config
	log     *slog.Logger

	selected int
	last     time.Time
}

func New(s *sim.Simulation, cfg *config.Config, log *slog.Logger) *Game {
	return &Game{
		sim:     s,
		painter: render.NewPainter(s.World(), cfg.Seed),
		cfg:     cfg,
		log:     log,
		last:    time.Now(),
	}
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.log.Info("reset", "seed", g.sim.Seed())
		g.sim.Reset(g.sim.Seed())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		seed := time.Now().UnixNano()
		g.log.Info("reset", "seed", seed)
		g.sim.Reset(seed)
	}

	g.selectBlock()
	g.look()

	in := phys.Input{}
	if ebiten.IsKeyPressed(ebiten.KeyW) {
		in.Forward++
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) {
		in.Forward--
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) {
		in.Strafe++
	}
	if ebiten.IsKeyPressed(ebiten.KeyA) {
		in.Strafe--
	}
	in.Jump = ebiten.IsKeyPressed(ebiten.KeySpace)

	now := time.Now()
	g.sim.Advance(now.Sub(g.last), in)
	g.last = now

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.sim.Mine()
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		g.sim.Place(hotbar[g.selected])
	}
	return nil
}

func (g *Game) selectBlock() {
	for i := range hotbar {
		if inpututil.IsKeyJustPressed(ebiten.KeyDigit1 + ebiten.Key(i)) {
			g.selected = i
		}
	}
}

func (g *Game) look() {
	b := g.sim.Body()
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		b.Yaw -= lookSpeed
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		b.Yaw += lookSpeed
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		b.Pitch += lookSpeed
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		b.Pitch -= lookSpeed
	}
	if b.Pitch > pitchCap {
		b.Pitch = pitchCap
	}
	if b.Pitch < -pitchCap {
		b.Pitch = -pitchCap
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	w := g.sim.World()
	g.painter.Repaint(w, w.DrainDirty())
	g.painter.Draw(screen, g.sim.Body(), g.sim.Target(), g.sim.Ticks(), g.cfg.Scale)
	g.painter.Dim(screen, g.skyVeil())

	b := g.sim.Body()
	ebitenutil.DebugPrint(screen, fmt.Sprintf(
		"seed %d  tick %d\npos %.1f %.1f %.1f  ground %v\nhand: %s (1-%d to switch)",
		g.sim.Seed(), g.sim.Ticks(),
		b.Pos.X, b.Pos.Y, b.Pos.Z, b.OnGround,
		block.Get(hotbar[g.selected]).Name, len(hotbar),
	))
}

// skyVeil maps the tick clock onto a night-darkness alpha: zero at dawn,
// peaking at midnight. Cosmetic only; the simulation never sees it.
func (g *Game) skyVeil() byte {
	phase := float64(g.sim.Ticks()%dayTicks) / dayTicks
	dark := 0.5 - 0.5*math.Cos(2*math.Pi*phase)
	return byte(nightAlpha * dark)
}

func (g *Game) Layout(_, _ int) (int, int) {
	w := g.sim.World()
	return w.Width() * g.cfg.Scale, w.Depth() * g.cfg.Scale
}
