package render

import (
	"image/color"

	"github.com/aquilax/go-perlin"
	"github.com/hajimehoshi/ebiten/v2"

	"blockworld/internal/game/block"
	"blockworld/internal/game/phys"
	"blockworld/internal/game/world"
	"blockworld/internal/game/world/gen"
)

const (
	cloudFreq  = 1.0 / 18
	cloudDrift = 0.018
	cloudMin   = 0.25 // perlin value where cloud shadow starts
)

// Painter draws a top-down view of the world. The terrain layer is a
// cached RGBA buffer repainted only for chunks the world reports dirty;
// clouds, the body marker, and the target highlight go on top each frame.
type Painter struct {
	width, depth int
	chunk        int

	buf []byte
	img *ebiten.Image

	cloudBuf []byte
	cloudImg *ebiten.Image
	clouds   *perlin.Perlin

	pixel *ebiten.Image
}

// NewPainter allocates a painter for the given world. The seed only feeds
// the cosmetic cloud field; it has no effect on the world itself.
func NewPainter(w *world.World, seed int64) *Painter {
	width, depth := w.Width(), w.Depth()
	p := &Painter{
		width:    width,
		depth:    depth,
		chunk:    w.ChunkSize(),
		buf:      make([]byte, 4*width*depth),
		img:      ebiten.NewImage(width, depth),
		cloudBuf: make([]byte, 4*width*depth),
		cloudImg: ebiten.NewImage(width, depth),
		clouds:   perlin.NewPerlin(2, 2, 3, seed),
	}
	p.pixel = ebiten.NewImage(1, 1)
	p.pixel.Fill(color.White)
	return p
}

// Repaint refreshes the terrain layer for the given dirty chunks.
func (p *Painter) Repaint(w *world.World, dirty map[world.ChunkPos]struct{}) {
	if len(dirty) == 0 {
		return
	}
	for c := range dirty {
		p.paintChunk(w, c)
	}
	p.img.WritePixels(p.buf)
}

func (p *Painter) paintChunk(w *world.World, c world.ChunkPos) {
	x0, z0 := c.X*p.chunk, c.Z*p.chunk
	x1, z1 := min(x0+p.chunk, p.width), min(z0+p.chunk, p.depth)
	for z := z0; z < z1; z++ {
		for x := x0; x < x1; x++ {
			col := p.columnColor(w, x, z)
			base := (z*p.width + x) * 4
			p.buf[base+0] = col.R
			p.buf[base+1] = col.G
			p.buf[base+2] = col.B
			p.buf[base+3] = 255
		}
	}
}

// columnColor is the bird's-eye color of one column: the top solid block's
// top color shaded by height, tinted toward the water color when the
// column is flooded. Glowing blocks skip the height shading.
func (p *Painter) columnColor(w *world.World, x, z int) color.RGBA {
	top := w.TopSolid(x, z)
	if top < 0 {
		return color.RGBA{R: 12, G: 12, B: 16, A: 255}
	}
	props := block.Get(w.Get(x, top, z))
	col := props.Top

	if !props.Glow {
		f := 0.55 + 0.45*float64(top)/float64(w.Height()-1)
		col = scale(col, f)
	}

	if w.Get(x, top+1, z) == block.Water {
		depth := gen.SeaLevel - top
		t := 0.45 + 0.06*float64(depth)
		if t > 0.85 {
			t = 0.85
		}
		col = mix(col, block.Get(block.Water).Top, t)
	}
	return col
}

// Draw composes the frame: terrain, drifting cloud shadows, the target
// highlight, and the body marker, all scaled up to screen pixels.
func (p *Painter) Draw(screen *ebiten.Image, b *phys.Body, tgt phys.Hit, tick uint64, scl int) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scl), float64(scl))
	screen.DrawImage(p.img, op)

	p.drawClouds(screen, tick, scl)

	if tgt.Hit {
		p.fillCell(screen, tgt.Block.X, tgt.Block.Z, scl, color.RGBA{R: 110, G: 110, B: 110, A: 110})
	}
	bx, bz := int(b.Pos.X), int(b.Pos.Z)
	p.fillCell(screen, bx, bz, scl, color.RGBA{R: 230, G: 40, B: 40, A: 230})
}

func (p *Painter) drawClouds(screen *ebiten.Image, tick uint64, scl int) {
	t := float64(tick) * cloudDrift
	for z := 0; z < p.depth; z++ {
		for x := 0; x < p.width; x++ {
			v := p.clouds.Noise2D(float64(x)*cloudFreq+t, float64(z)*cloudFreq)
			base := (z*p.width + x) * 4
			a := byte(0)
			if v > cloudMin {
				s := (v - cloudMin) * 160
				if s > 70 {
					s = 70
				}
				a = byte(s)
			}
			p.cloudBuf[base+0] = a
			p.cloudBuf[base+1] = a
			p.cloudBuf[base+2] = a
			p.cloudBuf[base+3] = a
		}
	}
	p.cloudImg.WritePixels(p.cloudBuf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scl), float64(scl))
	screen.DrawImage(p.cloudImg, op)
}

// Dim lays a dark blue veil over the whole frame, the night phase of the
// day cycle. Zero alpha is a no-op.
func (p *Painter) Dim(screen *ebiten.Image, alpha byte) {
	if alpha == 0 {
		return
	}
	b := screen.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(b.Dx()), float64(b.Dy()))
	op.ColorScale.ScaleWithColor(color.RGBA{R: alpha / 10, G: alpha / 10, B: alpha / 3, A: alpha})
	screen.DrawImage(p.pixel, op)
}

func (p *Painter) fillCell(screen *ebiten.Image, x, z, scl int, col color.RGBA) {
	if x < 0 || x >= p.width || z < 0 || z >= p.depth {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scl), float64(scl))
	op.GeoM.Translate(float64(x*scl), float64(z*scl))
	op.ColorScale.ScaleWithColor(col)
	screen.DrawImage(p.pixel, op)
}

func scale(c color.RGBA, f float64) color.RGBA {
	return color.RGBA{
		R: byte(float64(c.R) * f),
		G: byte(float64(c.G) * f),
		B: byte(float64(c.B) * f),
		A: c.A,
	}
}

func mix(a, b color.RGBA, t float64) color.RGBA {
	return color.RGBA{
		R: byte(float64(a.R)*(1-t) + float64(b.R)*t),
		G: byte(float64(a.G)*(1-t) + float64(b.G)*t),
		B: byte(float64(a.B)*(1-t) + float64(b.B)*t),
		A: 255,
	}
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
