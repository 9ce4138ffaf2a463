package world

import (
	"fmt"

	"blockworld/internal/game/block"
)

// ChunkPos identifies a columnar chunk by its X and Z coordinates. Chunks
// span the full world height and exist only to batch dirty-region
// notifications.
type ChunkPos struct{ X, Z int }

// World is a bounded dense voxel grid. Reads outside the bounds return
// air; writes outside the bounds are silently dropped. Every in-bounds
// write marks the containing chunk dirty for the rebuild consumer.
type World struct {
	width, height, depth int
	chunkSize            int
	blocks               []block.Kind
	dirty                map[ChunkPos]struct{}
}

// New creates a World of the given dimensions. Non-positive dimensions or
// chunk size are a contract violation and fail construction.
func New(width, height, depth, chunkSize int) (*World, error) {
	if width <= 0 || height <= 0 || depth <= 0 {
		return nil, fmt.Errorf("invalid world dimensions %dx%dx%d", width, height, depth)
	}
	if chunkSize <= 0 {
		return nil, fmt.Errorf("invalid chunk size %d", chunkSize)
	}
	return &World{
		width:     width,
		height:    height,
		depth:     depth,
		chunkSize: chunkSize,
		blocks:    make([]block.Kind, width*height*depth),
		dirty:     make(map[ChunkPos]struct{}),
	}, nil
}

func (w *World) Width() int     { return w.width }
func (w *World) Height() int    { return w.height }
func (w *World) Depth() int     { return w.depth }
func (w *World) ChunkSize() int { return w.chunkSize }

// InBounds reports whether (x, y, z) lies inside the grid.
func (w *World) InBounds(x, y, z int) bool {
	return x >= 0 && x < w.width && y >= 0 && y < w.height && z >= 0 && z < w.depth
}

func (w *World) index(x, y, z int) int {
	return (y*w.depth+z)*w.width + x
}

// Get returns the block at (x, y, z), or Air outside the bounds.
func (w *World) Get(x, y, z int) block.Kind {
	if !w.InBounds(x, y, z) {
		return block.Air
	}
	return w.blocks[w.index(x, y, z)]
}

// Set writes the block at (x, y, z) and marks its chunk dirty. Out of
// bounds is a no-op. The chunk is marked even when the value is unchanged.
func (w *World) Set(x, y, z int, k block.Kind) {
	if !w.InBounds(x, y, z) {
		return
	}
	w.blocks[w.index(x, y, z)] = k
	w.dirty[w.chunkAt(x, z)] = struct{}{}
}

func (w *World) chunkAt(x, z int) ChunkPos {
	return ChunkPos{X: floorDiv(x, w.chunkSize), Z: floorDiv(z, w.chunkSize)}
}

// floorDiv is integer division rounding toward negative infinity. All
// in-bounds coordinates are non-negative, so this only matters for the
// ChunkOf helper below.
func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

// ChunkOf returns the chunk containing the given column.
func (w *World) ChunkOf(x, z int) ChunkPos {
	return w.chunkAt(x, z)
}

// DrainDirty returns the set of dirty chunk coordinates and clears it.
// With nothing dirty it returns an empty set.
func (w *World) DrainDirty() map[ChunkPos]struct{} {
	d := w.dirty
	w.dirty = make(map[ChunkPos]struct{})
	return d
}

// MarkAllDirty flags every chunk for rebuild. Used after generation and
// reset, when consumers must repaint the whole world.
func (w *World) MarkAllDirty() {
	for cx := 0; cx <= (w.width-1)/w.chunkSize; cx++ {
		for cz := 0; cz <= (w.depth-1)/w.chunkSize; cz++ {
			w.dirty[ChunkPos{X: cx, Z: cz}] = struct{}{}
		}
	}
}

// TopSolid returns the y of the highest solid cell in the column, or -1
// for an all-air column. Water does not count as solid here.
func (w *World) TopSolid(x, z int) int {
	for y := w.height - 1; y >= 0; y-- {
		k := w.Get(x, y, z)
		if block.IsSolid(k) {
			return y
		}
	}
	return -1
}
