package world

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/go-theft-craft/voxelbox/internal/sandbox/world/gen"
)

// Cell identifies one unit cube [X,X+1)×[Y,Y+1)×[Z,Z+1) of the world lattice.
type Cell struct {
	X, Y, Z int
}

// CellAt returns the cell containing the point p.
func CellAt(p mgl64.Vec3) Cell {
	return Cell{
		X: int(math.Floor(p.X())),
		Y: int(math.Floor(p.Y())),
		Z: int(math.Floor(p.Z())),
	}
}

// Add returns the cell offset by (dx, dy, dz).
func (c Cell) Add(dx, dy, dz int) Cell {
	return Cell{c.X + dx, c.Y + dy, c.Z + dz}
}

// World is a sparse set of solid cells, each carrying its colour.
// A cell is present in the map iff a cube occupies it.
//
// World is not safe for concurrent use: all mutation happens in the
// per-frame update step, before the renderer reads it.
type World struct {
	blocks map[Cell]Color
	colors ColorSource
}

// New creates a World whose colours are drawn from src and populates it
// with generator g. A nil generator leaves the world empty.
func New(g gen.Generator, src ColorSource) *World {
	w := &World{
		blocks: make(map[Cell]Color),
		colors: src,
	}
	if g != nil {
		g.Generate(w.place)
	}
	return w
}

func (w *World) place(x, y, z int) {
	w.AddBlock(Cell{x, y, z})
}

// GenerateFlatWorld fills a width×depth platform at y=0 centred on the
// origin: x in [-width/2, width/2), z in [-depth/2, depth/2).
func (w *World) GenerateFlatWorld(width, depth int) {
	gen.NewFlatGenerator(width, depth).Generate(w.place)
}

// HasBlock reports whether c is occupied.
func (w *World) HasBlock(c Cell) bool {
	_, ok := w.blocks[c]
	return ok
}

// AddBlock occupies c with a freshly drawn colour. It returns false and
// leaves the world untouched if c is already occupied.
func (w *World) AddBlock(c Cell) bool {
	if w.HasBlock(c) {
		return false
	}
	w.blocks[c] = RandomPastel(w.colors)
	return true
}

// AddBlockColor occupies c with the given colour, if c is empty.
func (w *World) AddBlockColor(c Cell, col Color) bool {
	if w.HasBlock(c) {
		return false
	}
	w.blocks[c] = col
	return true
}

// RemoveBlock clears c. It returns false if c was already empty.
func (w *World) RemoveBlock(c Cell) bool {
	if !w.HasBlock(c) {
		return false
	}
	delete(w.blocks, c)
	return true
}

// Color returns the colour of the cube at c.
func (w *World) Color(c Cell) (Color, bool) {
	col, ok := w.blocks[c]
	return col, ok
}

// Len returns the number of occupied cells.
func (w *World) Len() int {
	return len(w.blocks)
}

// ForEach calls fn for every occupied cell, in no particular order.
// fn must not mutate the world.
func (w *World) ForEach(fn func(c Cell, col Color)) {
	for c, col := range w.blocks {
		fn(c, col)
	}
}
