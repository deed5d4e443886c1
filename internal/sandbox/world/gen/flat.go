package gen

// FlatGenerator generates a single-layer platform at y=0.
type FlatGenerator struct {
	Width, Depth int
}

// NewFlatGenerator creates a FlatGenerator for a width×depth platform.
func NewFlatGenerator(width, depth int) *FlatGenerator {
	return &FlatGenerator{Width: width, Depth: depth}
}

func (g *FlatGenerator) Generate(place func(x, y, z int)) {
	footprint(g.Width, g.Depth, func(x, z int) {
		place(x, 0, z)
	})
}

func (g *FlatGenerator) Name() string { return NameFlat }
