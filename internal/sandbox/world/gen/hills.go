package gen

const (
	hillsScale     = 24.0
	hillsOctaves   = 4
	hillsAmplitude = 4.0
)

// HillsGenerator fills the same footprint as FlatGenerator, but stacks
// each column from y=0 up to a noise-derived height. Every column keeps
// its y=0 cube.
type HillsGenerator struct {
	Width, Depth int
	noise        *NoiseGenerator
}

// NewHillsGenerator creates a HillsGenerator seeded with seed.
func NewHillsGenerator(width, depth int, seed int64) *HillsGenerator {
	return &HillsGenerator{
		Width: width,
		Depth: depth,
		noise: NewNoiseGenerator(seed),
	}
}

func (g *HillsGenerator) Generate(place func(x, y, z int)) {
	footprint(g.Width, g.Depth, func(x, z int) {
		top := g.HeightAt(x, z)
		for y := 0; y <= top; y++ {
			place(x, y, z)
		}
	})
}

func (g *HillsGenerator) Name() string { return NameHills }

// HeightAt returns the y of the topmost cube in column (x, z).
func (g *HillsGenerator) HeightAt(x, z int) int {
	n := g.noise.OctaveNoise2D(float64(x)/hillsScale, float64(z)/hillsScale, hillsOctaves, 0.5)
	// Map [-1, 1] onto [0, 2*amplitude].
	h := int((n + 1) * hillsAmplitude)
	if h < 0 {
		return 0
	}
	return h
}
