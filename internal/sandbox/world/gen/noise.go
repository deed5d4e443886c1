package gen

// 2D simplex noise after Perlin's reference algorithm. Values lie in [-1, 1].

var grad2 = [8][2]float64{
	{1, 1}, {-1, 1}, {1, -1}, {-1, -1},
	{1, 0}, {-1, 0}, {0, 1}, {0, -1},
}

const (
	skew2   = 0.36602540378443864676 // (sqrt(3) - 1) / 2
	unskew2 = 0.21132486540518711775 // (3 - sqrt(3)) / 6
)

// NoiseGenerator produces deterministic simplex noise from a seed.
type NoiseGenerator struct {
	perm [512]uint8
}

// NewNoiseGenerator shuffles the permutation table with an LCG driven by seed.
func NewNoiseGenerator(seed int64) *NoiseGenerator {
	var p [256]uint8
	for i := range p {
		p[i] = uint8(i)
	}

	s := uint64(seed)
	for i := 255; i > 0; i-- {
		s = s*6364136223846793005 + 1442695040888963407
		j := int((s >> 33) % uint64(i+1))
		p[i], p[j] = p[j], p[i]
	}

	ng := &NoiseGenerator{}
	for i := range ng.perm {
		ng.perm[i] = p[i&255]
	}
	return ng
}

// Noise2D returns simplex noise at (x, y).
func (ng *NoiseGenerator) Noise2D(x, y float64) float64 {
	s := (x + y) * skew2
	i := floorInt(x + s)
	j := floorInt(y + s)

	t := float64(i+j) * unskew2
	x0 := x - (float64(i) - t)
	y0 := y - (float64(j) - t)

	i1, j1 := 0, 1
	if x0 > y0 {
		i1, j1 = 1, 0
	}

	x1 := x0 - float64(i1) + unskew2
	y1 := y0 - float64(j1) + unskew2
	x2 := x0 - 1 + 2*unskew2
	y2 := y0 - 1 + 2*unskew2

	ii := i & 255
	jj := j & 255
	n0 := corner(ng.gradient(ii, jj), x0, y0)
	n1 := corner(ng.gradient(ii+i1, jj+j1), x1, y1)
	n2 := corner(ng.gradient(ii+1, jj+1), x2, y2)

	return 70 * (n0 + n1 + n2)
}

// OctaveNoise2D sums octaves of Noise2D, each at double the frequency and
// persistence times the amplitude of the previous one.
func (ng *NoiseGenerator) OctaveNoise2D(x, y float64, octaves int, persistence float64) float64 {
	var total, maxVal float64
	frequency, amplitude := 1.0, 1.0
	for i := 0; i < octaves; i++ {
		total += ng.Noise2D(x*frequency, y*frequency) * amplitude
		maxVal += amplitude
		amplitude *= persistence
		frequency *= 2
	}
	return total / maxVal
}

func (ng *NoiseGenerator) gradient(i, j int) [2]float64 {
	return grad2[ng.perm[i+int(ng.perm[j])]&7]
}

func corner(g [2]float64, x, y float64) float64 {
	t := 0.5 - x*x - y*y
	if t < 0 {
		return 0
	}
	t *= t
	return t * t * (g[0]*x + g[1]*y)
}

func floorInt(x float64) int {
	xi := int(x)
	if x < float64(xi) {
		return xi - 1
	}
	return xi
}
