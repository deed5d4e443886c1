package gen

import "fmt"

// Generator names accepted by ByName.
const (
	NameFlat  = "flat"
	NameHills = "hills"
)

// Generator deterministically populates a world by calling place once per
// solid cell.
type Generator interface {
	Generate(place func(x, y, z int))
	Name() string
}

// ByName builds the generator registered under name for a width×depth
// footprint centred on the origin.
func ByName(name string, width, depth int, seed int64) (Generator, error) {
	switch name {
	case NameFlat:
		return NewFlatGenerator(width, depth), nil
	case NameHills:
		return NewHillsGenerator(width, depth, seed), nil
	default:
		return nil, fmt.Errorf("unknown generator %q", name)
	}
}

// footprint calls fn for every column of a width×depth rectangle centred
// on the origin, x in [-width/2, width/2) and z in [-depth/2, depth/2).
func footprint(width, depth int, fn func(x, z int)) {
	for x := -width / 2; x < width/2; x++ {
		for z := -depth / 2; z < depth/2; z++ {
			fn(x, z)
		}
	}
}
