package target

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/go-theft-craft/voxelbox/internal/sandbox/world"
)

// Reach constants of the aim ray.
const (
	MaxDistance = 5.0
	StepSize    = 0.1
)

// Stepper names accepted by ByName.
const (
	NameMarch = "march"
	NameDDA   = "dda"
)

// Stepper walks the cells crossed by a ray in order, starting with the
// cell containing origin. Walk stops early when visit returns false.
// A Stepper may report the same cell several times in a row.
type Stepper interface {
	Walk(origin, dir mgl64.Vec3, visit func(c world.Cell) bool)
}

// ByName returns the stepper registered under name, using the default reach.
func ByName(name string) (Stepper, error) {
	switch name {
	case NameMarch:
		return FixedStep{Step: StepSize, MaxDistance: MaxDistance}, nil
	case NameDDA:
		return DDA{MaxDistance: MaxDistance}, nil
	default:
		return nil, fmt.Errorf("unknown traversal %q", name)
	}
}

// FixedStep samples the ray at t = 0, Step, 2*Step, ... while t < MaxDistance
// and reports the cell under each sample. Geometry thinner than Step, or
// only clipped at a corner, can be missed.
type FixedStep struct {
	Step        float64
	MaxDistance float64
}

func (s FixedStep) Walk(origin, dir mgl64.Vec3, visit func(c world.Cell) bool) {
	// t = i*Step rather than accumulating, so sample positions do not drift.
	for i, n := 0, s.Samples(); i < n; i++ {
		t := float64(i) * s.Step
		if !visit(world.CellAt(origin.Add(dir.Mul(t)))) {
			return
		}
	}
}

// Samples returns how many points Walk evaluates at most.
func (s FixedStep) Samples() int {
	if s.Step <= 0 {
		return 0
	}
	return int(math.Ceil(s.MaxDistance/s.Step - 1e-9))
}
