package target

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/go-theft-craft/voxelbox/internal/sandbox/world"
)

// DDA is an exact voxel traversal (Amanatides & Woo): it reports every cell
// the ray passes through, each once, up to MaxDistance along a unit dir.
type DDA struct {
	MaxDistance float64
}

func (d DDA) Walk(origin, dir mgl64.Vec3, visit func(c world.Cell) bool) {
	cell := world.CellAt(origin)
	if !visit(cell) {
		return
	}

	pos := [3]int{cell.X, cell.Y, cell.Z}
	var step [3]int
	var tMax, tDelta [3]float64

	for axis := 0; axis < 3; axis++ {
		o, v := origin[axis], dir[axis]
		switch {
		case v > 0:
			step[axis] = 1
			tDelta[axis] = 1 / v
			tMax[axis] = (math.Floor(o) + 1 - o) / v
		case v < 0:
			step[axis] = -1
			tDelta[axis] = -1 / v
			tMax[axis] = (o - math.Floor(o)) / -v
		default:
			tDelta[axis] = math.Inf(1)
			tMax[axis] = math.Inf(1)
		}
	}

	for {
		// Cross the nearest boundary; ties go to the lowest axis.
		axis := 0
		if tMax[1] < tMax[axis] {
			axis = 1
		}
		if tMax[2] < tMax[axis] {
			axis = 2
		}
		if tMax[axis] >= d.MaxDistance {
			return
		}

		pos[axis] += step[axis]
		tMax[axis] += tDelta[axis]
		if !visit(world.Cell{X: pos[0], Y: pos[1], Z: pos[2]}) {
			return
		}
	}
}
