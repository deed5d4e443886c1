// Package target resolves which cube the observer aims at and where a new
// cube would be placed.
package target

import (
	"fmt"

	"github.com/go-theft-craft/voxelbox/internal/sandbox/player"
	"github.com/go-theft-craft/voxelbox/internal/sandbox/world"
)

// Occupancy answers whether a cell is solid.
type Occupancy interface {
	HasBlock(c world.Cell) bool
}

// Result is the outcome of one aim query. Hit is false when nothing solid
// lies within reach. CanPlace is false when the ray starts inside a solid
// cell, leaving no empty cell in front of the target.
type Result struct {
	Hit      bool
	Target   world.Cell
	CanPlace bool
	Place    world.Cell
}

func (r Result) String() string {
	switch {
	case !r.Hit:
		return "none"
	case !r.CanPlace:
		return fmt.Sprintf("target=%v place=none", r.Target)
	default:
		return fmt.Sprintf("target=%v place=%v", r.Target, r.Place)
	}
}

// Targeter casts the observer's aim ray through the world.
type Targeter struct {
	stepper Stepper
}

// New creates a Targeter that walks rays with s.
func New(s Stepper) *Targeter {
	return &Targeter{stepper: s}
}

// Aim returns the first solid cell along the pose's aim ray and the empty
// cell visited just before it.
func (t *Targeter) Aim(p player.Pose, w Occupancy) Result {
	var (
		res     Result
		prev    world.Cell
		visited bool
	)
	t.stepper.Walk(p.Position, p.Direction(), func(c world.Cell) bool {
		if visited && c == prev {
			return true
		}
		if w.HasBlock(c) {
			res = Result{Hit: true, Target: c, CanPlace: visited, Place: prev}
			return false
		}
		prev, visited = c, true
		return true
	})
	return res
}
