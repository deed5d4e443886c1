package target

import (
	"math/rand"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/go-theft-craft/voxelbox/internal/sandbox/player"
	"github.com/go-theft-craft/voxelbox/internal/sandbox/world"
)

func worldWith(cells ...world.Cell) *world.World {
	w := world.New(nil, rand.New(rand.NewSource(1)))
	for _, c := range cells {
		w.AddBlock(c)
	}
	return w
}

func steppers() map[string]Stepper {
	return map[string]Stepper{
		NameMarch: FixedStep{Step: StepSize, MaxDistance: MaxDistance},
		NameDDA:   DDA{MaxDistance: MaxDistance},
	}
}

func TestAimHitsBlockAhead(t *testing.T) {
	w := worldWith(world.Cell{})
	pose := player.NewPose(mgl64.Vec3{0, 0, 5}, 0, 0)

	for name, s := range steppers() {
		got := New(s).Aim(pose, w)
		want := Result{Hit: true, Target: world.Cell{}, CanPlace: true, Place: world.Cell{Z: 1}}
		if got != want {
			t.Errorf("%s: Aim() = %v, want %v", name, got, want)
		}
	}
}

func TestAimFacingAway(t *testing.T) {
	w := worldWith(world.Cell{})
	pose := player.NewPose(mgl64.Vec3{0, 0, 5}, 180, 0)

	for name, s := range steppers() {
		if got := New(s).Aim(pose, w); got.Hit || got.CanPlace {
			t.Errorf("%s: Aim() = %v, want none", name, got)
		}
	}
}

func TestAimFromInsideBlock(t *testing.T) {
	w := worldWith(world.Cell{})
	pose := player.NewPose(mgl64.Vec3{0.5, 0.5, 0.5}, 30, -20)

	for name, s := range steppers() {
		got := New(s).Aim(pose, w)
		if !got.Hit || got.Target != (world.Cell{}) {
			t.Errorf("%s: Aim() = %v, want target (0,0,0)", name, got)
		}
		if got.CanPlace {
			t.Errorf("%s: CanPlace = true with the first sample already solid", name)
		}
	}
}

func TestAimOutOfReach(t *testing.T) {
	w := worldWith(world.Cell{Z: -1})
	// The block's near face is 5.5 units away, beyond reach.
	pose := player.NewPose(mgl64.Vec3{0.5, 0.5, 5.5}, 0, 0)

	for name, s := range steppers() {
		if got := New(s).Aim(pose, w); got.Hit {
			t.Errorf("%s: Aim() = %v, want none", name, got)
		}
	}
}

func TestAimLookingDownAtFloor(t *testing.T) {
	w := world.New(nil, rand.New(rand.NewSource(1)))
	w.GenerateFlatWorld(16, 16)
	pose := player.NewPose(mgl64.Vec3{0.5, 2.5, 0.5}, 0, -89)

	for name, s := range steppers() {
		got := New(s).Aim(pose, w)
		if !got.Hit || got.Target != (world.Cell{}) {
			t.Errorf("%s: Aim() = %v, want target (0,0,0)", name, got)
		}
		if !got.CanPlace || got.Place != (world.Cell{Y: 1}) {
			t.Errorf("%s: place = %v, want (0,1,0)", name, got.Place)
		}
	}
}

// recorder records every occupancy query.
type recorder struct {
	queries []world.Cell
}

func (r *recorder) HasBlock(c world.Cell) bool {
	r.queries = append(r.queries, c)
	return false
}

func TestAimVisitsEachCellOnce(t *testing.T) {
	rec := &recorder{}
	pose := player.NewPose(mgl64.Vec3{0.5, 0.5, 0.5}, 0, 0)

	res := New(FixedStep{Step: StepSize, MaxDistance: MaxDistance}).Aim(pose, rec)
	if res.Hit {
		t.Fatalf("Aim() = %v in an empty world", res)
	}
	// z runs from 0.5 down to -4.4: cells 0..-5.
	if len(rec.queries) != 6 {
		t.Errorf("HasBlock called %d times, want 6: %v", len(rec.queries), rec.queries)
	}
	for i := 1; i < len(rec.queries); i++ {
		if rec.queries[i] == rec.queries[i-1] {
			t.Errorf("cell %v queried twice in a row", rec.queries[i])
		}
	}
}

func TestFixedStepSamples(t *testing.T) {
	s := FixedStep{Step: StepSize, MaxDistance: MaxDistance}
	if s.Samples() != 50 {
		t.Errorf("Samples() = %d, want 50", s.Samples())
	}

	n := 0
	s.Walk(mgl64.Vec3{}, mgl64.Vec3{1, 0, 0}, func(world.Cell) bool {
		n++
		return true
	})
	if n != 50 {
		t.Errorf("Walk visited %d samples, want 50", n)
	}

	if (FixedStep{}).Samples() != 0 {
		t.Error("zero step should produce no samples")
	}
}

func TestDDAIsFaceConnected(t *testing.T) {
	origin := mgl64.Vec3{0.3, 1.7, -0.2}
	dir := mgl64.Vec3{0.6, -0.3, 0.8}.Normalize()

	var cells []world.Cell
	DDA{MaxDistance: 20}.Walk(origin, dir, func(c world.Cell) bool {
		cells = append(cells, c)
		return true
	})
	if len(cells) < 20 {
		t.Fatalf("DDA visited %d cells over 20 units, want at least 20", len(cells))
	}
	for i := 1; i < len(cells); i++ {
		a, b := cells[i-1], cells[i]
		d := abs(a.X-b.X) + abs(a.Y-b.Y) + abs(a.Z-b.Z)
		if d != 1 {
			t.Fatalf("step %d: %v -> %v is not a face neighbour", i, a, b)
		}
	}
}

func TestDDACatchesCornerTheMarchSkips(t *testing.T) {
	// The ray spends under 0.03 units inside cell (1,0,0), less than one step.
	origin := mgl64.Vec3{0.5, 0.5, 0.52}
	dir := mgl64.Vec3{1, 0, -1}.Normalize()
	clipped := world.Cell{X: 1}

	seen := func(s Stepper) bool {
		found := false
		s.Walk(origin, dir, func(c world.Cell) bool {
			if c == clipped {
				found = true
			}
			return true
		})
		return found
	}

	if !seen(DDA{MaxDistance: 2}) {
		t.Error("DDA skipped cell (1,0,0)")
	}
	if seen(FixedStep{Step: StepSize, MaxDistance: 2}) {
		t.Error("fixed-step march unexpectedly sampled cell (1,0,0)")
	}
}

// scripted replays a fixed cell sequence, standing in for any traversal.
type scripted []world.Cell

func (s scripted) Walk(_, _ mgl64.Vec3, visit func(world.Cell) bool) {
	for _, c := range s {
		if !visit(c) {
			return
		}
	}
}

func TestTargeterUsesStepper(t *testing.T) {
	w := worldWith(world.Cell{X: 9, Y: 9, Z: 9})
	s := scripted{{X: 1}, {X: 1}, {X: 2}, {X: 9, Y: 9, Z: 9}, {X: 3}}

	got := New(s).Aim(player.Pose{}, w)
	want := Result{Hit: true, Target: world.Cell{X: 9, Y: 9, Z: 9}, CanPlace: true, Place: world.Cell{X: 2}}
	if got != want {
		t.Errorf("Aim() = %v, want %v", got, want)
	}
}

func TestByName(t *testing.T) {
	for _, name := range []string{NameMarch, NameDDA} {
		if _, err := ByName(name); err != nil {
			t.Errorf("ByName(%q): %v", name, err)
		}
	}
	if _, err := ByName("bresenham"); err == nil {
		t.Error("ByName(bresenham) should fail")
	}
}

func TestResultString(t *testing.T) {
	tests := []struct {
		r    Result
		want string
	}{
		{Result{}, "none"},
		{Result{Hit: true, Target: world.Cell{X: 1}}, "target={1 0 0} place=none"},
		{Result{Hit: true, CanPlace: true, Place: world.Cell{Y: 1}}, "target={0 0 0} place={0 1 0}"},
	}
	for _, tt := range tests {
		if got := tt.r.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
