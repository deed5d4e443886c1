package player

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

const eps = 1e-9

// near compares component-wise with an absolute tolerance, so zero
// components accept trigonometric noise.
func near(got, want mgl64.Vec3) bool {
	for i := range got {
		if math.Abs(got[i]-want[i]) > eps {
			return false
		}
	}
	return true
}

func TestDirectionAtZero(t *testing.T) {
	p := NewPose(mgl64.Vec3{}, 0, 0)
	want := mgl64.Vec3{0, 0, -1}
	if got := p.Direction(); !near(got, want) {
		t.Errorf("Direction() = %v, want %v", got, want)
	}
}

func TestDirectionIsUnit(t *testing.T) {
	for _, yaw := range []float64{-720, -45, 0, 30, 180, 359} {
		for _, pitch := range []float64{-89, -10, 0, 45, 89} {
			p := NewPose(mgl64.Vec3{}, yaw, pitch)
			if l := p.Direction().Len(); math.Abs(l-1) > eps {
				t.Errorf("|Direction(yaw=%v, pitch=%v)| = %v, want 1", yaw, pitch, l)
			}
		}
	}
}

func TestDirectionPitchUp(t *testing.T) {
	p := NewPose(mgl64.Vec3{}, 0, 45)
	if d := p.Direction(); d.Y() <= 0 {
		t.Errorf("positive pitch should look up, got %v", d)
	}
}

func TestForwardIgnoresPitch(t *testing.T) {
	p := NewPose(mgl64.Vec3{}, 90, 80)
	want := mgl64.Vec3{-1, 0, 0}
	if got := p.Forward(); !near(got, want) {
		t.Errorf("Forward() = %v, want %v", got, want)
	}
}

func TestForwardAtRightAngles(t *testing.T) {
	tests := []struct {
		yaw  float64
		want mgl64.Vec3
	}{
		{0, mgl64.Vec3{0, 0, -1}},
		{90, mgl64.Vec3{-1, 0, 0}},
		{180, mgl64.Vec3{0, 0, 1}},
		{-90, mgl64.Vec3{1, 0, 0}},
		{450, mgl64.Vec3{-1, 0, 0}},
	}
	for _, tt := range tests {
		p := NewPose(mgl64.Vec3{}, tt.yaw, -45)
		if got := p.Forward(); !near(got, tt.want) {
			t.Errorf("Forward(yaw=%v) = %v, want %v", tt.yaw, got, tt.want)
		}
	}
}

func TestRight(t *testing.T) {
	p := NewPose(mgl64.Vec3{}, 0, 0)
	want := mgl64.Vec3{1, 0, 0}
	if got := p.Right(); !near(got, want) {
		t.Errorf("Right() = %v, want %v", got, want)
	}
}

func TestLookClampsPitch(t *testing.T) {
	p := NewPose(mgl64.Vec3{}, 0, 0)
	for i := 0; i < 1000; i++ {
		p.Look(3, 1e6)
		if p.Pitch > MaxPitch || p.Pitch < -MaxPitch {
			t.Fatalf("pitch %v escaped clamp", p.Pitch)
		}
	}
	if p.Pitch != MaxPitch {
		t.Errorf("Pitch = %v, want %v", p.Pitch, MaxPitch)
	}

	p.Look(0, -1e9)
	if p.Pitch != -MaxPitch {
		t.Errorf("Pitch = %v, want %v", p.Pitch, -MaxPitch)
	}
	if p.Yaw != 3000 {
		t.Errorf("Yaw = %v, want 3000 (unbounded)", p.Yaw)
	}
}

func TestNewPoseClamps(t *testing.T) {
	if p := NewPose(mgl64.Vec3{}, 0, 120); p.Pitch != MaxPitch {
		t.Errorf("NewPose pitch = %v, want %v", p.Pitch, MaxPitch)
	}
}

func TestMove(t *testing.T) {
	p := NewPose(mgl64.Vec3{1, 2, 3}, 0, -60)
	p.Move(1, 0, 0)
	if want := (mgl64.Vec3{1, 2, 2}); !near(p.Position, want) {
		t.Errorf("after forward: %v, want %v", p.Position, want)
	}

	p.Move(0, -2, 0)
	if want := (mgl64.Vec3{-1, 2, 2}); !near(p.Position, want) {
		t.Errorf("after left: %v, want %v", p.Position, want)
	}

	p.Move(0, 0, 0.5)
	if want := (mgl64.Vec3{-1, 2.5, 2}); !near(p.Position, want) {
		t.Errorf("after up: %v, want %v", p.Position, want)
	}
}
