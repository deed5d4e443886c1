package world

import (
	"math/rand"
	"time"
)

const (
	pastelMin   = 0.3
	pastelRange = 0.7
)

// Color is an RGB triple with channels in [0, 1].
type Color struct {
	R, G, B float64
}

// ColorSource supplies uniform draws in [0, 1). *rand.Rand satisfies it.
type ColorSource interface {
	Float64() float64
}

// NewSeededSource returns a deterministic colour source for seed.
// A zero seed is replaced by the current time; the seed actually used is
// returned so callers can log it.
func NewSeededSource(seed int64) (*rand.Rand, int64) {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed)), seed
}

// RandomPastel draws a colour with every channel in [0.3, 1.0).
func RandomPastel(src ColorSource) Color {
	return Color{
		R: pastelMin + src.Float64()*pastelRange,
		G: pastelMin + src.Float64()*pastelRange,
		B: pastelMin + src.Float64()*pastelRange,
	}
}

// RGB8 converts c to 8-bit channels.
func (c Color) RGB8() (r, g, b int32) {
	return int32(c.R * 255), int32(c.G * 255), int32(c.B * 255)
}
