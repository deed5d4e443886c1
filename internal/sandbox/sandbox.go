// Package sandbox wires the voxel world, the observer and the controller
// into a frame-stepped session.
package sandbox

import (
	"fmt"
	"log/slog"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/go-theft-craft/voxelbox/internal/sandbox/config"
	"github.com/go-theft-craft/voxelbox/internal/sandbox/control"
	"github.com/go-theft-craft/voxelbox/internal/sandbox/player"
	"github.com/go-theft-craft/voxelbox/internal/sandbox/target"
	"github.com/go-theft-craft/voxelbox/internal/sandbox/world"
	"github.com/go-theft-craft/voxelbox/internal/sandbox/world/gen"
)

// Sandbox is one single-observer session.
type Sandbox struct {
	cfg   *config.Config
	log   *slog.Logger
	world *world.World
	pose  *player.Pose
	ctrl  *control.Controller

	seed   int64
	frames uint64
}

// Snapshot is what a renderer needs after a frame's update step.
type Snapshot struct {
	World  *world.World
	Pose   player.Pose
	Aim    target.Result
	Frame  uint64
	Digest uint64
}

// New creates a Sandbox with the given config and logger.
func New(cfg *config.Config, log *slog.Logger) (*Sandbox, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	colors, seed := world.NewSeededSource(cfg.Seed)
	generator, err := gen.ByName(cfg.GeneratorType, cfg.WorldWidth, cfg.WorldDepth, seed)
	if err != nil {
		return nil, fmt.Errorf("create generator: %w", err)
	}
	stepper, err := target.ByName(cfg.Traversal)
	if err != nil {
		return nil, fmt.Errorf("create stepper: %w", err)
	}

	w := world.New(generator, colors)
	pose := player.NewPose(mgl64.Vec3{cfg.SpawnX, cfg.SpawnY, cfg.SpawnZ}, cfg.SpawnYaw, cfg.SpawnPitch)

	sb := &Sandbox{
		cfg:   cfg,
		log:   log,
		world: w,
		pose:  &pose,
		seed:  seed,
	}
	sb.ctrl = control.New(w, sb.pose, target.New(stepper), log.With("component", "control"),
		control.WithMoveSpeed(cfg.MoveSpeed),
		control.WithSensitivity(cfg.LookSensitivity),
	)

	log.Info("world generated",
		"generator", generator.Name(),
		"width", cfg.WorldWidth,
		"depth", cfg.WorldDepth,
		"seed", seed,
		"blocks", w.Len(),
		"traversal", cfg.Traversal,
	)
	return sb, nil
}

// Frame runs one update step and returns the aim for this frame.
func (s *Sandbox) Frame(keys control.Keys) target.Result {
	s.frames++
	return s.ctrl.Update(keys)
}

// Snapshot returns the state to draw for the frame just updated.
func (s *Sandbox) Snapshot() Snapshot {
	return Snapshot{
		World:  s.world,
		Pose:   *s.pose,
		Aim:    s.ctrl.Last(),
		Frame:  s.frames,
		Digest: s.world.Digest(),
	}
}

// Controller returns the input sink for this session.
func (s *Sandbox) Controller() *control.Controller { return s.ctrl }

// World returns the session's world.
func (s *Sandbox) World() *world.World { return s.world }

// Pose returns a copy of the observer pose.
func (s *Sandbox) Pose() player.Pose { return *s.pose }

// Seed returns the seed actually used for colours and terrain.
func (s *Sandbox) Seed() int64 { return s.seed }

// Frames returns how many frames have run.
func (s *Sandbox) Frames() uint64 { return s.frames }

// Close logs the session summary.
func (s *Sandbox) Close() {
	s.log.Info("session ended",
		"frames", s.frames,
		"blocks", s.world.Len(),
		"digest", fmt.Sprintf("%016x", s.world.Digest()),
	)
}
