// Package control turns per-frame input into observer movement and world
// edits.
package control

import (
	"log/slog"

	"github.com/go-theft-craft/voxelbox/internal/sandbox/player"
	"github.com/go-theft-craft/voxelbox/internal/sandbox/target"
	"github.com/go-theft-craft/voxelbox/internal/sandbox/world"
)

// Default tuning, per frame and per pointer unit.
const (
	DefaultMoveSpeed   = 0.1
	DefaultSensitivity = 0.1
)

// Controller owns the observer pose and is the single writer of the world.
// Input arrives through the Enqueue methods at any point during a frame and
// takes effect in the next Update, in arrival order.
type Controller struct {
	log      *slog.Logger
	world    *world.World
	pose     *player.Pose
	targeter *target.Targeter

	moveSpeed   float64
	sensitivity float64

	pendingLook   []LookDelta
	pendingClicks []Button
	skipLook      bool

	last target.Result
}

// Option configures a Controller.
type Option func(*Controller)

// WithMoveSpeed sets the distance travelled per frame while a key is held.
func WithMoveSpeed(v float64) Option {
	return func(c *Controller) { c.moveSpeed = v }
}

// WithSensitivity sets degrees of rotation per pointer unit.
func WithSensitivity(v float64) Option {
	return func(c *Controller) { c.sensitivity = v }
}

// New creates an active Controller driving pose and w.
func New(w *world.World, pose *player.Pose, t *target.Targeter, log *slog.Logger, opts ...Option) *Controller {
	c := &Controller{
		log:         log,
		world:       w,
		pose:        pose,
		targeter:    t,
		moveSpeed:   DefaultMoveSpeed,
		sensitivity: DefaultSensitivity,
		skipLook:    true,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Activate marks the start of a new pointer capture. The next pointer delta
// is dropped because there is no previous pointer position to measure from.
// Rotations already queued are kept.
func (c *Controller) Activate() {
	c.skipLook = true
}

// EnqueueLook queues a pointer movement.
func (c *Controller) EnqueueLook(dx, dy float64) {
	if c.skipLook {
		c.skipLook = false
		return
	}
	c.pendingLook = append(c.pendingLook, LookDelta{DX: dx, DY: dy})
}

// EnqueueTurn queues a rotation in pointer units from a source that has no
// previous-position problem, such as look keys. It is never discarded.
func (c *Controller) EnqueueTurn(dx, dy float64) {
	c.pendingLook = append(c.pendingLook, LookDelta{DX: dx, DY: dy})
}

// EnqueueClick queues a button press. Only press transitions should be
// queued; holding a button must not repeat the action.
func (c *Controller) EnqueueClick(b Button) {
	c.pendingClicks = append(c.pendingClicks, b)
}

// Update runs one frame: it applies queued look deltas, moves by keys,
// recomputes the aim and then applies queued clicks against that aim.
func (c *Controller) Update(keys Keys) target.Result {
	for _, d := range c.pendingLook {
		// Pointer right or down turns the view right or down. Yaw grows
		// to the left and pitch grows upward.
		c.pose.Look(-d.DX*c.sensitivity, -d.DY*c.sensitivity)
	}
	c.pendingLook = c.pendingLook[:0]

	c.pose.Move(
		axis(keys.Forward, keys.Back)*c.moveSpeed,
		axis(keys.Right, keys.Left)*c.moveSpeed,
		axis(keys.Up, keys.Down)*c.moveSpeed,
	)

	c.last = c.targeter.Aim(*c.pose, c.world)

	for _, b := range c.pendingClicks {
		c.click(b)
	}
	c.pendingClicks = c.pendingClicks[:0]

	return c.last
}

func (c *Controller) click(b Button) {
	res := c.last
	switch b {
	case Primary:
		if !res.Hit {
			return
		}
		if c.world.RemoveBlock(res.Target) {
			c.log.Debug("block removed", "cell", res.Target)
		}
	case Secondary:
		if !res.CanPlace {
			return
		}
		if c.world.AddBlock(res.Place) {
			c.log.Debug("block placed", "cell", res.Place)
		}
	}
}

// Last returns the aim computed by the most recent Update.
func (c *Controller) Last() target.Result {
	return c.last
}

// Pose returns a copy of the current observer pose.
func (c *Controller) Pose() player.Pose {
	return *c.pose
}
