// Package term runs a sandbox session in a terminal with tcell.
package term

import (
	"context"
	"log/slog"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/go-theft-craft/voxelbox/internal/sandbox"
)

// Terminal drives a Sandbox from terminal input at a fixed frame rate.
type Terminal struct {
	screen tcell.Screen
	sb     *sandbox.Sandbox
	log    *slog.Logger
	period time.Duration
	in     *input
}

// New creates a Terminal on an initialised screen. cellPixels scales pointer
// motion, which terminals report in character cells.
func New(screen tcell.Screen, sb *sandbox.Sandbox, fps int, cellPixels float64, log *slog.Logger) *Terminal {
	if fps <= 0 {
		fps = 60
	}
	return &Terminal{
		screen: screen,
		sb:     sb,
		log:    log,
		period: time.Second / time.Duration(fps),
		in: &input{
			ctrl:       sb.Controller(),
			cellPixels: cellPixels,
		},
	}
}

// Run processes events and frames until ctx is cancelled or the user quits.
// The caller owns the screen and must Fini it afterwards.
func (t *Terminal) Run(ctx context.Context) error {
	t.screen.EnableMouse(tcell.MouseMotionEvents)
	t.screen.EnableFocus()
	t.screen.HideCursor()

	events := make(chan tcell.Event, 100)
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			ev := t.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(t.period)
	defer ticker.Stop()

	t.log.Info("terminal started", "period", t.period)
	draw(t.screen, t.sb.Snapshot())

	for {
		select {
		case <-ctx.Done():
			t.log.Info("terminal stopped", "reason", ctx.Err())
			return nil
		case ev := <-events:
			if !t.handleEvent(ev) {
				t.log.Info("terminal stopped", "reason", "quit")
				return nil
			}
		case <-ticker.C:
			t.step()
		}
	}
}

// step runs one frame with the keys latched since the previous one.
func (t *Terminal) step() {
	t.sb.Frame(t.in.takeKeys())
	draw(t.screen, t.sb.Snapshot())
}

// handleEvent returns false when the session should end.
func (t *Terminal) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return t.in.handleKey(ev)
	case *tcell.EventMouse:
		t.in.handleMouse(ev)
	case *tcell.EventFocus:
		if ev.Focused {
			t.log.Debug("focus regained")
			t.in.reset()
		}
	case *tcell.EventResize:
		t.screen.Sync()
	}
	return true
}
