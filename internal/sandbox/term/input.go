package term

import (
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/go-theft-craft/voxelbox/internal/sandbox/control"
)

// arrowTurn is the pointer-unit rotation of one look-key press.
const arrowTurn = 50

const clickButtons = tcell.Button1 | tcell.Button2 | tcell.Button3

// input accumulates terminal events between frames.
//
// Terminals report key presses (and auto-repeats) but no releases, so a
// movement key counts as held for the frame following each press.
type input struct {
	ctrl       *control.Controller
	cellPixels float64

	keys control.Keys

	mouseSeen      bool
	mouseX, mouseY int
	buttons        tcell.ButtonMask
	// resync is set on focus: the next mouse event reports buttons that
	// may have been pressed while focus was elsewhere.
	resync bool
}

// takeKeys returns the keys latched since the last frame and clears them.
func (in *input) takeKeys() control.Keys {
	k := in.keys
	in.keys = control.Keys{}
	return k
}

// reset forgets pointer history after the terminal regains focus. Buttons
// still held then are taken as the baseline, not as new presses.
func (in *input) reset() {
	in.mouseSeen = false
	in.resync = true
	in.ctrl.Activate()
}

// handleKey applies a key event. It returns false when the user asked to quit.
func (in *input) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyUp:
		in.ctrl.EnqueueTurn(0, -arrowTurn)
	case tcell.KeyDown:
		in.ctrl.EnqueueTurn(0, arrowTurn)
	case tcell.KeyLeft:
		in.ctrl.EnqueueTurn(-arrowTurn, 0)
	case tcell.KeyRight:
		in.ctrl.EnqueueTurn(arrowTurn, 0)
	case tcell.KeyRune:
		return in.handleRune(unicode.ToLower(ev.Rune()))
	}
	return true
}

func (in *input) handleRune(r rune) bool {
	switch r {
	case 'q':
		return false
	case 'w':
		in.keys.Forward = true
	case 's':
		in.keys.Back = true
	case 'a':
		in.keys.Left = true
	case 'd':
		in.keys.Right = true
	case ' ':
		in.keys.Up = true
	case 'c':
		in.keys.Down = true
	case 'x':
		in.ctrl.EnqueueClick(control.Primary)
	case 'p':
		in.ctrl.EnqueueClick(control.Secondary)
	}
	return true
}

// handleMouse turns pointer motion into look deltas and button press
// transitions into clicks. Held buttons do not repeat.
func (in *input) handleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	switch {
	case !in.mouseSeen:
		// No previous position: the controller drops this one.
		in.ctrl.EnqueueLook(0, 0)
		in.mouseSeen = true
	case x != in.mouseX || y != in.mouseY:
		in.ctrl.EnqueueLook(
			float64(x-in.mouseX)*in.cellPixels,
			float64(y-in.mouseY)*in.cellPixels,
		)
	}
	in.mouseX, in.mouseY = x, y

	held := ev.Buttons() & clickButtons
	if in.resync {
		in.resync = false
		in.buttons = held
		return
	}
	pressed := held &^ in.buttons
	in.buttons = held

	if pressed&tcell.Button1 != 0 {
		in.ctrl.EnqueueClick(control.Primary)
	}
	if pressed&tcell.Button2 != 0 {
		in.ctrl.EnqueueClick(control.Secondary)
	}
}
