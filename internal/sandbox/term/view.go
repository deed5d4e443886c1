package term

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/go-theft-craft/voxelbox/internal/sandbox"
	"github.com/go-theft-craft/voxelbox/internal/sandbox/world"
)

// Each world column takes two screen cells so the map is roughly square.
const colWidth = 2

// hudLines are reserved at the bottom of the screen.
const hudLines = 2

// headings index by round(yaw/45) mod 8. Yaw 0 faces -Z, which is up.
var headings = [8]rune{'↑', '↖', '←', '↙', '↓', '↘', '→', '↗'}

var (
	styleHUD    = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleHelp   = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleSelf   = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	stylePlace  = tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	styleGround = tcell.StyleDefault
)

const helpText = "wasd move  space/c up/down  arrows/mouse look  x/lmb break  p/rmb place  q quit"

// column is the topmost block of one (x, z) column.
type column struct {
	y     int
	color world.Color
}

type colKey struct{ x, z int }

// topColumns reduces the world to its highest block per column.
func topColumns(w *world.World) map[colKey]column {
	cols := make(map[colKey]column, w.Len())
	w.ForEach(func(c world.Cell, col world.Color) {
		k := colKey{c.X, c.Z}
		if cur, ok := cols[k]; ok && cur.y >= c.Y {
			return
		}
		cols[k] = column{y: c.Y, color: col}
	})
	return cols
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func heading(yaw float64) rune {
	i := int(math.Round(yaw/45)) % 8
	if i < 0 {
		i += 8
	}
	return headings[i]
}

// draw renders a top-down map centred on the observer plus a status line.
func draw(screen tcell.Screen, snap sandbox.Snapshot) {
	screen.Clear()
	width, height := screen.Size()
	mapRows := height - hudLines
	if mapRows < 1 {
		drawText(screen, 0, 0, width, hudText(snap), styleHUD)
		screen.Show()
		return
	}

	self := world.CellAt(snap.Pose.Position)
	cols := topColumns(snap.World)
	midX := width / colWidth / 2
	midY := mapRows / 2

	toWorld := func(sx, sy int) (int, int) {
		return self.X + floorDiv(sx, colWidth) - midX, self.Z + sy - midY
	}
	toScreen := func(x, z int) (int, int) {
		return (x - self.X + midX) * colWidth, z - self.Z + midY
	}

	for sy := 0; sy < mapRows; sy++ {
		for sx := 0; sx < width; sx++ {
			x, z := toWorld(sx, sy)
			col, ok := cols[colKey{x, z}]
			if !ok {
				continue
			}
			r, g, b := col.color.RGB8()
			style := styleGround.Background(tcell.NewRGBColor(r, g, b)).Foreground(tcell.ColorBlack)
			ch := ' '
			if sx%colWidth == 0 {
				ch = heightRune(col.y)
			}
			if snap.Aim.Hit && x == snap.Aim.Target.X && z == snap.Aim.Target.Z {
				style = style.Reverse(true)
			}
			screen.SetContent(sx, sy, ch, nil, style)
		}
	}

	if snap.Aim.CanPlace {
		px, py := toScreen(snap.Aim.Place.X, snap.Aim.Place.Z)
		if py >= 0 && py < mapRows && px >= 0 && px+1 < width {
			screen.SetContent(px+1, py, '+', nil, stylePlace)
		}
	}

	sx, sy := toScreen(self.X, self.Z)
	if sy >= 0 && sy < mapRows && sx >= 0 && sx+1 < width {
		screen.SetContent(sx, sy, '@', nil, styleSelf)
		screen.SetContent(sx+1, sy, heading(snap.Pose.Yaw), nil, styleSelf)
	}

	drawText(screen, 0, height-2, width, hudText(snap), styleHUD)
	drawText(screen, 0, height-1, width, helpText, styleHelp)
	screen.Show()
}

// heightRune labels a column with its top height, '#' past nine.
func heightRune(y int) rune {
	switch {
	case y < 0:
		return '-'
	case y > 9:
		return '#'
	}
	return rune('0' + y)
}

func hudText(snap sandbox.Snapshot) string {
	p := snap.Pose.Position
	return fmt.Sprintf("pos %.1f %.1f %.1f  yaw %.0f  pitch %.0f  aim %s  blocks %d  %016x",
		p.X(), p.Y(), p.Z(), snap.Pose.Yaw, snap.Pose.Pitch, snap.Aim, snap.World.Len(), snap.Digest)
}

func drawText(screen tcell.Screen, x, y, maxWidth int, s string, style tcell.Style) {
	for _, r := range s {
		if x >= maxWidth {
			return
		}
		screen.SetContent(x, y, r, nil, style)
		x++
	}
}
