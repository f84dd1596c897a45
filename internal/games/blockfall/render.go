package blockfall

import (
	"fmt"

	"github.com/vovakirdan/blockfall/internal/core"
	bfcore "github.com/vovakirdan/blockfall/internal/games/blockfall/core"
)

const (
	cellW     = 2 // screen columns per grid cell
	hudHeight = 1
	panelW    = 12
	panelGap  = 2
)

// layout places the board box and the side panel on screen.
type layout struct {
	board  core.Rect // outer box, border included
	panel  core.Rect
	width  int // minimum screen size
	height int
}

func computeLayout(screenW, gridW, gridH int) layout {
	boardW := gridW*cellW + 2
	boardH := gridH + 2
	width := boardW + panelGap + panelW
	x := max(0, (screenW-width)/2)

	return layout{
		board:  core.NewRect(x, hudHeight, boardW, boardH),
		panel:  core.NewRect(x+boardW+panelGap, hudHeight, panelW, boardH),
		width:  width,
		height: hudHeight + boardH,
	}
}

var kindColors = [bfcore.NumKinds]core.Color{
	bfcore.KindI: core.ColorCyan,
	bfcore.KindJ: core.ColorBlue,
	bfcore.KindL: core.ColorOrange,
	bfcore.KindO: core.ColorYellow,
	bfcore.KindS: core.ColorGreen,
	bfcore.KindT: core.ColorMagenta,
	bfcore.KindZ: core.ColorRed,
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.engine == nil {
		renderOverlay(dst, "Cannot start", g.err.Error())
		return
	}

	g.renderHUD(dst)

	if g.tooSmall {
		renderOverlay(dst, "Window too small",
			fmt.Sprintf("Need %dx%d, have %dx%d", g.layout.width, g.layout.height, dst.Width(), dst.Height()))
		return
	}

	g.renderBoard(dst)
	g.renderPanel(dst)

	switch {
	case g.engine.ToppedOut():
		renderOverlay(dst, "Game Over", "Press R to restart")
	case g.paused:
		renderOverlay(dst, "Paused", "P to resume, R to restart")
	}
}

func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" %s  Lines: %d  Pieces: %d", g.Title(), g.engine.Lines(), g.engine.Pieces())
	if g.debug {
		hud += "  [debug]"
	}
	dst.DrawText(0, 0, hud)
}

func (g *Game) renderBoard(dst *core.Screen) {
	box := g.layout.board
	dst.DrawBox(box, core.ColorGray)

	view := g.engine.View()
	active := kindColors[g.engine.Current()]
	for y, yEnd := 0, view.Height(); y < yEnd; y++ {
		for x, xEnd := 0, view.Width(); x < xEnd; x++ {
			sx := box.X + 1 + x*cellW
			sy := box.Y + 1 + y
			cell := view.At(x, y)

			if g.debug {
				dst.SetWithColor(sx, sy, ' ', core.ColorDefault)
				dst.SetWithColor(sx+1, sy, rune('0'+cell.Code()), core.ColorBrightYellow)
				continue
			}

			switch cell {
			case bfcore.ActiveCore:
				drawBlock(dst, sx, sy, active)
			case bfcore.Locked:
				drawBlock(dst, sx, sy, core.ColorWhite)
			default:
				// Aux cells are bookkeeping and stay invisible.
				dst.SetWithColor(sx+1, sy, '·', core.ColorGray)
			}
		}
	}
}

func (g *Game) renderPanel(dst *core.Screen) {
	p := g.layout.panel
	dst.DrawText(p.X, p.Y, "Next")

	preview := core.NewRect(p.X, p.Y+1, bfcore.TemplateSize*cellW+2, bfcore.TemplateSize+2)
	dst.DrawBox(preview, core.ColorGray)

	set, err := bfcore.LookupSet(g.engine.Options().Pieces)
	if err == nil {
		next := g.engine.Next()
		tmpl := set.Template(next)
		for _, c := range tmpl.Cells() {
			if tmpl[c.Y][c.X] != bfcore.ActiveCore {
				continue
			}
			drawBlock(dst, preview.X+1+c.X*cellW, preview.Y+1+c.Y, kindColors[next])
		}
	}

	y := preview.Bottom() + 1
	dst.DrawText(p.X, y, fmt.Sprintf("Lines  %d", g.engine.Lines()))
	dst.DrawText(p.X, y+1, fmt.Sprintf("Pieces %d", g.engine.Pieces()))
	if g.debug {
		dst.DrawTextColor(p.X, y+3, "0 empty", core.ColorBrightYellow)
		dst.DrawTextColor(p.X, y+4, "1 core", core.ColorBrightYellow)
		dst.DrawTextColor(p.X, y+5, "2 aux", core.ColorBrightYellow)
		dst.DrawTextColor(p.X, y+6, "3 locked", core.ColorBrightYellow)
	}
}

func drawBlock(dst *core.Screen, x, y int, c core.Color) {
	dst.SetWithColor(x, y, '█', c)
	dst.SetWithColor(x+1, y, '█', c)
}

// renderOverlay draws a centered two-line message box.
func renderOverlay(dst *core.Screen, line1, line2 string) {
	w := max(len([]rune(line1)), len([]rune(line2))) + 4
	box := dst.Bounds().Centered(w, 5)

	dst.FillRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorWhite)
	dst.DrawTextCentered(box.Y+1, line1, core.ColorBrightYellow)
	dst.DrawTextCentered(box.Y+3, line2, core.ColorDefault)
}
