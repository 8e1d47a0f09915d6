package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/coinrush/internal/gamedata"
	"github.com/samdwyer/coinrush/internal/vision"
	"github.com/samdwyer/coinrush/internal/world"
)

// hudRows is the number of screen rows above the map.
const hudRows = 2

// fog classifies how a cell is drawn under line of sight.
type fog int

const (
	fogVisible  fog = iota // drawn normally
	fogExplored            // remembered, drawn dim
	fogHidden              // never seen, drawn blank
)

// HUD holds the status shown above the map.
type HUD struct {
	Collected, Placed int
	SightOn           bool
	Hover             string // Description of the tile under the mouse, if any
}

// Renderer handles drawing the game to the screen.
type Renderer struct {
	screen  *Screen
	palette *gamedata.Palette
}

// NewRenderer creates a new renderer for the given screen, drawing tiles with palette.
func NewRenderer(screen *Screen, palette *gamedata.Palette) *Renderer {
	return &Renderer{screen: screen, palette: palette}
}

// Render draws the map under the current line of sight, then the HUD.
func (r *Renderer) Render(grid *world.Grid, sight *vision.Engine, hud HUD) {
	r.screen.Clear()

	for y := 0; y < grid.Height(); y++ {
		row := gridToScreenRow(grid, y)
		for x := 0; x < grid.Width(); x++ {
			tile := grid.At(x, y)
			switch fogAt(sight, x, y) {
			case fogVisible:
				r.screen.SetContent(x, row, tile.Rune(), r.palette.Style(tile))
			case fogExplored:
				r.screen.SetContent(x, row, tile.Rune(), r.palette.Style(tile).Dim(true))
			default:
				r.screen.SetContent(x, row, ' ', tcell.StyleDefault)
			}
		}
	}

	r.renderHUD(grid.Width(), hud)
	r.screen.Show()
}

// renderHUD draws the coin counter, line of sight status and hovered tile.
func (r *Renderer) renderHUD(width int, hud HUD) {
	style := tcell.StyleDefault.Foreground(tcell.ColorRed)

	if hud.Hover != "" {
		r.screen.DrawText(1, 0, "Current Tile: "+hud.Hover, style)
	}

	status := "OFF"
	if hud.SightOn {
		status = "ON"
	}
	los := fmt.Sprintf("Line of Sight: %s (L to toggle)", status)
	r.screen.DrawText(width-1-len(los), 0, los, style)

	r.screen.DrawText(1, 1, fmt.Sprintf("Coins: %d/%d", hud.Collected, hud.Placed), style)
}

// ScreenToGrid converts a screen cell to grid coordinates.
func ScreenToGrid(grid *world.Grid, sx, sy int) (int, int, bool) {
	x := sx
	y := grid.Height() - 1 - (sy - hudRows)
	if !grid.InBounds(x, y) {
		return 0, 0, false
	}
	return x, y, true
}

// gridToScreenRow flips the y axis: grid row 0 is the bottom of the map.
func gridToScreenRow(grid *world.Grid, y int) int {
	return hudRows + grid.Height() - 1 - y
}

// fogAt returns how the cell should be drawn. With line of sight off everything shows.
func fogAt(sight *vision.Engine, x, y int) fog {
	if sight == nil || !sight.Enabled() {
		return fogVisible
	}
	if sight.Visible().At(x, y) {
		return fogVisible
	}
	if sight.Explored().At(x, y) {
		return fogExplored
	}
	return fogHidden
}

// RenderMenu draws the main menu. After a win it is preceded by the victory banner.
func (r *Renderer) RenderMenu() {
	r.screen.Clear()
	_, h := r.screen.Size()

	title := tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	plain := tcell.StyleDefault.Foreground(tcell.ColorWhite)

	r.screen.DrawCentered(h/3, "COIN RUSH", title)
	r.screen.DrawCentered(h/2, "(N) New Game", plain)
	r.screen.DrawCentered(h/2+2, "(L) Load Game", plain)
	r.screen.DrawCentered(h/2+4, "(Q) Quit Game", plain)
	r.screen.Show()
}

// RenderSeedPrompt draws the seed entry screen with the digits typed so far.
func (r *Renderer) RenderSeedPrompt(digits string) {
	r.screen.Clear()
	_, h := r.screen.Size()

	r.screen.DrawCentered(h/3, "Enter game seed followed by S...", tcell.StyleDefault.Foreground(tcell.ColorWhite))
	r.screen.DrawCentered(h/2, digits, tcell.StyleDefault.Foreground(tcell.ColorYellow))
	r.screen.Show()
}

// RenderVictory draws the end-of-game banner.
func (r *Renderer) RenderVictory(collected int) {
	r.screen.Clear()
	_, h := r.screen.Size()

	gold := tcell.StyleDefault.Foreground(tcell.NewRGBColor(255, 215, 0)).Bold(true)
	r.screen.DrawCentered(h/3, "VICTORY!", gold)
	r.screen.DrawCentered(h/2, fmt.Sprintf("You collected all %d coins!", collected), gold)
	r.screen.DrawCentered(h/2+2, "$   $   $", gold)
	r.screen.Show()
}

// RenderMessage displays a message at the bottom of the screen.
func (r *Renderer) RenderMessage(msg string) {
	_, h := r.screen.Size()
	r.screen.DrawText(0, h-1, msg, tcell.StyleDefault.Foreground(tcell.ColorWhite))
	r.screen.Show()
}
