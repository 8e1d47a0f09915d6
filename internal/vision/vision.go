// Package vision computes line of sight and fog-of-war memory for the explorer.
package vision

import (
	"math"

	"github.com/samdwyer/coinrush/internal/world"
)

const (
	// Radius is the maximum distance a ray travels, in cells.
	Radius = 8
	// rayStep is the sub-cell distance between ray samples.
	rayStep = 0.2
	// rayCount is the number of rays cast per update, one per degree.
	rayCount = 360
)

// Observer supplies the position vision is computed from.
type Observer interface {
	Position() (int, int)
}

// Engine casts rays over the grid and keeps the visible and explored masks.
// It starts disabled, in which state nothing is computed.
type Engine struct {
	grid     *world.Grid
	observer Observer
	enabled  bool
	visible  *Mask
	explored *Mask
}

// New creates a disabled engine for grid.
func New(grid *world.Grid) *Engine {
	return &Engine{
		grid:     grid,
		visible:  NewMask(grid.Width(), grid.Height()),
		explored: NewMask(grid.Width(), grid.Height()),
	}
}

// SetObserver registers the position source used by Refresh and Toggle.
func (e *Engine) SetObserver(o Observer) {
	e.observer = o
}

// Enabled returns true while line of sight is on.
func (e *Engine) Enabled() bool {
	return e.enabled
}

// Visible returns the cells seen in the latest update.
func (e *Engine) Visible() *Mask {
	return e.visible
}

// Explored returns every cell seen since line of sight was last turned on.
func (e *Engine) Explored() *Mask {
	return e.explored
}

// Toggle switches line of sight. Turning it on forgets everything explored and
// recomputes from the observer; turning it off reveals the whole map.
func (e *Engine) Toggle() {
	e.enabled = !e.enabled
	if e.enabled {
		e.visible.fill(false)
		e.explored.fill(false)
		e.Refresh()
		return
	}
	e.visible.fill(true)
	e.explored.fill(true)
}

// Refresh recomputes visibility from the registered observer, if any.
func (e *Engine) Refresh() {
	if e.observer == nil {
		return
	}
	e.Update(e.observer.Position())
}

// Update replaces the visible set with what can be seen from (x, y) and adds it to
// the explored set. It does nothing while disabled or when (x, y) is off the grid.
func (e *Engine) Update(x, y int) {
	if !e.enabled || !e.grid.InBounds(x, y) {
		return
	}

	e.visible.fill(false)
	e.mark(x, y)

	for deg := 0; deg < rayCount; deg++ {
		e.castRay(x, y, float64(deg)*math.Pi/180)
	}
}

// castRay marches from the center of (startX, startY) along angle. The ray stops at
// the grid edge without marking, and at the first wall after marking it.
func (e *Engine) castRay(startX, startY int, angle float64) {
	dx, dy := math.Cos(angle), math.Sin(angle)
	x0, y0 := float64(startX)+0.5, float64(startY)+0.5

	steps := int(math.Round(Radius / rayStep))
	for i := 1; i <= steps; i++ {
		dist := float64(i) * rayStep
		xi := int(math.Floor(x0 + dx*dist))
		yi := int(math.Floor(y0 + dy*dist))
		if !e.grid.InBounds(xi, yi) {
			return
		}
		e.mark(xi, yi)
		if e.grid.At(xi, yi).IsOpaque() {
			return
		}
	}
}

func (e *Engine) mark(x, y int) {
	e.visible.set(x, y)
	e.explored.set(x, y)
}
