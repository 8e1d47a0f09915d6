package game

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"
	"unicode"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/coinrush/internal/gamedata"
	"github.com/samdwyer/coinrush/internal/logger"
	"github.com/samdwyer/coinrush/internal/save"
	"github.com/samdwyer/coinrush/internal/telemetry"
	"github.com/samdwyer/coinrush/internal/ui"
	"github.com/samdwyer/coinrush/internal/vision"
	"github.com/samdwyer/coinrush/internal/world"
)

// victoryPause is how long the victory banner stays up before the menu returns.
const victoryPause = 2 * time.Second

// mode is the screen the terminal loop is currently driving.
type mode int

const (
	modeMenu mode = iota
	modeSeedEntry
	modePlaying
)

// Game holds the terminal front end: the screen, the current session and the menus.
type Game struct {
	screen   *ui.Screen
	renderer *ui.Renderer
	palette  *gamedata.Palette
	store    *save.Store
	cfg      Config
	session  *Session
	mode     mode
	digits   []rune
	colon    bool
	hover    string
	message  string
	running  bool
}

// New creates a new game instance.
func New(cfg Config) (*Game, error) {
	palette, err := gamedata.LoadPalette()
	if err != nil {
		return nil, err
	}
	screen, err := ui.NewScreen()
	if err != nil {
		return nil, err
	}

	return &Game{
		screen:   screen,
		renderer: ui.NewRenderer(screen, palette),
		palette:  palette,
		store:    save.NewStore(cfg.SavePath),
		cfg:      cfg,
		mode:     modeMenu,
		running:  true,
	}, nil
}

// Run executes the main game loop until the player quits.
func (g *Game) Run(ctx context.Context) error {
	defer g.screen.Close()

	for g.running {
		g.render()
		g.handleInput(ctx)
	}
	return nil
}

func (g *Game) render() {
	switch g.mode {
	case modeMenu:
		g.renderer.RenderMenu()
	case modeSeedEntry:
		g.renderer.RenderSeedPrompt(string(g.digits))
	case modePlaying:
		g.renderer.Render(g.session.Grid(), g.session.Vision(), ui.HUD{
			Collected: g.session.Coins().Collected(),
			Placed:    g.session.Coins().Placed(),
			SightOn:   g.session.Vision().Enabled(),
			Hover:     g.hover,
		})
	}
	if g.message != "" {
		g.renderer.RenderMessage(g.message)
	}
}

// handleInput processes a single input event.
func (g *Game) handleInput(ctx context.Context) {
	ev := g.screen.PollEvent()

	switch ev := ev.(type) {
	case *tcell.EventKey:
		g.handleKeyEvent(ctx, ev)
	case *tcell.EventMouse:
		g.handleMouseEvent(ev)
	case *tcell.EventResize:
		g.screen.Sync()
	}
}

// handleKeyEvent processes keyboard input for the current mode.
func (g *Game) handleKeyEvent(ctx context.Context, ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		g.running = false
		return
	case tcell.KeyRune:
	default:
		return
	}

	g.message = ""
	key := ev.Rune()
	switch g.mode {
	case modeMenu:
		g.handleMenuKey(ctx, key)
	case modeSeedEntry:
		g.handleSeedKey(ctx, key)
	case modePlaying:
		g.handlePlayKey(key)
	}
}

func (g *Game) handleMenuKey(ctx context.Context, key rune) {
	switch unicode.ToLower(key) {
	case 'n':
		g.digits = g.digits[:0]
		g.mode = modeSeedEntry
	case 'l':
		g.Load(ctx)
	case 'q':
		g.running = false
	}
}

func (g *Game) handleSeedKey(ctx context.Context, key rune) {
	switch {
	case key >= '0' && key <= '9':
		g.digits = append(g.digits, key)
	case unicode.ToLower(key) == 's':
		seed, err := parseSeed(string(g.digits))
		if errors.Is(err, errEmptySeed) {
			g.message = "Enter at least one digit before S"
			return
		}
		if err != nil {
			g.message = "Seed is too large"
			return
		}
		g.Start(ctx, seed)
	}
}

func (g *Game) handlePlayKey(key rune) {
	if g.colon && unicode.ToLower(key) == 'q' {
		g.saveAndQuit()
		return
	}
	g.colon = key == ':'

	if !g.session.Apply(key) {
		return
	}
	if g.session.State() == StateWon {
		g.win()
	}
}

// handleMouseEvent updates the hover description for the tile under the pointer.
func (g *Game) handleMouseEvent(ev *tcell.EventMouse) {
	if g.mode != modePlaying {
		return
	}
	sx, sy := ev.Position()
	x, y, ok := ui.ScreenToGrid(g.session.Grid(), sx, sy)
	if !ok {
		g.hover = ""
		return
	}
	g.hover = describeTile(g.session.Grid(), g.session.Vision(), g.palette, x, y)
}

// Start begins a fresh session for seed, skipping the menu.
func (g *Game) Start(ctx context.Context, seed int64) {
	s, err := NewSession(ctx, g.cfg.WithSeed(seed))
	if err != nil {
		logger.Log.WithError(err).Error("failed to start session")
		g.message = "Could not generate a world for that seed"
		g.mode = modeMenu
		return
	}
	g.enter(s)
}

// Load restores the saved session by replaying its history.
func (g *Game) Load(ctx context.Context) {
	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "game.load")
	defer span.End()

	f, err := g.store.Load()
	if errors.Is(err, save.ErrNoSave) {
		g.message = "No saved game found"
		return
	}
	if err != nil {
		span.RecordError(err)
		logger.Log.WithError(err).Error("failed to load save file")
		g.message = "Save file is unreadable"
		return
	}

	s, err := Replay(ctx, g.cfg.WithSeed(f.Seed), f.History)
	if err != nil {
		span.RecordError(err)
		logger.Log.WithError(err).Error("failed to replay save file")
		g.message = "Save file could not be replayed"
		return
	}
	span.SetAttributes(attribute.Int64("session.seed", f.Seed))
	g.enter(s)
}

func (g *Game) enter(s *Session) {
	g.session = s
	g.mode = modePlaying
	g.colon = false
	g.hover = ""
}

func (g *Game) saveAndQuit() {
	f := g.session.SaveFile()
	if err := g.store.Save(f); err != nil {
		logger.Log.WithError(err).Error("failed to save game")
	} else {
		logger.Log.WithFields(logrus.Fields{
			"path": g.store.Path,
			"keys": len(f.History),
		}).Info("game saved")
	}
	g.running = false
}

// win shows the victory banner, then drops back to the main menu.
func (g *Game) win() {
	g.session.log.Info("all coins collected")
	g.renderer.RenderVictory(g.session.Coins().Collected())
	time.Sleep(victoryPause)
	g.session = nil
	g.mode = modeMenu
}

var errEmptySeed = errors.New("seed has no digits")

// parseSeed reads the digits typed at the seed prompt.
func parseSeed(digits string) (int64, error) {
	if digits == "" {
		return 0, errEmptySeed
	}
	seed, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid seed %q: %w", digits, err)
	}
	return seed, nil
}

// describeTile names the tile at (x, y) as far as the player can currently tell.
func describeTile(grid *world.Grid, sight *vision.Engine, palette *gamedata.Palette, x, y int) string {
	if sight.Enabled() && !sight.Visible().At(x, y) && !sight.Explored().At(x, y) {
		return palette.Describe(world.TileNothing)
	}
	return palette.Describe(grid.At(x, y))
}
