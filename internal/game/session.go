package game

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/coinrush/internal/entity"
	"github.com/samdwyer/coinrush/internal/logger"
	"github.com/samdwyer/coinrush/internal/save"
	"github.com/samdwyer/coinrush/internal/telemetry"
	"github.com/samdwyer/coinrush/internal/vision"
	"github.com/samdwyer/coinrush/internal/world"
)

// Session is one play-through: a generated world, the avatar in it, its line of
// sight and the history of applied actions. It has no I/O, so it can be replayed.
type Session struct {
	id      uuid.UUID
	world   *world.World
	avatar  *entity.Avatar
	sight   *vision.Engine
	history strings.Builder
	log     *logrus.Entry
}

// NewSession generates the world for cfg.Seed and places the avatar.
func NewSession(ctx context.Context, cfg Config) (*Session, error) {
	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "session.new")
	defer span.End()

	w, err := world.Generate(ctx, cfg.Seed, cfg.World)
	if err != nil {
		return nil, err
	}

	avatar, err := entity.SpawnAvatar(w.Grid, w.Coins)
	if err != nil {
		return nil, fmt.Errorf("failed to spawn avatar: %w", err)
	}

	sight := vision.New(w.Grid)
	sight.SetObserver(avatar)
	sight.Refresh()

	s := &Session{
		id:     uuid.New(),
		world:  w,
		avatar: avatar,
		sight:  sight,
	}
	s.log = logger.Log.WithFields(logrus.Fields{
		"session": s.id.String(),
		"seed":    cfg.Seed,
	})

	span.SetAttributes(
		attribute.String("session.id", s.id.String()),
		attribute.Int64("session.seed", cfg.Seed),
		attribute.Int("avatar.start_x", avatar.X),
		attribute.Int("avatar.start_y", avatar.Y),
	)
	s.log.WithFields(logrus.Fields{
		"rooms": len(w.Rooms),
		"coins": w.Coins.Placed(),
	}).Info("session started")

	return s, nil
}

// Replay builds a fresh session from cfg and applies every key of history in order.
// Keys that are not actions, such as the quit marker, are skipped.
func Replay(ctx context.Context, cfg Config, history string) (*Session, error) {
	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "session.replay")
	defer span.End()

	s, err := NewSession(ctx, cfg)
	if err != nil {
		return nil, err
	}

	applied := 0
	for _, key := range history {
		if s.Apply(key) {
			applied++
		}
	}

	span.SetAttributes(
		attribute.Int("replay.keys", len(history)),
		attribute.Int("replay.applied", applied),
	)
	s.log.WithField("applied", applied).Info("session replayed")
	return s, nil
}

// Apply performs the action bound to key and records it in the history. It returns
// false, recording nothing, when key is not an action.
func (s *Session) Apply(key rune) bool {
	action, ok := ParseAction(key)
	if !ok {
		return false
	}
	s.history.WriteRune(rune(action))

	if action == ActionToggleSight {
		s.sight.Toggle()
		return true
	}

	dir, _ := action.Direction()
	before := s.world.Coins.Collected()
	if s.avatar.Move(s.world.Grid, dir) {
		s.sight.Refresh()
		if s.world.Coins.Collected() > before {
			s.log.WithFields(logrus.Fields{
				"collected": s.world.Coins.Collected(),
				"placed":    s.world.Coins.Placed(),
			}).Debug("coin collected")
		}
	}
	return true
}

// State reports whether the session is still being explored or has been won.
func (s *Session) State() State {
	if s.world.Coins.AllCollected() {
		return StateWon
	}
	return StateExplore
}

// SaveFile returns the persisted form of the session, terminated by the quit marker.
func (s *Session) SaveFile() save.File {
	return save.File{
		Seed:    s.world.Seed,
		History: s.history.String() + quitMarker,
	}
}

// ID returns the session identifier used to correlate logs and traces.
func (s *Session) ID() uuid.UUID { return s.id }

// World returns the generated world.
func (s *Session) World() *world.World { return s.world }

// Grid returns the live tile grid.
func (s *Session) Grid() *world.Grid { return s.world.Grid }

// Avatar returns the explorer.
func (s *Session) Avatar() *entity.Avatar { return s.avatar }

// Vision returns the line-of-sight engine.
func (s *Session) Vision() *vision.Engine { return s.sight }

// Coins returns the coin ledger.
func (s *Session) Coins() *world.CoinLedger { return s.world.Coins }

// History returns the applied actions as keys.
func (s *Session) History() string { return s.history.String() }
