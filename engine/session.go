package engine

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/lixenwraith/vi-snake/constants"
	"github.com/lixenwraith/vi-snake/core"
	"github.com/lixenwraith/vi-snake/render"
	"go.uber.org/zap"
	"golang.org/x/exp/rand"
)

// State is the session lifecycle state
type State int

const (
	StateRunning State = iota
	StateOver
)

func (s State) String() string {
	if s == StateOver {
		return "over"
	}
	return "running"
}

// TickResult reports what one Update did
type TickResult struct {
	Ate       bool          // head landed on food this tick
	Over      bool          // session is over after this tick
	Ended     bool          // this tick caused the transition to Over
	Score     int           // score after this tick
	Collision CollisionKind // set when Ended
}

// Session owns one game: snake, food, score and state
// All methods must be called from the goroutine that drives the game loop
type Session struct {
	cfg    Config
	gridW  int
	gridH  int
	rng    *rand.Rand
	logger *zap.Logger

	id    string
	snake *Snake
	food  *Food
	score int
	state State
	ticks uint64
}

// NewSession validates cfg and starts a running session
// A nil logger disables logging
func NewSession(cfg Config, rng *rand.Rand, logger *zap.Logger) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &Session{
		cfg:    cfg,
		gridW:  cfg.GridWidth(),
		gridH:  cfg.GridHeight(),
		rng:    rng,
		logger: logger,
	}
	s.reset()
	return s, nil
}

// Restart discards the current game and starts a new one under a fresh ID
func (s *Session) Restart() {
	s.logger.Info("session restart", zap.String("session", s.id), zap.Int("score", s.score))
	s.reset()
}

func (s *Session) reset() {
	s.id = uuid.NewString()
	s.snake = NewSnake()
	s.food = NewFood(s.gridW, s.gridH, s.rng)
	s.score = 0
	s.state = StateRunning
	s.ticks = 0

	s.logger.Info("session start",
		zap.String("session", s.id),
		zap.Int("grid_width", s.gridW),
		zap.Int("grid_height", s.gridH),
		zap.Stringer("food", cellStringer(s.food.Cell())),
	)
}

// ID returns the session identifier used in logs
func (s *Session) ID() string { return s.id }

// Config returns the session configuration
func (s *Session) Config() Config { return s.cfg }

// Snake returns the session snake
func (s *Session) Snake() *Snake { return s.snake }

// Food returns the session food
func (s *Session) Food() *Food { return s.food }

// Score returns the number of foods eaten
func (s *Session) Score() int { return s.score }

// State returns the lifecycle state
func (s *Session) State() State { return s.state }

// Ticks returns the number of updates executed while running
func (s *Session) Ticks() uint64 { return s.ticks }

// SetDirection forwards an input direction to the snake, read once by the next Update
func (s *Session) SetDirection(d core.Direction) {
	s.snake.SetDirection(d)
}

// Update runs one tick: clear, move, collision check, food check, draw, score text
// On collision nothing is drawn and the session ends; later calls are no-ops
func (s *Session) Update(surface render.Surface, sink render.ScoreSink) TickResult {
	if s.state == StateOver {
		return TickResult{Over: true, Score: s.score}
	}
	s.ticks++

	surface.ClearRect(0, 0, s.cfg.Width, s.cfg.Height)

	// Keep the tail on the tick the head reaches the food
	if s.snake.NextHead() == s.food.Cell() {
		s.snake.Grow()
	}
	s.snake.Move()

	if kind := s.snake.CollisionKind(s.gridW, s.gridH); kind != CollisionNone {
		s.state = StateOver
		s.logger.Info("collision",
			zap.String("session", s.id),
			zap.Stringer("kind", kind),
			zap.Stringer("head", cellStringer(s.snake.Head())),
			zap.Int("score", s.score),
			zap.Uint64("ticks", s.ticks),
		)
		return TickResult{Over: true, Ended: true, Score: s.score, Collision: kind}
	}

	ate := false
	if s.snake.HasEaten(s.food.Cell()) {
		s.food.Spawn(s.rng)
		s.score++
		ate = true
		s.logger.Debug("food eaten",
			zap.String("session", s.id),
			zap.Int("score", s.score),
			zap.Int("length", s.snake.Len()),
			zap.Stringer("next_food", cellStringer(s.food.Cell())),
		)
	}

	s.Render(surface, sink)

	return TickResult{Ate: ate, Score: s.score}
}

// Render paints food, snake and score text without advancing the game
func (s *Session) Render(surface render.Surface, sink render.ScoreSink) {
	s.food.Draw(surface, s.cfg.CellSize)
	s.snake.Draw(surface, s.cfg.CellSize)
	sink.SetText(fmt.Sprintf(constants.ScoreTextFormat, s.score))
}

type cellStringer core.Cell

func (c cellStringer) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}
