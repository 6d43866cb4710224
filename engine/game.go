package engine

import (
	"sync/atomic"

	"github.com/lixenwraith/vi-snake/audio"
	"github.com/lixenwraith/vi-snake/constants"
	"github.com/lixenwraith/vi-snake/render"
	"github.com/lixenwraith/vi-snake/status"
	"go.uber.org/zap"
)

// Timer is the cancelable tick source driving the game
type Timer interface {
	Stop()
}

// Notifier surfaces the terminal game over notification
// Implementations may block until the player acknowledges
type Notifier interface {
	NotifyGameOver(message string, score int)
}

// SoundPlayer plays short effects
type SoundPlayer interface {
	Play(sound audio.SoundType)
}

// Game runs the per-tick loop for one session and applies the boundary effects of each tick
type Game struct {
	session   *Session
	surface   render.Surface
	scoreSink render.ScoreSink

	timer    Timer
	notifier Notifier
	sound    SoundPlayer
	logger   *zap.Logger

	notified bool

	// Cached metric pointers
	statTicks *atomic.Int64
	statFood  *atomic.Int64
	statState *status.AtomicString
}

// NewGame binds a session to its drawing surface and score display
func NewGame(session *Session, surface render.Surface, scoreSink render.ScoreSink) *Game {
	return &Game{
		session:   session,
		surface:   surface,
		scoreSink: scoreSink,
		logger:    zap.NewNop(),
	}
}

// SetTimer sets the tick source stopped on game over
func (g *Game) SetTimer(t Timer) { g.timer = t }

// SetNotifier sets the game over notification sink
func (g *Game) SetNotifier(n Notifier) { g.notifier = n }

// SetSoundPlayer sets the effect player, nil mutes
func (g *Game) SetSoundPlayer(p SoundPlayer) { g.sound = p }

// SetLogger sets the logger, nil disables logging
func (g *Game) SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	g.logger = l
}

// SetRegistry caches the game counters from reg
func (g *Game) SetRegistry(reg *status.Registry) {
	g.statTicks = reg.Ints.Get("game.ticks")
	g.statFood = reg.Ints.Get("game.food_eaten")
	g.statState = reg.Strings.Get("game.state")
	g.statState.Store(g.session.State().String())
}

// Session returns the driven session
func (g *Game) Session() *Session { return g.session }

// Over reports whether the session has ended
func (g *Game) Over() bool { return g.session.State() == StateOver }

// Tick advances the session one step
// On the ending tick the timer is stopped, then the notifier runs exactly once
func (g *Game) Tick() TickResult {
	res := g.session.Update(g.surface, g.scoreSink)
	if res.Over && !res.Ended {
		return res
	}

	if g.statTicks != nil {
		g.statTicks.Add(1)
	}

	if res.Ate {
		if g.statFood != nil {
			g.statFood.Add(1)
		}
		g.play(audio.SoundEat)
	}

	if res.Ended {
		g.end(res)
	}
	return res
}

func (g *Game) end(res TickResult) {
	if g.timer != nil {
		g.timer.Stop()
	}
	if g.statState != nil {
		g.statState.Store(StateOver.String())
	}
	g.play(audio.SoundGameOver)

	g.logger.Info("game over",
		zap.String("session", g.session.ID()),
		zap.Stringer("collision", res.Collision),
		zap.Int("score", res.Score),
	)

	if g.notifier != nil && !g.notified {
		g.notified = true
		g.notifier.NotifyGameOver(constants.GameOverMessage, res.Score)
	}
}

func (g *Game) play(sound audio.SoundType) {
	if g.sound != nil {
		g.sound.Play(sound)
	}
}
