package game

import (
	"math/rand"
	"time"

	"github.com/rs/zerolog"
)

const (
	TickRate    = 60 // Ticks per second
	FieldWidth  = 800
	FieldHeight = 600
)

// Sound is the optional score jingle collaborator
type Sound interface {
	PlayScore()
}

// Events is a bit set of what happened during one Update
type Events int

const (
	EventWallBounce Events = 1 << iota
	EventPaddleHit
	EventScore
	EventGameOver
)

func (e Events) Has(flag Events) bool {
	return e&flag != 0
}

// Engine owns both paddles, the ball and the match, and advances them one
// tick at a time. It is not safe for concurrent use.
type Engine struct {
	Width  int
	Height int
	Player *Paddle
	AI     *Paddle
	Ball   *Ball
	Match  *Match
	Tick   int

	sound  Sound
	logger zerolog.Logger
	rng    *rand.Rand
	bestOf int
}

// Option configures an Engine
type Option func(*Engine)

// WithSound installs the score sound. A nil Sound plays nothing.
func WithSound(s Sound) Option {
	return func(e *Engine) { e.sound = s }
}

func WithLogger(l zerolog.Logger) Option {
	return func(e *Engine) { e.logger = l }
}

// WithRand makes serves reproducible
func WithRand(r *rand.Rand) Option {
	return func(e *Engine) { e.rng = r }
}

// WithBestOf sets the first match target
func WithBestOf(n int) Option {
	return func(e *Engine) { e.bestOf = n }
}

// NewEngine creates an engine for a width x height field and serves the
// first ball toward a random side
func NewEngine(width, height int, opts ...Option) (*Engine, error) {
	e := &Engine{
		Width:  width,
		Height: height,
		logger: zerolog.Nop(),
		bestOf: DefaultBestOf,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.rng == nil {
		e.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	match, err := NewMatch(e.bestOf)
	if err != nil {
		return nil, err
	}
	e.Match = match

	startY := float64(height)/2 - PaddleHeight/2 // Vertically centered
	e.Player = NewPaddle(PaddleMargin, startY)
	e.Player.Speed = PlayerSpeed
	e.AI = NewPaddle(float64(width-PaddleMargin-PaddleWidth), startY)
	e.Ball = NewBall(width, height, e.rng)
	e.serve()

	e.logger.Info().Int("bestOf", e.Match.MaxScore).Msg("Match started")
	return e, nil
}

// serve launches the opening ball of a match toward a random side
func (e *Engine) serve() {
	toward := SidePlayer
	if e.rng.Intn(2) == 0 {
		toward = SideAI
	}
	e.Ball.Reset(toward)
}

// HandleInput moves the player paddle one step. Ignored once the match is over.
func (e *Engine) HandleInput(dir Direction) {
	if e.Match.GameOver {
		return
	}
	switch dir {
	case DirUp:
		e.Player.Move(-e.Player.Speed, e.Height)
	case DirDown:
		e.Player.Move(e.Player.Speed, e.Height)
	}
}

// Update runs one game tick and reports what happened
func (e *Engine) Update() Events {
	if e.Match.GameOver {
		return 0
	}
	e.Tick++

	var events Events
	e.Ball.Move()

	hit := e.Ball.CheckCollision(e.Player, e.AI)
	if hit&HitWall != 0 {
		events |= EventWallBounce
	}
	if hit&HitPaddle != 0 {
		events |= EventPaddleHit
	}

	if scorer, ok := e.checkScore(); ok {
		events |= EventScore
		if e.scorePoint(scorer) {
			events |= EventGameOver
		}
	}

	e.AI.AutoTrack(e.Ball, e.Height)
	return events
}

// checkScore reports which side scored when the ball left the court
func (e *Engine) checkScore() (Side, bool) {
	// Ball past left edge - AI scores
	if e.Ball.X <= 0 {
		return SideAI, true
	}
	// Ball past right edge - player scores
	if e.Ball.X >= float64(e.Width) {
		return SidePlayer, true
	}
	return SidePlayer, false
}

// scorePoint credits the scorer, plays the jingle and re-serves toward the
// side that conceded. Returns true when the point ended the match.
func (e *Engine) scorePoint(scorer Side) bool {
	over := e.Match.AwardPoint(scorer)
	if e.sound != nil {
		e.sound.PlayScore()
	}
	e.Ball.Reset(scorer.Opponent())

	e.logger.Debug().
		Str("scorer", scorer.String()).
		Int("player", e.Match.PlayerScore).
		Int("ai", e.Match.AIScore).
		Int("tick", e.Tick).
		Msg("Point scored")

	if over {
		e.logger.Info().
			Str("winner", e.Match.WinnerText()).
			Int("player", e.Match.PlayerScore).
			Int("ai", e.Match.AIScore).
			Msg("Match over")
	}
	return over
}

// HandleReplay applies a game over menu choice. It returns true when the
// player chose to exit. Choices made while playing are ignored.
func (e *Engine) HandleReplay(choice ReplayChoice) bool {
	if !e.Match.GameOver {
		return false
	}
	if choice == ReplayExit {
		e.logger.Info().Msg("Exit requested")
		return true
	}
	if bestOf := choice.BestOf(); bestOf != 0 {
		// choice.BestOf only yields valid targets
		_ = e.Restart(bestOf)
	}
	return false
}

// Restart begins a new match with the given target
func (e *Engine) Restart(bestOf int) error {
	if err := e.Match.Restart(bestOf); err != nil {
		return err
	}
	startY := float64(e.Height)/2 - PaddleHeight/2
	e.Player.Y = startY
	e.AI.Y = startY
	e.serve()
	e.Tick = 0

	e.logger.Info().Int("bestOf", bestOf).Msg("Match restarted")
	return nil
}

// IsGameOver returns true if either side has won
func (e *Engine) IsGameOver() bool {
	return e.Match.GameOver
}

// Snapshot returns the render data for the current frame
func (e *Engine) Snapshot() Snapshot {
	return Snapshot{
		Tick:          e.Tick,
		FieldWidth:    e.Width,
		FieldHeight:   e.Height,
		Player:        e.Player.Rect(),
		AI:            e.AI.Rect(),
		Ball:          e.Ball.Rect(),
		PlayerScore:   e.Match.PlayerScore,
		AIScore:       e.Match.AIScore,
		MaxScore:      e.Match.MaxScore,
		GameOver:      e.Match.GameOver,
		WinnerText:    e.Match.WinnerText(),
		ReplayOptions: ReplayOptions,
	}
}
