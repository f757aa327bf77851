// Package engine owns the snake game state: the body, the food, the pending
// direction, the score and the game over flag. It advances one step per Tick
// and is not safe for concurrent use; callers serialize access.
package engine

import (
	"math/rand"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/vinser/snake/internal/logging"
	"github.com/vinser/snake/internal/score"
)

const (
	// GridSize is the side of the square playing field.
	GridSize = 20

	pointsPerFood = 1
)

var (
	initialHead      = Position{Row: 5, Col: 5}
	initialFood      = Position{Row: 10, Col: 10}
	initialDirection = Right
)

// Rand is the random source used for food placement.
type Rand interface {
	Intn(n int) int
}

// Engine is the game state machine. It is either running or over; only
// Reset leaves the over state.
type Engine struct {
	snake     []Position
	food      Position
	direction Direction
	score     *score.Score
	gameOver  bool
	ticks     uint64

	rng Rand
	log *log.Entry
}

// Option configures an Engine.
type Option func(*Engine)

// WithRand sets the random source for food placement.
func WithRand(r Rand) Option {
	return func(e *Engine) {
		e.rng = r
	}
}

// WithSeed seeds the food placement source. Zero seeds from the clock.
func WithSeed(seed int64) Option {
	return func(e *Engine) {
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		e.rng = rand.New(rand.NewSource(seed))
	}
}

// WithLogger sets the entry state transitions are logged to.
func WithLogger(l *log.Entry) Option {
	return func(e *Engine) {
		e.log = l
	}
}

// New returns an engine in its initial state.
func New(opts ...Option) *Engine {
	e := &Engine{
		score: score.NewScore(),
		log:   logging.Discard(),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.rng == nil {
		WithSeed(0)(e)
	}
	e.init()
	return e
}

func (e *Engine) init() {
	e.snake = []Position{initialHead}
	e.food = initialFood
	e.direction = initialDirection
	e.score.Reset()
	e.gameOver = false
	e.ticks = 0
}

// SetDirection replaces the pending direction. Reversing into the neck is
// accepted and left to the collision check of the next tick. It has no
// effect once the game is over.
func (e *Engine) SetDirection(d Direction) {
	if e.gameOver {
		return
	}
	e.direction = d
}

// Tick advances the game by one step and returns the resulting state.
// It does nothing once the game is over.
func (e *Engine) Tick() Snapshot {
	if e.gameOver {
		return e.Snapshot()
	}
	e.ticks++

	head := e.snake[0].Move(e.direction)
	e.snake = append([]Position{head}, e.snake...)

	if head == e.food {
		e.score.Add(pointsPerFood)
		e.food = e.randomPosition()
		e.log.WithFields(log.Fields{
			"tick":  e.ticks,
			"score": e.score.Get(),
			"food":  e.food.String(),
		}).Debug("food eaten")
	} else {
		e.snake = e.snake[:len(e.snake)-1]
	}

	if e.collided() {
		e.gameOver = true
		e.log.WithFields(log.Fields{
			"tick":   e.ticks,
			"score":  e.score.Get(),
			"head":   head.String(),
			"length": len(e.snake),
		}).Info("game over")
	}
	return e.Snapshot()
}

// Reset starts a fresh session with the initial values.
func (e *Engine) Reset() Snapshot {
	e.init()
	e.log.Debug("game reset")
	return e.Snapshot()
}

// GameOver reports whether the game has ended.
func (e *Engine) GameOver() bool {
	return e.gameOver
}

// collided checks the head against the walls and the rest of the body.
func (e *Engine) collided() bool {
	head := e.snake[0]
	if !head.InBounds() {
		return true
	}
	for _, p := range e.snake[1:] {
		if p == head {
			return true
		}
	}
	return false
}

// randomPosition draws each axis uniformly over the grid. The snake body is
// not excluded, so food may land on it.
func (e *Engine) randomPosition() Position {
	return Position{
		Row: e.rng.Intn(GridSize),
		Col: e.rng.Intn(GridSize),
	}
}
