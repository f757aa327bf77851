package engine

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seqRand replays a fixed sequence of draws.
type seqRand struct {
	vals []int
}

func (r *seqRand) Intn(n int) int {
	if len(r.vals) == 0 {
		return 0
	}
	v := r.vals[0] % n
	r.vals = r.vals[1:]
	return v
}

func newTestEngine(snake []Position, dir Direction, food Position, draws ...int) *Engine {
	e := New(WithRand(&seqRand{vals: draws}))
	e.snake = snake
	e.direction = dir
	e.food = food
	return e
}

func TestNewInitialState(t *testing.T) {
	s := New().Snapshot()

	assert.Equal(t, []Position{{5, 5}}, s.Snake)
	assert.Equal(t, Position{10, 10}, s.Food)
	assert.Equal(t, Right, s.Direction)
	assert.Equal(t, 0, s.Score)
	assert.False(t, s.GameOver)
	assert.Zero(t, s.Tick)
}

func TestTickEatsFood(t *testing.T) {
	e := newTestEngine([]Position{{5, 5}}, Right, Position{5, 6}, 3, 7)

	s := e.Tick()

	assert.Equal(t, []Position{{5, 6}, {5, 5}}, s.Snake)
	assert.Equal(t, 1, s.Score)
	assert.Equal(t, Position{3, 7}, s.Food)
	assert.False(t, s.GameOver)
}

func TestTickMovesWithoutGrowth(t *testing.T) {
	e := newTestEngine([]Position{{5, 5}, {5, 4}, {5, 3}}, Down, Position{10, 10})

	s := e.Tick()

	assert.Equal(t, []Position{{6, 5}, {5, 5}, {5, 4}}, s.Snake)
	assert.Equal(t, 0, s.Score)
	assert.Equal(t, Position{10, 10}, s.Food)
}

func TestTickWallCollision(t *testing.T) {
	tests := []struct {
		name string
		head Position
		dir  Direction
		want Position
	}{
		{"top", Position{0, 5}, Up, Position{-1, 5}},
		{"bottom", Position{GridSize - 1, 5}, Down, Position{GridSize, 5}},
		{"left", Position{5, 0}, Left, Position{5, -1}},
		{"right", Position{5, GridSize - 1}, Right, Position{5, GridSize}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEngine([]Position{tt.head}, tt.dir, Position{10, 10})

			s := e.Tick()

			assert.True(t, s.GameOver)
			assert.Equal(t, tt.want, s.Head())
		})
	}
}

func TestTickIsInertAfterGameOver(t *testing.T) {
	e := newTestEngine([]Position{{0, 5}}, Up, Position{10, 10})
	over := e.Tick()
	require.True(t, over.GameOver)

	e.SetDirection(Down)
	s := e.Tick()

	assert.Equal(t, over.Snake, s.Snake)
	assert.Equal(t, over.Tick, s.Tick)
	assert.Equal(t, Up, s.Direction)
	assert.True(t, s.GameOver)
	assert.Equal(t, Up, e.Snapshot().Direction)
}

func TestTickSelfCollision(t *testing.T) {
	// The body loops around (4,4) and the head turns into it.
	e := newTestEngine([]Position{{4, 5}, {5, 5}, {5, 4}, {4, 4}, {3, 4}}, Left, Position{10, 10})

	s := e.Tick()

	assert.Equal(t, Position{4, 4}, s.Head())
	assert.True(t, s.GameOver)
}

func TestTickFollowingTailIsSafe(t *testing.T) {
	// The tail leaves (4,5) in the same step the head enters it.
	e := newTestEngine([]Position{{5, 5}, {5, 4}, {4, 4}, {4, 5}}, Up, Position{10, 10})

	s := e.Tick()

	assert.Equal(t, []Position{{4, 5}, {5, 5}, {5, 4}, {4, 4}}, s.Snake)
	assert.False(t, s.GameOver)
}

func TestTickReversalIntoNeck(t *testing.T) {
	e := newTestEngine([]Position{{5, 6}, {5, 5}, {5, 4}}, Right, Position{10, 10})

	e.SetDirection(Left)
	s := e.Tick()

	assert.True(t, s.GameOver)
}

func TestTickGrowingIntoTailCollides(t *testing.T) {
	// Eating keeps the tail in place, so stepping onto it is fatal.
	e := newTestEngine([]Position{{5, 5}, {5, 4}, {4, 4}, {4, 5}}, Up, Position{4, 5}, 1, 1)

	s := e.Tick()

	assert.Equal(t, 1, s.Score)
	assert.Len(t, s.Snake, 5)
	assert.True(t, s.GameOver)
}

func TestSetDirectionLastWins(t *testing.T) {
	e := newTestEngine([]Position{{5, 5}}, Right, Position{10, 10})

	e.SetDirection(Up)
	e.SetDirection(Left)
	e.SetDirection(Left)
	s := e.Tick()

	assert.Equal(t, Position{5, 4}, s.Head())
	assert.Equal(t, Left, s.Direction)
}

func TestFoodMayLandOnSnake(t *testing.T) {
	e := newTestEngine([]Position{{5, 5}, {5, 4}}, Right, Position{5, 6}, 5, 5)

	s := e.Tick()

	assert.Equal(t, Position{5, 5}, s.Food)
	assert.True(t, s.Occupies(s.Food))
}

func TestReset(t *testing.T) {
	e := newTestEngine([]Position{{0, 5}, {1, 5}}, Up, Position{10, 10})
	e.score.Add(4)
	require.True(t, e.Tick().GameOver)

	s := e.Reset()

	assert.Equal(t, []Position{{5, 5}}, s.Snake)
	assert.Equal(t, Position{10, 10}, s.Food)
	assert.Equal(t, Right, s.Direction)
	assert.Equal(t, 0, s.Score)
	assert.False(t, s.GameOver)
	assert.False(t, e.GameOver())
}

func TestSnapshotIsIsolated(t *testing.T) {
	e := New()
	s := e.Snapshot()
	s.Snake[0] = Position{0, 0}

	assert.Equal(t, Position{5, 5}, e.Snapshot().Head())
}

func TestTickProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	e := New(WithSeed(11))
	prev := e.Snapshot()

	for i := 0; i < 2000 && !prev.GameOver; i++ {
		// Avoid walls most of the time to keep the walk long.
		d := Directions[rng.Intn(len(Directions))]
		if !prev.Head().Move(d).InBounds() {
			d = d.Opposite()
		}
		e.SetDirection(d)
		next := e.Tick()

		dr, dc := d.Offset()
		assert.Equal(t, Position{prev.Head().Row + dr, prev.Head().Col + dc}, next.Head())

		ate := next.Head() == prev.Food
		if ate {
			assert.Len(t, next.Snake, len(prev.Snake)+1)
			assert.Equal(t, prev.Score+1, next.Score)
		} else {
			assert.Len(t, next.Snake, len(prev.Snake))
			assert.Equal(t, prev.Score, next.Score)
		}
		prev = next
	}
}

func TestSameSeedSameGame(t *testing.T) {
	run := func() Snapshot {
		e := New(WithSeed(42))
		var s Snapshot
		for i := 0; i < 200; i++ {
			switch i % 40 {
			case 0:
				e.SetDirection(Down)
			case 10:
				e.SetDirection(Right)
			case 20:
				e.SetDirection(Up)
			case 30:
				e.SetDirection(Left)
			}
			s = e.Tick()
		}
		return s
	}

	assert.Equal(t, run(), run())
}
