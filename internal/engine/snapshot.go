package engine

// Snapshot is an immutable copy of the engine state handed to renderers.
type Snapshot struct {
	Snake     []Position // head first
	Food      Position
	Direction Direction
	Score     int
	GameOver  bool
	Tick      uint64
}

// Snapshot returns a copy of the current state that shares no memory with
// the engine.
func (e *Engine) Snapshot() Snapshot {
	body := make([]Position, len(e.snake))
	copy(body, e.snake)
	return Snapshot{
		Snake:     body,
		Food:      e.food,
		Direction: e.direction,
		Score:     e.score.Get(),
		GameOver:  e.gameOver,
		Tick:      e.ticks,
	}
}

// Head returns the first segment of the snake.
func (s Snapshot) Head() Position {
	return s.Snake[0]
}

// Occupies reports whether any snake segment lies on p.
func (s Snapshot) Occupies(p Position) bool {
	for _, b := range s.Snake {
		if b == p {
			return true
		}
	}
	return false
}
