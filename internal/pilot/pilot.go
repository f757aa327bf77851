// Package pilot steers the snake on its own for unattended sessions.
package pilot

import (
	"math/rand"
	"time"

	"github.com/vinser/snake/internal/engine"
)

// Greedy heads for the food by Manhattan distance and avoids cells that
// would end the game on the next tick.
type Greedy struct {
	rng *rand.Rand
}

// New returns a pilot. Zero seeds from the clock.
func New(seed int64) *Greedy {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Greedy{rng: rand.New(rand.NewSource(seed))}
}

// Steer implements session.Controller.
func (g *Greedy) Steer(s engine.Snapshot) (engine.Direction, bool) {
	candidates := findBestDirections(s.Head(), s.Food, safeDirections(s))
	if len(candidates) == 0 {
		return s.Direction, false
	}
	return candidates[g.rng.Intn(len(candidates))], true
}

// safeDirections lists moves that stay on the grid and off the body. The tail
// cell is free unless the move eats, since eating keeps the tail in place.
func safeDirections(s engine.Snapshot) []engine.Direction {
	var dirs []engine.Direction
	head := s.Head()
	for _, d := range engine.Directions {
		if len(s.Snake) > 1 && d == s.Direction.Opposite() {
			continue
		}
		next := head.Move(d)
		if !next.InBounds() || blocked(s, next) {
			continue
		}
		dirs = append(dirs, d)
	}
	return dirs
}

func blocked(s engine.Snapshot, p engine.Position) bool {
	body := s.Snake
	if p != s.Food {
		body = body[:len(body)-1]
	}
	for _, b := range body {
		if b == p {
			return true
		}
	}
	return false
}

// findBestDirections keeps the directions that bring the head closest to target.
func findBestDirections(from, target engine.Position, valid []engine.Direction) []engine.Direction {
	shortest := 1 << 30
	var candidates []engine.Direction

	for _, d := range valid {
		dist := manhattan(from.Move(d), target)
		if dist < shortest {
			shortest = dist
			candidates = []engine.Direction{d}
		} else if dist == shortest {
			candidates = append(candidates, d)
		}
	}
	return candidates
}

// manhattan returns the Manhattan distance between two points.
func manhattan(a, b engine.Position) int {
	return abs(a.Row-b.Row) + abs(a.Col-b.Col)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
