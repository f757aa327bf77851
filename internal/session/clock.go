package session

import "time"

// Clock delivers ticks at a fixed period until stopped.
type Clock interface {
	C() <-chan time.Time
	Stop()
}

type ticker struct {
	t *time.Ticker
}

// NewTicker returns a Clock backed by time.Ticker.
func NewTicker(d time.Duration) Clock {
	return &ticker{t: time.NewTicker(d)}
}

func (t *ticker) C() <-chan time.Time {
	return t.t.C
}

func (t *ticker) Stop() {
	t.t.Stop()
}
