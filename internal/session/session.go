// Package session drives an engine from a clock and input requests outside of
// the terminal UI. All engine mutation happens on the goroutine running Run.
package session

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/vinser/snake/internal/engine"
	"github.com/vinser/snake/internal/logging"
)

// ErrStopped is returned by requests made to a session that is not running.
// Renderers return it to end a session cleanly.
var ErrStopped = errors.New("session stopped")

// Renderer receives every published snapshot.
type Renderer interface {
	Render(engine.Snapshot) error
}

// Controller picks the direction for the next tick. It is consulted right
// before each tick; returning false leaves the pending direction as is.
type Controller interface {
	Steer(engine.Snapshot) (engine.Direction, bool)
}

// Options tune a session.
type Options struct {
	Interval   time.Duration
	NewClock   func(time.Duration) Clock
	Controller Controller
	// ExitOnGameOver ends Run when the game is over instead of waiting for Reset.
	ExitOnGameOver bool
	// MaxTicks ends Run after that many ticks. Zero means no limit.
	MaxTicks uint64
	Logger   *log.Entry
}

// Session owns one engine and the clock that advances it.
type Session struct {
	id       string
	engine   *engine.Engine
	renderer Renderer
	opts     Options
	log      *log.Entry

	started atomic.Bool
	dirs    chan engine.Direction
	resets  chan struct{}
	done    chan struct{}
}

// New returns a session over e that publishes to r.
func New(e *engine.Engine, r Renderer, opts Options) *Session {
	if opts.Interval <= 0 {
		opts.Interval = 100 * time.Millisecond
	}
	if opts.NewClock == nil {
		opts.NewClock = NewTicker
	}
	if opts.Logger == nil {
		opts.Logger = logging.Discard()
	}
	id := uuid.NewString()
	return &Session{
		id:       id,
		engine:   e,
		renderer: r,
		opts:     opts,
		log:      opts.Logger.WithField("session", id),
		dirs:     make(chan engine.Direction),
		resets:   make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// ID identifies the session in logs.
func (s *Session) ID() string {
	return s.id
}

// Run publishes the initial state and then serves ticks and requests until
// ctx is canceled, the renderer returns ErrStopped or an exit condition from
// Options is met. The clock is released before Run returns.
// A session runs once; later calls return ErrStopped.
func (s *Session) Run(ctx context.Context) (err error) {
	if !s.started.CompareAndSwap(false, true) {
		return ErrStopped
	}
	defer close(s.done)

	s.log.WithField("interval", s.opts.Interval).Info("session started")
	defer func() {
		s.log.WithError(err).Info("session ended")
	}()

	if err := s.publish(s.engine.Snapshot()); err != nil {
		return s.stopped(err)
	}

	clock := s.opts.NewClock(s.opts.Interval)
	defer func() {
		if clock != nil {
			clock.Stop()
		}
	}()

	var ticks uint64
	for {
		var tickC <-chan time.Time
		if clock != nil {
			tickC = clock.C()
		}

		select {
		case <-ctx.Done():
			return ctx.Err()

		case d := <-s.dirs:
			s.engine.SetDirection(d)

		case <-s.resets:
			snap := s.engine.Reset()
			if clock == nil {
				clock = s.opts.NewClock(s.opts.Interval)
			}
			if err := s.publish(snap); err != nil {
				return s.stopped(err)
			}

		case <-tickC:
			if s.opts.Controller != nil {
				if d, ok := s.opts.Controller.Steer(s.engine.Snapshot()); ok {
					s.engine.SetDirection(d)
				}
			}
			snap := s.engine.Tick()
			ticks++
			if err := s.publish(snap); err != nil {
				return s.stopped(err)
			}
			if snap.GameOver {
				clock.Stop()
				clock = nil
				if s.opts.ExitOnGameOver {
					return nil
				}
			}
			if s.opts.MaxTicks > 0 && ticks >= s.opts.MaxTicks {
				return nil
			}
		}
	}
}

// SetDirection queues a direction change for the next tick. Changes made
// between two ticks coalesce; the last one wins.
func (s *Session) SetDirection(ctx context.Context, d engine.Direction) error {
	select {
	case s.dirs <- d:
		return nil
	case <-s.done:
		return ErrStopped
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Reset restarts the game and the clock.
func (s *Session) Reset(ctx context.Context) error {
	select {
	case s.resets <- struct{}{}:
		return nil
	case <-s.done:
		return ErrStopped
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Session) publish(snap engine.Snapshot) error {
	if err := s.renderer.Render(snap); err != nil {
		if errors.Is(err, ErrStopped) {
			return err
		}
		return errors.Wrap(err, "session: render")
	}
	return nil
}

func (s *Session) stopped(err error) error {
	if errors.Is(err, ErrStopped) {
		return nil
	}
	return err
}
