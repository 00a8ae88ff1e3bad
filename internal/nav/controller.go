// Package nav tracks which top-level screen is active and keeps a
// navigable history so back/forward restores earlier screens without
// re-running their side effects.
package nav

import (
	"sync"
	"time"

	"github.com/motionmatrix/factory-portal/internal/session"
)

// Screen identifies a top-level view.
type Screen string

const (
	ScreenHome  Screen = "home"
	ScreenLogin Screen = "login"
	ScreenAdmin Screen = "admin"
)

// Controller is the screen state machine. The admin screen is gated on an
// active session; every entry attempt re-checks the gate, so a stale
// history entry after logout cannot reach the dashboard.
type Controller struct {
	mu       sync.Mutex
	sessions *session.Manager
	delay    time.Duration

	current       Screen
	previous      Screen
	transitioning bool
	timer         *time.Timer

	history []Screen
	cursor  int

	closed bool
}

// New returns a controller on the home screen. delay is the cosmetic
// staged-transition pause; zero makes every swap instantaneous.
func New(sessions *session.Manager, delay time.Duration) *Controller {
	return &Controller{
		sessions: sessions,
		delay:    delay,
		current:  ScreenHome,
		history:  []Screen{ScreenHome},
	}
}

// Current returns the active screen.
func (c *Controller) Current() Screen {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current
}

// Previous returns the screen before the last swap. Only the fade
// animation cares about this value.
func (c *Controller) Previous() Screen {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.previous
}

// Transitioning reports whether a staged swap is pending.
func (c *Controller) Transitioning() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.transitioning
}

// Navigate moves to target, applying the session gate, and records the
// resolved destination as a new history entry. Entries ahead of the
// cursor (from earlier Back calls) are discarded, matching browser
// history semantics. Returns the screen actually entered.
func (c *Controller) Navigate(target Screen) Screen {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return c.current
	}

	dest := c.gate(target)

	c.history = append(c.history[:c.cursor+1], dest)
	c.cursor = len(c.history) - 1

	c.swap(dest)
	return dest
}

// Back moves one history entry backwards, re-applying the gate to the
// recorded screen. No other side effects run: no re-authentication, no
// re-fetch. Returns the screen now active.
func (c *Controller) Back() Screen {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return c.current
	}
	if c.cursor > 0 {
		c.cursor--
	}
	dest := c.gate(c.history[c.cursor])
	c.swap(dest)
	return dest
}

// Forward moves one history entry forwards, re-applying the gate.
func (c *Controller) Forward() Screen {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return c.current
	}
	if c.cursor < len(c.history)-1 {
		c.cursor++
	}
	dest := c.gate(c.history[c.cursor])
	c.swap(dest)
	return dest
}

// Close cancels any pending staged transition. The controller stays on
// its current screen and ignores further navigation; a timer firing
// after teardown must not write state.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	c.transitioning = false
}

// gate reroutes an admin entry to home when no session exists. Callers
// hold c.mu.
func (c *Controller) gate(target Screen) Screen {
	if target == ScreenAdmin && !c.sessions.Active() {
		return ScreenHome
	}
	return target
}

// swap stages the screen change. With a zero delay the swap is applied
// inline; otherwise the transitioning flag holds until the timer fires.
// Callers hold c.mu.
func (c *Controller) swap(dest Screen) {
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	if dest == c.current {
		c.transitioning = false
		return
	}

	if c.delay <= 0 {
		c.previous = c.current
		c.current = dest
		c.transitioning = false
		return
	}

	c.transitioning = true
	c.timer = time.AfterFunc(c.delay, func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		if c.closed || !c.transitioning {
			return
		}
		c.previous = c.current
		c.current = dest
		c.transitioning = false
		c.timer = nil
	})
}
