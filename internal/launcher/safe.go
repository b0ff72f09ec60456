package launcher

import (
	"context"
	"sync"
)

// Safe is a non-failing facade over a Launcher. The Try* methods report
// success as a bool and park the failure in a single last-error slot, which
// TakeLastError consumes.
//
// The slot is last-write-wins. Callers sharing one Safe across goroutines
// must coordinate themselves to pair an error with the call that caused it.
type Safe struct {
	inner Launcher

	mu   sync.Mutex
	last *Error
}

// NewSafe wraps inner. inner is normally a *Unified; errors from any other
// Launcher are normalized before they are stored.
func NewSafe(inner Launcher) *Safe {
	return &Safe{inner: inner}
}

// Name reports the inner engine's name.
func (s *Safe) Name() string { return NameOf(s.inner) }

// Enable forwards to the inner launcher.
func (s *Safe) Enable(ctx context.Context) error { return s.inner.Enable(ctx) }

// Disable forwards to the inner launcher.
func (s *Safe) Disable(ctx context.Context) error { return s.inner.Disable(ctx) }

// Status forwards to the inner launcher.
func (s *Safe) Status(ctx context.Context) (bool, error) { return s.inner.Status(ctx) }

// TryEnable enables and reports whether it succeeded.
func (s *Safe) TryEnable(ctx context.Context) bool {
	return s.capture(OpEnable, s.inner.Enable(ctx))
}

// TryDisable disables and reports whether it succeeded.
func (s *Safe) TryDisable(ctx context.Context) bool {
	return s.capture(OpDisable, s.inner.Disable(ctx))
}

// TryStatus returns ok=false when the status could not be read; enabled is
// only meaningful when ok is true.
func (s *Safe) TryStatus(ctx context.Context) (ok, enabled bool) {
	enabled, err := s.inner.Status(ctx)
	if !s.capture(OpStatus, err) {
		return false, false
	}
	return true, enabled
}

// TryStatusResult carries the outcome of TryStatusAsync.
type TryStatusResult struct {
	OK      bool
	Enabled bool
}

// TryEnableAsync runs TryEnable on its own goroutine.
func (s *Safe) TryEnableAsync(ctx context.Context) <-chan bool {
	return goBool(func() bool { return s.TryEnable(ctx) })
}

// TryDisableAsync runs TryDisable on its own goroutine.
func (s *Safe) TryDisableAsync(ctx context.Context) <-chan bool {
	return goBool(func() bool { return s.TryDisable(ctx) })
}

// TryStatusAsync runs TryStatus on its own goroutine.
func (s *Safe) TryStatusAsync(ctx context.Context) <-chan TryStatusResult {
	ch := make(chan TryStatusResult, 1)
	go func() {
		defer close(ch)
		ok, enabled := s.TryStatus(ctx)
		ch <- TryStatusResult{OK: ok, Enabled: enabled}
	}()
	return ch
}

// TakeLastError returns the most recent failure and clears the slot. It
// returns nil when no failure happened since the previous call.
func (s *Safe) TakeLastError() error {
	s.mu.Lock()
	last := s.last
	s.last = nil
	s.mu.Unlock()

	if last == nil {
		return nil
	}
	return last
}

func (s *Safe) capture(op string, err error) bool {
	if err == nil {
		return true
	}
	le := Normalize(op, err).(*Error)

	s.mu.Lock()
	s.last = le
	s.mu.Unlock()
	return false
}

func goBool(fn func() bool) <-chan bool {
	ch := make(chan bool, 1)
	go func() {
		defer close(ch)
		ch <- fn()
	}()
	return ch
}
