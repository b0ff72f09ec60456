package launcher

import (
	"context"
	"sync"
)

// fakeLauncher records calls and returns scripted results.
type fakeLauncher struct {
	mu       sync.Mutex
	enabled  bool
	err      error
	panicMsg string
	calls    []string
}

func (f *fakeLauncher) Name() string { return "fake" }

func (f *fakeLauncher) record(op string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, op)
	if f.panicMsg != "" {
		panic(f.panicMsg)
	}
	return f.err
}

func (f *fakeLauncher) Enable(_ context.Context) error {
	if err := f.record(OpEnable); err != nil {
		return err
	}
	f.enabled = true
	return nil
}

func (f *fakeLauncher) Disable(_ context.Context) error {
	if err := f.record(OpDisable); err != nil {
		return err
	}
	f.enabled = false
	return nil
}

func (f *fakeLauncher) Status(_ context.Context) (bool, error) {
	if err := f.record(OpStatus); err != nil {
		return false, err
	}
	return f.enabled, nil
}
