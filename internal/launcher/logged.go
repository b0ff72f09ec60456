package launcher

import (
	"context"
	"log/slog"
	"time"
)

// Logged records each operation on a slog.Logger: debug on success, warn on
// failure with the error kind.
type Logged struct {
	inner Launcher
	log   *slog.Logger
}

// WithLogging wraps inner. A nil logger falls back to slog.Default().
func WithLogging(inner Launcher, log *slog.Logger) *Logged {
	if log == nil {
		log = slog.Default()
	}
	return &Logged{inner: inner, log: log.With("engine", NameOf(inner))}
}

// Name reports the inner engine's name.
func (l *Logged) Name() string { return NameOf(l.inner) }

func (l *Logged) Enable(ctx context.Context) error {
	start := time.Now()
	err := l.inner.Enable(ctx)
	l.record(ctx, OpEnable, start, err)
	return err
}

func (l *Logged) Disable(ctx context.Context) error {
	start := time.Now()
	err := l.inner.Disable(ctx)
	l.record(ctx, OpDisable, start, err)
	return err
}

func (l *Logged) Status(ctx context.Context) (bool, error) {
	start := time.Now()
	enabled, err := l.inner.Status(ctx)
	l.record(ctx, OpStatus, start, err, slog.Bool("enabled", enabled))
	return enabled, err
}

func (l *Logged) record(ctx context.Context, op string, start time.Time, err error, attrs ...slog.Attr) {
	attrs = append(attrs, slog.String("op", op), slog.Duration("elapsed", time.Since(start)))
	if err != nil {
		attrs = append(attrs, slog.String("kind", KindOf(err).String()), slog.Any("error", err))
		l.log.LogAttrs(ctx, slog.LevelWarn, "autolaunch operation failed", attrs...)
		return
	}
	l.log.LogAttrs(ctx, slog.LevelDebug, "autolaunch operation", attrs...)
}
