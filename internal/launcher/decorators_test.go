package launcher

import (
	"bytes"
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnified_SuccessPassesThrough(t *testing.T) {
	ctx := context.Background()
	f := &fakeLauncher{}
	u := Unify(f)

	require.NoError(t, u.Enable(ctx))
	enabled, err := u.Status(ctx)
	require.NoError(t, err)
	assert.True(t, enabled)

	require.NoError(t, u.Disable(ctx))
	enabled, err = u.Status(ctx)
	require.NoError(t, err)
	assert.False(t, enabled)

	assert.Equal(t, []string{OpEnable, OpStatus, OpDisable, OpStatus}, f.calls)
	assert.Equal(t, "fake", u.Name())
}

func TestUnified_NormalizesErrors(t *testing.T) {
	ctx := context.Background()
	u := Unify(&fakeLauncher{err: fs.ErrPermission})

	err := u.Enable(ctx)
	assert.ErrorIs(t, err, ErrPermissionDenied)

	_, err = u.Status(ctx)
	var le *Error
	require.ErrorAs(t, err, &le)
	assert.Equal(t, OpStatus, le.Op)
	assert.Equal(t, KindPermissionDenied, le.Kind)
}

func TestUnified_GenericFailure(t *testing.T) {
	u := Unify(&fakeLauncher{err: errors.New("registry hive corrupt")})
	err := u.Disable(context.Background())
	assert.ErrorIs(t, err, ErrOperationFailed)
	assert.Contains(t, err.Error(), "registry hive corrupt")
}

func TestUnified_RecoversPanic(t *testing.T) {
	u := Unify(&fakeLauncher{panicMsg: "nil map"})

	err := u.Enable(context.Background())
	require.Error(t, err)
	assert.Equal(t, KindGeneric, KindOf(err))
	assert.Contains(t, err.Error(), "nil map")

	enabled, err := u.Status(context.Background())
	assert.False(t, enabled)
	assert.Error(t, err)
}

func TestSafe_TryEnableFailureThenTakeOnce(t *testing.T) {
	ctx := context.Background()
	f := &fakeLauncher{err: CommandError("osascript -e x", 1, "execution error")}
	s := NewSafe(Unify(f))

	assert.False(t, s.TryEnable(ctx))

	err := s.TakeLastError()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrExecuteCommand)

	assert.Nil(t, s.TakeLastError(), "error must be consumed by the first take")
}

func TestSafe_SuccessLeavesSlotEmpty(t *testing.T) {
	ctx := context.Background()
	s := NewSafe(Unify(&fakeLauncher{}))

	assert.True(t, s.TryEnable(ctx))
	ok, enabled := s.TryStatus(ctx)
	assert.True(t, ok)
	assert.True(t, enabled)
	assert.True(t, s.TryDisable(ctx))
	assert.Nil(t, s.TakeLastError())
}

func TestSafe_LastWriteWins(t *testing.T) {
	ctx := context.Background()
	f := &fakeLauncher{err: fs.ErrPermission}
	s := NewSafe(Unify(f))

	assert.False(t, s.TryEnable(ctx))
	f.err = errors.New("second")
	ok, enabled := s.TryStatus(ctx)
	assert.False(t, ok)
	assert.False(t, enabled)

	err := s.TakeLastError()
	require.Error(t, err)
	assert.Equal(t, KindGeneric, KindOf(err))
	assert.Contains(t, err.Error(), "second")
}

func TestSafe_NormalizesUntypedInner(t *testing.T) {
	s := NewSafe(&fakeLauncher{err: fs.ErrPermission})
	assert.False(t, s.TryDisable(context.Background()))

	var le *Error
	require.ErrorAs(t, s.TakeLastError(), &le)
	assert.Equal(t, KindPermissionDenied, le.Kind)
	assert.Equal(t, OpDisable, le.Op)
}

func TestSafe_ForwardingMethodsReturnErrors(t *testing.T) {
	s := NewSafe(Unify(&fakeLauncher{err: fs.ErrPermission}))
	assert.ErrorIs(t, s.Enable(context.Background()), ErrPermissionDenied)
	assert.Nil(t, s.TakeLastError(), "plain methods do not touch the slot")
}

func TestSafe_AsyncVariants(t *testing.T) {
	ctx := context.Background()
	s := NewSafe(Unify(&fakeLauncher{}))

	assert.True(t, <-s.TryEnableAsync(ctx))
	res := <-s.TryStatusAsync(ctx)
	assert.True(t, res.OK)
	assert.True(t, res.Enabled)
	assert.True(t, <-s.TryDisableAsync(ctx))
	res = <-s.TryStatusAsync(ctx)
	assert.True(t, res.OK)
	assert.False(t, res.Enabled)
}

func TestAsyncHelpers(t *testing.T) {
	ctx := context.Background()
	u := Unify(&fakeLauncher{})

	require.NoError(t, <-EnableAsync(ctx, u))
	res := <-StatusAsync(ctx, u)
	require.NoError(t, res.Err)
	assert.True(t, res.Enabled)

	require.NoError(t, <-DisableAsync(ctx, u))
	res = <-StatusAsync(ctx, u)
	require.NoError(t, res.Err)
	assert.False(t, res.Enabled)
}

func TestAsyncHelpersPropagateErrors(t *testing.T) {
	u := Unify(&fakeLauncher{err: fs.ErrPermission})
	assert.ErrorIs(t, <-EnableAsync(context.Background(), u), ErrPermissionDenied)
}

func TestLogged(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	f := &fakeLauncher{}
	l := WithLogging(Unify(f), log)

	require.NoError(t, l.Enable(context.Background()))
	assert.Contains(t, buf.String(), "op=enable")
	assert.Contains(t, buf.String(), "engine=fake")

	buf.Reset()
	f.err = fs.ErrPermission
	_, err := l.Status(context.Background())
	assert.ErrorIs(t, err, ErrPermissionDenied)
	out := buf.String()
	assert.True(t, strings.Contains(out, "level=WARN"), out)
	assert.Contains(t, out, "kind=permission-denied")
}
