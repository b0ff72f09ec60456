package launcher

import (
	"context"
	"fmt"
)

// Unified guarantees that every error it returns is a *Error. It does not
// touch results on the success path.
type Unified struct {
	inner Launcher
}

// Unify wraps inner with error normalization.
func Unify(inner Launcher) *Unified {
	return &Unified{inner: inner}
}

// Name reports the inner engine's name.
func (u *Unified) Name() string { return NameOf(u.inner) }

func (u *Unified) Enable(ctx context.Context) (err error) {
	defer recoverAs(OpEnable, &err)
	return Normalize(OpEnable, u.inner.Enable(ctx))
}

func (u *Unified) Disable(ctx context.Context) (err error) {
	defer recoverAs(OpDisable, &err)
	return Normalize(OpDisable, u.inner.Disable(ctx))
}

func (u *Unified) Status(ctx context.Context) (enabled bool, err error) {
	defer recoverAs(OpStatus, &err)
	enabled, err = u.inner.Status(ctx)
	if err != nil {
		return false, Normalize(OpStatus, err)
	}
	return enabled, nil
}

// recoverAs turns a panic inside an engine into a KindGeneric error.
func recoverAs(op string, err *error) {
	if r := recover(); r != nil {
		*err = &Error{Kind: KindGeneric, Op: op, Msg: "engine panicked", Err: fmt.Errorf("%v", r)}
	}
}
