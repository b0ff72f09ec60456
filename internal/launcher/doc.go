// Package launcher defines the contract every autostart engine implements,
// the LaunchSpec it is built from, and the decorators that sit on top of an
// engine.
//
// An engine (see package engines) owns one native substrate and returns
// whatever errors that substrate produces. Unify wraps an engine so every
// failure leaving it is a *Error with one of a small set of kinds. Safe wraps
// that again for callers that prefer boolean results and an explicit
// TakeLastError over error returns. WithLogging records each call on a
// slog.Logger.
//
// Decorators hold the inner Launcher by reference and never inherit from it,
// so any Launcher (including test fakes) can be wrapped.
package launcher
