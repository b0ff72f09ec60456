// Package autolaunch assembles a LaunchSpec, validates it, picks the engine
// for the target OS and returns it wrapped in the error-normalizing (and
// optionally logging and safe) decorators.
//
//	l, err := autolaunch.New().
//		SetAppName("notes").
//		SetAppPath("/opt/notes/notes").
//		AddArgs("--minimized").
//		Build()
package autolaunch
