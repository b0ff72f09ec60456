// Package engines implements launcher.Launcher once per native autostart
// substrate:
//
//	Registry       HKCU/HKLM ...\CurrentVersion\Run + StartupApproved\Run
//	StartupFolder  <Startup>\<app>.bat
//	TaskScheduler  a logon-triggered scheduled task, via powershell.exe
//	Freedesktop    <autostart>/<app>.desktop
//	LaunchAgent    <LaunchAgents>/<id or app>.plist
//	AppleScript    a System Events login item, via osascript
//
// Engines return the substrate's own errors (fs, registry, exit codes) and
// leave classification to launcher.Unify. Each engine derives its artifact
// location from the LaunchSpec it was built with and keeps no other state,
// so an engine observes changes made behind its back on the next call.
package engines
