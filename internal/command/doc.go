// Package command runs the external programs some autostart engines drive
// (powershell.exe, osascript) and captures their output.
package command
