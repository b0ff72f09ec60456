// Package platform answers the OS-dependent questions the launch engines
// share: which OS family the process runs on, where each autostart substrate
// keeps its files for a given scope, and whether a path is absolute in either
// the Windows or the POSIX dialect. It also carries the small file helpers
// the file-backed engines use to create, replace and remove artifacts.
package platform
