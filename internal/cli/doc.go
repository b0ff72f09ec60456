// Package cli defines the Cobra command tree for the autolaunch CLI. Each
// file registers one top-level command (enable, disable, status, etc.) with
// the root command. Commands delegate to internal/autolaunch for building
// launchers and only handle flags, output formatting and exit codes.
package cli
