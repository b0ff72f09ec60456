package engines

import (
	"context"
	"errors"
	"strings"

	"github.com/agentx-labs/autolaunch/internal/cmdline"
	"github.com/agentx-labs/autolaunch/internal/launcher"
)

// Registry key paths, relative to the hive root.
const (
	RunKeyPath             = `Software\Microsoft\Windows\CurrentVersion\Run`
	StartupApprovedKeyPath = `Software\Microsoft\Windows\CurrentVersion\Explorer\StartupApproved\Run`
)

// StartupApproved flag values. Explorer writes 0x03 in the first byte when
// the user turns an entry off in Task Manager or Settings.
const (
	approvedEnabled  byte = 0x02
	approvedDisabled byte = 0x03
)

// Hive selects the registry root.
type Hive int

const (
	HiveCurrentUser Hive = iota
	HiveLocalMachine
)

func (h Hive) String() string {
	if h == HiveLocalMachine {
		return "HKLM"
	}
	return "HKCU"
}

// RegistryStore is the slice of the Windows registry API the Registry
// engine needs. Reads report found=false for a missing key, a missing value
// or a value of another type. DeleteValue succeeds when the key or value is
// already gone.
type RegistryStore interface {
	ReadString(hive Hive, key, name string) (value string, found bool, err error)
	ReadBinary(hive Hive, key, name string) (value []byte, found bool, err error)
	WriteString(hive Hive, key, name, value string) error
	WriteBinary(hive Hive, key, name string, value []byte) error
	DeleteValue(hive Hive, key, name string) error
}

// Registry registers the app under the Run key and marks it approved in
// StartupApproved\Run.
type Registry struct {
	spec  launcher.LaunchSpec
	store RegistryStore
	hive  Hive
}

// NewRegistry builds a Registry engine. A nil store uses the OS registry.
func NewRegistry(spec launcher.LaunchSpec, store RegistryStore) *Registry {
	if store == nil {
		store = defaultRegistryStore()
	}
	hive := HiveCurrentUser
	if spec.Scope.AllUsers() {
		hive = HiveLocalMachine
	}
	return &Registry{spec: spec.Clone(), store: store, hive: hive}
}

func (r *Registry) Name() string { return "windows-registry" }

func (r *Registry) Enable(_ context.Context) error {
	value := cmdline.Build(r.spec.AppPath, r.spec.Args)
	if err := r.store.WriteString(r.hive, RunKeyPath, r.spec.AppName, value); err != nil {
		return err
	}
	return r.store.WriteBinary(r.hive, StartupApprovedKeyPath, r.spec.AppName, approvedFlags())
}

func (r *Registry) Disable(_ context.Context) error {
	return errors.Join(
		r.store.DeleteValue(r.hive, RunKeyPath, r.spec.AppName),
		r.store.DeleteValue(r.hive, StartupApprovedKeyPath, r.spec.AppName),
	)
}

func (r *Registry) Status(_ context.Context) (bool, error) {
	value, found, err := r.store.ReadString(r.hive, RunKeyPath, r.spec.AppName)
	if err != nil {
		return false, err
	}
	if !found || strings.TrimSpace(value) == "" {
		return false, nil
	}

	flags, found, err := r.store.ReadBinary(r.hive, StartupApprovedKeyPath, r.spec.AppName)
	if err != nil {
		return false, err
	}
	// Explorer only creates the approval value once the user touches the
	// entry, so its absence means enabled.
	if !found {
		return true, nil
	}
	return len(flags) > 0 && flags[0] == approvedEnabled, nil
}

func approvedFlags() []byte {
	return []byte{approvedEnabled, 0, 0, 0, 0, 0, 0, 0}
}
