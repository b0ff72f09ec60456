//go:build !windows

package engines

import (
	"runtime"

	"github.com/agentx-labs/autolaunch/internal/launcher"
)

// unsupportedRegistry stands in for the Windows registry on other hosts.
type unsupportedRegistry struct{}

func defaultRegistryStore() RegistryStore { return unsupportedRegistry{} }

func (unsupportedRegistry) ReadString(Hive, string, string) (string, bool, error) {
	return "", false, launcher.UnsupportedPlatformError(runtime.GOOS)
}

func (unsupportedRegistry) ReadBinary(Hive, string, string) ([]byte, bool, error) {
	return nil, false, launcher.UnsupportedPlatformError(runtime.GOOS)
}

func (unsupportedRegistry) WriteString(Hive, string, string, string) error {
	return launcher.UnsupportedPlatformError(runtime.GOOS)
}

func (unsupportedRegistry) WriteBinary(Hive, string, string, []byte) error {
	return launcher.UnsupportedPlatformError(runtime.GOOS)
}

func (unsupportedRegistry) DeleteValue(Hive, string, string) error {
	return launcher.UnsupportedPlatformError(runtime.GOOS)
}
