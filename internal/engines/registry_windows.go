//go:build windows

package engines

import (
	"errors"

	"golang.org/x/sys/windows/registry"
)

type windowsRegistry struct{}

func defaultRegistryStore() RegistryStore { return windowsRegistry{} }

func rootKey(h Hive) registry.Key {
	if h == HiveLocalMachine {
		return registry.LOCAL_MACHINE
	}
	return registry.CURRENT_USER
}

// absent reports the errors that mean "nothing there" for a read.
func absent(err error) bool {
	return errors.Is(err, registry.ErrNotExist) || errors.Is(err, registry.ErrUnexpectedType)
}

func (windowsRegistry) ReadString(h Hive, path, name string) (string, bool, error) {
	k, err := registry.OpenKey(rootKey(h), path, registry.QUERY_VALUE)
	if errors.Is(err, registry.ErrNotExist) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	defer k.Close()

	v, _, err := k.GetStringValue(name)
	if absent(err) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return v, true, nil
}

func (windowsRegistry) ReadBinary(h Hive, path, name string) ([]byte, bool, error) {
	k, err := registry.OpenKey(rootKey(h), path, registry.QUERY_VALUE)
	if errors.Is(err, registry.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	defer k.Close()

	v, _, err := k.GetBinaryValue(name)
	if absent(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return v, true, nil
}

func (windowsRegistry) WriteString(h Hive, path, name, value string) error {
	k, _, err := registry.CreateKey(rootKey(h), path, registry.SET_VALUE)
	if err != nil {
		return err
	}
	defer k.Close()
	return k.SetStringValue(name, value)
}

func (windowsRegistry) WriteBinary(h Hive, path, name string, value []byte) error {
	k, _, err := registry.CreateKey(rootKey(h), path, registry.SET_VALUE)
	if err != nil {
		return err
	}
	defer k.Close()
	return k.SetBinaryValue(name, value)
}

func (windowsRegistry) DeleteValue(h Hive, path, name string) error {
	k, err := registry.OpenKey(rootKey(h), path, registry.SET_VALUE)
	if errors.Is(err, registry.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}
	defer k.Close()

	if err := k.DeleteValue(name); err != nil && !errors.Is(err, registry.ErrNotExist) {
		return err
	}
	return nil
}
