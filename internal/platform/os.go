package platform

import "runtime"

// Family groups GOOS values into the operating systems that have an
// autostart substrate.
type Family int

const (
	// Unknown is any GOOS without a supported autostart mechanism.
	Unknown Family = iota
	Windows
	Linux
	MacOS
)

// Detect maps a GOOS value to its Family.
func Detect(goos string) Family {
	switch goos {
	case "windows":
		return Windows
	case "linux":
		return Linux
	case "darwin":
		return MacOS
	default:
		return Unknown
	}
}

// Current returns the Family of the running process.
func Current() Family {
	return Detect(runtime.GOOS)
}

// String returns a human-readable name for the family.
func (f Family) String() string {
	switch f {
	case Windows:
		return "windows"
	case Linux:
		return "linux"
	case MacOS:
		return "macos"
	default:
		return "unknown"
	}
}

// Supported reports whether the family has an autostart substrate.
func (f Family) Supported() bool {
	return f != Unknown
}
