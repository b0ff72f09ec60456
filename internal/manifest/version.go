package manifest

import (
	"fmt"

	"github.com/Masterminds/semver/v3"
)

// SchemaVersion is the schema_version written by this release.
const SchemaVersion = "1.0"

// supportedSchemas is the range of schema_version values this release reads.
const supportedSchemas = ">= 1.0, < 2.0"

// CheckSchemaVersion reports whether v falls in the supported range.
func CheckSchemaVersion(v string) error {
	if v == "" {
		return fmt.Errorf("schema_version is required")
	}
	version, err := semver.NewVersion(v)
	if err != nil {
		return fmt.Errorf("invalid schema_version %q: %w", v, err)
	}
	constraint, err := semver.NewConstraint(supportedSchemas)
	if err != nil {
		return fmt.Errorf("parsing supported range: %w", err)
	}
	if !constraint.Check(version) {
		return fmt.Errorf("schema_version %s is not supported (want %s)", v, supportedSchemas)
	}
	return nil
}
