// Package manifest reads launch-spec files: YAML documents describing one
// application to register for autostart. Files are checked against an
// embedded JSON schema and a supported schema_version range before they are
// turned into a launcher.LaunchSpec.
package manifest
