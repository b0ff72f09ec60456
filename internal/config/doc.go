// Package config manages user-level settings stored at
// ~/.autolaunch/config.yaml: the default work scope, the engine choice per
// OS and logging options. Environment variables with the AUTOLAUNCH_ prefix
// override the file, and an optional dotenv file can seed the environment.
package config
