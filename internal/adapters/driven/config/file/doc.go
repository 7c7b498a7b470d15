// Package file loads the run configuration from the local filesystem.
//
// Sources, lowest precedence first:
//   - built-in defaults
//   - a TOML file (drivetables.toml in the working directory when present)
//   - a .env file, loaded into the process environment
//   - DRIVETABLES_* environment variables
package file
