// Package config manages user-level settings stored at ~/.makegen/config.yaml
// (default template and output paths) and resolves the six placeholder values
// from a values file, the environment and command-line flags.
package config
