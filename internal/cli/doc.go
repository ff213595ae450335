// Package cli defines the Cobra command tree for the makegen CLI. Each file
// in this package registers one top-level command (render, check, init, etc.)
// with the root command. Commands delegate to internal packages for the work
// and only handle flag parsing and output formatting.
package cli
