// Package cli defines the Cobra command tree for the phoenix-kits CLI. Each
// file in this package builds one top-level command (init, list, doctor,
// etc.). Command implementations delegate to internal packages for business
// logic and only handle flag parsing, I/O formatting, and user interaction.
package cli
