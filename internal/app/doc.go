// Package app wires application dependencies for the CLI.
//
// It loads Config (defaults, optional TOML file, MODTHREE_* environment),
// builds the logger, then the concrete store and high-level services,
// exposing them via App for commands to use.
package app
