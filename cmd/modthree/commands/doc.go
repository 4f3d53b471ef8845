// Package commands defines the modthree CLI and wires dependencies for subcommands.
//
// Commands
//
//   - rem        Print the remainder mod 3 of binary strings (args or stdin)
//   - demo       Run the worked examples and error cases
//   - def add    Validate, fingerprint and store an automaton definition file
//   - def list   List stored definitions
//   - def show   Print a stored definition as JSON
//   - def rm     Delete a stored definition
//   - run        Run a stored (or file) definition over an input string
//   - dot        Print a GraphViz digraph of a definition or the mod-3 automaton
//
// # Implementation
//
// The root command loads configuration (file, environment, flags) and builds
// the app context before any subcommand runs. Execution goes through fang for
// styled help and error output; handlers return ExitError to pick an exit code.
package commands
