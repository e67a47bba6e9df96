// Package commands defines the credstore CLI and wires dependencies for subcommands.
//
// Commands
//
//   - add       Create or overwrite a user entry
//   - verify    Check a password against the stored hash
//   - passwd    Change a password after verifying the old one
//   - remove    Delete a user entry
//   - list      Print users without their hashes
//
// # Implementation
//
// The root command loads Config from the environment, applies flag overrides,
// and builds the dependency graph (store, credential service, logger) before
// any subcommand runs. A password argument of "-" is read from the terminal
// without echo, or as one line from stdin when stdin is not a terminal.
package commands
