// Package cmd provides the command-line interface for fcf.
//
// The root command wires these subcommands to the config store:
//   - edit: open a bound file in the editor
//   - editor: set the default editor
//   - bind: bind a key to a file
//   - remove-binding: remove a binding
//   - print: print the config document
package cmd
