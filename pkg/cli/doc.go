// Package cli groups the command-line layers of fcf.
//
//   - cli/cmd: the cobra command tree
//   - cli/editor: editor resolution, launch and change detection
//   - cli/settings: flag and FCF_* environment settings
//   - cli/ui/errorhandler: normalized command errors
package cli
