// Package notify writes formatted notifications to CLI users.
//
// [WriteMessage] prefixes each message with a type-specific symbol and color:
// success (✔), error (✗), warning (⚠), info (ℹ) and activity (►).
// Multi-line content is indented under the first line.
package notify
