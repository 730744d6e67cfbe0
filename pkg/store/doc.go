// Package store persists the fcf config document.
//
// The document is a single JSON file holding the preferred editor and the
// key-to-path bindings. Every operation reads the file, applies at most one
// mutation and writes the whole document back:
//   - [Store.Load] and [Store.LoadRaw] read the document, creating it when absent
//   - [Store.Save] replaces the document in full
//   - [Store.SetEditor], [Store.Bind] and [Store.Unbind] mutate and save
//   - [Store.Resolve] looks up the path bound to a key
package store
