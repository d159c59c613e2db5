// Package storage reads and writes the inventory document file.
//
// The document file is the only persistent state. Save renders the
// whole tree to memory first and then replaces the file atomically
// through a temp file and rename, so a failure mid-render never
// corrupts the persisted document.
package storage
