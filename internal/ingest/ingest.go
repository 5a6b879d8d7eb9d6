// Package ingest reads pasted order messages out of local files: plain text
// dumps and XLSX workbooks exported from spreadsheet-managed order logs.
package ingest

import "context"

// Message is one pasted chat message pulled from a source file. Index is the
// position within the file (text files always yield index 0).
type Message struct {
	SourcePath string
	Index      int
	Text       string
}

// DirStats summarizes a directory read.
type DirStats struct {
	Scanned  uint32
	Matched  uint32
	Messages uint32
	Failed   uint32
}

// Reader is the behavior the batch pipeline depends on.
type Reader interface {
	// ReadPath reads every message out of a single file.
	ReadPath(ctx context.Context, path string) ([]Message, error)
	// ReadDirectory reads all matching files under root.
	ReadDirectory(ctx context.Context, root string, skipHidden bool) ([]Message, DirStats, error)
}
