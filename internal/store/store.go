// Package store abstracts where the target document lives. The pipeline
// talks to the Store interface only; the implementation (GitHub contents
// API or the local filesystem) is chosen once at startup and injected.
package store

import "context"

// Store reads and writes the target document.
type Store interface {
	// Read returns the current document content. A missing document is
	// not an error: it reads as the empty string.
	Read(ctx context.Context, path string) (string, error)

	// Write persists content under path with a commit message and
	// returns an identifier for the resulting revision.
	Write(ctx context.Context, path, content, message string) (string, error)
}
