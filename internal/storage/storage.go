package storage

import (
	"context"
	"errors"
	"io"
)

// Package storage keeps uploaded documents on disk under a single root, one
// folder per participant. All paths handled here are slash separated and
// relative to that root.

var (
	// ErrNotExist is returned when a file or folder to remove is already gone.
	ErrNotExist = errors.New("storage: path does not exist")
	// ErrDirNotEmpty is returned by RemoveDirIfEmpty when the folder still has entries.
	ErrDirNotEmpty = errors.New("storage: directory not empty")
	// ErrTooLarge is returned by Write when the stream exceeds its byte limit.
	ErrTooLarge = errors.New("storage: content exceeds size limit")
)

// Store is the filesystem contract used by the document services.
type Store interface {
	// EnsureDir creates dir and its parents. It succeeds when dir already exists,
	// including when another request created it concurrently.
	EnsureDir(ctx context.Context, dir string) error
	// Write creates p exclusively and copies at most limit bytes from r into it.
	// A limit <= 0 disables the check. On failure no partial file is left behind.
	Write(ctx context.Context, p string, r io.Reader, limit int64) (int64, error)
	// Remove deletes a single file. A missing file yields ErrNotExist.
	Remove(ctx context.Context, p string) error
	// RemoveDirIfEmpty deletes dir only when it has no entries. When it is not
	// empty the entry names are returned together with ErrDirNotEmpty.
	RemoveDirIfEmpty(ctx context.Context, dir string) ([]string, error)
}
