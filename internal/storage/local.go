package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/spf13/afero"
)

const (
	dirPerm  = 0o755
	filePerm = 0o644

	// mkdirAttempts bounds retries when a parent is removed while MkdirAll runs.
	mkdirAttempts = 3
)

// Local implements Store on top of an afero filesystem whose root is the
// storage root. It is safe for concurrent use.
type Local struct {
	fs afero.Fs
}

var _ Store = (*Local)(nil)

// NewLocal wraps fsys. Paths passed to the returned store are resolved against
// the root of fsys.
func NewLocal(fsys afero.Fs) *Local {
	return &Local{fs: fsys}
}

// NewOSLocal creates root if needed and returns a store confined to it.
func NewOSLocal(root string) (*Local, error) {
	if root == "" {
		return nil, fmt.Errorf("storage root is required")
	}
	osFs := afero.NewOsFs()
	if err := osFs.MkdirAll(root, dirPerm); err != nil {
		return nil, fmt.Errorf("create storage root: %w", err)
	}
	return NewLocal(afero.NewBasePathFs(osFs, root)), nil
}

// EnsureDir creates dir and any missing parents. A concurrent cleanup may
// remove an empty parent between MkdirAll's stat and its child mkdir, so an
// ErrNotExist is retried.
func (l *Local) EnsureDir(ctx context.Context, dir string) error {
	var err error
	for range mkdirAttempts {
		if err = ctx.Err(); err != nil {
			return err
		}
		if err = l.fs.MkdirAll(dir, dirPerm); err == nil || !errors.Is(err, fs.ErrNotExist) {
			break
		}
	}
	if err != nil {
		return fmt.Errorf("mkdir %s: %w", dir, err)
	}
	return nil
}

// Write streams r into a new file at p.
func (l *Local) Write(ctx context.Context, p string, r io.Reader, limit int64) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	f, err := l.fs.OpenFile(p, os.O_WRONLY|os.O_CREATE|os.O_EXCL, filePerm)
	if err != nil {
		return 0, fmt.Errorf("create %s: %w", p, err)
	}

	src := r
	if limit > 0 {
		// one extra byte tells an exact fit apart from an overflow
		src = io.LimitReader(r, limit+1)
	}
	n, err := io.Copy(f, src)
	closeErr := f.Close()
	switch {
	case err != nil:
		err = fmt.Errorf("write %s: %w", p, err)
	case limit > 0 && n > limit:
		err = ErrTooLarge
	case closeErr != nil:
		err = fmt.Errorf("close %s: %w", p, closeErr)
	}
	if err != nil {
		_ = l.fs.Remove(p)
		return 0, err
	}
	return n, nil
}

// Remove deletes the file at p.
func (l *Local) Remove(ctx context.Context, p string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := l.fs.Remove(p); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return ErrNotExist
		}
		return fmt.Errorf("remove %s: %w", p, err)
	}
	return nil
}

// RemoveDirIfEmpty lists dir and removes it only when the listing is empty.
func (l *Local) RemoveDirIfEmpty(ctx context.Context, dir string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	entries, err := afero.ReadDir(l.fs, dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrNotExist
		}
		return nil, fmt.Errorf("list %s: %w", dir, err)
	}
	if len(entries) > 0 {
		names := make([]string, 0, len(entries))
		for _, e := range entries {
			names = append(names, e.Name())
		}
		return names, ErrDirNotEmpty
	}
	if err := l.fs.Remove(dir); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrNotExist
		}
		return nil, fmt.Errorf("remove %s: %w", dir, err)
	}
	return nil, nil
}
