package types

import (
	"io/fs"
)

// FS is the read-only filesystem interface the resolver walks and globs over.
type FS interface {
	Stat(name string) (fs.FileInfo, error)

	// Lstat does not follow symlinks. Implementations without symlink
	// support may fall back to Stat.
	Lstat(name string) (fs.FileInfo, error)

	// ReadDir returns all entries of a directory sorted by name
	ReadDir(name string) ([]fs.DirEntry, error)

	// Open opens a directory for incremental reading
	Open(name string) (DirHandle, error)
}

// DirHandle is an open directory that can be read in batches.
// It follows the semantics of (*os.File).ReadDir: with n > 0 it returns
// at most n entries and io.EOF once the directory is exhausted.
type DirHandle interface {
	ReadDir(n int) ([]fs.DirEntry, error)
	Close() error
}
