package filesystem

import (
	"io/fs"
	"sort"

	"github.com/spf13/afero"

	"github.com/arthur-debert/pathglob/pkg/types"
)

// aferoFS implements types.FS using afero
type aferoFS struct {
	fs afero.Fs
}

// NewAferoFS creates a new afero filesystem implementation
func NewAferoFS(fs afero.Fs) types.FS {
	return &aferoFS{fs: fs}
}

func (a *aferoFS) Stat(name string) (fs.FileInfo, error) {
	return a.fs.Stat(name)
}

func (a *aferoFS) Lstat(name string) (fs.FileInfo, error) {
	// Only some afero backends (OsFs) can lstat; the rest report Stat.
	if lstater, ok := a.fs.(afero.Lstater); ok {
		info, _, err := lstater.LstatIfPossible(name)
		return info, err
	}
	return a.fs.Stat(name)
}

func (a *aferoFS) ReadDir(name string) ([]fs.DirEntry, error) {
	entries, err := afero.ReadDir(a.fs, name)
	if err != nil {
		return nil, err
	}
	dirEntries := make([]fs.DirEntry, len(entries))
	for i, entry := range entries {
		dirEntries[i] = fs.FileInfoToDirEntry(entry)
	}
	sort.Slice(dirEntries, func(i, j int) bool { return dirEntries[i].Name() < dirEntries[j].Name() })
	return dirEntries, nil
}

func (a *aferoFS) Open(name string) (types.DirHandle, error) {
	f, err := a.fs.Open(name)
	if err != nil {
		return nil, err
	}
	return &aferoDir{f: f}, nil
}

// aferoDir adapts afero's FileInfo based Readdir to the DirEntry based DirHandle
type aferoDir struct {
	f afero.File
}

func (d *aferoDir) ReadDir(n int) ([]fs.DirEntry, error) {
	infos, err := d.f.Readdir(n)
	entries := make([]fs.DirEntry, len(infos))
	for i, info := range infos {
		entries[i] = fs.FileInfoToDirEntry(info)
	}
	return entries, err
}

func (d *aferoDir) Close() error {
	return d.f.Close()
}
