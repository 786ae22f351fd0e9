package testutil

import (
	"io/fs"
	"time"

	"github.com/arthur-debert/pathglob/pkg/types"
)

// FaultFS wraps a types.FS and injects failures per path. OpenHandles
// counts directory handles opened through it and not yet closed.
type FaultFS struct {
	types.FS
	OpenErr     map[string]error
	ReadDirErr  map[string]error
	StatInfo    map[string]fs.FileInfo
	OpenHandles int
}

// NewFaultFS wraps inner with no faults configured
func NewFaultFS(inner types.FS) *FaultFS {
	return &FaultFS{
		FS:         inner,
		OpenErr:    map[string]error{},
		ReadDirErr: map[string]error{},
		StatInfo:   map[string]fs.FileInfo{},
	}
}

func (f *FaultFS) Stat(name string) (fs.FileInfo, error) {
	if info, ok := f.StatInfo[name]; ok {
		return info, nil
	}
	return f.FS.Stat(name)
}

func (f *FaultFS) ReadDir(name string) ([]fs.DirEntry, error) {
	if err, ok := f.ReadDirErr[name]; ok {
		return nil, &fs.PathError{Op: "readdirent", Path: name, Err: err}
	}
	return f.FS.ReadDir(name)
}

func (f *FaultFS) Open(name string) (types.DirHandle, error) {
	if err, ok := f.OpenErr[name]; ok {
		return nil, &fs.PathError{Op: "open", Path: name, Err: err}
	}
	handle, err := f.FS.Open(name)
	if err != nil {
		return nil, err
	}
	f.OpenHandles++
	return &countingHandle{DirHandle: handle, fs: f, name: name}, nil
}

type countingHandle struct {
	types.DirHandle
	fs   *FaultFS
	name string
}

func (h *countingHandle) ReadDir(n int) ([]fs.DirEntry, error) {
	if err, ok := h.fs.ReadDirErr[h.name]; ok {
		return nil, &fs.PathError{Op: "readdirent", Path: h.name, Err: err}
	}
	return h.DirHandle.ReadDir(n)
}

func (h *countingHandle) Close() error {
	h.fs.OpenHandles--
	return h.DirHandle.Close()
}

// FakeInfo reports an arbitrary mode for a path
type FakeInfo struct {
	FileName string
	FileMode fs.FileMode
}

func (i FakeInfo) Name() string       { return i.FileName }
func (i FakeInfo) Size() int64        { return 0 }
func (i FakeInfo) Mode() fs.FileMode  { return i.FileMode }
func (i FakeInfo) ModTime() time.Time { return time.Time{} }
func (i FakeInfo) IsDir() bool        { return i.FileMode.IsDir() }
func (i FakeInfo) Sys() interface{}   { return nil }
