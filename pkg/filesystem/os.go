package filesystem

import (
	"io/fs"
	"os"

	"github.com/arthur-debert/pathglob/pkg/types"
)

// osFS implements types.FS using the OS filesystem
type osFS struct{}

// NewOS creates a new OS filesystem implementation
func NewOS() types.FS {
	return &osFS{}
}

func (o *osFS) Stat(name string) (fs.FileInfo, error) {
	return os.Stat(name)
}

func (o *osFS) Lstat(name string) (fs.FileInfo, error) {
	return os.Lstat(name)
}

func (o *osFS) ReadDir(name string) ([]fs.DirEntry, error) {
	return os.ReadDir(name)
}

func (o *osFS) Open(name string) (types.DirHandle, error) {
	// *os.File already reads directories in batches
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	return f, nil
}
