package testutil

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/pathglob/pkg/filesystem"
)

func TestMemTree(t *testing.T) {
	mem := MemTree(t, "/a/b.txt", "/empty/")

	content, err := afero.ReadFile(mem, "/a/b.txt")
	require.NoError(t, err)
	assert.Equal(t, "/a/b.txt", string(content))

	info, err := mem.Stat("/empty")
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestOSTree(t *testing.T) {
	root := OSTree(t, "x/y.txt", "z/")

	assert.FileExists(t, filepath.Join(root, "x", "y.txt"))
	assert.DirExists(t, filepath.Join(root, "z"))
}

func TestSortedLines(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, SortedLines("b\na\n"))
	assert.Nil(t, SortedLines(""))
}

func TestFaultFS(t *testing.T) {
	mem := MemTree(t, "/d/f.txt", "/locked/")
	fsys := NewFaultFS(filesystem.NewAferoFS(mem))
	fsys.OpenErr["/locked"] = fs.ErrPermission
	fsys.ReadDirErr["/d"] = fs.ErrInvalid
	fsys.StatInfo["/dev"] = FakeInfo{FileName: "dev", FileMode: fs.ModeDevice}

	_, err := fsys.Open("/locked")
	assert.ErrorIs(t, err, fs.ErrPermission)

	handle, err := fsys.Open("/d")
	require.NoError(t, err)
	assert.Equal(t, 1, fsys.OpenHandles)
	_, err = handle.ReadDir(10)
	assert.ErrorIs(t, err, fs.ErrInvalid)
	require.NoError(t, handle.Close())
	assert.Zero(t, fsys.OpenHandles)

	_, err = fsys.ReadDir("/d")
	assert.ErrorIs(t, err, fs.ErrInvalid)

	info, err := fsys.Stat("/dev")
	require.NoError(t, err)
	assert.Equal(t, fs.ModeDevice, info.Mode())

	_, err = fsys.Stat("/missing")
	assert.True(t, os.IsNotExist(err))
}
