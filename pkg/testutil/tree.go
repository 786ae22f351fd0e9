package testutil

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

func isDir(p string) bool {
	return strings.HasSuffix(p, "/")
}

// MemTree builds an in-memory filesystem. Use absolute paths: MemMapFs
// has no working directory.
func MemTree(t *testing.T, paths ...string) afero.Fs {
	t.Helper()
	mem := afero.NewMemMapFs()
	for _, p := range paths {
		if isDir(p) {
			require.NoError(t, mem.MkdirAll(p, 0755))
			continue
		}
		require.NoError(t, mem.MkdirAll(filepath.Dir(p), 0755))
		require.NoError(t, afero.WriteFile(mem, p, []byte(p), 0644))
	}
	return mem
}

// OSTree creates slash-separated relative paths below a fresh temp dir
// and returns the dir
func OSTree(t *testing.T, paths ...string) string {
	t.Helper()
	root := t.TempDir()
	for _, p := range paths {
		full := filepath.Join(root, filepath.FromSlash(p))
		if isDir(p) {
			require.NoError(t, os.MkdirAll(full, 0755))
			continue
		}
		require.NoError(t, os.MkdirAll(filepath.Dir(full), 0755))
		require.NoError(t, os.WriteFile(full, []byte(p), 0644))
	}
	return root
}

// SortedLines splits newline-terminated output into sorted lines
func SortedLines(s string) []string {
	s = strings.TrimRight(s, "\n")
	if s == "" {
		return nil
	}
	lines := strings.Split(s, "\n")
	sort.Strings(lines)
	return lines
}
