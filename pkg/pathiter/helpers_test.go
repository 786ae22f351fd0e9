package pathiter

import (
	"testing"

	"github.com/spf13/afero"

	"github.com/arthur-debert/pathglob/pkg/filesystem"
)

func memResolver(mem afero.Fs) *Resolver {
	return New(filesystem.NewAferoFS(mem))
}

// drain pulls every item, splitting successes from failures
func drain(t *testing.T, it *PathIter) (paths []string, failures []Item) {
	t.Helper()
	for {
		item, ok := it.Next()
		if !ok {
			return paths, failures
		}
		if item.Ok() {
			paths = append(paths, item.Path)
		} else {
			failures = append(failures, item)
		}
	}
}
