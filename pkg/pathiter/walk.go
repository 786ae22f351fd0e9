package pathiter

import (
	stderrors "errors"
	"io"
	"io/fs"
	"os"

	"github.com/arthur-debert/pathglob/pkg/errors"
	"github.com/arthur-debert/pathglob/pkg/types"
)

// walkBatchSize bounds how many entries are buffered per open directory
const walkBatchSize = 256

// walkFrame is one open directory on the depth-first stack
type walkFrame struct {
	path    string
	handle  types.DirHandle // nil when the directory could not be opened
	pending []fs.DirEntry
	err     error // read error to report once pending is drained
	eof     bool
}

// walkProducer walks a tree depth first, holding one open handle per
// directory on the current path
type walkProducer struct {
	fs      types.FS
	root    string
	started bool
	stack   []*walkFrame
}

func newWalkProducer(fsys types.FS, root string) *walkProducer {
	return &walkProducer{fs: fsys, root: root}
}

func (w *walkProducer) next() (Item, bool) {
	if !w.started {
		w.started = true
		return w.visitRoot(), true
	}

	for len(w.stack) > 0 {
		top := w.stack[len(w.stack)-1]

		if len(top.pending) == 0 {
			if top.err != nil {
				err := top.err
				w.pop()
				return walkFailure(top.path, err), true
			}
			if top.eof {
				w.pop()
				continue
			}
			w.fill(top)
			continue
		}

		entry := top.pending[0]
		top.pending = top.pending[1:]
		path := joinPath(top.path, entry.Name(), os.PathSeparator)

		// DirEntry type bits come from lstat, so symlinks never descend.
		// A directory that cannot be opened is still yielded, and its
		// failure follows right after.
		if entry.IsDir() {
			handle, err := w.fs.Open(path)
			if err != nil {
				w.stack = append(w.stack, &walkFrame{path: path, err: err})
			} else {
				w.stack = append(w.stack, &walkFrame{path: path, handle: handle})
			}
		}
		return Item{Path: path}, true
	}

	return Item{}, false
}

// visitRoot follows a symlinked root. A root that is not a directory is
// yielded on its own.
func (w *walkProducer) visitRoot() Item {
	info, err := w.fs.Stat(w.root)
	if err != nil {
		return walkFailure(w.root, err)
	}
	if !info.IsDir() {
		return Item{Path: w.root}
	}

	handle, err := w.fs.Open(w.root)
	if err != nil {
		return walkFailure(w.root, err)
	}
	w.stack = append(w.stack, &walkFrame{path: w.root, handle: handle})
	return Item{Path: w.root}
}

func (w *walkProducer) fill(frame *walkFrame) {
	entries, err := frame.handle.ReadDir(walkBatchSize)
	frame.pending = entries
	switch {
	case err == nil:
	case stderrors.Is(err, io.EOF):
		frame.eof = true
	default:
		frame.err = err
	}
	if err == nil && len(entries) == 0 {
		frame.eof = true
	}
}

func (w *walkProducer) pop() {
	top := w.stack[len(w.stack)-1]
	w.stack = w.stack[:len(w.stack)-1]
	if top.handle != nil {
		_ = top.handle.Close()
	}
}

func (w *walkProducer) close() error {
	var errs []error
	for len(w.stack) > 0 {
		top := w.stack[len(w.stack)-1]
		w.stack = w.stack[:len(w.stack)-1]
		if top.handle == nil {
			continue
		}
		if err := top.handle.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	w.started = true
	return stderrors.Join(errs...)
}

func walkFailure(path string, err error) Item {
	return Item{
		Path: path,
		Err:  errors.Wrapf(err, errors.ErrWalk, "cannot visit %s", path).WithDetail("path", path),
	}
}
