package pathiter

import (
	stderrors "errors"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/pathglob/pkg/errors"
	"github.com/arthur-debert/pathglob/pkg/glob"
	"github.com/arthur-debert/pathglob/pkg/types"
)

// globFrame is a partial match: path (slash separated, as it will be
// reported) matched segments[:idx]
type globFrame struct {
	path string
	idx  int
}

// globProducer expands a pattern one directory level per step, depth
// first, so only directories on the way to a result are ever read
type globProducer struct {
	fs       types.FS
	globber  glob.Globber
	pattern  string
	segments []string
	dirOnly  bool
	stack    []globFrame
}

func newGlobProducer(fsys types.FS, globber glob.Globber, pattern string) (*globProducer, error) {
	slashed := filepath.ToSlash(pattern)
	if !globber.Validate(slashed) {
		return nil, invalidPattern(pattern)
	}

	volume := filepath.VolumeName(pattern)
	rest := slashed[len(volume):]
	root := volume
	if strings.HasPrefix(rest, "/") {
		root += "/"
	}

	g := &globProducer{
		fs:       fsys,
		globber:  globber,
		pattern:  pattern,
		segments: glob.Split(rest),
		dirOnly:  len(rest) > 1 && strings.HasSuffix(rest, "/"),
	}
	if root != "" || len(g.segments) > 0 {
		g.stack = []globFrame{{path: root}}
	}
	return g, nil
}

func (g *globProducer) next() (Item, bool) {
	for len(g.stack) > 0 {
		frame := g.stack[len(g.stack)-1]
		g.stack = g.stack[:len(g.stack)-1]

		if frame.idx == len(g.segments) {
			if item, ok := g.complete(frame); ok {
				return item, true
			}
			continue
		}

		segment := g.segments[frame.idx]
		last := frame.idx == len(g.segments)-1

		var err error
		switch {
		case segment == glob.DoubleStar:
			err = g.expandDoubleStar(frame, last)
		case !glob.HasMeta(segment):
			err = g.expandLiteral(frame, glob.Unescape(segment), last)
		default:
			err = g.expandWildcard(frame, segment, last)
		}
		if err != nil {
			return g.failure(frame.path, err), true
		}
	}
	return Item{}, false
}

func (g *globProducer) close() error {
	g.stack = nil
	return nil
}

// complete turns a full match into an item. A trailing separator in the
// pattern only admits directories.
func (g *globProducer) complete(frame globFrame) (Item, bool) {
	if frame.path == "" {
		return Item{}, false
	}
	if g.dirOnly {
		info, err := g.fs.Stat(g.osPath(frame.path))
		if err != nil {
			if stderrors.Is(err, fs.ErrNotExist) {
				return Item{}, false
			}
			return g.failure(frame.path, err), true
		}
		if !info.IsDir() {
			return Item{}, false
		}
	}
	return Item{Path: filepath.FromSlash(frame.path)}, true
}

// expandLiteral checks a metacharacter free segment without reading the
// parent directory
func (g *globProducer) expandLiteral(frame globFrame, name string, last bool) error {
	child := joinPath(frame.path, name, '/')

	if last {
		if _, err := g.fs.Lstat(g.osPath(child)); err != nil {
			return ignoreNotExist(err)
		}
		g.push(globFrame{path: child, idx: frame.idx + 1})
		return nil
	}

	info, err := g.fs.Stat(g.osPath(child))
	if err != nil {
		return ignoreNotExist(err)
	}
	if info.IsDir() {
		g.push(globFrame{path: child, idx: frame.idx + 1})
	}
	return nil
}

func (g *globProducer) expandWildcard(frame globFrame, segment string, last bool) error {
	entries, err := g.fs.ReadDir(g.osPath(frame.path))
	if err != nil {
		return ignoreNotExist(err)
	}

	var matched []globFrame
	for _, entry := range entries {
		if !g.globber.Match(segment, entry.Name()) {
			continue
		}
		child := joinPath(frame.path, entry.Name(), '/')
		if !last && !g.isDir(child, entry) {
			continue
		}
		matched = append(matched, globFrame{path: child, idx: frame.idx + 1})
	}
	g.push(matched...)
	return nil
}

// expandDoubleStar matches zero directories (the frame itself) and then
// every real subdirectory at the same segment. When '**' ends the pattern,
// files below it match too.
func (g *globProducer) expandDoubleStar(frame globFrame, last bool) error {
	entries, err := g.fs.ReadDir(g.osPath(frame.path))
	if err != nil {
		return ignoreNotExist(err)
	}

	var children []globFrame
	for _, entry := range entries {
		child := joinPath(frame.path, entry.Name(), '/')
		switch {
		case entry.IsDir():
			children = append(children, globFrame{path: child, idx: frame.idx})
		case last:
			children = append(children, globFrame{path: child, idx: frame.idx + 1})
		}
	}
	g.push(children...)
	g.push(globFrame{path: frame.path, idx: frame.idx + 1})
	return nil
}

// isDir follows symlinks, so intermediate segments may cross symlinked directories
func (g *globProducer) isDir(path string, entry fs.DirEntry) bool {
	if entry.IsDir() {
		return true
	}
	if entry.Type()&fs.ModeSymlink == 0 {
		return false
	}
	info, err := g.fs.Stat(g.osPath(path))
	return err == nil && info.IsDir()
}

// push keeps frames in order: the first frame given is popped first
func (g *globProducer) push(frames ...globFrame) {
	for i := len(frames) - 1; i >= 0; i-- {
		g.stack = append(g.stack, frames[i])
	}
}

func (g *globProducer) osPath(path string) string {
	if path == "" {
		return "."
	}
	return filepath.FromSlash(path)
}

func (g *globProducer) failure(path string, err error) Item {
	path = filepath.FromSlash(path)
	if path == "" {
		path = "."
	}
	return Item{
		Path: path,
		Err: errors.Wrapf(err, errors.ErrGlobIO, "cannot read %s while expanding %q", path, g.pattern).
			WithDetail("path", path).
			WithDetail("pattern", g.pattern),
	}
}

// ignoreNotExist drops errors for entries that vanished or never existed:
// an absent path is simply not a match
func ignoreNotExist(err error) error {
	if stderrors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}
