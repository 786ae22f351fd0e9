package pathiter

import (
	"github.com/rs/zerolog"

	"github.com/arthur-debert/pathglob/pkg/errors"
	"github.com/arthur-debert/pathglob/pkg/filesystem"
	"github.com/arthur-debert/pathglob/pkg/glob"
	"github.com/arthur-debert/pathglob/pkg/types"
)

// Resolver turns patterns into PathIters over a filesystem
type Resolver struct {
	fs      types.FS
	globber glob.Globber
	logger  zerolog.Logger
}

// Option configures a Resolver
type Option func(*Resolver)

// WithGlobber replaces the platform default segment matcher
func WithGlobber(g glob.Globber) Option {
	return func(r *Resolver) {
		r.globber = g
	}
}

// WithLogger sets where classification is logged. A Resolver is silent
// by default.
func WithLogger(logger zerolog.Logger) Option {
	return func(r *Resolver) {
		r.logger = logger
	}
}

// New creates a Resolver reading from fsys
func New(fsys types.FS, opts ...Option) *Resolver {
	r := &Resolver{
		fs:      fsys,
		globber: glob.NewGlobber(),
		logger:  zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Extract resolves pattern against the OS filesystem
func Extract(pattern string) (*PathIter, error) {
	return New(filesystem.NewOS()).Resolve(pattern)
}

// Resolve classifies pattern and returns the sequence for it. The only
// error it returns is an invalid glob pattern; every other failure is
// reported as an Item.
func (r *Resolver) Resolve(pattern string) (*PathIter, error) {
	mode := r.classify(pattern)
	r.logger.Debug().
		Str("pattern", pattern).
		Stringer("mode", mode).
		Msg("Pattern classified")

	switch mode {
	case types.ModeFile:
		return newPathIter(mode, &fileProducer{path: pattern, pending: true}), nil
	case types.ModeDirectory:
		return newPathIter(mode, newWalkProducer(r.fs, pattern)), nil
	}

	expander, err := newGlobProducer(r.fs, r.globber, pattern)
	if err != nil {
		return nil, err
	}
	return newPathIter(mode, expander), nil
}

// classify stats pattern once. Any Stat failure falls through to glob
// unless Lstat shows a dangling symlink, which is still an existing entry.
func (r *Resolver) classify(pattern string) types.ResolutionMode {
	if info, err := r.fs.Stat(pattern); err == nil {
		if info.Mode().IsRegular() {
			return types.ModeFile
		}
		return types.ModeDirectory
	}
	if pattern != "" {
		if _, err := r.fs.Lstat(pattern); err == nil {
			return types.ModeDirectory
		}
	}
	return types.ModeGlob
}

func invalidPattern(pattern string) error {
	return errors.Wrapf(glob.ErrBadPattern, errors.ErrInvalidPattern, "invalid glob pattern %q", pattern).
		WithDetail("pattern", pattern)
}
