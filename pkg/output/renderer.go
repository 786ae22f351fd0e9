package output

import (
	"io"

	"github.com/arthur-debert/pathglob/pkg/logging"
	"github.com/arthur-debert/pathglob/pkg/types"
	"github.com/arthur-debert/pathglob/pkg/ui"
)

// Renderer receives resolution events pattern by pattern. Begin or
// Invalid opens each pattern; Path and Failure report its items. Flush
// must be called once after the last pattern.
type Renderer interface {
	// Begin starts a pattern that was classified successfully
	Begin(pattern string, mode types.ResolutionMode) error
	// Invalid reports a pattern that could not be resolved at all
	Invalid(pattern string, err error) error
	// Path reports one resolved path of the current pattern
	Path(path string) error
	// Failure reports one item of the current pattern that failed
	Failure(path string, err error) error
	// Flush writes anything still buffered
	Flush() error
}

// Options configures New
type Options struct {
	// Format must be concrete; FormatAuto renders as plain text
	Format ui.Format
	// Null separates paths with NUL instead of newline (text formats only)
	Null bool
	// ShowMode announces each pattern and its resolution mode
	ShowMode bool
	// Out receives paths and structured documents
	Out io.Writer
	// ErrOut receives failures and mode announcements in text formats
	ErrOut io.Writer
}

// New returns the renderer for opts.Format
func New(opts Options) Renderer {
	log := logging.GetLogger("output")
	log.Debug().
		Stringer("format", opts.Format).
		Bool("null", opts.Null).
		Bool("showMode", opts.ShowMode).
		Msg("Creating renderer")

	if opts.ErrOut == nil {
		opts.ErrOut = opts.Out
	}

	switch opts.Format {
	case ui.FormatJSON:
		return newStructuredRenderer(opts.Out, encodeJSON)
	case ui.FormatYAML:
		return newStructuredRenderer(opts.Out, encodeYAML)
	case ui.FormatTerminal:
		return newTextRenderer(opts, termPainter{})
	default:
		return newTextRenderer(opts, plainPainter{})
	}
}
