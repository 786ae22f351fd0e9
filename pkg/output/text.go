package output

import (
	"fmt"
	"io"

	"github.com/arthur-debert/pathglob/pkg/types"
	"github.com/arthur-debert/pathglob/pkg/ui/styles"
)

// painter decorates the lines a textRenderer writes
type painter interface {
	path(p string) string
	failure(path string, err error) string
	header(pattern string, mode string) string
}

type plainPainter struct{}

func (plainPainter) path(p string) string { return p }

func (plainPainter) failure(_ string, err error) string {
	return "error: " + err.Error()
}

func (plainPainter) header(pattern string, mode string) string {
	return fmt.Sprintf("%s: %s", pattern, mode)
}

// termPainter applies the lipgloss styles from pkg/ui/styles
type termPainter struct{}

func (termPainter) path(p string) string {
	return styles.GetStyle("Path").Render(p)
}

func (termPainter) failure(path string, err error) string {
	label := styles.GetStyle("Error").Render("✗ " + path)
	return label + " " + styles.GetStyle("ErrorDetail").Render(err.Error())
}

func (termPainter) header(pattern string, mode string) string {
	return styles.GetStyle("Pattern").Render(pattern) + " " +
		styles.GetStyle("Mode").Render("("+mode+")")
}

// textRenderer streams one path per record to out and failures to errOut
type textRenderer struct {
	out      io.Writer
	errOut   io.Writer
	sep      string
	showMode bool
	paint    painter
}

func newTextRenderer(opts Options, paint painter) *textRenderer {
	sep := "\n"
	if opts.Null {
		sep = "\x00"
	}
	return &textRenderer{
		out:      opts.Out,
		errOut:   opts.ErrOut,
		sep:      sep,
		showMode: opts.ShowMode,
		paint:    paint,
	}
}

func (r *textRenderer) Begin(pattern string, mode types.ResolutionMode) error {
	if !r.showMode {
		return nil
	}
	_, err := fmt.Fprintln(r.errOut, r.paint.header(pattern, mode.String()))
	return err
}

func (r *textRenderer) Invalid(pattern string, err error) error {
	_, werr := fmt.Fprintln(r.errOut, r.paint.failure(pattern, err))
	return werr
}

func (r *textRenderer) Path(path string) error {
	// NUL-separated output is for machines; never style it
	if r.sep != "\n" {
		_, err := io.WriteString(r.out, path+r.sep)
		return err
	}
	_, err := io.WriteString(r.out, r.paint.path(path)+r.sep)
	return err
}

func (r *textRenderer) Failure(path string, err error) error {
	_, werr := fmt.Fprintln(r.errOut, r.paint.failure(path, err))
	return werr
}

func (r *textRenderer) Flush() error {
	return nil
}
