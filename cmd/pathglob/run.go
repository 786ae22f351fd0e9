package pathglob

import (
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/pathglob/pkg/config"
	"github.com/arthur-debert/pathglob/pkg/errors"
	"github.com/arthur-debert/pathglob/pkg/logging"
	"github.com/arthur-debert/pathglob/pkg/output"
	"github.com/arthur-debert/pathglob/pkg/pathiter"
	"github.com/arthur-debert/pathglob/pkg/types"
	"github.com/arthur-debert/pathglob/pkg/ui"
)

// runner resolves patterns in order and feeds the results to a renderer
type runner struct {
	resolver *pathiter.Resolver
	renderer output.Renderer
	policy   config.Policy
	logger   zerolog.Logger

	failures int
	invalid  int
}

func newRunner(fsys types.FS, cfg *config.Config, stdout, stderr io.Writer) (*runner, error) {
	format, err := ui.ParseFormat(cfg.Output.Format)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigValid, "invalid output.format")
	}

	return &runner{
		resolver: pathiter.New(fsys, pathiter.WithLogger(logging.GetLogger("pathiter"))),
		renderer: output.New(output.Options{
			Format:   concreteFormat(format, stdout),
			Null:     cfg.Output.Null,
			ShowMode: cfg.Output.ShowMode,
			Out:      stdout,
			ErrOut:   stderr,
		}),
		policy: cfg.Errors.Policy,
		logger: logging.GetLogger("cmd.resolve"),
	}, nil
}

// concreteFormat settles FormatAuto. Only a real file can be a terminal.
func concreteFormat(format ui.Format, w io.Writer) ui.Format {
	if file, ok := w.(*os.File); ok {
		return format.Resolve(file)
	}
	if format == ui.FormatAuto {
		return ui.FormatText
	}
	return format
}

// run resolves every pattern, flushes the renderer and turns any reported
// failure into an ErrResolution error
func (r *runner) run(patterns []string) error {
	done := logging.LogOperationStart(r.logger, "resolve")
	defer done()

	for _, pattern := range patterns {
		stop, err := r.resolve(pattern)
		if err != nil {
			return err
		}
		if stop {
			r.logger.Info().Str("pattern", pattern).Msg("Aborting after first failure")
			break
		}
	}

	if err := r.renderer.Flush(); err != nil {
		return err
	}

	r.logger.Debug().
		Int("patterns", len(patterns)).
		Int("failures", r.failures).
		Int("invalid", r.invalid).
		Msg("Resolution finished")

	switch {
	case r.invalid > 0:
		return errors.Newf(errors.ErrResolution, MsgErrInvalid, r.invalid).
			WithDetail("invalid", r.invalid).
			WithDetail("failures", r.failures)
	case r.failures > 0:
		return errors.Newf(errors.ErrResolution, MsgErrFailures, r.failures).
			WithDetail("failures", r.failures)
	}
	return nil
}

// resolve handles one pattern. stop is set when the policy says no
// further pattern should be read.
func (r *runner) resolve(pattern string) (stop bool, err error) {
	seq, err := r.resolver.Resolve(pattern)
	if err != nil {
		r.invalid++
		return r.policy == config.PolicyAbort, r.renderer.Invalid(pattern, err)
	}
	defer seq.Close()

	if err := r.renderer.Begin(pattern, seq.Mode()); err != nil {
		return true, err
	}

	for {
		item, ok := seq.Next()
		if !ok {
			return false, nil
		}
		if item.Ok() {
			if err := r.renderer.Path(item.Path); err != nil {
				return true, err
			}
			continue
		}

		if r.policy == config.PolicyIgnore {
			continue
		}
		r.failures++
		if err := r.renderer.Failure(item.Path, item.Err); err != nil {
			return true, err
		}
		if r.policy == config.PolicyAbort {
			return true, nil
		}
	}
}
