package cli

import (
	"github.com/spf13/cobra"

	"github.com/roach88/specdoc/internal/spec"
)

// loadSpec loads the spec tree at dir, reporting failures through the
// formatter. Load failures are command errors (exit code 2).
func loadSpec(opts *RootOptions, formatter *OutputFormatter, cmd *cobra.Command, dir string) (*spec.Spec, error) {
	logger := opts.logger(cmd)

	s, err := spec.Load(dir, spec.WithLogger(logger))
	if err != nil {
		code := spec.ErrorCode(err)
		_ = formatter.Error(code, err.Error(), nil)
		return nil, WrapExitError(ExitCommandError, "failed to load spec", err)
	}

	formatter.VerboseLog("Loaded %d business and %d technical requirement(s) from %s",
		len(s.BusinessRequirements), len(s.TechnicalRequirements), dir)
	return s, nil
}
