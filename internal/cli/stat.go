package cli

import (
	"github.com/spf13/cobra"

	"github.com/roach88/specdoc/internal/report"
)

// NewStatCommand creates the stat command.
func NewStatCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stat <spec-dir>",
		Short: "Print requirement counts and coverage",
		Long: `Print the number of business and technical requirements and the share of
business requirements that have at least one technical requirement.

Coverage is reported as n/a when there are no business requirements.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStat(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runStat(opts *RootOptions, specDir string, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)

	s, err := loadSpec(opts, formatter, cmd, specDir)
	if err != nil {
		return err
	}

	coverage := report.ComputeCoverage(s)
	if formatter.Format == "json" {
		return formatter.Success(coverage)
	}
	return report.WriteCoverage(formatter.Writer, coverage)
}
