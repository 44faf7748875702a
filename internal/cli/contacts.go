package cli

import (
	"github.com/spf13/cobra"

	"github.com/roach88/specdoc/internal/report"
)

// NewListContactsCommand creates the list-contacts command.
func NewListContactsCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "list-contacts <spec-dir>",
		Short:         "List contacts sorted by id",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runListContacts(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runListContacts(opts *RootOptions, specDir string, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)

	s, err := loadSpec(opts, formatter, cmd, specDir)
	if err != nil {
		return err
	}

	contacts := report.ListContacts(s)
	if formatter.Format == "json" {
		return formatter.Success(contacts)
	}
	return report.WriteContacts(formatter.Writer, contacts)
}
