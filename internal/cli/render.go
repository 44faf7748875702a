package cli

import (
	"bytes"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/specdoc/internal/render"
	"github.com/roach88/specdoc/internal/schema"
	"github.com/roach88/specdoc/internal/spec"
)

// RenderOptions holds flags for the render command.
type RenderOptions struct {
	*RootOptions
	HeadingMarker string
	GapOrder      string
	Strict        bool
}

// RenderResult is the JSON payload of the render command.
type RenderResult struct {
	Document string `json:"document"`
}

// NewRenderCommand creates the render command.
func NewRenderCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &RenderOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "render <spec-dir>",
		Short: "Render the specification as markdown",
		Long: `Render every record of a specification tree into one markdown document.

Sections appear in a fixed order: header, description, known gaps, personas,
requirements (with their technical requirements), SLA, glossary, contacts.

Every owner, author, persona and contact-group reference must resolve; a
dangling reference fails the render and nothing is printed. With --strict,
all references are checked first and every violation is reported.

Examples:
  specdoc render ./spec
  specdoc render ./spec --strict
  specdoc render ./spec --gap-order hierarchical`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true, // Don't print usage on errors
		SilenceErrors: true, // Don't print errors - we handle our own error output
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.HeadingMarker, "heading-marker", render.DefaultHeadingMarker, "glyph repeated to form headings")
	cmd.Flags().StringVar(&opts.GapOrder, "gap-order", string(render.GapOrderString), "known gap order (string|hierarchical)")
	cmd.Flags().BoolVar(&opts.Strict, "strict", false, "check all references before rendering")

	return cmd
}

func runRender(opts *RenderOptions, specDir string, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)

	renderer, err := render.New(render.Options{
		HeadingMarker: opts.HeadingMarker,
		GapOrder:      render.GapOrder(opts.GapOrder),
	})
	if err != nil {
		_ = formatter.Error(spec.ErrCodeGeneric, err.Error(), nil)
		return WrapExitError(ExitCommandError, "invalid render options", err)
	}

	s, err := loadSpec(opts.RootOptions, formatter, cmd, specDir)
	if err != nil {
		return err
	}

	if opts.Strict {
		if errs := schema.CheckReferences(s); len(errs) > 0 {
			return outputValidationErrors(formatter, errs)
		}
	}

	var buf bytes.Buffer
	if err := renderer.Render(&buf, s); err != nil {
		_ = formatter.Error(spec.ErrorCode(err), err.Error(), nil)
		return WrapExitError(ExitFailure, "render failed", err)
	}

	if formatter.Format == "json" {
		return formatter.Success(RenderResult{Document: buf.String()})
	}

	if _, err := formatter.Writer.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("writing document: %w", err)
	}
	return nil
}
