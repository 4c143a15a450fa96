package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// ValidationResult is the JSON/YAML payload for a successful validate run.
type ValidationResult struct {
	Valid      bool `json:"valid" yaml:"valid"`
	EventCount int  `json:"event_count" yaml:"event_count"`
	GateCount  int  `json:"gate_count" yaml:"gate_count"`
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "validate <file>",
		Short:         "Check a fault tree for syntax and structural errors without computing quantities",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(rootOpts, args[0], cmd)
		},
	}
	return cmd
}

func runValidate(opts *RootOptions, path string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	source, err := LoadSource(path)
	if err != nil {
		return err
	}

	tree, err := buildTree(source)
	if err != nil {
		code, line := classifyError(err)
		details := map[string]any{"line": line}
		_ = formatter.Error(code, err.Error(), details)
		return NewExitError(ExitFailure, fmt.Sprintf("%s: %s", code, err.Error()))
	}

	result := ValidationResult{
		Valid:      true,
		EventCount: len(tree.Events),
		GateCount:  len(tree.Gates),
	}

	if formatter.Format == "text" {
		fmt.Fprintf(formatter.Writer, "valid: %d event(s), %d gate(s)\n", result.EventCount, result.GateCount)
		return nil
	}
	return formatter.Success(result)
}
