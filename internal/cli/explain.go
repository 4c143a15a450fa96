package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sfta-dev/sfta/internal/mcs"
	"github.com/sfta-dev/sfta/internal/quantity"
)

// NewExplainCommand creates the explain command.
func NewExplainCommand(rootOpts *RootOptions) *cobra.Command {
	var gateID, eventID string

	cmd := &cobra.Command{
		Use:           "explain <file>",
		Short:         "Show why one event matters to one gate: its minimal cut sets, contribution, and importance",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExplain(rootOpts, args[0], gateID, eventID, cmd)
		},
	}

	cmd.Flags().StringVar(&gateID, "gate", "", "gate ID to explain (required)")
	cmd.Flags().StringVar(&eventID, "event", "", "event ID to explain (required)")
	return cmd
}

func runExplain(opts *RootOptions, path, gateID, eventID string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	if gateID == "" || eventID == "" {
		return NewExitError(ExitUsageError, "--gate and --event are both required")
	}

	source, err := LoadSource(path)
	if err != nil {
		return err
	}

	tree, err := buildTree(source)
	if err != nil {
		code, line := classifyError(err)
		_ = formatter.Error(code, err.Error(), map[string]any{"line": line})
		return NewExitError(ExitFailure, fmt.Sprintf("%s: %s", code, err.Error()))
	}

	gate, ok := tree.GateByID[gateID]
	if !ok {
		return NewExitError(ExitUsageError, fmt.Sprintf("no such gate %q", gateID))
	}
	event, ok := tree.EventByID[eventID]
	if !ok {
		return NewExitError(ExitUsageError, fmt.Sprintf("no such event %q", eventID))
	}

	mcsEngine := mcs.NewEngine(tree)
	qEngine := quantity.NewEngine(tree, mcsEngine)
	explanation := qEngine.Explain(gate, event)

	if formatter.Format == "text" {
		fmt.Fprintf(formatter.Writer, "%s contributes %g to %s (importance %g)\n",
			explanation.EventID, explanation.Contribution, explanation.GateID, explanation.Importance)
		for _, cs := range explanation.CutSets {
			fmt.Fprintf(formatter.Writer, "  %v: %g %s\n", cs.EventIDs, cs.Value, cs.Dimension)
		}
		return nil
	}
	return formatter.Success(explanation)
}
