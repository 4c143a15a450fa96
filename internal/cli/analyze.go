package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sfta-dev/sfta/internal/result"
	"github.com/sfta-dev/sfta/internal/store"
)

// NewAnalyzeCommand creates the analyze command.
func NewAnalyzeCommand(rootOpts *RootOptions) *cobra.Command {
	var cachePath, gateID string

	cmd := &cobra.Command{
		Use:           "analyze <file>",
		Short:         "Compute minimal cut sets and rare-event quantities for a fault tree",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalyze(rootOpts, args[0], cachePath, gateID, cmd)
		},
	}

	cmd.Flags().StringVar(&cachePath, "cache", "", "SQLite cache file; reuses a prior result for unchanged input")
	cmd.Flags().StringVar(&gateID, "gate", "", "restrict output to one gate (default: all gates)")
	return cmd
}

func runAnalyze(opts *RootOptions, path, cachePath, gateID string, cmd *cobra.Command) error {
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

	if gateID != "" {
		if _, ok := tree.GateByID[gateID]; !ok {
			return NewExitError(ExitUsageError, fmt.Sprintf("no such gate %q", gateID))
		}
	}

	var cache *store.Store
	if cachePath != "" {
		cache, err = store.Open(cachePath)
		if err != nil {
			return WrapExitError(ExitUsageError, "opening cache", err)
		}
		defer cache.Close()

		if cached, ok, err := cache.Get(context.Background(), source); err != nil {
			return WrapExitError(ExitUsageError, "reading cache", err)
		} else if ok {
			formatter.VerboseLog("cache hit: run %s", cached.ID)
			return outputAnalysis(formatter, cached.Result, gateID)
		}
	}

	res := result.Build(tree)

	if cache != nil {
		id, err := cache.Put(context.Background(), source, res)
		if err != nil {
			return WrapExitError(ExitUsageError, "writing cache", err)
		}
		formatter.VerboseLog("cached as run %s", id)
	}

	return outputAnalysis(formatter, res, gateID)
}

// outputAnalysis renders tree's gates, or — when gateID is set — only
// that one gate's result.
func outputAnalysis(formatter *OutputFormatter, tree *result.Tree, gateID string) error {
	gates := tree.Gates
	if gateID != "" {
		g := tree.Gate(gateID)
		if g == nil {
			return NewExitError(ExitUsageError, fmt.Sprintf("no such gate %q", gateID))
		}
		gates = []result.GateResult{*g}
	}

	if formatter.Format == "text" {
		for _, g := range gates {
			fmt.Fprintf(formatter.Writer, "%s (%s): %g %s\n", g.ID, g.Type, g.Quantity, g.Dimension)
			for _, cs := range g.MinimalCutSets {
				fmt.Fprintf(formatter.Writer, "  %v: %g %s\n", cs.EventIDs, cs.Quantity, cs.Dimension)
			}
		}
		return nil
	}

	if gateID != "" {
		return formatter.Success(gates[0])
	}
	return formatter.Success(tree)
}
