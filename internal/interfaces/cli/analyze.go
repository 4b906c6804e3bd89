package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/xtalgeom/nciscan/internal/application/analysis"
	"github.com/xtalgeom/nciscan/pkg/types/chem"
)

// analyzeOptions holds flags for the analyze subcommand.
type analyzeOptions struct {
	Debug   bool
	Bonds   bool
	Clashes bool
	JSON    bool
}

// NewAnalyzeCmd creates the analyze subcommand.  It processes one or more
// XYZ files in sequence, printing a structure summary and the interaction
// table for each.
func NewAnalyzeCmd() *cobra.Command {
	opts := &analyzeOptions{}

	cmd := &cobra.Command{
		Use:   "analyze <file.xyz> [file2.xyz ...]",
		Short: "Analyze XYZ files for bonds, fragments, and non-covalent interactions",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalyze(cmd, args, opts)
		},
	}

	f := cmd.Flags()
	f.BoolVar(&opts.Debug, "debug", false, "log per-candidate detector decisions")
	f.BoolVar(&opts.Bonds, "bonds", false, "print the covalent bond matrix")
	f.BoolVar(&opts.Clashes, "clashes", false, "also detect steric clashes")
	f.BoolVar(&opts.JSON, "json", false, "emit the analysis result as JSON")

	return cmd
}

func runAnalyze(cmd *cobra.Command, args []string, opts *analyzeOptions) error {
	cliCtx := GetCLIContext(cmd)

	detection := cliCtx.Config.Detection
	if opts.Clashes {
		detection.EnableDetectors = append(
			append([]string(nil), detection.EnableDetectors...),
			string(chem.StericClash),
		)
	}
	svc := analysis.NewService(detection, cliCtx.Logger, nil)
	out := cmd.OutOrStdout()

	for _, path := range args {
		res, err := svc.AnalyzeFile(cmd.Context(), path, opts.Debug)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}

		if opts.JSON {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			if err := enc.Encode(res.Analysis); err != nil {
				return err
			}
			continue
		}

		fmt.Fprintf(out, "\n=== Processing %s ===\n", path)
		fmt.Fprintln(out, "\n--- Molecule Summary ---")
		fmt.Fprintln(out, res.Summary())

		if opts.Bonds {
			fmt.Fprintln(out, "\nBond matrix:")
			fmt.Fprint(out, res.BondMatrix())
		}

		if !res.HasInteractions() {
			fmt.Fprintln(out, "\nNo NCIs found.")
			continue
		}
		fmt.Fprintln(out, "\n--- Non-Covalent Interactions Detected ---")
		fmt.Fprint(out, res.InteractionsTable())
	}
	return nil
}
