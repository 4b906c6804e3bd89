package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/xtalgeom/nciscan/internal/domain/elements"
	"github.com/xtalgeom/nciscan/pkg/errors"
	"github.com/xtalgeom/nciscan/pkg/types/chem"
)

// NewElementsCmd creates the elements subcommand, which prints the built-in
// element parameter table used by bond and interaction detection. With
// symbol arguments, only those rows are printed.
func NewElementsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "elements [SYMBOL...]",
		Short: "Print the element parameter table",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			table := elements.Default()
			out := cmd.OutOrStdout()

			symbols := table.ListSymbols()
			if len(args) > 0 {
				symbols = symbols[:0]
				for _, arg := range args {
					normalized := chem.NormalizeSymbol(arg)
					if !table.IsValid(normalized) {
						return errors.New(errors.ErrCodeElementNotFound,
							"unknown element symbol").WithDetail(arg)
					}
					symbols = append(symbols, normalized)
				}
			}

			fmt.Fprintf(out, "%-6s %3s %-12s %9s %8s %11s\n",
				"Symbol", "Z", "Name", "Mass", "vdW(Å)", "Cov(Å)")

			for _, symbol := range symbols {
				z, err := table.AtomicNumber(symbol)
				if err != nil {
					return err
				}
				name, err := table.Name(symbol)
				if err != nil {
					return err
				}
				mass, err := table.Mass(symbol)
				if err != nil {
					return err
				}

				vdwStr := "—"
				if vdw, err := table.VDWRadius(symbol, elements.UnitAngstrom); err == nil {
					vdwStr = fmt.Sprintf("%.2f", vdw)
				}
				covStr := "—"
				if cov, err := table.CovalentRadius(symbol, chem.OrderSingle, chem.SourceCordero, elements.UnitAngstrom); err == nil {
					covStr = fmt.Sprintf("%.2f", cov)
				}

				fmt.Fprintf(out, "%-6s %3d %-12s %9.4f %8s %11s\n",
					symbol, z, name, mass, vdwStr, covStr)
			}
			return nil
		},
	}
}
