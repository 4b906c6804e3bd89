package analysis

import (
	"fmt"
	"strings"

	"github.com/xtalgeom/nciscan/internal/domain/nci"
)

// Summary returns the structure digest: title, atom/bond/fragment counts.
func (r *Result) Summary() string {
	return r.structure.Summary()
}

// InteractionsTable renders the detected interactions as a fixed-width
// table with 1-based atom numbering:
//
//	Type           Pair        Dist(Å)  Angle(°) AngleAtoms      Fragments     Scope
//	----------------------------------------------------------------------------------------------------
//	halogen_bond   Br4-O8         2.75     175.4 C1-Br4-O8       Frag1->Frag2   inter
func (r *Result) InteractionsTable() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%-14s %-10s %8s %9s %-15s %-12s %6s\n",
		"Type", "Pair", "Dist(Å)", "Angle(°)", "AngleAtoms", "Fragments", "Scope")
	sb.WriteString(strings.Repeat("-", 100))
	sb.WriteString("\n")

	for _, e := range r.entries {
		pair := r.structure.PairLabel(e.Pair.I, e.Pair.J)

		angleStr := "N/A"
		if e.Record.Angle != nil {
			angleStr = fmt.Sprintf("%.1f", *e.Record.Angle)
		}

		angleAtomsStr := "N/A"
		if len(e.Record.AngleAtoms) == 3 {
			parts := make([]string, 3)
			for k, idx := range e.Record.AngleAtoms {
				parts[k] = fmt.Sprintf("%s%d", r.structure.Atom(idx).Symbol, idx+1)
			}
			angleAtomsStr = strings.Join(parts, "-")
		}

		label := nci.FragmentLabel(r.structure, e.Pair, e.Record)
		fmt.Fprintf(&sb, "%-14s %-10s %8.2f %9s %-15s %-12s %6s\n",
			e.Record.Type, pair, e.Record.Distance, angleStr, angleAtomsStr,
			label, e.Record.Scope)
	}
	return sb.String()
}

// BondMatrix renders the adjacency matrix with 0-based index headers; "•"
// marks an absent bond, "1" a present one.
func (r *Result) BondMatrix() string {
	bonds := r.structure.Bonds()
	n := r.structure.AtomCount()

	var sb strings.Builder
	cells := make([]string, n)
	for j := 0; j < n; j++ {
		cells[j] = fmt.Sprintf("%2d", j)
	}
	sb.WriteString("    " + strings.Join(cells, " ") + "\n")

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if bonds.Bonded(i, j) {
				cells[j] = fmt.Sprintf("%2d", 1)
			} else {
				cells[j] = fmt.Sprintf("%2s", "•")
			}
		}
		fmt.Fprintf(&sb, "%2d  %s\n", i, strings.Join(cells, " "))
	}
	return sb.String()
}
