package nci

import (
	"fmt"

	"github.com/xtalgeom/nciscan/internal/domain/structure"
	"github.com/xtalgeom/nciscan/pkg/types/chem"
)

// DonorAcceptor extracts the donor and acceptor atom indices from a record.
// For hydrogen bonds the donor heavy atom is the first angle atom and the
// acceptor the last; for sigma-hole bonds the donor is the angle vertex.
// Types without donor/acceptor roles fall back to canonical pair order.
func DonorAcceptor(p Pair, rec Record) (donor, acceptor int) {
	switch rec.Type {
	case chem.HBond:
		if len(rec.AngleAtoms) == 3 {
			return rec.AngleAtoms[0], rec.AngleAtoms[2]
		}
	case chem.HalogenBond, chem.ChalcogenBond:
		if len(rec.AngleAtoms) == 3 {
			return rec.AngleAtoms[1], rec.AngleAtoms[2]
		}
	}
	return p.I, p.J
}

// FragmentLabel formats the fragment annotation for one record.
// Intra-fragment records yield the shared fragment ("Frag2"); inter-fragment
// records point from the donor's fragment to the acceptor's
// ("Frag1->Frag2").  Fragments must have been computed on s.
func FragmentLabel(s *structure.Structure, p Pair, rec Record) string {
	if rec.Scope != chem.ScopeInter {
		return fmt.Sprintf("Frag%d", s.FragmentNumber(p.I))
	}
	donor, acceptor := DonorAcceptor(p, rec)
	return fmt.Sprintf("Frag%d->Frag%d", s.FragmentNumber(donor), s.FragmentNumber(acceptor))
}
