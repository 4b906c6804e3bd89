package nci

import (
	"github.com/xtalgeom/nciscan/internal/infrastructure/monitoring/logging"
	"github.com/xtalgeom/nciscan/pkg/types/chem"
)

// HBondParams configures hydrogen-bond detection.
type HBondParams struct {
	// MaxDistance is the H···acceptor distance ceiling in Å, inclusive.
	MaxDistance float64
	// MinAngle is the donor–H···acceptor angle floor in degrees, inclusive.
	// Near-linear arrangements are the signature of a hydrogen bond.
	MinAngle float64
	// Donors lists element symbols eligible as the covalently bound donor.
	Donors []string
	// Acceptors lists element symbols eligible as the acceptor.
	Acceptors []string
}

// DefaultHBondParams returns the conventional N/O/F criteria: 2.5 Å and a
// 160° near-linear angle floor.
func DefaultHBondParams() HBondParams {
	return HBondParams{
		MaxDistance: 2.5,
		MinAngle:    160.0,
		Donors:      []string{"N", "O", "F"},
		Acceptors:   []string{"N", "O", "F"},
	}
}

// symbolSet builds a normalized membership set from a symbol list.
func symbolSet(symbols []string) map[string]bool {
	set := make(map[string]bool, len(symbols))
	for _, s := range symbols {
		set[chem.NormalizeSymbol(s)] = true
	}
	return set
}

// HydrogenBondDetector returns the hydrogen-bond detector descriptor.
//
// For every hydrogen the detector picks its donor as the first covalent
// neighbor (ascending atom index) whose element is in Donors; a hydrogen
// without such a neighbor cannot donate and is skipped.  Every other
// acceptor-element atom except the donor within MaxDistance whose
// donor–H···acceptor angle clears MinAngle yields one record.  Acceptors
// covalently bonded to the hydrogen are still evaluated, so a symmetric
// proton bridge such as bifluoride records a hydrogen bond on its second
// H–F contact.  The recorded pair is (H, acceptor); scope is classified
// between donor and acceptor, since those atoms define which fragments the
// bond bridges.
func HydrogenBondDetector(params HBondParams) Descriptor {
	donors := symbolSet(params.Donors)
	acceptors := symbolSet(params.Acceptors)

	run := func(ctx *Context) error {
		s := ctx.Structure
		bonds := s.Bonds()
		n := s.AtomCount()

		for h := 0; h < n; h++ {
			if s.Atom(h).Symbol != "H" {
				continue
			}

			donor := -1
			for _, nb := range bonds.Neighbors(h) {
				if donors[s.Atom(nb).Symbol] {
					donor = nb
					break
				}
			}
			if donor < 0 {
				continue
			}

			for j := 0; j < n; j++ {
				if j == h || j == donor || !acceptors[s.Atom(j).Symbol] {
					continue
				}

				dist := s.Distance(h, j)
				if dist > params.MaxDistance {
					continue
				}

				angle, err := s.Angle(donor, h, j)
				if err != nil {
					return err
				}
				if angle < params.MinAngle {
					if ctx.Debug {
						ctx.Log.Debug("hydrogen bond rejected on angle",
							logging.String("pair", s.PairLabel(h, j)),
							logging.Float64("angle", angle))
					}
					continue
				}

				rec := Record{
					Type:       chem.HBond,
					Distance:   dist,
					Angle:      &angle,
					AngleAtoms: []int{donor, h, j},
					Scope:      s.Scope(donor, j),
				}
				if err := ctx.Store.Add(h, j, rec); err != nil {
					return err
				}
			}
		}
		return nil
	}

	return Descriptor{
		Name:             "hydrogen_bond",
		Priority:         10,
		EnabledByDefault: true,
		Run:              run,
	}
}
