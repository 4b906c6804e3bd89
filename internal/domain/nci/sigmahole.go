package nci

import (
	"github.com/xtalgeom/nciscan/internal/domain/elements"
	"github.com/xtalgeom/nciscan/internal/infrastructure/monitoring/logging"
	"github.com/xtalgeom/nciscan/pkg/types/chem"
)

// SigmaHoleParams configures sigma-hole (halogen and chalcogen bond)
// detection.  Both families share the distance criterion and acceptor set;
// they differ only in donor elements and angle floor.
type SigmaHoleParams struct {
	// VDWFraction scales the van der Waals radius sum to form the distance
	// ceiling; contacts at or past the full sum are ordinary packing, not
	// sigma-hole interactions.  The comparison is strict (<).
	VDWFraction float64
	// Acceptors lists element symbols eligible as the electron donor side.
	Acceptors []string
}

// DefaultSigmaHoleParams returns the standard criteria: 90 % of the vdW sum
// with N, O, F, S and the heavy halogens as acceptors.
func DefaultSigmaHoleParams() SigmaHoleParams {
	return SigmaHoleParams{
		VDWFraction: 0.9,
		Acceptors:   []string{"N", "O", "F", "S", "Cl", "Br", "I"},
	}
}

// sigmaHoleFamily fixes the per-family constants.
type sigmaHoleFamily struct {
	kind     chem.InteractionType
	donors   []string
	minAngle float64
}

// HalogenBondDetector returns the halogen-bond detector: Cl, Br or I donors
// with a 120° angle floor on the R–X···acceptor axis.
func HalogenBondDetector(params SigmaHoleParams) Descriptor {
	return sigmaHoleDetector(sigmaHoleFamily{
		kind:     chem.HalogenBond,
		donors:   []string{"Cl", "Br", "I"},
		minAngle: 120.0,
	}, params, 20)
}

// ChalcogenBondDetector returns the chalcogen-bond detector: S, Se or Te
// donors with a 130° angle floor.
func ChalcogenBondDetector(params SigmaHoleParams) Descriptor {
	return sigmaHoleDetector(sigmaHoleFamily{
		kind:     chem.ChalcogenBond,
		donors:   []string{"S", "Se", "Te"},
		minAngle: 130.0,
	}, params, 30)
}

// sigmaHoleDetector builds the shared sigma-hole scan for one family.
//
// For each donor-element atom with at least one covalent neighbor, every
// non-bonded acceptor-element atom inside VDWFraction of the vdW radius sum
// is tested against the R–donor···acceptor angle, where R iterates the
// donor's covalent neighbors in ascending index order.  The angle floor is
// exclusive: a neighbor at exactly the floor does not qualify, mirroring the
// strict vdW distance cutoff.  The FIRST neighbor clearing the floor fixes
// the record; remaining neighbors are not examined, so the reported angle is
// not necessarily the largest available.
func sigmaHoleDetector(family sigmaHoleFamily, params SigmaHoleParams, priority int) Descriptor {
	donors := symbolSet(family.donors)
	acceptors := symbolSet(params.Acceptors)

	run := func(ctx *Context) error {
		s := ctx.Structure
		bonds := s.Bonds()
		n := s.AtomCount()

		// One vdW lookup per distinct element.
		vdw := make(map[string]float64, 8)
		vdwOf := func(symbol string) (float64, error) {
			if r, ok := vdw[symbol]; ok {
				return r, nil
			}
			r, err := ctx.Provider.VDWRadius(symbol, elements.UnitAngstrom)
			if err != nil {
				return 0, err
			}
			vdw[symbol] = r
			return r, nil
		}

		for donor := 0; donor < n; donor++ {
			if !donors[s.Atom(donor).Symbol] {
				continue
			}
			neighbors := bonds.Neighbors(donor)
			if len(neighbors) == 0 {
				continue
			}

			vdwDonor, err := vdwOf(s.Atom(donor).Symbol)
			if err != nil {
				return err
			}

			for j := 0; j < n; j++ {
				if j == donor || !acceptors[s.Atom(j).Symbol] {
					continue
				}
				if bonds.Bonded(donor, j) {
					continue
				}

				vdwAcceptor, err := vdwOf(s.Atom(j).Symbol)
				if err != nil {
					return err
				}
				dist := s.Distance(donor, j)
				if dist >= params.VDWFraction*(vdwDonor+vdwAcceptor) {
					continue
				}

				for _, r := range neighbors {
					if r == j {
						continue
					}
					angle, err := s.Angle(r, donor, j)
					if err != nil {
						return err
					}
					if angle <= family.minAngle {
						if ctx.Debug {
							ctx.Log.Debug("sigma-hole neighbor rejected on angle",
								logging.String("type", string(family.kind)),
								logging.String("pair", s.PairLabel(donor, j)),
								logging.Float64("angle", angle))
						}
						continue
					}

					rec := Record{
						Type:       family.kind,
						Distance:   dist,
						Angle:      &angle,
						AngleAtoms: []int{r, donor, j},
						Scope:      s.Scope(donor, j),
					}
					if err := ctx.Store.Add(donor, j, rec); err != nil {
						return err
					}
					break
				}
			}
		}
		return nil
	}

	return Descriptor{
		Name:             string(family.kind),
		Priority:         priority,
		EnabledByDefault: true,
		Run:              run,
	}
}
