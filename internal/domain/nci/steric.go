package nci

import (
	"github.com/xtalgeom/nciscan/internal/domain/elements"
	"github.com/xtalgeom/nciscan/internal/infrastructure/monitoring/logging"
	"github.com/xtalgeom/nciscan/pkg/types/chem"
)

// StericParams configures steric-clash detection.
type StericParams struct {
	// Tolerance in Å is subtracted from the vdW radius sum before the
	// strict (<) distance comparison; mild sub-vdW contact is normal.
	Tolerance float64
	// OnlyHydrogen restricts the scan to H/H pairs, the dominant clash
	// case in organic structures.
	OnlyHydrogen bool
	// IgnoreSharedNeighbor skips pairs bonded to a common atom, such as
	// geminal hydrogens, whose proximity is enforced by connectivity.
	IgnoreSharedNeighbor bool
}

// DefaultStericParams returns the standard clash criteria.
func DefaultStericParams() StericParams {
	return StericParams{
		Tolerance:            0.4,
		OnlyHydrogen:         true,
		IgnoreSharedNeighbor: true,
	}
}

// StericClashDetector returns the steric-clash detector descriptor.  It is
// registered at the lowest priority and disabled by default: a clash record
// is only meaningful once the directional detectors have had their pass,
// because any pair already carrying a directional interaction is suppressed
// rather than double-reported.
func StericClashDetector(params StericParams) Descriptor {
	run := func(ctx *Context) error {
		s := ctx.Structure
		bonds := s.Bonds()
		n := s.AtomCount()

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

		for i := 0; i < n; i++ {
			if params.OnlyHydrogen && s.Atom(i).Symbol != "H" {
				continue
			}
			for j := i + 1; j < n; j++ {
				if params.OnlyHydrogen && s.Atom(j).Symbol != "H" {
					continue
				}
				if bonds.Bonded(i, j) {
					continue
				}
				if params.IgnoreSharedNeighbor && bonds.ShareNeighbor(i, j) {
					continue
				}

				vi, err := vdwOf(s.Atom(i).Symbol)
				if err != nil {
					return err
				}
				vj, err := vdwOf(s.Atom(j).Symbol)
				if err != nil {
					return err
				}

				dist := s.Distance(i, j)
				if dist >= vi+vj-params.Tolerance {
					continue
				}

				if ctx.Store.HasDirectional(i, j) {
					if ctx.Debug {
						ctx.Log.Debug("steric clash suppressed by directional interaction",
							logging.String("pair", s.PairLabel(i, j)))
					}
					continue
				}

				rec := Record{
					Type:     chem.StericClash,
					Distance: dist,
					Scope:    s.Scope(i, j),
				}
				if err := ctx.Store.Add(i, j, rec); err != nil {
					return err
				}
			}
		}
		return nil
	}

	return Descriptor{
		Name:             string(chem.StericClash),
		Priority:         999,
		EnabledByDefault: false,
		Run:              run,
	}
}
