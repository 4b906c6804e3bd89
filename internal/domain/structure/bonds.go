package structure

import (
	"fmt"

	"github.com/xtalgeom/nciscan/internal/domain/elements"
	"github.com/xtalgeom/nciscan/pkg/errors"
	"github.com/xtalgeom/nciscan/pkg/types/chem"
)

// CutoffPolicy states how a pair distance exactly on the bond cutoff is
// treated.  The two policies exist because consumers disagree on the
// boundary; making the choice explicit keeps them from diverging silently.
type CutoffPolicy int

const (
	// CutoffInclusive bonds a pair when distance <= cutoff.
	CutoffInclusive CutoffPolicy = iota
	// CutoffExclusive bonds a pair when distance < cutoff.
	CutoffExclusive
)

// BondOptions configures covalent bond detection.
type BondOptions struct {
	// Tolerance is the margin in Å added to the covalent radius sum.
	Tolerance float64
	// Source selects the covalent radius parameter set.
	Source chem.RadiiSource
	// Order selects the bond order used for radius lookup.
	Order chem.BondOrder
	// Policy selects the boundary treatment at exactly the cutoff distance.
	Policy CutoffPolicy
}

// DefaultBondOptions returns the standard detection settings: 0.3 Å
// tolerance over cordero single-bond radii with an inclusive cutoff.
func DefaultBondOptions() BondOptions {
	return BondOptions{
		Tolerance: 0.3,
		Source:    chem.SourceCordero,
		Order:     chem.OrderSingle,
		Policy:    CutoffInclusive,
	}
}

// BondGraph is the symmetric covalent adjacency relation over atom indices.
// Invariants: Bonded(i,j) == Bonded(j,i) and Bonded(i,i) == false.
// It is read-only after construction.
type BondGraph struct {
	n   int
	adj [][]bool
}

// newBondGraph allocates an empty n×n adjacency matrix.
func newBondGraph(n int) *BondGraph {
	adj := make([][]bool, n)
	for i := range adj {
		adj[i] = make([]bool, n)
	}
	return &BondGraph{n: n, adj: adj}
}

// set records an undirected bond between i and j.
func (g *BondGraph) set(i, j int) {
	g.adj[i][j] = true
	g.adj[j][i] = true
}

// Size returns the number of atoms covered by the graph.
func (g *BondGraph) Size() int { return g.n }

// Bonded reports whether atoms i and j share a covalent bond.
func (g *BondGraph) Bonded(i, j int) bool { return g.adj[i][j] }

// Degree returns the number of covalent neighbors of atom i.
func (g *BondGraph) Degree(i int) int {
	d := 0
	for j := 0; j < g.n; j++ {
		if g.adj[i][j] {
			d++
		}
	}
	return d
}

// Neighbors returns the covalent neighbors of atom i in ascending index
// order.
func (g *BondGraph) Neighbors(i int) []int {
	var out []int
	for j := 0; j < g.n; j++ {
		if g.adj[i][j] {
			out = append(out, j)
		}
	}
	return out
}

// ShareNeighbor reports whether i and j have at least one common covalent
// neighbor (excluding each other).
func (g *BondGraph) ShareNeighbor(i, j int) bool {
	for k := 0; k < g.n; k++ {
		if k == i || k == j {
			continue
		}
		if g.adj[i][k] && g.adj[j][k] {
			return true
		}
	}
	return false
}

// BondCount returns the number of undirected bonds.
func (g *BondGraph) BondCount() int {
	count := 0
	for i := 0; i < g.n; i++ {
		for j := i + 1; j < g.n; j++ {
			if g.adj[i][j] {
				count++
			}
		}
	}
	return count
}

// DetectBonds builds the covalent bond graph from scratch: every unordered
// atom pair is bonded when its distance clears rᵢ + rⱼ + tolerance under the
// configured cutoff policy.  A missing element parameter aborts the build;
// substituting a default radius would silently corrupt connectivity.
//
// Detection invalidates any previously computed fragment partition.
// Cost is O(n²) distance evaluations, which is fine at the expected tens to
// low hundreds of atoms.
func (s *Structure) DetectBonds(provider PropertyProvider, opts BondOptions) error {
	if opts.Tolerance < 0 {
		return errors.InvalidParam("bond tolerance must be non-negative").
			WithDetail(fmt.Sprintf("tolerance=%g", opts.Tolerance))
	}

	n := len(s.atoms)
	graph := newBondGraph(n)

	// One radius lookup per distinct element, not per pair.
	radii := make(map[string]float64, 8)
	radiusOf := func(symbol string) (float64, error) {
		if r, ok := radii[symbol]; ok {
			return r, nil
		}
		r, err := provider.CovalentRadius(symbol, opts.Order, opts.Source, elements.UnitAngstrom)
		if err != nil {
			return 0, errors.Wrap(err, errors.ErrCodeBondDetectionFailed, "covalent radius lookup failed")
		}
		radii[symbol] = r
		return r, nil
	}

	for i := 0; i < n; i++ {
		ri, err := radiusOf(s.atoms[i].Symbol)
		if err != nil {
			return err
		}
		for j := i + 1; j < n; j++ {
			rj, err := radiusOf(s.atoms[j].Symbol)
			if err != nil {
				return err
			}

			dist := s.Distance(i, j)
			cutoff := ri + rj + opts.Tolerance

			bonded := dist <= cutoff
			if opts.Policy == CutoffExclusive {
				bonded = dist < cutoff
			}
			if bonded {
				graph.set(i, j)
			}
		}
	}

	s.bonds = graph
	s.fragments = nil
	return nil
}
