// Package structure provides the molecular structure aggregate: the ordered
// atom list, the covalent bond graph derived from per-element radii, and the
// partition of atoms into disconnected fragments.  Bond and fragment data are
// derived artifacts, recomputed on demand and read-only for all consumers
// other than the builders in this package.
package structure

import (
	"fmt"
	"strings"

	"github.com/xtalgeom/nciscan/internal/domain/elements"
	"github.com/xtalgeom/nciscan/internal/domain/geometry"
	"github.com/xtalgeom/nciscan/pkg/errors"
	"github.com/xtalgeom/nciscan/pkg/types/chem"
)

// PropertyProvider is the element parameter lookup contract consumed by bond
// detection and the interaction detectors.  *elements.Table satisfies it.
type PropertyProvider interface {
	CovalentRadius(symbol string, order chem.BondOrder, source chem.RadiiSource, unit elements.DistanceUnit) (float64, error)
	VDWRadius(symbol string, unit elements.DistanceUnit) (float64, error)
}

// Structure is the molecular system under analysis: a titled, ordered atom
// sequence plus the bond graph and fragment partition derived from it.
type Structure struct {
	title     string
	atoms     []Atom
	bonds     *BondGraph
	fragments []Fragment
}

// New constructs a Structure from an ordered atom list.  The list must be
// non-empty; atom order is preserved and becomes the canonical indexing.
func New(title string, atoms []Atom) (*Structure, error) {
	if len(atoms) == 0 {
		return nil, errors.New(errors.ErrCodeStructureEmpty, "structure requires at least one atom")
	}
	s := &Structure{title: title, atoms: make([]Atom, len(atoms))}
	copy(s.atoms, atoms)
	return s, nil
}

// Title returns the structure's descriptive title.
func (s *Structure) Title() string { return s.title }

// AtomCount returns the number of atoms.
func (s *Structure) AtomCount() int { return len(s.atoms) }

// Atom returns the atom at index i.  Callers are expected to pass indices in
// range; this mirrors slice semantics and panics otherwise.
func (s *Structure) Atom(i int) Atom { return s.atoms[i] }

// Atoms returns a copy of the atom sequence.
func (s *Structure) Atoms() []Atom {
	out := make([]Atom, len(s.atoms))
	copy(out, s.atoms)
	return out
}

// Distance returns the Euclidean distance between atoms i and j in Å.
func (s *Structure) Distance(i, j int) float64 {
	return geometry.Distance(s.atoms[i].Position, s.atoms[j].Position)
}

// Angle returns the angle in degrees at atom j formed by atoms i–j–k.
func (s *Structure) Angle(i, j, k int) (float64, error) {
	return geometry.Angle(s.atoms[i].Position, s.atoms[j].Position, s.atoms[k].Position)
}

// Dihedral returns the signed torsion angle in degrees for atoms i–j–k–l.
func (s *Structure) Dihedral(i, j, k, l int) float64 {
	return geometry.Dihedral(s.atoms[i].Position, s.atoms[j].Position, s.atoms[k].Position, s.atoms[l].Position)
}

// Bonds returns the bond graph, or nil before DetectBonds has run.
func (s *Structure) Bonds() *BondGraph { return s.bonds }

// Fragments returns the fragment partition, or nil before DetectFragments.
func (s *Structure) Fragments() []Fragment { return s.fragments }

// PairLabel formats an atom pair for reports using element symbols and
// 1-based numbering, e.g. "Br4-O8".
func (s *Structure) PairLabel(i, j int) string {
	return fmt.Sprintf("%s%d-%s%d", s.atoms[i].Symbol, i+1, s.atoms[j].Symbol, j+1)
}

// Summary returns a human-readable digest of the structure state.
func (s *Structure) Summary() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Title: %s\n", s.title)
	fmt.Fprintf(&sb, "Number of atoms: %d\n", len(s.atoms))
	if s.bonds != nil {
		fmt.Fprintf(&sb, "Number of bonds: %d\n", s.bonds.BondCount())
	}
	if s.fragments != nil {
		fmt.Fprintf(&sb, "Number of fragments: %d", len(s.fragments))
	} else {
		sb.WriteString("Fragments not yet determined.")
	}
	return sb.String()
}
