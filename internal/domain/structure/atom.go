package structure

import (
	"github.com/xtalgeom/nciscan/internal/domain/geometry"
	"github.com/xtalgeom/nciscan/pkg/types/chem"
)

// Atom is a single atom: element symbol plus Cartesian position in Å.
// Atoms are immutable once the owning Structure is constructed; the slice
// index within the Structure is the atom's identity everywhere else
// (0-based internally, 1-based in reports).
type Atom struct {
	Symbol   string
	Position geometry.Vec3
	Charge   float64
}

// NewAtom constructs an Atom with a normalized element symbol.
func NewAtom(symbol string, x, y, z float64) Atom {
	return Atom{
		Symbol:   chem.NormalizeSymbol(symbol),
		Position: geometry.Vec3{X: x, Y: y, Z: z},
	}
}

// Is reports whether the atom's element matches symbol, ignoring case.
func (a Atom) Is(symbol string) bool {
	return a.Symbol == chem.NormalizeSymbol(symbol)
}
