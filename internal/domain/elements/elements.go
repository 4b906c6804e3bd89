// Package elements provides the per-element physical-constant lookup service
// consumed by bond detection and the NCI detectors: covalent radii by bond
// order and parameter source, van der Waals radii, masses, and element
// metadata.  All lookups are read-only over an in-memory table; missing
// symbols or parameters surface as typed errors, never as silent defaults.
package elements

import (
	"sort"
	"strings"

	"github.com/xtalgeom/nciscan/pkg/errors"
	"github.com/xtalgeom/nciscan/pkg/types/chem"
)

// DistanceUnit selects the unit for radius lookups.  Values are stored in Å
// and converted on the way out.
type DistanceUnit string

const (
	UnitAngstrom  DistanceUnit = "ang"
	UnitPicometer DistanceUnit = "pm"
	UnitNanometer DistanceUnit = "nm"
	UnitBohr      DistanceUnit = "bohr"
)

// distanceFactor maps a unit to the multiplier applied to an Å value.
func distanceFactor(unit DistanceUnit) (float64, error) {
	switch DistanceUnit(strings.ToLower(string(unit))) {
	case UnitAngstrom, "a", "angstrom", "å":
		return 1.0, nil
	case UnitPicometer:
		return 100.0, nil
	case UnitNanometer:
		return 0.1, nil
	case UnitBohr:
		return 1.8897261255, nil
	}
	return 0, errors.New(errors.ErrCodeElementUnitInvalid, "unknown distance unit").
		WithDetail("unit=" + string(unit))
}

// Table is the element property provider.  The zero value is not usable;
// obtain an instance via Default().
type Table struct {
	rows map[string]element
}

// defaultTable is shared: the underlying data is immutable after init.
var defaultTable = &Table{rows: table}

// Default returns the process-wide element table.
func Default() *Table { return defaultTable }

// lookup resolves a (possibly unnormalized) symbol to its table row.
func (t *Table) lookup(symbol string) (element, string, error) {
	sym := chem.NormalizeSymbol(symbol)
	row, ok := t.rows[sym]
	if !ok {
		return element{}, sym, errors.New(errors.CodeElementNotFound, "unknown element symbol").
			WithDetail("symbol=" + symbol)
	}
	return row, sym, nil
}

// IsValid reports whether symbol names a known element (case-insensitive).
func (t *Table) IsValid(symbol string) bool {
	_, _, err := t.lookup(symbol)
	return err == nil
}

// ListSymbols returns all known symbols ordered by atomic number.
func (t *Table) ListSymbols() []string {
	syms := make([]string, 0, len(t.rows))
	for s := range t.rows {
		syms = append(syms, s)
	}
	sort.Slice(syms, func(i, j int) bool {
		return t.rows[syms[i]].AtomicNumber < t.rows[syms[j]].AtomicNumber
	})
	return syms
}

// AtomicNumber returns the atomic number of symbol.
func (t *Table) AtomicNumber(symbol string) (int, error) {
	row, _, err := t.lookup(symbol)
	if err != nil {
		return 0, err
	}
	return row.AtomicNumber, nil
}

// Symbol performs the reverse lookup from atomic number to symbol.
func (t *Table) Symbol(atomicNumber int) (string, error) {
	for sym, row := range t.rows {
		if row.AtomicNumber == atomicNumber {
			return sym, nil
		}
	}
	return "", errors.Newf(errors.CodeElementNotFound, "no element with atomic number %d", atomicNumber)
}

// Name returns the full element name.
func (t *Table) Name(symbol string) (string, error) {
	row, _, err := t.lookup(symbol)
	if err != nil {
		return "", err
	}
	return row.Name, nil
}

// Mass returns the atomic mass in unified atomic mass units.
func (t *Table) Mass(symbol string) (float64, error) {
	row, _, err := t.lookup(symbol)
	if err != nil {
		return 0, err
	}
	return row.Mass, nil
}

// VDWRadius returns the van der Waals radius of symbol in the given unit.
// Elements with no tabulated value (e.g. Xe) yield a parameter-not-found error.
func (t *Table) VDWRadius(symbol string, unit DistanceUnit) (float64, error) {
	row, sym, err := t.lookup(symbol)
	if err != nil {
		return 0, err
	}
	if row.VDWRadius == 0 {
		return 0, errors.New(errors.CodeParameterNotFound, "no van der Waals radius tabulated").
			WithDetail("symbol=" + sym)
	}
	factor, err := distanceFactor(unit)
	if err != nil {
		return 0, err
	}
	return row.VDWRadius * factor, nil
}

// CovalentRadius returns the covalent radius for the requested bond order and
// parameter source in the given unit.  An absent (symbol, order, source)
// combination is a parameter-not-found error.
func (t *Table) CovalentRadius(symbol string, order chem.BondOrder, source chem.RadiiSource, unit DistanceUnit) (float64, error) {
	row, sym, err := t.lookup(symbol)
	if err != nil {
		return 0, err
	}

	var params map[chem.BondOrder]float64
	switch source {
	case chem.SourceCordero:
		params = row.Cordero
	case chem.SourcePyykko:
		params = row.Pyykko
	default:
		return 0, errors.New(errors.CodeParameterNotFound, "unknown covalent radius source").
			WithDetail("source=" + string(source))
	}

	radius, ok := params[order]
	if !ok {
		return 0, errors.Newf(errors.CodeParameterNotFound,
			"no %s covalent radius in source %q for %s", order, source, sym)
	}

	factor, err := distanceFactor(unit)
	if err != nil {
		return 0, err
	}
	return radius * factor, nil
}

// Electronegativity returns the Pauling electronegativity of symbol.
func (t *Table) Electronegativity(symbol string) (float64, error) {
	row, sym, err := t.lookup(symbol)
	if err != nil {
		return 0, err
	}
	if row.Pauling == 0 {
		return 0, errors.New(errors.CodeParameterNotFound, "no Pauling electronegativity tabulated").
			WithDetail("symbol=" + sym)
	}
	return row.Pauling, nil
}

// Period returns the period of symbol.
func (t *Table) Period(symbol string) (int, error) {
	row, _, err := t.lookup(symbol)
	if err != nil {
		return 0, err
	}
	return row.Period, nil
}

// Group returns the group of symbol.
func (t *Table) Group(symbol string) (int, error) {
	row, _, err := t.lookup(symbol)
	if err != nil {
		return 0, err
	}
	return row.Group, nil
}

// Classification returns the chemical classification of symbol
// ("nonmetal", "halogen", "noble gas", ...).
func (t *Table) Classification(symbol string) (string, error) {
	row, _, err := t.lookup(symbol)
	if err != nil {
		return "", err
	}
	return row.Classification, nil
}
