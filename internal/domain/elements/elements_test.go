package elements

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xtalgeom/nciscan/pkg/errors"
	"github.com/xtalgeom/nciscan/pkg/types/chem"
)

func TestIsValid(t *testing.T) {
	tbl := Default()
	assert.True(t, tbl.IsValid("H"))
	assert.True(t, tbl.IsValid("br"))
	assert.True(t, tbl.IsValid("BR"))
	assert.False(t, tbl.IsValid("Xx"))
	assert.False(t, tbl.IsValid(""))
}

func TestAtomicNumberAndSymbol(t *testing.T) {
	tbl := Default()

	n, err := tbl.AtomicNumber("C")
	require.NoError(t, err)
	assert.Equal(t, 6, n)

	sym, err := tbl.Symbol(35)
	require.NoError(t, err)
	assert.Equal(t, "Br", sym)

	_, err = tbl.Symbol(200)
	assert.True(t, errors.IsCode(err, errors.CodeElementNotFound))
}

func TestListSymbols_OrderedByAtomicNumber(t *testing.T) {
	syms := Default().ListSymbols()
	require.NotEmpty(t, syms)
	assert.Equal(t, "H", syms[0])
	assert.Equal(t, "He", syms[1])

	last := 0
	for _, s := range syms {
		n, err := Default().AtomicNumber(s)
		require.NoError(t, err)
		assert.Greater(t, n, last)
		last = n
	}
}

func TestVDWRadius(t *testing.T) {
	tbl := Default()

	r, err := tbl.VDWRadius("O", UnitAngstrom)
	require.NoError(t, err)
	assert.InDelta(t, 1.52, r, 1e-12)

	// Case-insensitive symbol handling.
	r, err = tbl.VDWRadius("BR", UnitAngstrom)
	require.NoError(t, err)
	assert.InDelta(t, 1.85, r, 1e-12)

	// Unit conversion.
	r, err = tbl.VDWRadius("H", UnitPicometer)
	require.NoError(t, err)
	assert.InDelta(t, 120.0, r, 1e-9)

	// Xenon carries no tabulated vdW radius.
	_, err = tbl.VDWRadius("Xe", UnitAngstrom)
	assert.True(t, errors.IsCode(err, errors.CodeParameterNotFound))

	_, err = tbl.VDWRadius("Zz", UnitAngstrom)
	assert.True(t, errors.IsCode(err, errors.CodeElementNotFound))

	_, err = tbl.VDWRadius("H", DistanceUnit("furlong"))
	assert.True(t, errors.IsCode(err, errors.ErrCodeElementUnitInvalid))
}

func TestCovalentRadius(t *testing.T) {
	tbl := Default()

	tests := []struct {
		symbol string
		order  chem.BondOrder
		source chem.RadiiSource
		want   float64
	}{
		{"H", chem.OrderSingle, chem.SourceCordero, 0.31},
		{"C", chem.OrderSingle, chem.SourceCordero, 0.76},
		{"C", chem.OrderDouble, chem.SourcePyykko, 0.67},
		{"Br", chem.OrderSingle, chem.SourceCordero, 1.20},
		{"I", chem.OrderTriple, chem.SourcePyykko, 1.25},
	}
	for _, tc := range tests {
		r, err := tbl.CovalentRadius(tc.symbol, tc.order, tc.source, UnitAngstrom)
		require.NoError(t, err, "%s/%s/%s", tc.symbol, tc.order, tc.source)
		assert.InDelta(t, tc.want, r, 1e-12)
	}
}

func TestCovalentRadius_MissingCombinations(t *testing.T) {
	tbl := Default()

	// Cordero tabulates single-bond radii only.
	_, err := tbl.CovalentRadius("C", chem.OrderDouble, chem.SourceCordero, UnitAngstrom)
	assert.True(t, errors.IsCode(err, errors.CodeParameterNotFound))

	// H has no triple-bond radius in either source.
	_, err = tbl.CovalentRadius("H", chem.OrderTriple, chem.SourcePyykko, UnitAngstrom)
	assert.True(t, errors.IsCode(err, errors.CodeParameterNotFound))

	_, err = tbl.CovalentRadius("C", chem.OrderSingle, chem.RadiiSource("alvarez"), UnitAngstrom)
	assert.True(t, errors.IsCode(err, errors.CodeParameterNotFound))

	_, err = tbl.CovalentRadius("Qq", chem.OrderSingle, chem.SourceCordero, UnitAngstrom)
	assert.True(t, errors.IsCode(err, errors.CodeElementNotFound))
}

func TestElectronegativity(t *testing.T) {
	tbl := Default()

	en, err := tbl.Electronegativity("F")
	require.NoError(t, err)
	assert.InDelta(t, 3.98, en, 1e-12)

	// Helium has no Pauling value.
	_, err = tbl.Electronegativity("He")
	assert.True(t, errors.IsCode(err, errors.CodeParameterNotFound))
}

func TestMetadata(t *testing.T) {
	tbl := Default()

	name, err := tbl.Name("Se")
	require.NoError(t, err)
	assert.Equal(t, "Selenium", name)

	period, err := tbl.Period("I")
	require.NoError(t, err)
	assert.Equal(t, 5, period)

	group, err := tbl.Group("S")
	require.NoError(t, err)
	assert.Equal(t, 16, group)

	class, err := tbl.Classification("Cl")
	require.NoError(t, err)
	assert.Equal(t, "halogen", class)

	mass, err := tbl.Mass("N")
	require.NoError(t, err)
	assert.InDelta(t, 14.007, mass, 1e-12)
}
