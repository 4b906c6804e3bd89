package xyz

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xtalgeom/nciscan/pkg/errors"
)

const waterXYZ = `3
water
O  0.000  0.000  0.000
H  0.960  0.000  0.000
H -0.240  0.930  0.000
`

func TestParse_Water(t *testing.T) {
	mol, err := ParseString(waterXYZ)
	require.NoError(t, err)

	assert.Equal(t, "water", mol.Comment)
	require.Len(t, mol.Atoms, 3)
	assert.Equal(t, Atom{Symbol: "O", X: 0, Y: 0, Z: 0}, mol.Atoms[0])
	assert.Equal(t, Atom{Symbol: "H", X: 0.96, Y: 0, Z: 0}, mol.Atoms[1])
	assert.Equal(t, Atom{Symbol: "H", X: -0.24, Y: 0.93, Z: 0}, mol.Atoms[2])
}

func TestParse_LeadingBlankLinesAndEmptyComment(t *testing.T) {
	mol, err := ParseString("\n\n1\n\nHe 1.0 2.0 3.0\n")
	require.NoError(t, err)
	assert.Equal(t, "", mol.Comment)
	require.Len(t, mol.Atoms, 1)
	assert.Equal(t, "He", mol.Atoms[0].Symbol)
}

func TestParse_ExtraColumnsIgnored(t *testing.T) {
	mol, err := ParseString("1\ncharged\nCl 0.1 0.2 0.3 -1.0\n")
	require.NoError(t, err)
	require.Len(t, mol.Atoms, 1)
	assert.Equal(t, Atom{Symbol: "Cl", X: 0.1, Y: 0.2, Z: 0.3}, mol.Atoms[0])
}

func TestParse_ScientificNotation(t *testing.T) {
	mol, err := ParseString("1\nsci\nO 1.2e-1 -3.4E+0 0\n")
	require.NoError(t, err)
	assert.InDelta(t, 0.12, mol.Atoms[0].X, 1e-12)
	assert.InDelta(t, -3.4, mol.Atoms[0].Y, 1e-12)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		code  errors.ErrorCode
	}{
		{"empty input", "", errors.ErrCodeXYZMalformed},
		{"non-integer count", "three\nt\nO 0 0 0\n", errors.ErrCodeXYZAtomCount},
		{"zero count", "0\nt\n", errors.ErrCodeXYZAtomCount},
		{"negative count", "-2\nt\n", errors.ErrCodeXYZAtomCount},
		{"missing comment", "2\n", errors.ErrCodeXYZMalformed},
		{"too few records", "3\nt\nO 0 0 0\nH 1 0 0\n", errors.ErrCodeXYZAtomCount},
		{"blank line inside records", "2\nt\nO 0 0 0\n\nH 1 0 0\n", errors.ErrCodeXYZMalformed},
		{"short record", "1\nt\nO 0 0\n", errors.ErrCodeXYZMalformed},
		{"bad coordinate", "1\nt\nO 0 zero 0\n", errors.ErrCodeXYZCoordinate},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseString(tt.input)
			require.Error(t, err)
			assert.True(t, errors.IsCode(err, tt.code), "got %v", err)
		})
	}
}

func TestParseFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "water.xyz")
	require.NoError(t, os.WriteFile(path, []byte(waterXYZ), 0o644))

	mol, err := ParseFile(path)
	require.NoError(t, err)
	assert.Equal(t, "water", mol.Comment)
	assert.Len(t, mol.Atoms, 3)
}

func TestParseFile_Missing(t *testing.T) {
	_, err := ParseFile(filepath.Join(t.TempDir(), "nope.xyz"))
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeXYZMalformed))
}
