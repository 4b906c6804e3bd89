package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xtalgeom/nciscan/pkg/errors"
	"github.com/xtalgeom/nciscan/pkg/types/chem"
)

const probeXYZ = `3
bromide probe
C   0.0         0.0         0.0
Br  1.91        0.0         0.0
O   4.65114192  0.22054703  0.0
`

func writeXYZ(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.xyz")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// execute runs the root command with args and returns captured stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand()
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(out)
	cmd.SetArgs(append(args, "--log-level", "error"))
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestAnalyze_PrintsReport(t *testing.T) {
	path := writeXYZ(t, probeXYZ)

	out, err := execute(t, "analyze", path)
	require.NoError(t, err)

	assert.Contains(t, out, "=== Processing "+path+" ===")
	assert.Contains(t, out, "--- Molecule Summary ---")
	assert.Contains(t, out, "Title: bromide probe")
	assert.Contains(t, out, "Number of atoms: 3")
	assert.Contains(t, out, "--- Non-Covalent Interactions Detected ---")
	assert.Contains(t, out, "halogen_bond")
	assert.Contains(t, out, "Br2-O3")
	assert.Contains(t, out, "Frag1->Frag2")
}

func TestAnalyze_NoInteractions(t *testing.T) {
	path := writeXYZ(t, "3\nwater\nO 0 0 0\nH 0.96 0 0\nH -0.24 0.93 0\n")

	out, err := execute(t, "analyze", path)
	require.NoError(t, err)
	assert.Contains(t, out, "No NCIs found.")
}

func TestAnalyze_BondMatrixFlag(t *testing.T) {
	path := writeXYZ(t, probeXYZ)

	out, err := execute(t, "analyze", "--bonds", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Bond matrix:")
	assert.Contains(t, out, "•")
}

func TestAnalyze_JSONOutput(t *testing.T) {
	path := writeXYZ(t, probeXYZ)

	out, err := execute(t, "analyze", "--json", path)
	require.NoError(t, err)

	var dto chem.AnalysisDTO
	require.NoError(t, json.Unmarshal([]byte(out), &dto))
	assert.Equal(t, "bromide probe", dto.Title)
	require.Len(t, dto.Interactions, 1)
	assert.Equal(t, chem.HalogenBond, dto.Interactions[0].Type)
}

func TestAnalyze_ClashesFlag(t *testing.T) {
	path := writeXYZ(t, "2\nfree hydrogens\nH 0 0 0\nH 1.5 0 0\n")

	out, err := execute(t, "analyze", path)
	require.NoError(t, err)
	assert.Contains(t, out, "No NCIs found.")

	out, err = execute(t, "analyze", "--clashes", path)
	require.NoError(t, err)
	assert.Contains(t, out, "steric_clash")
}

func TestAnalyze_MissingFile(t *testing.T) {
	_, err := execute(t, "analyze", filepath.Join(t.TempDir(), "absent.xyz"))
	assert.Error(t, err)
}

func TestAnalyze_RequiresArgs(t *testing.T) {
	_, err := execute(t, "analyze")
	assert.Error(t, err)
}

func TestElements_PrintsTable(t *testing.T) {
	out, err := execute(t, "elements")
	require.NoError(t, err)

	assert.Contains(t, out, "Symbol")
	assert.Contains(t, out, "Hydrogen")
	assert.Contains(t, out, "Bromine")
	// Xenon has no tabulated vdW radius.
	assert.Contains(t, out, "Xe")
}

func TestElements_FiltersBySymbol(t *testing.T) {
	out, err := execute(t, "elements", "br", "O")
	require.NoError(t, err)

	assert.Contains(t, out, "Bromine")
	assert.Contains(t, out, "Oxygen")
	assert.NotContains(t, out, "Hydrogen")
}

func TestElements_UnknownSymbol(t *testing.T) {
	_, err := execute(t, "elements", "Zz")
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeElementNotFound))
}

func TestRoot_Version(t *testing.T) {
	out, err := execute(t, "--version")
	require.NoError(t, err)
	assert.Contains(t, out, "commit")
}
