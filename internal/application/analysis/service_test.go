package analysis

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xtalgeom/nciscan/internal/config"
	"github.com/xtalgeom/nciscan/internal/infrastructure/monitoring/logging"
	"github.com/xtalgeom/nciscan/internal/infrastructure/monitoring/prometheus"
	"github.com/xtalgeom/nciscan/pkg/errors"
	"github.com/xtalgeom/nciscan/pkg/types/chem"
)

func newService(t *testing.T, mutate func(*config.DetectionConfig)) Service {
	t.Helper()
	detection := config.NewDefault().Detection
	if mutate != nil {
		mutate(&detection)
	}
	return NewService(detection, logging.NewNopLogger(), nil)
}

// The bromide probe: a C–Br unit aimed at a lone oxygen 2.75 Å from the
// bromine, 4.6° off the C–Br axis.
const bromideProbeXYZ = `3
bromide probe
C   0.0         0.0         0.0
Br  1.91        0.0         0.0
O   4.65114192  0.22054703  0.0
`

func TestAnalyzeXYZ_HalogenBond(t *testing.T) {
	svc := newService(t, nil)

	res, err := svc.AnalyzeXYZ(context.Background(), &AnalyzeXYZInput{Content: bromideProbeXYZ})
	require.NoError(t, err)

	a := res.Analysis
	assert.NotEmpty(t, a.ID)
	assert.Equal(t, "bromide probe", a.Title)
	assert.Equal(t, 3, a.AtomCount)
	assert.Equal(t, 1, a.BondCount)
	require.Len(t, a.Fragments, 2)
	assert.Equal(t, []int{0, 1}, a.Fragments[0].AtomIndices)
	assert.Equal(t, []int{2}, a.Fragments[1].AtomIndices)

	require.Len(t, a.Interactions, 1)
	it := a.Interactions[0]
	assert.Equal(t, chem.HalogenBond, it.Type)
	assert.Equal(t, 1, it.I)
	assert.Equal(t, 2, it.J)
	assert.Equal(t, "Br2-O3", it.Pair)
	assert.InDelta(t, 2.75, it.Distance, 1e-4)
	require.NotNil(t, it.Angle)
	assert.InDelta(t, 175.4, *it.Angle, 0.01)
	assert.Equal(t, []int{0, 1, 2}, it.AngleAtoms)
	assert.Equal(t, "Frag1->Frag2", it.Fragments)
	assert.Equal(t, chem.ScopeInter, it.Scope)
}

func TestAnalyze_WaterDimerHydrogenBond(t *testing.T) {
	svc := newService(t, nil)

	res, err := svc.Analyze(context.Background(), &AnalyzeInput{
		Title: "water dimer",
		Atoms: []chem.AtomDTO{
			{Symbol: "O", X: 0, Y: 0, Z: 0},
			{Symbol: "H", X: 0.96, Y: 0, Z: 0},
			{Symbol: "H", X: -0.24, Y: 0.93, Z: 0},
			{Symbol: "O", X: 2.86, Y: 0, Z: 0},
			{Symbol: "H", X: 3.5, Y: 0.7, Z: 0},
			{Symbol: "H", X: 3.5, Y: -0.7, Z: 0},
		},
	})
	require.NoError(t, err)

	a := res.Analysis
	assert.Equal(t, 4, a.BondCount)
	assert.Len(t, a.Fragments, 2)
	require.Len(t, a.Interactions, 1)
	assert.Equal(t, chem.HBond, a.Interactions[0].Type)
	assert.Equal(t, "H2-O4", a.Interactions[0].Pair)
	assert.Equal(t, chem.ScopeInter, a.Interactions[0].Scope)
}

func TestAnalyze_IntramolecularHydrogenBond(t *testing.T) {
	// One connected molecule whose O–H points at a bridged second oxygen:
	// the interaction stays inside the single fragment.
	svc := newService(t, nil)

	res, err := svc.Analyze(context.Background(), &AnalyzeInput{
		Title: "bridged diol",
		Atoms: []chem.AtomDTO{
			{Symbol: "O", X: 0, Y: 0, Z: 0},
			{Symbol: "H", X: 0.96, Y: 0, Z: 0},
			{Symbol: "O", X: 2.96, Y: 0, Z: 0},
			{Symbol: "C", X: 1.48, Y: -0.8, Z: 0},
		},
	})
	require.NoError(t, err)

	a := res.Analysis
	assert.Len(t, a.Fragments, 1)
	require.Len(t, a.Interactions, 1)
	assert.Equal(t, chem.HBond, a.Interactions[0].Type)
	assert.Equal(t, chem.ScopeIntra, a.Interactions[0].Scope)
	assert.Equal(t, "Frag1", a.Interactions[0].Fragments)
}

func TestAnalyze_NoInteractions(t *testing.T) {
	svc := newService(t, nil)

	res, err := svc.Analyze(context.Background(), &AnalyzeInput{
		Title: "water",
		Atoms: []chem.AtomDTO{
			{Symbol: "O", X: 0, Y: 0, Z: 0},
			{Symbol: "H", X: 0.96, Y: 0, Z: 0},
			{Symbol: "H", X: -0.24, Y: 0.93, Z: 0},
		},
	})
	require.NoError(t, err)

	assert.False(t, res.HasInteractions())
	assert.Empty(t, res.Analysis.Interactions)
	assert.Contains(t, res.Summary(), "Number of fragments: 1")
}

func TestAnalyze_StericClashOptIn(t *testing.T) {
	atoms := []chem.AtomDTO{
		{Symbol: "H", X: 0, Y: 0, Z: 0},
		{Symbol: "H", X: 1.5, Y: 0, Z: 0},
	}

	svc := newService(t, nil)
	res, err := svc.Analyze(context.Background(), &AnalyzeInput{Title: "h-h", Atoms: atoms})
	require.NoError(t, err)
	assert.Empty(t, res.Analysis.Interactions)

	svc = newService(t, func(d *config.DetectionConfig) {
		d.EnableDetectors = []string{"steric_clash"}
	})
	res, err = svc.Analyze(context.Background(), &AnalyzeInput{Title: "h-h", Atoms: atoms})
	require.NoError(t, err)

	require.Len(t, res.Analysis.Interactions, 1)
	it := res.Analysis.Interactions[0]
	assert.Equal(t, chem.StericClash, it.Type)
	assert.Nil(t, it.Angle)
	assert.Equal(t, chem.ScopeInter, it.Scope)
}

func TestAnalyze_Errors(t *testing.T) {
	svc := newService(t, nil)
	ctx := context.Background()

	_, err := svc.Analyze(ctx, nil)
	assert.True(t, errors.IsCode(err, errors.CodeInvalidParam))

	_, err = svc.Analyze(ctx, &AnalyzeInput{Title: "empty"})
	assert.True(t, errors.IsCode(err, errors.CodeInvalidParam))

	_, err = svc.Analyze(ctx, &AnalyzeInput{
		Title: "mystery",
		Atoms: []chem.AtomDTO{{Symbol: "Zz"}},
	})
	assert.True(t, errors.IsCode(err, errors.ErrCodeBondDetectionFailed))

	_, err = svc.AnalyzeXYZ(ctx, &AnalyzeXYZInput{Content: "not xyz"})
	assert.True(t, errors.IsCode(err, errors.ErrCodeXYZAtomCount))
}

func TestAnalyze_CancelledContext(t *testing.T) {
	svc := newService(t, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.Analyze(ctx, &AnalyzeInput{
		Title: "cancelled",
		Atoms: []chem.AtomDTO{{Symbol: "H"}},
	})
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeTimeout))
}

func TestAnalyzeFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "probe.xyz")
	require.NoError(t, os.WriteFile(path, []byte(bromideProbeXYZ), 0o644))

	svc := newService(t, nil)
	res, err := svc.AnalyzeFile(context.Background(), path, false)
	require.NoError(t, err)
	assert.Equal(t, "bromide probe", res.Analysis.Title)
	assert.Len(t, res.Analysis.Interactions, 1)
}

func TestAnalyze_RecordsMetrics(t *testing.T) {
	m := prometheus.New(prometheus.Options{Namespace: "svc_test"})
	svc := NewService(config.NewDefault().Detection, logging.NewNopLogger(), m)

	_, err := svc.AnalyzeXYZ(context.Background(), &AnalyzeXYZInput{Content: bromideProbeXYZ})
	require.NoError(t, err)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.AnalysesTotal.WithLabelValues("success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.InteractionsTotal.WithLabelValues("halogen_bond", "inter")))

	_, err = svc.Analyze(context.Background(), &AnalyzeInput{
		Title: "mystery",
		Atoms: []chem.AtomDTO{{Symbol: "Zz"}},
	})
	require.Error(t, err)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.AnalysesTotal.WithLabelValues("error")))
}

func TestReportRendering(t *testing.T) {
	svc := newService(t, nil)
	res, err := svc.AnalyzeXYZ(context.Background(), &AnalyzeXYZInput{Content: bromideProbeXYZ})
	require.NoError(t, err)

	table := res.InteractionsTable()
	assert.Contains(t, table, "Type")
	assert.Contains(t, table, "halogen_bond")
	assert.Contains(t, table, "Br2-O3")
	assert.Contains(t, table, "2.75")
	assert.Contains(t, table, "175.4")
	assert.Contains(t, table, "C1-Br2-O3")
	assert.Contains(t, table, "Frag1->Frag2")
	assert.Contains(t, table, "inter")
}

func TestBondMatrix_Water(t *testing.T) {
	svc := newService(t, nil)
	res, err := svc.Analyze(context.Background(), &AnalyzeInput{
		Title: "water",
		Atoms: []chem.AtomDTO{
			{Symbol: "O", X: 0, Y: 0, Z: 0},
			{Symbol: "H", X: 0.96, Y: 0, Z: 0},
			{Symbol: "H", X: -0.24, Y: 0.93, Z: 0},
		},
	})
	require.NoError(t, err)

	want := "     0  1  2\n" +
		" 0   •  1  1\n" +
		" 1   1  •  •\n" +
		" 2   1  •  •\n"
	assert.Equal(t, want, res.BondMatrix())
}
