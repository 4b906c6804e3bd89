package prometheus

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xtalgeom/nciscan/pkg/types/chem"
)

func TestObserveAnalysisSuccess(t *testing.T) {
	m := New(Options{Namespace: "test"})

	m.ObserveAnalysisSuccess(8, 2, 3*time.Millisecond, []chem.InteractionDTO{
		{Type: chem.HalogenBond, Scope: chem.ScopeInter},
		{Type: chem.HBond, Scope: chem.ScopeInter},
		{Type: chem.HBond, Scope: chem.ScopeIntra},
	})

	assert.Equal(t, 1.0, testutil.ToFloat64(m.AnalysesTotal.WithLabelValues("success")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.InteractionsTotal.WithLabelValues("H-bond", "inter"))+
		testutil.ToFloat64(m.InteractionsTotal.WithLabelValues("H-bond", "intra")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.InteractionsTotal.WithLabelValues("halogen_bond", "inter")))
}

func TestObserveAnalysisFailure(t *testing.T) {
	m := New(Options{})
	m.ObserveAnalysisFailure()
	m.ObserveAnalysisFailure()
	assert.Equal(t, 2.0, testutil.ToFloat64(m.AnalysesTotal.WithLabelValues("error")))
}

func TestHandlerServesRegisteredSeries(t *testing.T) {
	m := New(Options{Namespace: "test"})
	m.ObserveHTTPRequest("POST", "/api/v1/analyses", 200, 12*time.Millisecond)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/metrics", nil)
	m.Handler().ServeHTTP(rec, req)

	require.Equal(t, 200, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "test_http_requests_total")
	assert.Contains(t, body, `path="/api/v1/analyses"`)
}

func TestNamespaceDefault(t *testing.T) {
	m := New(Options{})
	m.AnalysesTotal.WithLabelValues("success").Inc()

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	assert.Contains(t, rec.Body.String(), "nciscan_analyses_total")
}
