package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xtalgeom/nciscan/internal/application/analysis"
	"github.com/xtalgeom/nciscan/internal/config"
	"github.com/xtalgeom/nciscan/internal/infrastructure/monitoring/logging"
	"github.com/xtalgeom/nciscan/internal/infrastructure/monitoring/prometheus"
	"github.com/xtalgeom/nciscan/internal/interfaces/http/handlers"
	"github.com/xtalgeom/nciscan/pkg/types/chem"
)

const probeXYZ = `3
bromide probe
C   0.0         0.0         0.0
Br  1.91        0.0         0.0
O   4.65114192  0.22054703  0.0
`

func newTestRouter(t *testing.T) (*httptest.Server, *prometheus.Metrics) {
	t.Helper()
	cfg := config.NewDefault()
	cfg.Server.Mode = "test"

	log := logging.NewNopLogger()
	metrics := prometheus.New(prometheus.Options{Namespace: "http_test"})
	svc := analysis.NewService(cfg.Detection, log, metrics)

	router := NewRouter(RouterConfig{
		AnalysisHandler: handlers.NewAnalysisHandler(svc, log),
		HealthHandler:   handlers.NewHealthHandler("test"),
		Logger:          log,
		Metrics:         metrics,
		Server:          cfg.Server,
		MetricsPath:     cfg.Metrics.Path,
	})

	ts := httptest.NewServer(router)
	t.Cleanup(ts.Close)
	return ts, metrics
}

func postJSON(t *testing.T, url string, body interface{}) *http.Response {
	t.Helper()
	buf, err := json.Marshal(body)
	require.NoError(t, err)
	resp, err := http.Post(url, "application/json", bytes.NewReader(buf))
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func TestCreateAnalysis_FromXYZ(t *testing.T) {
	ts, _ := newTestRouter(t)

	resp := postJSON(t, ts.URL+"/api/v1/analyses", map[string]interface{}{"xyz": probeXYZ})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var dto chem.AnalysisDTO
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&dto))
	assert.NotEmpty(t, dto.ID)
	assert.Equal(t, "bromide probe", dto.Title)
	require.Len(t, dto.Interactions, 1)
	assert.Equal(t, chem.HalogenBond, dto.Interactions[0].Type)
	assert.Equal(t, "Frag1->Frag2", dto.Interactions[0].Fragments)
}

func TestCreateAnalysis_FromAtoms(t *testing.T) {
	ts, _ := newTestRouter(t)

	resp := postJSON(t, ts.URL+"/api/v1/analyses", map[string]interface{}{
		"title": "water",
		"atoms": []chem.AtomDTO{
			{Symbol: "O", X: 0, Y: 0, Z: 0},
			{Symbol: "H", X: 0.96, Y: 0, Z: 0},
			{Symbol: "H", X: -0.24, Y: 0.93, Z: 0},
		},
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var dto chem.AnalysisDTO
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&dto))
	assert.Equal(t, "water", dto.Title)
	assert.Equal(t, 2, dto.BondCount)
	assert.Empty(t, dto.Interactions)
}

func TestCreateAnalysis_BadRequests(t *testing.T) {
	ts, _ := newTestRouter(t)
	url := ts.URL + "/api/v1/analyses"

	// Neither xyz nor atoms.
	resp := postJSON(t, url, map[string]interface{}{"title": "empty"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// Both xyz and atoms.
	resp = postJSON(t, url, map[string]interface{}{
		"xyz":   probeXYZ,
		"atoms": []chem.AtomDTO{{Symbol: "H"}},
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// Malformed XYZ document.
	resp = postJSON(t, url, map[string]interface{}{"xyz": "garbage"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var errResp handlers.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&errResp))
	assert.Equal(t, "XYZ_002", errResp.Code)
}

func TestCreateAnalysis_UnknownElement(t *testing.T) {
	ts, _ := newTestRouter(t)

	resp := postJSON(t, ts.URL+"/api/v1/analyses", map[string]interface{}{
		"atoms": []chem.AtomDTO{{Symbol: "Zz"}},
	})
	// Bond detection failure maps to 422.
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
}

func TestHealthz(t *testing.T) {
	ts, _ := newTestRouter(t)

	resp, err := http.Get(ts.URL + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var health handlers.HealthResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&health))
	assert.Equal(t, "ok", health.Status)
	assert.Equal(t, "test", health.Version)
}

func TestMetricsEndpoint(t *testing.T) {
	ts, _ := newTestRouter(t)

	// Generate one request worth of metrics first.
	postJSON(t, ts.URL+"/api/v1/analyses", map[string]interface{}{"xyz": probeXYZ})

	resp, err := http.Get(ts.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	buf := new(bytes.Buffer)
	_, err = buf.ReadFrom(resp.Body)
	require.NoError(t, err)
	body := buf.String()
	assert.Contains(t, body, "http_test_analyses_total")
	assert.Contains(t, body, "http_test_http_requests_total")
	assert.Contains(t, body, `path="/api/v1/analyses"`)
}
