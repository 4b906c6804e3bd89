package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/xtalgeom/nciscan/internal/application/analysis"
	"github.com/xtalgeom/nciscan/internal/infrastructure/monitoring/logging"
	"github.com/xtalgeom/nciscan/pkg/errors"
	"github.com/xtalgeom/nciscan/pkg/types/chem"
)

// AnalysisHandler serves the /api/v1/analyses resource.
type AnalysisHandler struct {
	svc    analysis.Service
	logger logging.Logger
}

// NewAnalysisHandler constructs an AnalysisHandler.
func NewAnalysisHandler(svc analysis.Service, logger logging.Logger) *AnalysisHandler {
	return &AnalysisHandler{svc: svc, logger: logger.Named("handler")}
}

// CreateAnalysisRequest is the request body for POST /api/v1/analyses.
// Exactly one of XYZ (inline document) or Atoms must be supplied.
type CreateAnalysisRequest struct {
	Title string         `json:"title"`
	XYZ   string         `json:"xyz"`
	Atoms []chem.AtomDTO `json:"atoms"`
	Debug bool           `json:"debug"`
}

// Create runs an analysis and returns the result DTO.
func (h *AnalysisHandler) Create(c *gin.Context) {
	var req CreateAnalysisRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeAppError(c, errors.InvalidParam("malformed request body").WithCause(err))
		return
	}

	var (
		res *analysis.Result
		err error
	)
	switch {
	case req.XYZ != "" && len(req.Atoms) > 0:
		writeAppError(c, errors.InvalidParam("supply either xyz or atoms, not both"))
		return
	case req.XYZ != "":
		res, err = h.svc.AnalyzeXYZ(c.Request.Context(), &analysis.AnalyzeXYZInput{
			Title:   req.Title,
			Content: req.XYZ,
			Debug:   req.Debug,
		})
	case len(req.Atoms) > 0:
		res, err = h.svc.Analyze(c.Request.Context(), &analysis.AnalyzeInput{
			Title: req.Title,
			Atoms: req.Atoms,
			Debug: req.Debug,
		})
	default:
		writeAppError(c, errors.InvalidParam("request carries neither xyz content nor atoms"))
		return
	}
	if err != nil {
		writeAppError(c, err)
		return
	}

	c.JSON(http.StatusCreated, res.Analysis)
}
