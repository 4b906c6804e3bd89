// Package analysis provides the application-level service orchestrating a
// full structure analysis: geometry parsing, covalent bond and fragment
// detection, and the non-covalent interaction pipeline.  This package is the
// interface between the CLI/HTTP handlers and domain logic.
package analysis

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/xtalgeom/nciscan/internal/config"
	"github.com/xtalgeom/nciscan/internal/domain/elements"
	"github.com/xtalgeom/nciscan/internal/domain/nci"
	"github.com/xtalgeom/nciscan/internal/domain/structure"
	"github.com/xtalgeom/nciscan/internal/infrastructure/monitoring/logging"
	"github.com/xtalgeom/nciscan/internal/infrastructure/monitoring/prometheus"
	"github.com/xtalgeom/nciscan/pkg/errors"
	"github.com/xtalgeom/nciscan/pkg/types/chem"
	"github.com/xtalgeom/nciscan/pkg/xyz"
)

// Service defines the application operations for structure analysis.
type Service interface {
	// Analyze runs the full pipeline over an explicit atom list.
	Analyze(ctx context.Context, input *AnalyzeInput) (*Result, error)
	// AnalyzeXYZ parses an in-memory XYZ document and analyzes it.
	AnalyzeXYZ(ctx context.Context, input *AnalyzeXYZInput) (*Result, error)
	// AnalyzeFile reads and analyzes an XYZ file from disk.
	AnalyzeFile(ctx context.Context, path string, debug bool) (*Result, error)
}

// AnalyzeInput carries an explicit atom list.
type AnalyzeInput struct {
	Title string
	Atoms []chem.AtomDTO
	// Debug routes per-candidate detector decisions to the debug log.
	Debug bool
}

// AnalyzeXYZInput carries inline XYZ content.
type AnalyzeXYZInput struct {
	// Title overrides the XYZ comment line when non-empty.
	Title   string
	Content string
	Debug   bool
}

// Result is the outcome of one analysis: the transport DTO plus the
// underlying structure and interaction entries for report rendering.
type Result struct {
	Analysis chem.AnalysisDTO

	structure *structure.Structure
	entries   []nci.Entry
}

// HasInteractions reports whether any non-covalent interaction was found.
func (r *Result) HasInteractions() bool { return len(r.entries) > 0 }

type service struct {
	table     *elements.Table
	registry  *nci.Registry
	detection config.DetectionConfig
	bondOpts  structure.BondOptions
	logger    logging.Logger
	metrics   *prometheus.Metrics
}

// NewService builds the analysis service from detection settings.  The
// metrics handle may be nil; the CLI runs without exposition.
func NewService(detection config.DetectionConfig, logger logging.Logger, metrics *prometheus.Metrics) Service {
	if logger == nil {
		logger = logging.Default()
	}
	bondOpts := structure.DefaultBondOptions()
	if detection.Bond.Tolerance > 0 {
		bondOpts.Tolerance = detection.Bond.Tolerance
	}
	if detection.Bond.RadiiSource != "" {
		bondOpts.Source = chem.RadiiSource(detection.Bond.RadiiSource)
	}

	return &service{
		table:     elements.Default(),
		registry:  buildRegistry(detection),
		detection: detection,
		bondOpts:  bondOpts,
		logger:    logger.Named("analysis"),
		metrics:   metrics,
	}
}

// buildRegistry wires the built-in detectors with config-derived parameters.
func buildRegistry(detection config.DetectionConfig) *nci.Registry {
	hb := nci.DefaultHBondParams()
	if detection.HBond.MaxDistance > 0 {
		hb.MaxDistance = detection.HBond.MaxDistance
	}
	if detection.HBond.MinAngle > 0 {
		hb.MinAngle = detection.HBond.MinAngle
	}
	if len(detection.HBond.Donors) > 0 {
		hb.Donors = detection.HBond.Donors
	}
	if len(detection.HBond.Acceptors) > 0 {
		hb.Acceptors = detection.HBond.Acceptors
	}

	sh := nci.DefaultSigmaHoleParams()
	if detection.SigmaHole.VDWFraction > 0 {
		sh.VDWFraction = detection.SigmaHole.VDWFraction
	}
	if len(detection.SigmaHole.Acceptors) > 0 {
		sh.Acceptors = detection.SigmaHole.Acceptors
	}

	st := nci.StericParams{
		Tolerance:            detection.Steric.Tolerance,
		OnlyHydrogen:         detection.Steric.OnlyHydrogen,
		IgnoreSharedNeighbor: detection.Steric.IgnoreSharedNeighbor,
	}
	if st.Tolerance == 0 {
		st.Tolerance = nci.DefaultStericParams().Tolerance
	}

	r := nci.NewRegistry()
	_ = r.Register(nci.HydrogenBondDetector(hb))
	_ = r.Register(nci.HalogenBondDetector(sh))
	_ = r.Register(nci.ChalcogenBondDetector(sh))
	_ = r.Register(nci.StericClashDetector(st))
	return r
}

func (s *service) Analyze(ctx context.Context, input *AnalyzeInput) (*Result, error) {
	if input == nil || len(input.Atoms) == 0 {
		return nil, errors.InvalidParam("analysis requires at least one atom")
	}
	start := time.Now()

	res, err := s.run(ctx, input)
	if err != nil {
		if s.metrics != nil {
			s.metrics.ObserveAnalysisFailure()
		}
		s.logger.Error("analysis failed",
			logging.String("title", input.Title),
			logging.Err(err))
		return nil, err
	}

	elapsed := time.Since(start)
	res.Analysis.ElapsedMillis = elapsed.Milliseconds()
	if s.metrics != nil {
		s.metrics.ObserveAnalysisSuccess(
			res.Analysis.AtomCount,
			len(res.Analysis.Fragments),
			elapsed,
			res.Analysis.Interactions,
		)
	}
	s.logger.Info("analysis complete",
		logging.String("id", res.Analysis.ID),
		logging.String("title", res.Analysis.Title),
		logging.Int("atoms", res.Analysis.AtomCount),
		logging.Int("bonds", res.Analysis.BondCount),
		logging.Int("fragments", len(res.Analysis.Fragments)),
		logging.Int("interactions", len(res.Analysis.Interactions)),
		logging.Duration("elapsed", elapsed))
	return res, nil
}

func (s *service) AnalyzeXYZ(ctx context.Context, input *AnalyzeXYZInput) (*Result, error) {
	if input == nil {
		return nil, errors.InvalidParam("missing XYZ input")
	}
	mol, err := xyz.ParseString(input.Content)
	if err != nil {
		return nil, err
	}
	return s.Analyze(ctx, &AnalyzeInput{
		Title: titleFor(input.Title, mol.Comment),
		Atoms: toAtomDTOs(mol.Atoms),
		Debug: input.Debug,
	})
}

func (s *service) AnalyzeFile(ctx context.Context, path string, debug bool) (*Result, error) {
	mol, err := xyz.ParseFile(path)
	if err != nil {
		return nil, err
	}
	return s.Analyze(ctx, &AnalyzeInput{
		Title: titleFor("", mol.Comment),
		Atoms: toAtomDTOs(mol.Atoms),
		Debug: debug,
	})
}

// run executes the pipeline stages, checking for cancellation between them.
func (s *service) run(ctx context.Context, input *AnalyzeInput) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeTimeout, "analysis cancelled")
	}

	atoms := make([]structure.Atom, len(input.Atoms))
	for i, a := range input.Atoms {
		atoms[i] = structure.NewAtom(a.Symbol, a.X, a.Y, a.Z)
		atoms[i].Charge = a.Charge
	}
	st, err := structure.New(input.Title, atoms)
	if err != nil {
		return nil, err
	}

	if err := st.DetectBonds(s.table, s.bondOpts); err != nil {
		return nil, err
	}
	if err := st.DetectFragments(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeTimeout, "analysis cancelled")
	}

	store := nci.NewStore()
	err = s.registry.Detect(&nci.Context{
		Structure: st,
		Provider:  s.table,
		Store:     store,
		Log:       s.logger,
		Debug:     input.Debug,
	}, nci.DetectOptions{
		Enable: s.detection.EnableDetectors,
		Skip:   s.detection.SkipDetectors,
	})
	if err != nil {
		return nil, err
	}

	entries := store.All()
	return &Result{
		Analysis:  buildDTO(st, entries, input),
		structure: st,
		entries:   entries,
	}, nil
}

func buildDTO(st *structure.Structure, entries []nci.Entry, input *AnalyzeInput) chem.AnalysisDTO {
	fragments := make([]chem.FragmentDTO, 0, len(st.Fragments()))
	for _, f := range st.Fragments() {
		fragments = append(fragments, chem.FragmentDTO{
			Number:      f.ID + 1,
			AtomIndices: append([]int(nil), f.Atoms...),
		})
	}

	interactions := make([]chem.InteractionDTO, 0, len(entries))
	for _, e := range entries {
		interactions = append(interactions, chem.InteractionDTO{
			Type:       e.Record.Type,
			I:          e.Pair.I,
			J:          e.Pair.J,
			Pair:       st.PairLabel(e.Pair.I, e.Pair.J),
			Distance:   e.Record.Distance,
			Angle:      e.Record.Angle,
			AngleAtoms: e.Record.AngleAtoms,
			Fragments:  nci.FragmentLabel(st, e.Pair, e.Record),
			Scope:      e.Record.Scope,
		})
	}

	return chem.AnalysisDTO{
		ID:           uuid.NewString(),
		Title:        st.Title(),
		AtomCount:    st.AtomCount(),
		BondCount:    st.Bonds().BondCount(),
		Fragments:    fragments,
		Interactions: interactions,
	}
}

func titleFor(explicit, comment string) string {
	if explicit != "" {
		return explicit
	}
	if comment != "" {
		return comment
	}
	return "untitled"
}

func toAtomDTOs(atoms []xyz.Atom) []chem.AtomDTO {
	out := make([]chem.AtomDTO, len(atoms))
	for i, a := range atoms {
		out[i] = chem.AtomDTO{Symbol: a.Symbol, X: a.X, Y: a.Y, Z: a.Z}
	}
	return out
}
