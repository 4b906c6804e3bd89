package nci

import (
	"sort"

	"github.com/xtalgeom/nciscan/internal/domain/structure"
	"github.com/xtalgeom/nciscan/internal/infrastructure/monitoring/logging"
	"github.com/xtalgeom/nciscan/pkg/errors"
)

// Context carries everything a detector needs for one run.  Detectors read
// the structure's bond graph and fragments and append to Store; they never
// mutate the structure itself.
type Context struct {
	Structure *structure.Structure
	Provider  structure.PropertyProvider
	Store     *Store
	Log       logging.Logger
	// Debug enables per-candidate decision logging; off by default because
	// the volume is quadratic in atom count.
	Debug bool
}

// DetectorFunc scans the structure in ctx and records what it finds.
type DetectorFunc func(ctx *Context) error

// Descriptor registers one detector with the pipeline.
type Descriptor struct {
	// Name identifies the detector for enable/skip selection and logging.
	Name string
	// Priority orders execution; lower runs earlier.  Suppression rules
	// (steric clashes yielding to directional interactions) depend on the
	// directional detectors having run first.
	Priority int
	// EnabledByDefault controls whether the detector runs without being
	// explicitly enabled.
	EnabledByDefault bool
	Run              DetectorFunc
}

// Registry holds the detector pipeline.  Detection runs descriptors in
// ascending priority; equal priorities run in registration order.
type Registry struct {
	byName map[string]Descriptor
	order  []string
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{byName: make(map[string]Descriptor)}
}

// Register adds a detector.  Names must be unique.
func (r *Registry) Register(d Descriptor) error {
	if d.Name == "" {
		return errors.InvalidParam("detector name must be non-empty")
	}
	if d.Run == nil {
		return errors.InvalidParam("detector has no run function").WithDetail(d.Name)
	}
	if _, exists := r.byName[d.Name]; exists {
		return errors.New(errors.ErrCodeDetectorDuplicate, "detector already registered").
			WithDetail(d.Name)
	}
	r.byName[d.Name] = d
	r.order = append(r.order, d.Name)
	return nil
}

// Names returns the registered detector names in priority order.
func (r *Registry) Names() []string {
	descs := r.sorted()
	out := make([]string, len(descs))
	for i, d := range descs {
		out[i] = d.Name
	}
	return out
}

// Lookup returns the descriptor registered under name.
func (r *Registry) Lookup(name string) (Descriptor, error) {
	d, ok := r.byName[name]
	if !ok {
		return Descriptor{}, errors.New(errors.ErrCodeDetectorNotFound, "no such detector").
			WithDetail(name)
	}
	return d, nil
}

func (r *Registry) sorted() []Descriptor {
	descs := make([]Descriptor, 0, len(r.order))
	for _, name := range r.order {
		descs = append(descs, r.byName[name])
	}
	sort.SliceStable(descs, func(i, j int) bool {
		return descs[i].Priority < descs[j].Priority
	})
	return descs
}

// DetectOptions selects which registered detectors participate in a run.
type DetectOptions struct {
	// Enable activates detectors that are off by default.
	Enable []string
	// Skip deactivates detectors regardless of their default.
	Skip []string
}

// Detect runs the selected detectors against ctx in priority order.  Every
// name in Enable and Skip must be registered.  The structure in ctx must
// have its bond graph and fragments computed; detectors rely on both.
func (r *Registry) Detect(ctx *Context, opts DetectOptions) error {
	enabled := make(map[string]bool, len(r.byName))
	for name, d := range r.byName {
		enabled[name] = d.EnabledByDefault
	}
	for _, name := range opts.Enable {
		if _, ok := r.byName[name]; !ok {
			return errors.New(errors.ErrCodeDetectorNotFound, "cannot enable unknown detector").
				WithDetail(name)
		}
		enabled[name] = true
	}
	for _, name := range opts.Skip {
		if _, ok := r.byName[name]; !ok {
			return errors.New(errors.ErrCodeDetectorNotFound, "cannot skip unknown detector").
				WithDetail(name)
		}
		enabled[name] = false
	}

	log := ctx.Log
	if log == nil {
		log = logging.NewNopLogger()
		ctx.Log = log
	}

	for _, d := range r.sorted() {
		if !enabled[d.Name] {
			continue
		}
		before := ctx.Store.Len()
		if err := d.Run(ctx); err != nil {
			return errors.Wrap(err, errors.ErrCodeDetectorFailed, "detector failed").
				WithDetail(d.Name)
		}
		log.Debug("detector finished",
			logging.String("detector", d.Name),
			logging.Int("records", ctx.Store.Len()-before))
	}
	return nil
}

// DefaultRegistry returns a Registry populated with the built-in detectors
// under their default parameters.  Directional detectors run first; the
// steric-clash detector runs last and is opt-in.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	// Registration cannot fail here: names are unique literals.
	_ = r.Register(HydrogenBondDetector(DefaultHBondParams()))
	_ = r.Register(HalogenBondDetector(DefaultSigmaHoleParams()))
	_ = r.Register(ChalcogenBondDetector(DefaultSigmaHoleParams()))
	_ = r.Register(StericClashDetector(DefaultStericParams()))
	return r
}
