package engine

import "log/slog"

// Parameters configures one Run call. Parameters are immutable for the
// duration of the call: build one with DefaultParameters and zero or
// more Options, then pass it to Run.
type Parameters struct {
	// TessSizeHint preallocates the triangulator's internal storage.
	TessSizeHint int
	// Tolerance is the largest candidate-triangle edge length, in user
	// coordinates, the refinement loop tolerates before stopping.
	Tolerance float64
	// MaxIterations bounds the number of refinement passes.
	MaxIterations int
	// MaxNodes bounds total mesh vertex count.
	MaxNodes int
	// SkinnyRatio is the longest/shortest edge ratio above which a
	// triangle adjacent to a candidate triangle is also subdivided.
	SkinnyRatio float64
	// Multithreading enables a bounded worker pool for function
	// evaluation.
	Multithreading bool
	// Workers bounds the worker pool size when Multithreading is true;
	// zero selects a reasonable default.
	Workers int
	// PlotData requests the extended return form (per-vertex quadrants,
	// per-edge phase differences, and the unmap function).
	PlotData bool
	// Logger receives diagnostic warnings (e.g. LimitExceeded). A nil
	// Logger is replaced by a discard logger; Run never logs below Warn.
	Logger *slog.Logger
}

// Defaults named in the parameters record.
const (
	DefaultTessSizeHint  = 5000
	DefaultTolerance     = 1e-9
	DefaultMaxIterations = 100
	DefaultMaxNodes      = 500000
	DefaultSkinnyRatio   = 3.0
	defaultWorkers       = 8
)

// DefaultParameters returns a Parameters record with every default
// named in the engine's configuration contract.
func DefaultParameters() Parameters {
	return Parameters{
		TessSizeHint:   DefaultTessSizeHint,
		Tolerance:      DefaultTolerance,
		MaxIterations:  DefaultMaxIterations,
		MaxNodes:       DefaultMaxNodes,
		SkinnyRatio:    DefaultSkinnyRatio,
		Multithreading: false,
		Workers:        defaultWorkers,
		Logger:         discardLogger(),
	}
}

// Option is a functional option configuring Parameters.
type Option func(*Parameters)

// WithTessSizeHint overrides the triangulator's preallocation hint.
// Panics if hint < 1.
func WithTessSizeHint(hint int) Option {
	return func(p *Parameters) {
		if hint < 1 {
			panic("engine: TessSizeHint must be >= 1")
		}
		p.TessSizeHint = hint
	}
}

// WithTolerance overrides the refinement stop tolerance, in user
// coordinates. Panics if tol <= 0.
func WithTolerance(tol float64) Option {
	return func(p *Parameters) {
		if tol <= 0 {
			panic("engine: Tolerance must be > 0")
		}
		p.Tolerance = tol
	}
}

// WithMaxIterations overrides the refinement iteration cap. Panics if
// n < 0.
func WithMaxIterations(n int) Option {
	return func(p *Parameters) {
		if n < 0 {
			panic("engine: MaxIterations must be >= 0")
		}
		p.MaxIterations = n
	}
}

// WithMaxNodes overrides the mesh vertex count cap. Panics if n < 1.
func WithMaxNodes(n int) Option {
	return func(p *Parameters) {
		if n < 1 {
			panic("engine: MaxNodes must be >= 1")
		}
		p.MaxNodes = n
	}
}

// WithSkinnyRatio overrides the skinny-triangle threshold. Panics if
// ratio <= 1.
func WithSkinnyRatio(ratio float64) Option {
	return func(p *Parameters) {
		if ratio <= 1 {
			panic("engine: SkinnyRatio must be > 1")
		}
		p.SkinnyRatio = ratio
	}
}

// WithMultithreading enables parallel function evaluation with the
// given worker count. A workers value <= 1 disables multithreading and
// leaves Workers unchanged.
func WithMultithreading(workers int) Option {
	return func(p *Parameters) {
		p.Multithreading = workers > 1
		if workers > 1 {
			p.Workers = workers
		}
	}
}

// WithPlotData requests the extended return form.
func WithPlotData() Option {
	return func(p *Parameters) { p.PlotData = true }
}

// WithLogger overrides the diagnostic logger. A nil logger restores the
// default discard logger.
func WithLogger(l *slog.Logger) Option {
	return func(p *Parameters) {
		if l == nil {
			l = discardLogger()
		}
		p.Logger = l
	}
}
