package drift

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
)

// realPlan is the subset of the algo-fft real-input plan surface this package
// uses. Keeping it as a local interface avoids coupling the workspace to one
// concrete plan type.
type realPlan interface {
	Forward(dst []complex128, src []float64) error
	Inverse(dst []float64, src []complex128) error
	Len() int
	SpectrumLen() int
}

// Options configures workspace construction.
type Options struct {
	// Planner selects the algo-fft planning effort. The zero value
	// (PlannerEstimate) plans quickly; callers that reuse one workspace across
	// many rates can afford PlannerMeasure or PlannerPatient for faster
	// per-rate execution.
	Planner algofft.PlannerMode
}

// Workspace owns the scratch buffers and pre-planned transform for one
// spectrogram shape: a half-spectrum column per time sample, a time-summed
// half-spectrum vector, and a real FFT plan of length Nf. Planning happens
// once in the constructor; per-rate calls only execute.
//
// A workspace is valid only for the (Nf, Nt) shape it was built with, and its
// scratch buffers are overwritten by every operation, so a single workspace
// must not be used from more than one goroutine at a time.
type Workspace struct {
	nf, nt  int
	nbins   int // Nf/2 + 1 half-spectrum bins
	scratch [][]complex128
	sum     []complex128
	plan    realPlan
}

// NewWorkspace builds a workspace for an Nf-bin by Nt-column spectrogram.
// Nf must be a transform length the planner supports (powers of two always
// are).
func NewWorkspace(nf, nt int, opts Options) (*Workspace, error) {
	if nf <= 0 || nt <= 0 {
		return nil, ErrEmptySpectrogram
	}

	plan, err := algofft.NewPlanReal64WithOptions(nf, algofft.PlanOptions{Planner: opts.Planner})
	if err != nil {
		return nil, fmt.Errorf("drift: planning %d-bin transform: %w", nf, err)
	}

	nbins := plan.SpectrumLen()

	scratch := make([][]complex128, nt)
	for n := range scratch {
		scratch[n] = make([]complex128, nbins)
	}

	return &Workspace{
		nf:      nf,
		nt:      nt,
		nbins:   nbins,
		scratch: scratch,
		sum:     make([]complex128, nbins),
		plan:    plan,
	}, nil
}

// NewWorkspaceFor builds a workspace sized for sg with default options.
func NewWorkspaceFor(sg [][]float64) (*Workspace, error) {
	nf, nt, err := dims(sg)
	if err != nil {
		return nil, err
	}

	return NewWorkspace(nf, nt, Options{})
}

// Shape returns the (Nf, Nt) spectrogram shape the workspace was built for.
func (w *Workspace) Shape() (nf, nt int) {
	return w.nf, w.nt
}

// checkShape rejects spectrogram shapes the workspace was not built for.
func (w *Workspace) checkShape(nf, nt int) error {
	if nf != w.nf || nt != w.nt {
		return fmt.Errorf("%w: workspace is %dx%d, spectrogram is %dx%d", ErrWorkspaceShape, w.nf, w.nt, nf, nt)
	}

	return nil
}

// loadAndRamp forward-transforms every spectrogram column into the scratch
// matrix and applies the phase ramp for rate in place. The scratch contents
// for any previous rate are destroyed.
func (w *Workspace) loadAndRamp(sg [][]float64, rate float64) error {
	for n, col := range sg {
		dst := w.scratch[n]

		if err := w.plan.Forward(dst, col); err != nil {
			return fmt.Errorf("drift: forward transform of column %d: %w", n, err)
		}

		for k := range dst {
			dst[k] *= Phasor(k, n, rate, w.nf)
		}

		// A fractional shift of a real column is not itself real: the phase
		// ramp leaves a nonzero imaginary part at the Nyquist bin, which the
		// real inverse transform has no slot for. Project DC and Nyquist to
		// real, taking the real part of the shifted column (c2r convention).
		dst[0] = complex(real(dst[0]), 0)
		dst[len(dst)-1] = complex(real(dst[len(dst)-1]), 0)
	}

	return nil
}
