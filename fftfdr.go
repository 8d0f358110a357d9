package drift

import "fmt"

// FDShiftTo writes the full de-dopplered spectrogram for one rate into dst,
// which must match the spectrogram's shape. Column n of the result is column
// n of sg circularly shifted by n*rate bins; for fractional shifts this is
// the real part of the complex-shifted column. The workspace scratch buffers
// are overwritten; sg is untouched.
func FDShiftTo(dst, sg [][]float64, rate float64, w *Workspace) error {
	nf, nt, err := dims(sg)
	if err != nil {
		return err
	}

	if err := w.checkShape(nf, nt); err != nil {
		return err
	}

	if err := checkMatrixShape(dst, nf, nt); err != nil {
		return err
	}

	if err := w.loadAndRamp(sg, rate); err != nil {
		return err
	}

	for n := range dst {
		if err := w.plan.Inverse(dst[n], w.scratch[n]); err != nil {
			return fmt.Errorf("drift: backward transform of column %d: %w", n, err)
		}
	}

	return nil
}

// FDShift returns the full de-dopplered spectrogram for one rate, building an
// ephemeral workspace. For repeated calls use [FDShiftTo] with a shared
// workspace.
func FDShift(sg [][]float64, rate float64) ([][]float64, error) {
	w, err := NewWorkspaceFor(sg)
	if err != nil {
		return nil, err
	}

	dst := make([][]float64, w.nt)
	for n := range dst {
		dst[n] = make([]float64, w.nf)
	}

	if err := FDShiftTo(dst, sg, rate, w); err != nil {
		return nil, err
	}

	return dst, nil
}

// FDShiftSumTo writes the time-integrated, drift-compensated spectrum for one
// rate into dst, which must have Nf bins. This is the hot path: after the
// phase multiply, all Nt half-spectrum columns are summed in the frequency
// domain so that a single backward transform replaces Nt of them (linearity
// of the inverse transform). The workspace scratch buffers are overwritten.
func FDShiftSumTo(dst []float64, sg [][]float64, rate float64, w *Workspace) error {
	nf, nt, err := dims(sg)
	if err != nil {
		return err
	}

	if err := w.checkShape(nf, nt); err != nil {
		return err
	}

	if len(dst) != nf {
		return fmt.Errorf("%w: destination has %d bins, want %d", ErrShapeMismatch, len(dst), nf)
	}

	if err := w.loadAndRamp(sg, rate); err != nil {
		return err
	}

	sum := w.sum
	copy(sum, w.scratch[0])

	for n := 1; n < nt; n++ {
		col := w.scratch[n]
		for k := range sum {
			sum[k] += col[k]
		}
	}

	if err := w.plan.Inverse(dst, sum); err != nil {
		return fmt.Errorf("drift: backward transform: %w", err)
	}

	return nil
}

// FDShiftSum returns the time-integrated, drift-compensated spectrum for one
// rate, building an ephemeral workspace.
func FDShiftSum(sg [][]float64, rate float64) ([]float64, error) {
	w, err := NewWorkspaceFor(sg)
	if err != nil {
		return nil, err
	}

	dst := make([]float64, w.nf)
	if err := FDShiftSumTo(dst, sg, rate, w); err != nil {
		return nil, err
	}

	return dst, nil
}

// FFTFDRTo fills dst with one [FDShiftSumTo] spectrum per rate: dst[i] is the
// drift-compensated spectrum for rates[i]. dst must have exactly len(rates)
// columns of Nf bins (see [NewFDRForRates]). Rates are processed in order;
// nothing is reordered or deduplicated.
func FFTFDRTo(dst, sg [][]float64, rates []float64, w *Workspace) error {
	nf, nt, err := dims(sg)
	if err != nil {
		return err
	}

	if err := w.checkShape(nf, nt); err != nil {
		return err
	}

	if err := checkMatrixShape(dst, nf, len(rates)); err != nil {
		return err
	}

	for i, rate := range rates {
		if err := FDShiftSumTo(dst[i], sg, rate, w); err != nil {
			return err
		}
	}

	return nil
}

// FFTFDR computes the drift-rate matrix for the given candidate rates,
// allocating the result and an ephemeral workspace shared across all rates.
func FFTFDR(sg [][]float64, rates []float64) ([][]float64, error) {
	fdr, err := NewFDRForRates(sg, rates)
	if err != nil {
		return nil, err
	}

	w, err := NewWorkspaceFor(sg)
	if err != nil {
		return nil, err
	}

	if err := FFTFDRTo(fdr, sg, rates, w); err != nil {
		return nil, err
	}

	return fdr, nil
}
