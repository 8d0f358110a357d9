package drift

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// intShiftOf returns the whole-bin shift for time column n at the given rate,
// reduced to [0, nf).
func intShiftOf(n int, rate float64, nf int) int {
	s := int(math.Round(float64(n)*rate)) % nf
	if s < 0 {
		s += nf
	}

	return s
}

// IntShiftTo writes the integer-shifted spectrogram for one rate into dst,
// which must match the spectrogram's shape. Column n is column n of sg
// circularly shifted by round(n*rate) bins, the whole-bin approximation of
// [FDShiftTo] with the same shift direction.
func IntShiftTo(dst, sg [][]float64, rate float64) error {
	nf, nt, err := dims(sg)
	if err != nil {
		return err
	}

	if err := checkMatrixShape(dst, nf, nt); err != nil {
		return err
	}

	for n, col := range sg {
		s := intShiftOf(n, rate, nf)
		copy(dst[n][s:], col[:nf-s])
		copy(dst[n][:s], col[nf-s:])
	}

	return nil
}

// IntShift returns the integer-shifted spectrogram for one rate.
func IntShift(sg [][]float64, rate float64) ([][]float64, error) {
	nf, nt, err := dims(sg)
	if err != nil {
		return nil, err
	}

	dst := make([][]float64, nt)
	for n := range dst {
		dst[n] = make([]float64, nf)
	}

	if err := IntShiftTo(dst, sg, rate); err != nil {
		return nil, err
	}

	return dst, nil
}

// IntShiftSumTo writes the time-integrated spectrum for one rate into dst
// using whole-bin shifts: column n contributes its samples shifted by
// round(n*rate) bins. dst must have Nf bins and is zeroed before
// accumulation. No FFT and no workspace are involved.
func IntShiftSumTo(dst []float64, sg [][]float64, rate float64) error {
	nf, _, err := dims(sg)
	if err != nil {
		return err
	}

	if len(dst) != nf {
		return fmt.Errorf("%w: destination has %d bins, want %d", ErrShapeMismatch, len(dst), nf)
	}

	for i := range dst {
		dst[i] = 0
	}

	for n, col := range sg {
		s := intShiftOf(n, rate, nf)

		// col[k] lands at (k+s) mod nf: accumulate the two wrap segments.
		vecmath.AddBlockInPlace(dst[s:], col[:nf-s])
		if s > 0 {
			vecmath.AddBlockInPlace(dst[:s], col[nf-s:])
		}
	}

	return nil
}

// IntShiftSum returns the whole-bin-shifted, time-integrated spectrum for one
// rate.
func IntShiftSum(sg [][]float64, rate float64) ([]float64, error) {
	nf, _, err := dims(sg)
	if err != nil {
		return nil, err
	}

	dst := make([]float64, nf)
	if err := IntShiftSumTo(dst, sg, rate); err != nil {
		return nil, err
	}

	return dst, nil
}

// IntFDRTo fills dst with one [IntShiftSumTo] spectrum per rate. dst must
// have exactly len(rates) columns of Nf bins; the column layout matches
// [FFTFDRTo], so the two backends are interchangeable behind [NewFDRForRates]
// buffers.
func IntFDRTo(dst, sg [][]float64, rates []float64) error {
	nf, _, err := dims(sg)
	if err != nil {
		return err
	}

	if err := checkMatrixShape(dst, nf, len(rates)); err != nil {
		return err
	}

	for i, rate := range rates {
		if err := IntShiftSumTo(dst[i], sg, rate); err != nil {
			return err
		}
	}

	return nil
}

// IntFDR computes the drift-rate matrix for the given candidate rates using
// whole-bin shifts.
func IntFDR(sg [][]float64, rates []float64) ([][]float64, error) {
	fdr, err := NewFDRForRates(sg, rates)
	if err != nil {
		return nil, err
	}

	if err := IntFDRTo(fdr, sg, rates); err != nil {
		return nil, err
	}

	return fdr, nil
}
