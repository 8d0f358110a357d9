package drift

import (
	"errors"
	"fmt"
)

// Errors returned by de-Doppler operations.
var (
	ErrEmptySpectrogram  = errors.New("drift: empty spectrogram")
	ErrRaggedSpectrogram = errors.New("drift: ragged spectrogram")
	ErrShapeMismatch     = errors.New("drift: destination shape mismatch")
	ErrWorkspaceShape    = errors.New("drift: workspace shape mismatch")
	ErrInvalidRateCount  = errors.New("drift: rate count must be positive")
)

// dims validates a column-major spectrogram and returns its (Nf, Nt) shape.
func dims(sg [][]float64) (nf, nt int, err error) {
	nt = len(sg)
	if nt == 0 || len(sg[0]) == 0 {
		return 0, 0, ErrEmptySpectrogram
	}

	nf = len(sg[0])
	for n, col := range sg {
		if len(col) != nf {
			return 0, 0, fmt.Errorf("%w: column %d has %d bins, want %d", ErrRaggedSpectrogram, n, len(col), nf)
		}
	}

	return nf, nt, nil
}

// checkMatrixShape verifies dst has ncols columns of nf bins each.
// It writes nothing, so callers can rely on dst being untouched on error.
func checkMatrixShape(dst [][]float64, nf, ncols int) error {
	if len(dst) != ncols {
		return fmt.Errorf("%w: destination has %d columns, want %d", ErrShapeMismatch, len(dst), ncols)
	}

	for i, col := range dst {
		if len(col) != nf {
			return fmt.Errorf("%w: destination column %d has %d bins, want %d", ErrShapeMismatch, i, len(col), nf)
		}
	}

	return nil
}

// NewFDR allocates a drift-rate matrix for nrates candidate rates: one
// Nf-bin column per rate, sized from the spectrogram's frequency axis.
// Column contents are unspecified until a backend fills them.
//
// Both the FFT backend ([FFTFDRTo]) and the integer backend ([IntFDRTo])
// populate matrices from this factory interchangeably.
func NewFDR(sg [][]float64, nrates int) ([][]float64, error) {
	nf, _, err := dims(sg)
	if err != nil {
		return nil, err
	}

	if nrates <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidRateCount, nrates)
	}

	fdr := make([][]float64, nrates)
	for i := range fdr {
		fdr[i] = make([]float64, nf)
	}

	return fdr, nil
}

// NewFDRForRates allocates a drift-rate matrix with one column per entry of
// rates, in order.
func NewFDRForRates(sg [][]float64, rates []float64) ([][]float64, error) {
	return NewFDR(sg, len(rates))
}
