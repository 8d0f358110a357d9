package drift

import (
	"errors"
	"testing"
)

func TestNewFDRShape(t *testing.T) {
	sg := rampSpectrogram(16, 4)

	fdr, err := NewFDR(sg, 5)
	if err != nil {
		t.Fatalf("NewFDR error: %v", err)
	}

	if len(fdr) != 5 {
		t.Fatalf("NewFDR columns: got=%d want=5", len(fdr))
	}

	for i, col := range fdr {
		if len(col) != 16 {
			t.Fatalf("NewFDR column %d bins: got=%d want=16", i, len(col))
		}
	}
}

func TestNewFDRForRatesShape(t *testing.T) {
	sg := rampSpectrogram(8, 3)
	rates := []float64{-1, 0, 0.5, 2}

	fdr, err := NewFDRForRates(sg, rates)
	if err != nil {
		t.Fatalf("NewFDRForRates error: %v", err)
	}

	if len(fdr) != len(rates) {
		t.Fatalf("NewFDRForRates columns: got=%d want=%d", len(fdr), len(rates))
	}

	if len(fdr[0]) != 8 {
		t.Fatalf("NewFDRForRates bins: got=%d want=8", len(fdr[0]))
	}
}

func TestNewFDRErrors(t *testing.T) {
	sg := rampSpectrogram(8, 3)

	if _, err := NewFDR(nil, 2); !errors.Is(err, ErrEmptySpectrogram) {
		t.Fatalf("empty spectrogram: got err=%v", err)
	}

	if _, err := NewFDR([][]float64{{}}, 2); !errors.Is(err, ErrEmptySpectrogram) {
		t.Fatalf("empty columns: got err=%v", err)
	}

	ragged := [][]float64{make([]float64, 8), make([]float64, 7)}
	if _, err := NewFDR(ragged, 2); !errors.Is(err, ErrRaggedSpectrogram) {
		t.Fatalf("ragged spectrogram: got err=%v", err)
	}

	if _, err := NewFDR(sg, 0); !errors.Is(err, ErrInvalidRateCount) {
		t.Fatalf("zero rates: got err=%v", err)
	}

	if _, err := NewFDRForRates(sg, nil); !errors.Is(err, ErrInvalidRateCount) {
		t.Fatalf("nil rates: got err=%v", err)
	}
}
