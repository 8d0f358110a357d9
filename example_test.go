package drift_test

import (
	"fmt"

	drift "github.com/cwbudde/algo-drift"
)

func ExampleFFTFDR() {
	// A flat spectrogram has no structure to misalign, so every rate column
	// reduces to the plain time sum.
	sg := make([][]float64, 4)
	for n := range sg {
		sg[n] = make([]float64, 8)
		for k := range sg[n] {
			sg[n][k] = 1
		}
	}

	fdr, _ := drift.FFTFDR(sg, []float64{0, 1})

	fmt.Printf("rate 0, bin 0: %.0f\n", fdr[0][0])
	fmt.Printf("rate 1, bin 0: %.0f\n", fdr[1][0])
	// Output:
	// rate 0, bin 0: 4
	// rate 1, bin 0: 4
}

func ExampleFDShiftSum() {
	// A track drifting up one bin per time step: bin 2, 3, 4, 5. Shifting
	// column n by -n bins re-aligns all of its energy into bin 2.
	const nf, nt = 8, 4

	sg := make([][]float64, nt)
	for n := range sg {
		sg[n] = make([]float64, nf)
		sg[n][2+n] = 1
	}

	aligned, _ := drift.FDShiftSum(sg, -1)

	peak, power := 0, aligned[0]
	for k, v := range aligned {
		if v > power {
			peak, power = k, v
		}
	}

	fmt.Printf("peak at bin %d with power %.0f\n", peak, power)
	// Output:
	// peak at bin 2 with power 4
}

func ExampleIntShiftSum() {
	// The integer backend performs the same alignment with whole-bin gathers.
	const nf, nt = 8, 4

	sg := make([][]float64, nt)
	for n := range sg {
		sg[n] = make([]float64, nf)
		sg[n][2+n] = 1
	}

	aligned, _ := drift.IntShiftSum(sg, -1)

	fmt.Printf("bin 2 power: %.0f\n", aligned[2])
	// Output:
	// bin 2 power: 4
}
