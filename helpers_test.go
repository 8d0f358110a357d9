package drift

import "math"

// makeSpectrogram builds an nf x nt column-major spectrogram with
// sample(k, n) at bin k, time n.
func makeSpectrogram(nf, nt int, sample func(k, n int) float64) [][]float64 {
	sg := make([][]float64, nt)
	for n := range sg {
		sg[n] = make([]float64, nf)
		for k := range sg[n] {
			sg[n][k] = sample(k, n)
		}
	}

	return sg
}

// rampSpectrogram is a deterministic non-flat test input.
func rampSpectrogram(nf, nt int) [][]float64 {
	return makeSpectrogram(nf, nt, func(k, n int) float64 {
		return math.Sin(float64(3*k+1)) + 0.25*float64(n) + 0.01*float64(k*n)
	})
}

// timeSum returns the plain column-wise sum of sg (zero-drift integration).
func timeSum(sg [][]float64) []float64 {
	out := make([]float64, len(sg[0]))
	for _, col := range sg {
		for k, v := range col {
			out[k] += v
		}
	}

	return out
}

func maxAbsDiff(a, b []float64) float64 {
	maxDiff := 0.0
	for i := range a {
		d := math.Abs(a[i] - b[i])
		if d > maxDiff {
			maxDiff = d
		}
	}

	return maxDiff
}
