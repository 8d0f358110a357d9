package drift

import "math"

// Phasor returns the de-drift phase factor exp(-i*2*pi*k*n*rate/nfft) for
// half-spectrum bin k of time column n, where nfft is the full frequency-axis
// length (not the half-spectrum length; conjugate symmetry covers the rest).
//
// By the shift theorem, multiplying bin k of column n's forward transform by
// this factor circularly shifts the column by n*rate bins, fractional shifts
// included, without materializing a shifted copy. The negative exponent fixes
// the shift direction: energy at bin k0 in column n moves to bin
// (k0 + n*rate) mod nfft.
func Phasor(k, n int, rate float64, nfft int) complex128 {
	theta := -2 * math.Pi * float64(k) * float64(n) * rate / float64(nfft)
	sin, cos := math.Sincos(theta)

	return complex(cos, sin)
}
