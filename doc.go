// Package drift computes frequency-drift-rate (de-Doppler) matrices from
// time-frequency power spectrograms.
//
// A narrowband signal whose frequency changes linearly over time smears its
// energy across spectrogram bins. De-dopplering compensates one candidate
// drift rate by circularly shifting time column n by n*rate bins before
// integrating over time, so a track drifting at that rate collapses into a
// single output bin. Repeating this for a set of candidate rates yields the
// drift-rate matrix: one time-integrated, drift-compensated spectrum per rate.
//
// Two backends populate the same (Nf, Nr) matrix layout:
//
//   - FFT backend ([FDShiftSum], [FFTFDR]): implements the shift via a phase
//     ramp on the half-spectrum of each column (shift theorem), supporting
//     fractional shifts. Columns are summed in the frequency domain before a
//     single inverse transform, so each rate costs Nt forward transforms but
//     only one backward transform.
//   - Integer backend ([IntShiftSum], [IntFDR]): rounds each column's shift to
//     whole bins and gathers directly. No FFT, no workspace, coarser alignment.
//
// # Usage
//
// One-shot calls allocate everything they need:
//
//	fdr, err := drift.FFTFDR(spectrogram, rates)
//
// For repeated calls against one spectrogram shape, plan once and reuse:
//
//	w, err := drift.NewWorkspace(nf, nt, drift.Options{})
//	fdr, err := drift.NewFDRForRates(spectrogram, rates)
//	err = drift.FFTFDRTo(fdr, spectrogram, rates, w)
//
// Spectrograms are column-major: sg[n] is the Nf-bin frequency column at time
// step n. The drift-rate matrix uses the same layout with one column per rate,
// in the order the rates were given.
//
// # Concurrency
//
// All operations are synchronous. A [Workspace] holds mutable scratch state,
// so at most one operation may use it at a time; partition rates across
// goroutines by giving each its own workspace. The spectrogram is never
// mutated and may be shared freely.
package drift
