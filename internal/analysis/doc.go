// Package analysis measures recorded circle traces.
//
// The main use is checking the scale pulse: [MeasureDrift] reports the
// range a circle's scale covered and [DominantPeriod] the period of its
// oscillation, computed with an FFT.
package analysis
