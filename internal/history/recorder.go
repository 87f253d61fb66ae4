// Package history records per-tick flight samples for post-run plotting.
// The recorder is purely additive and never feeds back into the simulation.
package history

import "time"

// Sample is one per-tick observation of the descent.
type Sample struct {
	T        time.Duration // simulated time since launch
	Altitude float64       // m
	Speed    float64       // total speed, m/s
}

// Recorder accumulates samples over one attempt.
type Recorder struct {
	samples []Sample
}

// NewRecorder creates an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Append records one sample.
func (r *Recorder) Append(t time.Duration, altitude, speed float64) {
	r.samples = append(r.samples, Sample{T: t, Altitude: altitude, Speed: speed})
}

// Samples returns the recorded samples in order of appending.
func (r *Recorder) Samples() []Sample {
	return r.samples
}

// Len returns the number of recorded samples.
func (r *Recorder) Len() int {
	return len(r.samples)
}

// Reset discards all samples for a fresh attempt.
func (r *Recorder) Reset() {
	r.samples = r.samples[:0]
}
