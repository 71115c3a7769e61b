package components

// SwarmUnit stores per-unit chase tuning. Speed is drawn once at spawn, which
// is what spreads the swarm out; Phase drives the sinusoidal weave.
type SwarmUnit struct {
	Speed     float64
	Phase     float64
	PhaseStep float64
	Wobble    float64
	Radius    float64
}
