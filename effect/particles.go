// Package effect holds the particle feedback system. It is a write-only
// sink: subsystems spawn bursts into it and the render layer draws a
// read-only snapshot, but it never reads combat or puzzle state itself.
package effect

import (
	"math/rand"
	"time"

	"github.com/jakecoffman/cp"
)

// Tag labels a burst so the render layer can pick a color without the
// particle system knowing anything about palettes.
type Tag int

const (
	TagRecoil Tag = iota
	TagPlayerHit
	TagUnitHit
	TagUnitDeath
	TagResolve
	TagError
)

const (
	baseLifeMin = 20
	baseLifeMax = 60
	maxSize     = 3.0
	sizeDecay   = 0.05
	maxCount    = 2000
)

// Particle is one ephemeral visual marker.
type Particle struct {
	Pos  cp.Vector
	Vel  cp.Vector
	Life int
	Size float64
	Tag  Tag
}

// System owns an unordered particle collection.
type System struct {
	particles []Particle
	rng       *rand.Rand
}

// NewSystem creates a particle system. A nil rng falls back to a time seed;
// tests inject a fixed one.
func NewSystem(rng *rand.Rand) *System {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &System{
		particles: make([]Particle, 0, 256),
		rng:       rng,
	}
}

// Spawn emits count particles at pos. Each draws an independent velocity
// within ±speedScale per axis, a lifetime from the base range scaled by
// lifeScale, and a small random initial size.
func (s *System) Spawn(pos cp.Vector, tag Tag, count int, speedScale, lifeScale float64) {
	if s == nil || count <= 0 {
		return
	}
	for i := 0; i < count; i++ {
		if len(s.particles) >= maxCount {
			return
		}
		life := baseLifeMin + s.rng.Intn(baseLifeMax-baseLifeMin+1)
		s.particles = append(s.particles, Particle{
			Pos: pos,
			Vel: cp.Vector{
				X: (s.rng.Float64()*2 - 1) * speedScale,
				Y: (s.rng.Float64()*2 - 1) * speedScale,
			},
			Life: int(float64(life) * lifeScale),
			Size: 1 + s.rng.Float64()*(maxSize-1),
			Tag:  tag,
		})
	}
}

// Update advances every particle, then compacts out the dead ones. The two
// phases stay separate: nothing is removed while the live set is being
// traversed.
func (s *System) Update() {
	if s == nil {
		return
	}
	for i := range s.particles {
		p := &s.particles[i]
		p.Pos = p.Pos.Add(p.Vel)
		p.Life--
		p.Size -= sizeDecay
		if p.Size < 0 {
			p.Size = 0
		}
	}

	live := s.particles[:0]
	for _, p := range s.particles {
		if p.Life > 0 {
			live = append(live, p)
		}
	}
	s.particles = live
}

// Particles returns the live collection for rendering. Callers must treat it
// as read-only.
func (s *System) Particles() []Particle {
	if s == nil {
		return nil
	}
	return s.particles
}

// Len returns the number of live particles.
func (s *System) Len() int {
	if s == nil {
		return 0
	}
	return len(s.particles)
}

// Clear drops every live particle.
func (s *System) Clear() {
	if s == nil {
		return
	}
	s.particles = s.particles[:0]
}
