package particle

import (
	"math/rand/v2"

	"github.com/lixenwraith/backdrop/canvas"
)

// Pool is a fixed-capacity arena of particles plus the pointer follower
// Slots are addressed by index; spawning reuses inactive slots and never allocates
type Pool struct {
	cfg      Config
	rng      *rand.Rand
	slots    []Particle
	follower Particle
	next     int // round-robin free slot hint
	active   int
}

// NewPool creates a pool sized to cfg.MaxParticles
func NewPool(cfg Config, rng *rand.Rand) *Pool {
	p := &Pool{cfg: cfg, rng: rng}
	p.Initialize(cfg.MaxParticles)
	return p
}

// Initialize reallocates capacity inactive slots and zeroes the counters
func (p *Pool) Initialize(capacity int) {
	if capacity < 0 {
		capacity = 0
	}
	p.slots = make([]Particle, capacity)
	p.active = 0
	p.next = 0
}

// Cap returns the slot count
func (p *Pool) Cap() int {
	return len(p.slots)
}

// Active returns the number of active slots
func (p *Pool) Active() int {
	return p.active
}

// Slot returns the particle at index i for inspection
func (p *Pool) Slot(i int) *Particle {
	return &p.slots[i]
}

// Follower returns the pointer follower
func (p *Pool) Follower() *Particle {
	return &p.follower
}

// Reset reinitialises slot i as a burst particle at (x, y), activating it
func (p *Pool) Reset(i int, x, y float64) {
	slot := &p.slots[i]
	if !slot.Active {
		p.active++
	}
	spawn(slot, x, y, &p.cfg, p.rng)
}

// ResetFollower places the follower at (x, y) with its fixed visuals
func (p *Pool) ResetFollower(x, y float64) {
	spawnFollower(&p.follower, x, y, &p.cfg)
}

// Update advances slot i one tick, releasing it on expiry
func (p *Pool) Update(i int) {
	slot := &p.slots[i]
	if !slot.Active {
		return
	}
	if step(slot, p.cfg.Friction) {
		slot.Active = false
		p.active--
	}
}

// UpdateFollower eases the follower toward the pointer when one is known
func (p *Pool) UpdateFollower(px, py float64, known bool) {
	if !p.follower.Active || !known {
		return
	}
	follow(&p.follower, px, py, p.cfg.FollowStrength)
}

// Draw paints slot i
func (p *Pool) Draw(i int, s canvas.Surface) {
	paint(&p.slots[i], p.cfg.GlowFactor, s)
}

// DrawFollower paints the follower with its wider glow
func (p *Pool) DrawFollower(s canvas.Surface) {
	paint(&p.follower, p.cfg.FollowerGlowFactor, s)
}

// SpawnBurst activates up to count slots at (x, y) and returns how many were spawned
// Requests beyond capacity are dropped silently
func (p *Pool) SpawnBurst(x, y float64, count int) int {
	n := len(p.slots)
	spawned := 0

	for range count {
		if p.active >= n {
			break
		}

		if !p.slots[p.next].Active {
			p.Reset(p.next, x, y)
			p.next = (p.next + 1) % n
			spawned++
			continue
		}

		// Hint slot taken; active < n guarantees the scan finds one
		for j := range n {
			if !p.slots[j].Active {
				p.Reset(j, x, y)
				p.next = (j + 1) % n
				spawned++
				break
			}
		}
	}

	return spawned
}

// Each calls fn for every active slot index in pool order
func (p *Pool) Each(fn func(i int)) {
	for i := range p.slots {
		if p.slots[i].Active {
			fn(i)
		}
	}
}
