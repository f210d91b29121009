// Package clock provides injectable time and randomness sources.
package clock

import (
	"math/rand/v2"
	"sync"
	"time"
)

// Clock supplies the current time
type Clock interface {
	Now() time.Time
}

// System is the wall clock
type System struct{}

// Now returns time.Now()
func (System) Now() time.Time {
	return time.Now()
}

// Fake is a manually driven clock for tests
type Fake struct {
	mu  sync.Mutex
	now time.Time
}

// NewFake returns a Fake clock pinned at t
func NewFake(t time.Time) *Fake {
	return &Fake{now: t}
}

// Now returns the pinned time
func (f *Fake) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.now
}

// Advance moves the clock forward by d
func (f *Fake) Advance(d time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.now = f.now.Add(d)
}

// Set pins the clock at t
func (f *Fake) Set(t time.Time) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.now = t
}

// Rand is the randomness capability used by order generation
type Rand interface {
	Float64() float64
	IntN(n int) int
	Shuffle(n int, swap func(i, j int))
}

// NewRand returns a PCG-backed source. Seed 0 seeds from the wall clock.
func NewRand(seed uint64) Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &lockedRand{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

type lockedRand struct {
	mu sync.Mutex
	r  *rand.Rand
}

func (l *lockedRand) Float64() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.Float64()
}

func (l *lockedRand) IntN(n int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.IntN(n)
}

func (l *lockedRand) Shuffle(n int, swap func(i, j int)) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.r.Shuffle(n, swap)
}

// Sequence replays fixed Float64 values, then wraps. IntN derives from the same stream.
type Sequence struct {
	mu     sync.Mutex
	values []float64
	pos    int
}

// NewSequence returns a deterministic Rand for tests
func NewSequence(values ...float64) *Sequence {
	if len(values) == 0 {
		values = []float64{0}
	}
	return &Sequence{values: values}
}

func (s *Sequence) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	v := s.values[s.pos%len(s.values)]
	s.pos++
	return v
}

func (s *Sequence) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	i := int(s.Float64() * float64(n))
	if i >= n {
		i = n - 1
	}
	return i
}

// Shuffle leaves the order untouched so tests stay predictable.
func (s *Sequence) Shuffle(n int, swap func(i, j int)) {}
