// Package rng provides the injectable random source used for palette colors
// and random-order practice.
package rng

import (
	"math/rand/v2"
	"sync"
	"time"
)

// Source draws uniform integers in [0, n). n must be > 0.
type Source interface {
	IntN(n int) int
}

type pcgSource struct {
	mu sync.Mutex
	r  *rand.Rand
}

// New returns a seedable PCG-backed source. A zero seed picks one from the
// current time.
func New(seed uint64) Source {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &pcgSource{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (s *pcgSource) IntN(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.IntN(n)
}

// Sequence replays fixed values, each reduced modulo n. After the last value
// it starts over. An empty Sequence always returns 0.
type Sequence struct {
	mu     sync.Mutex
	values []int
	pos    int
}

// NewSequence returns a Source that yields values in order.
func NewSequence(values ...int) *Sequence {
	return &Sequence{values: values}
}

func (s *Sequence) IntN(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.values) == 0 {
		return 0
	}
	v := s.values[s.pos%len(s.values)]
	s.pos++
	v %= n
	if v < 0 {
		v += n
	}
	return v
}
