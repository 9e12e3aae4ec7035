package service

import (
	"math/rand"
	"sync"
	"time"
)

// RandSource es la fuente pseudoaleatoria que reciben las operaciones del motor.
// *rand.Rand la satisface.
type RandSource interface {
	Float64() float64
	Intn(n int) int
}

// NewRandSource crea un generador con semilla. Con seed 0 usa la hora actual.
// No es seguro para uso concurrente.
func NewRandSource(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

type lockedRandSource struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewLockedRandSource devuelve una fuente compartible entre requests concurrentes.
func NewLockedRandSource(seed int64) RandSource {
	return &lockedRandSource{rng: NewRandSource(seed)}
}

func (s *lockedRandSource) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Float64()
}

func (s *lockedRandSource) Intn(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Intn(n)
}
