package service

import (
	"sync"
	"testing"
)

// sequenceRand devuelve valores prefijados para fijar cada sorteo del motor.
type sequenceRand struct {
	floats []float64
	ints   []int
	fi, ii int
}

func (s *sequenceRand) Float64() float64 {
	if s.fi >= len(s.floats) {
		return 0
	}
	v := s.floats[s.fi]
	s.fi++
	return v
}

func (s *sequenceRand) Intn(n int) int {
	if s.ii >= len(s.ints) {
		return 0
	}
	v := s.ints[s.ii] % n
	s.ii++
	return v
}

func TestNewRandSourceIsReproducible(t *testing.T) {
	a := NewRandSource(42)
	b := NewRandSource(42)
	for i := 0; i < 10; i++ {
		if a.Float64() != b.Float64() {
			t.Fatalf("expected identical sequences for the same seed at draw %d", i)
		}
	}
}

func TestLockedRandSourceConcurrentUse(t *testing.T) {
	src := NewLockedRandSource(7)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				if f := src.Float64(); f < 0 || f >= 1 {
					t.Errorf("float out of range: %v", f)
				}
				if n := src.Intn(5); n < 0 || n >= 5 {
					t.Errorf("int out of range: %d", n)
				}
			}
		}()
	}
	wg.Wait()
}
