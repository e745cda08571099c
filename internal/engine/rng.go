package engine

import (
	cryptoRand "crypto/rand"
	"encoding/binary"
	"math/rand/v2"
)

// RandomSource feeds every random decision of a match: tosses, wicket
// checks, runs and pitch jitter. It is the engine's only source of
// nondeterminism.
type RandomSource interface {
	Float64() float64 // [0, 1)
}

// systemSource backs unseeded matches with the operating system's
// generator.
type systemSource struct{}

func (systemSource) Float64() float64 {
	var buf [8]byte
	if _, err := cryptoRand.Read(buf[:]); err != nil {
		return rand.Float64()
	}
	return float64(binary.BigEndian.Uint64(buf[:])>>11) / (1 << 53)
}

// DefaultRNG is used when a match is not meant to be replayed.
func DefaultRNG() RandomSource { return systemSource{} }

type pcgSource struct{ r *rand.Rand }

func (s *pcgSource) Float64() float64 { return s.r.Float64() }

// NewSeededRNG makes a match replayable ball for ball.
func NewSeededRNG(seed uint64) RandomSource {
	return NewStreamRNG(seed, 0)
}

// NewStreamRNG gives each fixture of a batch its own sequence under one
// seed; SimulateBatch uses the fixture index as the stream.
func NewStreamRNG(seed, stream uint64) RandomSource {
	return &pcgSource{r: rand.New(rand.NewPCG(seed, stream))}
}
