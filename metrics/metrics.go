// Package metrics provides the values shown on the status panel.
//
// The panel pulls one Sample per refresh from a Source. Random reproduces the
// placeholder data of the stock firmware. Host reads the local machine, and
// MQTT follows samples published by a remote agent.
package metrics

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand"
)

// Errors
var (
	ErrNoSample = errors.New("metrics: no sample received yet")
	ErrInvalid  = errors.New("metrics: invalid sample")
)

// Sample is one reading of the panel metrics.
type Sample struct {
	// CPU load in percent.
	CPU uint8

	// RAM usage in percent.
	RAM uint8

	// Network throughput in Mbit/s.
	Network float64
}

func (s Sample) String() string {
	return fmt.Sprintf("cpu=%d%% ram=%d%% net=%.2fMbit/s", s.CPU, s.RAM, s.Network)
}

// Source provides samples on demand.
type Source interface {
	Fetch(ctx context.Context) (Sample, error)
}

// SourceFunc adapts a function to Source.
type SourceFunc func(ctx context.Context) (Sample, error)

// Fetch implements Source.
func (f SourceFunc) Fetch(ctx context.Context) (Sample, error) {
	return f(ctx)
}

// Random returns uniformly distributed placeholder values: CPU and RAM in 0-99,
// network in 0.00-9.99 with two decimals.
type Random struct {
	rnd *rand.Rand
}

// NewRandom returns a Random source seeded with seed.
func NewRandom(seed int64) *Random {
	return &Random{rnd: rand.New(rand.NewSource(seed))}
}

// Fetch implements Source.
func (r *Random) Fetch(ctx context.Context) (Sample, error) {
	if err := ctx.Err(); err != nil {
		return Sample{}, err
	}
	return Sample{
		CPU:     uint8(r.rnd.Intn(100)),
		RAM:     uint8(r.rnd.Intn(100)),
		Network: float64(r.rnd.Intn(1000)) / 100,
	}, nil
}

// percent truncates v to a whole percentage in 0-100.
func percent(v float64) uint8 {
	switch {
	case math.IsNaN(v) || v <= 0:
		return 0
	case v >= 100:
		return 100
	default:
		return uint8(v)
	}
}
