package metrics

import (
	"context"
	"fmt"
	"time"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/mem"
	"github.com/shirou/gopsutil/v4/net"
)

// Host reads the metrics of the machine it runs on. Network throughput is the sum
// of received and sent bytes since the previous Fetch, so the first sample
// reports zero.
type Host struct {
	// Interface limits network accounting to one interface, empty means all.
	Interface string

	cpuPercent func(ctx context.Context) ([]float64, error)
	memory     func(ctx context.Context) (*mem.VirtualMemoryStat, error)
	counters   func(ctx context.Context, perNIC bool) ([]net.IOCountersStat, error)
	now        func() time.Time

	last      time.Time
	lastBytes uint64
	primed    bool
}

// NewHost returns a Host source for iface, empty for all interfaces.
func NewHost(iface string) *Host {
	return &Host{
		Interface: iface,
		cpuPercent: func(ctx context.Context) ([]float64, error) {
			return cpu.PercentWithContext(ctx, 0, false)
		},
		memory:   mem.VirtualMemoryWithContext,
		counters: net.IOCountersWithContext,
		now:      time.Now,
	}
}

// Fetch implements Source.
func (h *Host) Fetch(ctx context.Context) (Sample, error) {
	load, err := h.cpuPercent(ctx)
	if err != nil {
		return Sample{}, fmt.Errorf("metrics: cpu: %w", err)
	}
	if len(load) == 0 {
		return Sample{}, fmt.Errorf("metrics: cpu: %w", ErrNoSample)
	}

	vm, err := h.memory(ctx)
	if err != nil {
		return Sample{}, fmt.Errorf("metrics: memory: %w", err)
	}

	total, err := h.networkBytes(ctx)
	if err != nil {
		return Sample{}, fmt.Errorf("metrics: network: %w", err)
	}

	var (
		now  = h.now()
		mbit float64
	)
	if h.primed && total >= h.lastBytes {
		if dt := now.Sub(h.last).Seconds(); dt > 0 {
			mbit = float64(total-h.lastBytes) * 8 / dt / 1e6
		}
	}
	h.last, h.lastBytes, h.primed = now, total, true

	return Sample{
		CPU:     percent(load[0]),
		RAM:     percent(vm.UsedPercent),
		Network: mbit,
	}, nil
}

func (h *Host) networkBytes(ctx context.Context) (uint64, error) {
	stats, err := h.counters(ctx, h.Interface != "")
	if err != nil {
		return 0, err
	}

	var total uint64
	for _, s := range stats {
		if h.Interface != "" && s.Name != h.Interface {
			continue
		}
		total += s.BytesRecv + s.BytesSent
	}
	return total, nil
}
