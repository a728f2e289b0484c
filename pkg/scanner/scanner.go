package scanner

import (
	"context"
	"runtime"
	"sync"

	"github.com/velemoonkon/netrecon/pkg/config"
	"github.com/velemoonkon/netrecon/pkg/resolver"
)

// Scanner fans connection probes out over the cross-product of resolved
// addresses and a port range, then gathers every result before reporting.
// Each probe is independent and stateless; nothing is shared for mutation
// between probes, results are collected by a single goroutine
type Scanner struct {
	config Config
}

// NewScanner creates a new scanner with configuration
func NewScanner(cfg Config) *Scanner {
	// Workers=0 means "auto": use max(4, 4*GOMAXPROCS) for I/O-bound probing
	if cfg.Workers <= 0 {
		cpus := runtime.GOMAXPROCS(0)
		cfg.Workers = max(4, cpus*4)
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultConfig().Timeout
	}

	return &Scanner{config: cfg}
}

// Scan probes every (address, port) combination and returns all results
// after the last probe finishes. Result order follows probe completion
// and is not deterministic. On cancellation the context error is
// returned and the partial result slice should be discarded
func (s *Scanner) Scan(ctx context.Context, addrs []resolver.Address, ports PortRange) ([]ProbeResult, error) {
	results := make([]ProbeResult, 0, len(addrs)*ports.Len())
	_, err := s.ScanStream(ctx, addrs, ports, func(r ProbeResult) {
		results = append(results, r)
	})
	return results, err
}

// ScanStream probes every (address, port) combination and calls handler
// for each result as it arrives. The handler runs on a single collector
// goroutine, so it needs no locking, but it should be fast. ScanStream
// does not return until every scheduled probe has completed or the
// context is cancelled. Returns the number of results handled
func (s *Scanner) ScanStream(ctx context.Context, addrs []resolver.Address, ports PortRange, handler func(ProbeResult)) (int, error) {
	cfg := config.Scanner
	targetChan := make(chan Target, cfg.TargetChannelBuffer)
	resultChan := make(chan ProbeResult, cfg.ResultChannelBuffer)
	var wg sync.WaitGroup

	// Start probe workers
	for range s.config.Workers {
		wg.Go(func() {
			s.worker(ctx, targetChan, resultChan)
		})
	}

	// Single collector goroutine gathers results; probes never write to
	// shared state themselves
	count := 0
	var collectorWg sync.WaitGroup
	collectorWg.Go(func() {
		for result := range resultChan {
			count++
			if handler != nil {
				handler(result)
			}
		}
	})

	// Feed the address x port cross-product to workers with cooperative
	// cancellation
	go func() {
		defer close(targetChan)
		for _, addr := range addrs {
			for port := range ports.Ports() {
				select {
				case <-ctx.Done():
					return
				case targetChan <- Target{Address: addr.IP, Port: port}:
				}
			}
		}
	}()

	// Fan-in barrier: all probes complete before reporting proceeds
	wg.Wait()
	close(resultChan)
	collectorWg.Wait()

	return count, ctx.Err()
}

// worker probes targets until the channel closes or the context is
// cancelled, discarding buffered targets on cancellation
func (s *Scanner) worker(ctx context.Context, targets <-chan Target, results chan<- ProbeResult) {
	for {
		select {
		case <-ctx.Done():
			return
		case target, ok := <-targets:
			if !ok {
				return
			}

			open := ProbePort(ctx, target.Address, target.Port, s.config.Timeout)

			select {
			case <-ctx.Done():
				return
			case results <- ProbeResult{Address: target.Address, Port: target.Port, Open: open}:
			}
		}
	}
}
