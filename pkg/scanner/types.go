package scanner

import "time"

// ProbeResult records the outcome of one connection attempt.
// Immutable once produced; a timed-out and an actively refused
// connection both report Open=false
type ProbeResult struct {
	Address string `json:"address"`
	Port    int    `json:"port"`
	Open    bool   `json:"open"`
}

// Target is one (address, port) pair to probe
type Target struct {
	Address string
	Port    int
}

// Config contains scanner configuration
type Config struct {
	Workers int           // Number of concurrent probe workers (0 or negative = auto: max(4, 4*GOMAXPROCS) for I/O-bound work)
	Timeout time.Duration // Connect timeout per probe (0 or negative = 1s)
}

// DefaultConfig returns default scanner configuration
func DefaultConfig() Config {
	return Config{
		Workers: 0,
		Timeout: time.Second,
	}
}
