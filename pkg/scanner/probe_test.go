package scanner

import (
	"context"
	"net"
	"strconv"
	"testing"
	"time"
)

// startListener opens a TCP listener on an ephemeral loopback port and
// returns its port number
func startListener(t *testing.T) (net.Listener, int) {
	t.Helper()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("Failed to start listener: %v", err)
	}
	t.Cleanup(func() { ln.Close() })

	_, portStr, err := net.SplitHostPort(ln.Addr().String())
	if err != nil {
		t.Fatalf("Failed to parse listener address: %v", err)
	}
	port, _ := strconv.Atoi(portStr)
	return ln, port
}

func TestProbePortOpen(t *testing.T) {
	_, port := startListener(t)

	if !ProbePort(context.Background(), "127.0.0.1", port, time.Second) {
		t.Errorf("Expected port %d to be reported open", port)
	}
}

// Probing does not mutate remote state: the same open port reports open twice
func TestProbePortIdempotent(t *testing.T) {
	_, port := startListener(t)

	for i := range 2 {
		if !ProbePort(context.Background(), "127.0.0.1", port, time.Second) {
			t.Errorf("Probe %d: expected port %d open", i, port)
		}
	}
}

func TestProbePortClosed(t *testing.T) {
	// Bind then release a port so nothing is listening on it
	ln, port := startListener(t)
	ln.Close()

	if ProbePort(context.Background(), "127.0.0.1", port, time.Second) {
		t.Errorf("Expected released port %d to be reported closed", port)
	}
}

// A connection that neither completes nor fails must report closed within
// roughly the timeout, not block indefinitely
func TestProbePortTimeout(t *testing.T) {
	// TEST-NET-1 (documentation range) blackholes the SYN
	timeout := 200 * time.Millisecond

	start := time.Now()
	open := ProbePort(context.Background(), "192.0.2.1", 80, timeout)
	elapsed := time.Since(start)

	if open {
		t.Error("Expected blackholed probe to report closed")
	}
	if elapsed > timeout+time.Second {
		t.Errorf("Probe took %v, expected to return within ~%v", elapsed, timeout)
	}
}

func TestProbePortCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if ProbePort(ctx, "192.0.2.1", 80, 5*time.Second) {
		t.Error("Expected cancelled probe to report closed")
	}
}

func TestProbePortIPv6(t *testing.T) {
	ln, err := net.Listen("tcp6", "[::1]:0")
	if err != nil {
		t.Skip("IPv6 loopback not available")
	}
	defer ln.Close()

	_, portStr, _ := net.SplitHostPort(ln.Addr().String())
	port, _ := strconv.Atoi(portStr)

	if !ProbePort(context.Background(), "::1", port, time.Second) {
		t.Errorf("Expected IPv6 port %d to be reported open", port)
	}
}
