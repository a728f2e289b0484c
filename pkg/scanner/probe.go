package scanner

import (
	"context"
	"net"
	"strconv"
	"time"
)

// ProbePort reports whether a TCP connection to (address, port) succeeds
// within the timeout. The connection is only a reachability test: it is
// closed immediately on success and no I/O is performed on it.
//
// Every failure mode collapses to false: connect timeout, connection
// refused, network unreachable, host down. A broken network path is
// indistinguishable from a firewalled closed port, which keeps the
// probe infallible from the caller's point of view.
func ProbePort(ctx context.Context, address string, port int, timeout time.Duration) bool {
	hostPort := net.JoinHostPort(address, strconv.Itoa(port))

	dialer := &net.Dialer{
		Timeout:   timeout,
		KeepAlive: -1, // reachability test, no connection reuse
	}

	conn, err := dialer.DialContext(ctx, "tcp", hostPort)
	if err != nil {
		return false
	}
	conn.Close()
	return true
}
