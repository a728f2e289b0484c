package input

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/velemoonkon/netrecon/pkg/scanner"
)

// Args holds the parsed positional CLI arguments
type Args struct {
	Hostname string
	Ports    scanner.PortRange
}

// ParseArgs parses the positional arguments: hostname, start port, end port.
// An end port below the start port is accepted and produces an empty range
func ParseArgs(args []string) (Args, error) {
	if len(args) != 3 {
		return Args{}, fmt.Errorf("expected 3 arguments (hostname, start port, end port), got %d", len(args))
	}

	hostname := strings.TrimSpace(args[0])
	if hostname == "" {
		return Args{}, fmt.Errorf("hostname must not be empty")
	}

	start, err := ParsePort(args[1])
	if err != nil {
		return Args{}, fmt.Errorf("invalid start port: %w", err)
	}

	end, err := ParsePort(args[2])
	if err != nil {
		return Args{}, fmt.Errorf("invalid end port: %w", err)
	}

	ports, err := scanner.NewPortRange(start, end)
	if err != nil {
		return Args{}, err
	}

	return Args{Hostname: hostname, Ports: ports}, nil
}

// ParsePort parses a decimal TCP port number in [0, 65535]
func ParsePort(s string) (int, error) {
	port, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("not a number: %q", s)
	}
	if port < 0 || port > scanner.MaxPort {
		return 0, fmt.Errorf("port %d out of range [0, %d]", port, scanner.MaxPort)
	}
	return port, nil
}
