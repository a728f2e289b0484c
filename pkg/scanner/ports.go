package scanner

import (
	"fmt"
	"iter"
)

// MaxPort is the largest valid TCP port number
const MaxPort = 65535

// PortRange is an inclusive range of TCP ports.
// A range whose End is below its Start is empty, not invalid
type PortRange struct {
	Start int
	End   int
}

// NewPortRange validates both endpoints and returns the range.
// End < Start is accepted and yields an empty range
func NewPortRange(start, end int) (PortRange, error) {
	if start < 0 || start > MaxPort {
		return PortRange{}, fmt.Errorf("start port %d out of range [0, %d]", start, MaxPort)
	}
	if end < 0 || end > MaxPort {
		return PortRange{}, fmt.Errorf("end port %d out of range [0, %d]", end, MaxPort)
	}
	return PortRange{Start: start, End: end}, nil
}

// Len returns the number of ports in the range
func (r PortRange) Len() int {
	if r.End < r.Start {
		return 0
	}
	return r.End - r.Start + 1
}

// Ports returns an iterator over the ports in ascending order
func (r PortRange) Ports() iter.Seq[int] {
	return func(yield func(int) bool) {
		for port := r.Start; port <= r.End; port++ {
			if !yield(port) {
				return
			}
		}
	}
}
