package output

import (
	"bufio"
	"io"

	"github.com/fatih/color"
	"github.com/velemoonkon/netrecon/pkg/scanner"
)

// Reporter writes the human-readable scan lines. Line content is the
// reporting contract of the tool; color is presentation only and is
// stripped when disabled or when the destination is not a terminal
type Reporter struct {
	writer *bufio.Writer

	info    *color.Color
	open    *color.Color
	failure *color.Color
}

// NewReporter creates a reporter writing to w.
// Pass colored=false to force plain output (e.g. for pipes and tests)
func NewReporter(w io.Writer, colored bool) *Reporter {
	info := color.New(color.FgCyan)
	open := color.New(color.FgGreen)
	failure := color.New(color.FgRed)

	if !colored {
		info.DisableColor()
		open.DisableColor()
		failure.DisableColor()
	}

	return &Reporter{
		writer:  bufio.NewWriter(w),
		info:    info,
		open:    open,
		failure: failure,
	}
}

// Resolving announces the hostname about to be resolved
func (r *Reporter) Resolving(hostname string) {
	r.info.Fprintf(r.writer, "Resolving hostname: %s\n", hostname)
	r.writer.Flush()
}

// UniqueAddresses announces the size of the deduplicated address set
func (r *Reporter) UniqueAddresses(n int) {
	r.info.Fprintf(r.writer, "Scanning %d unique IP address(es)\n", n)
	r.writer.Flush()
}

// ScanningAddress announces one address being scanned
func (r *Reporter) ScanningAddress(ip string) {
	r.info.Fprintf(r.writer, "Scanning %s...\n", ip)
	r.writer.Flush()
}

// OpenPort prints one open-port line
func (r *Reporter) OpenPort(result scanner.ProbeResult) {
	r.open.Fprintf(r.writer, "Port %d is open on %s\n", result.Port, result.Address)
	r.writer.Flush()
}

// ResolveFailure reports that neither address family yielded an address
func (r *Reporter) ResolveFailure(hostname string) {
	r.failure.Fprintf(r.writer, "Could not resolve hostname: %s\n", hostname)
	r.writer.Flush()
}

// Interrupted reports a user-initiated abort
func (r *Reporter) Interrupted() {
	r.failure.Fprintln(r.writer, "Port scanning interrupted by the user.")
	r.writer.Flush()
}

// Error reports an unexpected top-level error as plain text
func (r *Reporter) Error(err error) {
	r.failure.Fprintf(r.writer, "An error occurred: %v\n", err)
	r.writer.Flush()
}
