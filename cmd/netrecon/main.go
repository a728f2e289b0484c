package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"github.com/velemoonkon/netrecon/pkg/config"
	"github.com/velemoonkon/netrecon/pkg/input"
	"github.com/velemoonkon/netrecon/pkg/output"
	"github.com/velemoonkon/netrecon/pkg/resolver"
	"github.com/velemoonkon/netrecon/pkg/scanner"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// CLI flags
var (
	timeoutSec float64
	workers    int

	showProgress bool
	noColor      bool

	quiet   bool
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "netrecon [flags] <hostname> <start_port> <end_port>",
	Short: "Concurrent TCP port scanner for IPv4 and IPv6",
	Long: `netrecon - resolve a hostname and probe a TCP port range

Resolves the hostname under both address families, deduplicates the
results, and probes every port in the inclusive range on every resolved
address concurrently. A port is reported open when a TCP connection
succeeds within the timeout; timeouts and refusals both count as closed.`,

	Example: `  # Scan the well-known range
  netrecon example.com 1 1024

  # Single port, tighter timeout
  netrecon example.com 443 443 -t 0.5

  # Show a progress bar for large ranges
  netrecon example.com 1 65535 --progress`,

	Version:       version,
	Args:          cobra.ExactArgs(3),
	RunE:          runScan,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf("netrecon %s (commit: %s, built: %s)\n", version, commit, date))

	f := rootCmd.Flags()

	f.Float64VarP(&timeoutSec, "timeout", "t", 1.0, "Timeout per port probe (seconds)")
	f.IntVarP(&workers, "workers", "w", 0, "Concurrent probe workers (0 = auto)")

	f.BoolVar(&showProgress, "progress", false, "Show a progress bar on stderr")
	f.BoolVar(&noColor, "no-color", false, "Disable colored output")

	f.BoolVarP(&quiet, "quiet", "q", false, "Suppress diagnostic logging")
	f.BoolVarP(&verbose, "verbose", "v", false, "Verbose logging")
}

func runScan(cmd *cobra.Command, args []string) error {
	initLogger()

	parsed, err := input.ParseArgs(args)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle interrupt: abort the whole session, report no partial results
	var interrupted atomic.Bool
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		interrupted.Store(true)
		cancel()
	}()

	rep := output.NewReporter(os.Stdout, !noColor && !config.Output.NoColor)

	// Resolution must complete before any probing begins
	rep.Resolving(parsed.Hostname)
	res := resolver.New()
	addrs, err := res.Resolve(ctx, parsed.Hostname)
	if err != nil {
		switch {
		case interrupted.Load():
			rep.Interrupted()
		case errors.Is(err, resolver.ErrNoAddresses):
			rep.ResolveFailure(parsed.Hostname)
		default:
			rep.Error(err)
		}
		return nil
	}

	rep.UniqueAddresses(len(addrs))
	for _, addr := range addrs {
		rep.ScanningAddress(addr.IP)
	}

	s := scanner.NewScanner(scanner.Config{
		Workers: probeWorkers(),
		Timeout: probeTimeout(cmd),
	})

	total := len(addrs) * parsed.Ports.Len()
	var bar *progressbar.ProgressBar
	if showProgress && total > 0 {
		bar = newProgressBar(total)
	}

	start := time.Now()
	results := make([]scanner.ProbeResult, 0, total)
	_, scanErr := s.ScanStream(ctx, addrs, parsed.Ports, func(r scanner.ProbeResult) {
		results = append(results, r)
		if bar != nil {
			bar.Add(1)
		}
	})
	if bar != nil {
		bar.Clear()
	}

	if scanErr != nil {
		if interrupted.Load() || errors.Is(scanErr, context.Canceled) {
			rep.Interrupted()
		} else {
			rep.Error(scanErr)
		}
		return nil
	}

	for _, r := range results {
		if r.Open {
			rep.OpenPort(r)
		}
	}

	slog.Debug("scan completed",
		"addresses", len(addrs),
		"probes", len(results),
		"duration", time.Since(start).Round(time.Millisecond))

	return nil
}

// probeWorkers resolves the worker count from the flag, then the
// environment default; 0 lets the scanner auto-size
func probeWorkers() int {
	if workers > 0 {
		return workers
	}
	return config.Scanner.DefaultWorkers
}

// probeTimeout resolves the per-probe timeout; the flag wins over the
// environment default
func probeTimeout(cmd *cobra.Command) time.Duration {
	if cmd.Flags().Changed("timeout") {
		return time.Duration(timeoutSec * float64(time.Second))
	}
	return config.Scanner.DefaultTimeout
}

func newProgressBar(total int) *progressbar.ProgressBar {
	return progressbar.NewOptions(total,
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionShowBytes(false),
		progressbar.OptionSetWidth(30),
		progressbar.OptionSetDescription("[cyan][scanning][reset]"),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
	)
}

func initLogger() {
	var level slog.Level
	switch {
	case verbose:
		level = slog.LevelDebug
	case quiet:
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
}

func main() {
	config.Init()

	// Failures are reported as plain text; the process exits normally
	// either way, there is no exit-code contract
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "An error occurred: %v\n", err)
	}
}
