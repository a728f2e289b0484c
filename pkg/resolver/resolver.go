package resolver

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"time"

	"github.com/miekg/dns"
	"github.com/velemoonkon/netrecon/pkg/config"
	"golang.org/x/sync/errgroup"
)

// Resolver resolves hostnames to IPv4 and IPv6 addresses by querying
// each address family independently
type Resolver struct {
	client      *dns.Client
	nameservers []string
}

// Option configures a Resolver
type Option func(*Resolver)

// WithNameservers overrides the nameserver list (host:port entries)
func WithNameservers(servers []string) Option {
	return func(r *Resolver) {
		if len(servers) > 0 {
			r.nameservers = servers
		}
	}
}

// WithTimeout overrides the per-query timeout
func WithTimeout(timeout time.Duration) Option {
	return func(r *Resolver) {
		if timeout > 0 {
			r.client.Timeout = timeout
		}
	}
}

// New creates a resolver using the system nameservers from /etc/resolv.conf,
// falling back to the configured public servers when it cannot be read
func New(opts ...Option) *Resolver {
	cfg := config.Resolver
	r := &Resolver{
		client: &dns.Client{
			Net:     "udp",
			Timeout: cfg.QueryTimeout,
		},
		nameservers: systemNameservers(cfg.Nameservers),
	}

	for _, opt := range opts {
		opt(r)
	}
	return r
}

// systemNameservers reads nameservers from /etc/resolv.conf
// Returns the fallback list when the file is missing or empty
func systemNameservers(fallback []string) []string {
	conf, err := dns.ClientConfigFromFile("/etc/resolv.conf")
	if err != nil || len(conf.Servers) == 0 {
		return fallback
	}

	servers := make([]string, 0, len(conf.Servers))
	for _, s := range conf.Servers {
		servers = append(servers, net.JoinHostPort(s, conf.Port))
	}
	return servers
}

// Resolve returns the deduplicated union of the hostname's IPv4 and IPv6
// addresses. The two family queries run concurrently; a family that yields
// nothing (NXDOMAIN, timeout, empty answer) is skipped without error.
// ErrNoAddresses is returned only when both families come up empty.
// Resolution must complete before any probing begins.
func (r *Resolver) Resolve(ctx context.Context, hostname string) ([]Address, error) {
	// An IP literal resolves to itself
	if ip := net.ParseIP(hostname); ip != nil {
		return []Address{literalAddress(ip)}, nil
	}

	families := []struct {
		qtype  uint16
		family Family
	}{
		{dns.TypeA, FamilyIPv4},
		{dns.TypeAAAA, FamilyIPv6},
	}

	resolved := make([][]string, len(families))
	g, gctx := errgroup.WithContext(ctx)

	for i, fam := range families {
		g.Go(func() error {
			ips, err := r.lookup(gctx, hostname, fam.qtype)
			if err != nil {
				// A single family failing is not an error for the
				// overall resolution
				slog.Debug("family resolution failed",
					"hostname", hostname, "family", fam.family, "error", err)
				return nil
			}
			resolved[i] = ips
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Merge both families into a single set. An address answered under
	// both queries is kept once so it is not double-probed.
	seen := make(map[string]struct{})
	var addrs []Address
	for i, fam := range families {
		for _, ip := range resolved[i] {
			if _, ok := seen[ip]; ok {
				continue
			}
			seen[ip] = struct{}{}
			addrs = append(addrs, Address{IP: ip, Family: fam.family})
		}
	}

	if len(addrs) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoAddresses, hostname)
	}
	return addrs, nil
}

// lookup queries all configured nameservers in order for one record type,
// returning the first usable answer
func (r *Resolver) lookup(ctx context.Context, hostname string, qtype uint16) ([]string, error) {
	msg := new(dns.Msg)
	msg.SetQuestion(dns.Fqdn(hostname), qtype)
	msg.RecursionDesired = true

	var lastErr error
	for _, server := range r.nameservers {
		resp, _, err := r.client.ExchangeContext(ctx, msg, server)
		if err != nil {
			lastErr = fmt.Errorf("query %s failed: %w", server, err)
			continue
		}
		if resp.Rcode != dns.RcodeSuccess {
			lastErr = fmt.Errorf("query %s returned %s", server, dns.RcodeToString[resp.Rcode])
			continue
		}

		ips := answerIPs(resp)
		if len(ips) == 0 {
			lastErr = errors.New("no address records in answer")
			continue
		}
		return ips, nil
	}

	if lastErr == nil {
		lastErr = errors.New("no nameservers configured")
	}
	return nil, lastErr
}

// answerIPs extracts A and AAAA records from a response
func answerIPs(resp *dns.Msg) []string {
	var ips []string
	for _, rr := range resp.Answer {
		switch rec := rr.(type) {
		case *dns.A:
			ips = append(ips, rec.A.String())
		case *dns.AAAA:
			ips = append(ips, rec.AAAA.String())
		}
	}
	return ips
}

func literalAddress(ip net.IP) Address {
	if ip.To4() != nil {
		return Address{IP: ip.String(), Family: FamilyIPv4}
	}
	return Address{IP: ip.String(), Family: FamilyIPv6}
}
