// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package ratelimit keeps one token bucket per client key. It throttles the
// authentication endpoints, where every request costs the server an Argon2id
// computation.
package ratelimit

import (
	"net"
	"net/http"
	"net/netip"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-zk-vault/internal/config"
	"golang.org/x/time/rate"
)

type bucket struct {
	lim      *rate.Limiter
	lastSeen time.Time
}

// Limiter is safe for concurrent use. Idle buckets are removed by
// [Limiter.Evict], which the cleanup worker calls periodically.
type Limiter struct {
	mu      sync.Mutex
	limit   rate.Limit
	burst   int
	ttl     time.Duration
	entries map[string]*bucket

	// trusted lists the proxies whose X-Forwarded-For is believed.
	trusted []netip.Prefix

	now func() time.Time
}

// New creates a limiter. Entries of cfg.TrustedProxies that are neither an
// IP nor a CIDR are skipped; config validation rejects them earlier.
func New(cfg config.RateLimit) *Limiter {
	return &Limiter{
		limit:   rate.Limit(cfg.RPS),
		burst:   cfg.Burst,
		ttl:     cfg.TTL,
		entries: make(map[string]*bucket),
		trusted: ParseTrustedProxies(cfg.TrustedProxies),
		now:     time.Now,
	}
}

// ParseTrustedProxies turns IPs and CIDRs into prefixes, dropping anything
// unparsable.
func ParseTrustedProxies(entries []string) []netip.Prefix {
	prefixes := make([]netip.Prefix, 0, len(entries))
	for _, entry := range entries {
		if prefix, ok := parseProxy(entry); ok {
			prefixes = append(prefixes, prefix)
		}
	}
	return prefixes
}

func parseProxy(entry string) (netip.Prefix, bool) {
	entry = strings.TrimSpace(entry)
	if prefix, err := netip.ParsePrefix(entry); err == nil {
		return prefix.Masked(), true
	}
	if addr, err := netip.ParseAddr(entry); err == nil {
		addr = addr.Unmap()
		return netip.PrefixFrom(addr, addr.BitLen()), true
	}
	return netip.Prefix{}, false
}

// Allow reports whether one more request from key fits in its bucket.
func (l *Limiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	b := l.entries[key]
	if b == nil {
		b = &bucket{lim: rate.NewLimiter(l.limit, l.burst)}
		l.entries[key] = b
	}
	b.lastSeen = now

	return b.lim.AllowN(now, 1)
}

// Evict drops buckets idle for longer than the TTL and returns how many
// were removed.
func (l *Limiter) Evict() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	removed := 0
	for k, v := range l.entries {
		if now.Sub(v.lastSeen) > l.ttl {
			delete(l.entries, k)
			removed++
		}
	}
	return removed
}

// Len returns the number of tracked clients.
func (l *Limiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}

// ClientIP returns the rate limit key of r: the host of RemoteAddr, unless
// the peer is a trusted proxy. Then X-Forwarded-For is walked from the
// right and the first hop that is not itself a trusted proxy is used.
func (l *Limiter) ClientIP(r *http.Request) string {
	peer := HostOf(r.RemoteAddr)
	if !l.isTrusted(peer) {
		return peer
	}

	hops := strings.Split(r.Header.Get("X-Forwarded-For"), ",")
	for i := len(hops) - 1; i >= 0; i-- {
		hop := strings.TrimSpace(hops[i])
		if hop == "" {
			continue
		}
		if !l.isTrusted(hop) {
			return hop
		}
		peer = hop
	}
	return peer
}

func (l *Limiter) isTrusted(host string) bool {
	if len(l.trusted) == 0 {
		return false
	}
	addr, err := netip.ParseAddr(host)
	if err != nil {
		return false
	}
	addr = addr.Unmap()
	for _, prefix := range l.trusted {
		if prefix.Contains(addr) {
			return true
		}
	}
	return false
}

// HostOf strips the port from addr when it has one.
func HostOf(addr string) string {
	if host, _, err := net.SplitHostPort(addr); err == nil && host != "" {
		return host
	}
	return addr
}
