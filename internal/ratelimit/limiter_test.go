// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package ratelimit

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-zk-vault/internal/config"
	"github.com/stretchr/testify/assert"
)

func newTestLimiter(start time.Time) (*Limiter, *time.Time) {
	clock := start
	l := New(config.RateLimit{RPS: 1, Burst: 2, TTL: time.Minute})
	l.now = func() time.Time { return clock }
	return l, &clock
}

func TestLimiter_Allow_BurstThenRefill(t *testing.T) {
	l, clock := newTestLimiter(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))

	assert.True(t, l.Allow("10.0.0.1"))
	assert.True(t, l.Allow("10.0.0.1"))
	assert.False(t, l.Allow("10.0.0.1"), "burst exhausted")

	// other clients have their own bucket
	assert.True(t, l.Allow("10.0.0.2"))

	*clock = clock.Add(time.Second)
	assert.True(t, l.Allow("10.0.0.1"), "one token refilled")
}

func TestLimiter_Evict(t *testing.T) {
	l, clock := newTestLimiter(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))

	l.Allow("old")
	*clock = clock.Add(50 * time.Second)
	l.Allow("recent")
	*clock = clock.Add(20 * time.Second)

	assert.Equal(t, 1, l.Evict())
	assert.Equal(t, 1, l.Len())
	assert.Equal(t, 0, l.Evict())
}

func TestLimiter_ClientIP(t *testing.T) {
	l := New(config.RateLimit{RPS: 1, Burst: 1, TrustedProxies: []string{"10.0.0.0/8", "192.0.2.50", "not-an-ip"}})

	tests := []struct {
		name       string
		xff        string
		remoteAddr string
		want       string
	}{
		{name: "remote addr", remoteAddr: "192.0.2.7:5555", want: "192.0.2.7"},
		{name: "untrusted peer ignores forwarded", xff: "203.0.113.9", remoteAddr: "198.51.100.3:80", want: "198.51.100.3"},
		{name: "trusted proxy", xff: "203.0.113.9", remoteAddr: "10.0.0.1:80", want: "203.0.113.9"},
		{name: "trusted single ip", xff: "203.0.113.9", remoteAddr: "192.0.2.50:80", want: "203.0.113.9"},
		{name: "spoofed left hop skipped", xff: "1.1.1.1, 203.0.113.9, 10.0.0.2", remoteAddr: "10.0.0.1:80", want: "203.0.113.9"},
		{name: "all hops trusted", xff: "10.0.0.3, 10.0.0.2", remoteAddr: "10.0.0.1:80", want: "10.0.0.3"},
		{name: "trusted peer without header", remoteAddr: "10.0.0.1:80", want: "10.0.0.1"},
		{name: "blank forwarded", xff: " , ", remoteAddr: "10.0.0.1:80", want: "10.0.0.1"},
		{name: "no port", remoteAddr: "pipe", want: "pipe"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("POST", "/api/auth/login", nil)
			r.RemoteAddr = tt.remoteAddr
			if tt.xff != "" {
				r.Header.Set("X-Forwarded-For", tt.xff)
			}
			assert.Equal(t, tt.want, l.ClientIP(r))
		})
	}
}

func TestParseTrustedProxies(t *testing.T) {
	prefixes := ParseTrustedProxies([]string{" 10.0.0.0/8", "192.0.2.50", "::1", "bogus", "10.1.2.3/16"})

	got := make([]string, 0, len(prefixes))
	for _, p := range prefixes {
		got = append(got, p.String())
	}
	assert.Equal(t, []string{"10.0.0.0/8", "192.0.2.50/32", "::1/128", "10.1.0.0/16"}, got)
}
