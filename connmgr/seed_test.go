// Copyright (c) 2024 The dimd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package connmgr

import (
	"net"
	"sort"
	"sync"
	"testing"
	"time"

	btcwire "github.com/btcsuite/btcd/wire"
	"github.com/stretchr/testify/require"

	"github.com/diminutivecoin/dimd/btcutil/er"
	"github.com/diminutivecoin/dimd/chaincfg"
)

type seedCollector struct {
	mu    sync.Mutex
	addrs []*btcwire.NetAddress
}

func (c *seedCollector) onSeed(addrs []*btcwire.NetAddress) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.addrs = append(c.addrs, addrs...)
}

func (c *seedCollector) ips() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]string, 0, len(c.addrs))
	for _, na := range c.addrs {
		out = append(out, na.IP.String())
	}
	sort.Strings(out)
	return out
}

func TestSeedFromDNS(t *testing.T) {
	answers := map[string][]net.IP{
		"seed1.dimi.net": {net.ParseIP("10.0.0.1"), net.ParseIP("10.0.0.2")},
		"seed5.dimi.net": {net.ParseIP("10.0.0.5")},
	}
	lookup := func(host string) ([]net.IP, er.R) {
		return answers[host], nil
	}

	var c seedCollector
	start := time.Now()
	SeedFromDNS(chaincfg.MainNetParams, lookup, c.onSeed).Wait()

	require.Equal(t, []string{"10.0.0.1", "10.0.0.2", "10.0.0.5"}, c.ips())
	for _, na := range c.addrs {
		require.Equal(t, uint16(15500), na.Port)
		age := start.Sub(na.Timestamp)
		require.True(t, age >= 3*24*time.Hour-time.Second, "age %v", age)
		require.True(t, age <= 7*24*time.Hour+time.Second, "age %v", age)
	}
}

func TestSeedFromDNSFallback(t *testing.T) {
	lookup := func(host string) ([]net.IP, er.R) {
		if host == "seed1.dimi.net" {
			return nil, ErrDNSLookupFailed.New(host, nil)
		}
		return nil, nil
	}

	var c seedCollector
	SeedFromDNS(chaincfg.MainNetParams, lookup, c.onSeed).Wait()
	require.Equal(t, []string{"51.38.71.12", "51.75.162.95"}, c.ips())
}

func TestSeedFromDNSNoSeeds(t *testing.T) {
	called := false
	lookup := func(host string) ([]net.IP, er.R) {
		called = true
		return nil, nil
	}
	var c seedCollector
	SeedFromDNS(chaincfg.RegressionNetParams, lookup, c.onSeed).Wait()
	require.False(t, called)
	require.Empty(t, c.ips())
}

func TestSeedFromFixed(t *testing.T) {
	var c seedCollector
	SeedFromFixed(chaincfg.MainNetParams, c.onSeed)
	require.Equal(t, []string{"51.38.71.12", "51.75.162.95"}, c.ips())

	var none seedCollector
	SeedFromFixed(chaincfg.TestNetParams, none.onSeed)
	require.Empty(t, none.ips())
}
