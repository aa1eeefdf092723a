// Copyright (c) 2024 The dimd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"net"
	"sort"
	"strconv"
	"testing"
	"time"

	btcwire "github.com/btcsuite/btcd/wire"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/diminutivecoin/dimd/btcutil/er"
	"github.com/diminutivecoin/dimd/chaincfg"
)

func addrStrings(addrs []*btcwire.NetAddress) []string {
	out := make([]string, 0, len(addrs))
	for _, na := range addrs {
		out = append(out, net.JoinHostPort(na.IP.String(), strconv.Itoa(int(na.Port))))
	}
	sort.Strings(out)
	return out
}

func TestBootstrapPeersFixed(t *testing.T) {
	m := newNodeMetrics()
	addrs := bootstrapPeers(chaincfg.MainNetParams, nil, m)

	require.Equal(t, []string{"51.38.71.12:15500", "51.75.162.95:15500"},
		addrStrings(addrs))
	require.Equal(t, 2.0, testutil.ToFloat64(m.seedAddresses.WithLabelValues("fixed")))
	require.Equal(t, 0.0, testutil.ToFloat64(m.seedAddresses.WithLabelValues("dns")))
}

func TestBootstrapPeersDNS(t *testing.T) {
	// Both seeds answer with an overlapping set.
	lookup := func(host string) ([]net.IP, er.R) {
		return []net.IP{net.ParseIP("10.0.0.1"), net.ParseIP("10.0.0.2")}, nil
	}
	m := newNodeMetrics()
	addrs := bootstrapPeers(chaincfg.MainNetParams, lookup, m)

	require.Equal(t, []string{"10.0.0.1:15500", "10.0.0.2:15500"}, addrStrings(addrs))
	require.Equal(t, 2.0, testutil.ToFloat64(m.seedAddresses.WithLabelValues("dns")))
	require.Equal(t, 0.0, testutil.ToFloat64(m.seedAddresses.WithLabelValues("fixed")))
}

func TestBootstrapPeersRegtest(t *testing.T) {
	called := false
	lookup := func(host string) ([]net.IP, er.R) {
		called = true
		return nil, nil
	}
	addrs := bootstrapPeers(chaincfg.RegressionNetParams, lookup, nil)
	require.False(t, called)
	require.Empty(t, addrs)
}

func TestPeerSetDedup(t *testing.T) {
	s := newPeerSet()
	now := time.Now()
	a := btcwire.NewNetAddressTimestamp(now, 0, net.ParseIP("10.0.0.1"), 1)
	b := btcwire.NewNetAddressTimestamp(now, 0, net.ParseIP("10.0.0.1"), 2)
	require.Equal(t, 2, s.add([]*btcwire.NetAddress{a, b, a}))
	require.Equal(t, 0, s.add([]*btcwire.NetAddress{b}))
	require.Len(t, s.list(), 2)
}

func TestSeedLookupChoice(t *testing.T) {
	// With a proxy configured the name server setting is never consulted.
	cfg := &config{Proxy: "127.0.0.1:1", DNSServer: "", SeedTimeout: time.Second}
	lookup, err := seedLookup(cfg)
	require.Nil(t, err)
	require.NotNil(t, lookup)

	cfg = &config{DNSServer: "127.0.0.1:53", SeedTimeout: time.Second}
	lookup, err = seedLookup(cfg)
	require.Nil(t, err)
	require.NotNil(t, lookup)
}
