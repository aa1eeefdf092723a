// Copyright (c) 2024 The dimd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"math/rand"
	"net"
	"time"

	btcwire "github.com/btcsuite/btcd/wire"
)

// oneWeek is the width of the window fixed seed timestamps are drawn from.
const oneWeek = 7 * 24 * time.Hour

// DNSSeed identifies a DNS seed.
type DNSSeed struct {
	// Host defines the hostname of the seed.
	Host string

	// FallbackIP is used as the seed's only answer when Host cannot be
	// resolved.  It may be nil.
	FallbackIP net.IP
}

// String returns the hostname of the DNS seed in human-readable form.
func (d DNSSeed) String() string {
	return d.Host
}

// SeedSpec6 is one entry of a compiled in seed table: an IPv6 address, IPv4
// addresses being IPv4-mapped, and a port.
type SeedSpec6 struct {
	Addr [16]byte
	Port uint16
}

// ipv4Seed builds a SeedSpec6 for an IPv4 address.
func ipv4Seed(a, b, c, d byte, port uint16) SeedSpec6 {
	return SeedSpec6{
		Addr: [16]byte{10: 0xff, 11: 0xff, 12: a, 13: b, 14: c, 15: d},
		Port: port,
	}
}

// ExpandFixedSeeds turns a seed table into peer addresses.  Every address is
// given a last seen time between one and two weeks before now so addresses
// learnt from live peers are preferred over these ones.
func ExpandFixedSeeds(table []SeedSpec6, now time.Time, rnd *rand.Rand) []*btcwire.NetAddress {
	addrs := make([]*btcwire.NetAddress, 0, len(table))
	for _, spec := range table {
		ip := make(net.IP, net.IPv6len)
		copy(ip, spec.Addr[:])
		age := oneWeek + time.Duration(rnd.Int63n(int64(oneWeek/time.Second)))*time.Second
		addrs = append(addrs, btcwire.NewNetAddressTimestamp(now.Add(-age),
			btcwire.SFNodeNetwork, ip, spec.Port))
	}
	return addrs
}

var mainNetFixedSeeds = []SeedSpec6{
	ipv4Seed(51, 75, 162, 95, 15500),
	ipv4Seed(51, 38, 71, 12, 15500),
}
