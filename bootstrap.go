// Copyright (c) 2024 The dimd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"net"
	"strconv"
	"sync"

	btcwire "github.com/btcsuite/btcd/wire"

	"github.com/diminutivecoin/dimd/btcutil/er"
	"github.com/diminutivecoin/dimd/chaincfg"
	"github.com/diminutivecoin/dimd/connmgr"
)

// peerSet collects bootstrap addresses, dropping duplicates.
type peerSet struct {
	mu    sync.Mutex
	seen  map[string]struct{}
	addrs []*btcwire.NetAddress
}

func newPeerSet() *peerSet {
	return &peerSet{seen: make(map[string]struct{})}
}

func (s *peerSet) add(addrs []*btcwire.NetAddress) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	added := 0
	for _, na := range addrs {
		key := net.JoinHostPort(na.IP.String(), strconv.Itoa(int(na.Port)))
		if _, ok := s.seen[key]; ok {
			continue
		}
		s.seen[key] = struct{}{}
		s.addrs = append(s.addrs, na)
		added++
	}
	return added
}

func (s *peerSet) list() []*btcwire.NetAddress {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]*btcwire.NetAddress(nil), s.addrs...)
}

// seedLookup picks how DNS seeds get resolved: through Tor when a proxy is
// configured, otherwise by asking a name server directly.
func seedLookup(cfg *config) (connmgr.LookupFunc, er.R) {
	if cfg.Proxy != "" {
		return connmgr.TorLookup(cfg.Proxy, cfg.SeedTimeout), nil
	}
	server := cfg.DNSServer
	if server == "" {
		s, err := connmgr.SystemDNSServer(connmgr.DefaultResolvConf)
		if err != nil {
			return nil, err
		}
		server = s
	}
	return connmgr.DNSLookup(server, cfg.SeedTimeout), nil
}

// bootstrapPeers gathers the addresses a fresh node would first connect to.
// A nil lookup skips DNS seeding.  The fixed seed list is used whenever DNS
// seeding produced nothing.
func bootstrapPeers(chainParams *chaincfg.Params, lookup connmgr.LookupFunc,
	m *nodeMetrics) []*btcwire.NetAddress {

	peers := newPeerSet()
	onSeed := func(source string) connmgr.OnSeed {
		return func(addrs []*btcwire.NetAddress) {
			if n := peers.add(addrs); n > 0 && m != nil {
				m.addSeeds(source, n)
			}
		}
	}

	if lookup != nil {
		connmgr.SeedFromDNS(chainParams, lookup, onSeed("dns")).Wait()
	}
	if len(peers.list()) == 0 {
		connmgr.SeedFromFixed(chainParams, onSeed("fixed"))
	}

	addrs := peers.list()
	dimdLog.Infof("Gathered %d bootstrap %s", len(addrs),
		pickNoun(uint64(len(addrs)), "peer", "peers"))
	return addrs
}
