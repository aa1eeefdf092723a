// Copyright (c) 2016 The btcsuite developers
// Copyright (c) 2024 The dimd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package connmgr

import (
	mrand "math/rand"
	"net"
	"strconv"
	"sync"
	"time"

	btcwire "github.com/btcsuite/btcd/wire"

	"github.com/diminutivecoin/dimd/btcutil/er"
	"github.com/diminutivecoin/dimd/chaincfg"
)

const (
	// These constants are used by the DNS seed code to pick a random last
	// seen time.
	secondsIn3Days int32 = 24 * 60 * 60 * 3
	secondsIn4Days int32 = 24 * 60 * 60 * 4
)

// OnSeed is the signature of the callback function which is invoked when DNS
// seeding is succesfull.
type OnSeed func(addrs []*btcwire.NetAddress)

// LookupFunc is the signature of the DNS lookup function.
type LookupFunc func(string) ([]net.IP, er.R)

// SeedFromDNS resolves every DNS seed of the network in its own goroutine and
// hands the addresses found to seedFn.  A seed which cannot be resolved, or
// resolves to nothing, contributes its fallback IP instead when it has one.
// The returned WaitGroup is done once every seed has been handled.
func SeedFromDNS(chainParams *chaincfg.Params, lookupFn LookupFunc, seedFn OnSeed) *sync.WaitGroup {
	var wg sync.WaitGroup
	intPort, _ := strconv.Atoi(chainParams.DefaultPort)
	if intPort == 0 {
		panic("SeedFromDNS: failed to set intPort")
	}

	for _, dnsseed := range chainParams.DNSSeeds() {
		wg.Add(1)
		go func(seed chaincfg.DNSSeed) {
			defer wg.Done()
			randSource := mrand.New(mrand.NewSource(time.Now().UnixNano()))

			seedpeers, err := lookupFn(seed.Host)
			if err != nil {
				log.Infof("DNS discovery failed on seed %s: %v", seed, err)
			}
			if len(seedpeers) == 0 && seed.FallbackIP != nil {
				log.Infof("Using fallback address %v for seed %s",
					seed.FallbackIP, seed)
				seedpeers = []net.IP{seed.FallbackIP}
			}
			numPeers := len(seedpeers)

			log.Infof("%d addresses found from DNS seed %s", numPeers, seed)

			if numPeers == 0 {
				return
			}
			addresses := make([]*btcwire.NetAddress, len(seedpeers))
			for i, peer := range seedpeers {
				addresses[i] = btcwire.NewNetAddressTimestamp(
					// bitcoind seeds with addresses from
					// a time randomly selected between 3
					// and 7 days ago.
					time.Now().Add(-1*time.Second*time.Duration(secondsIn3Days+
						randSource.Int31n(secondsIn4Days))),
					btcwire.SFNodeNetwork, peer, uint16(intPort))
			}

			seedFn(addresses)
		}(dnsseed)
	}
	return &wg
}

// SeedFromFixed hands the compiled in peer addresses of the network to
// seedFn.  It is used when DNS seeding is disabled or found nothing.
func SeedFromFixed(chainParams *chaincfg.Params, seedFn OnSeed) {
	addrs := chainParams.FixedSeeds()
	log.Infof("%d fixed seed addresses for %s", len(addrs), chainParams.Name)
	if len(addrs) > 0 {
		seedFn(addrs)
	}
}
