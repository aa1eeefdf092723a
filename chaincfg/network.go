// Copyright (c) 2024 The dimd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import "fmt"

// Network identifies one of the consensus parameter sets.  Exactly one of them
// is active in a running node.
type Network int

const (
	// MainNet is the production network.
	MainNet Network = iota

	// TestNet is the public test network.
	TestNet

	// RegTest is the local regression test network.
	RegTest
)

var networkNames = map[Network]string{
	MainNet: "mainnet",
	TestNet: "testnet",
	RegTest: "regtest",
}

func (n Network) String() string {
	if s, ok := networkNames[n]; ok {
		return s
	}
	return fmt.Sprintf("Unknown Network (%d)", int(n))
}
