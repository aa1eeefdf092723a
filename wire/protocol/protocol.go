// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2024 The dimd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package protocol

import (
	"encoding/binary"
	"fmt"
)

// DimNet represents which network a message belongs to.  The value is the
// little-endian reading of the four message start bytes.
type DimNet uint32

// Constants used to indicate the message network.  They can also be used to
// seek to the next message when a stream's state is unknown, but this package
// does not provide that functionality since it's generally a better idea to
// simply disconnect clients that are misbehaving over TCP.
const (
	// MainNet represents the main network.  Message start a1 e2 b2 21.
	MainNet DimNet = 0x21b2e2a1

	// TestNet represents the public test network.  Message start 1e ca 39 a1.
	TestNet DimNet = 0xa139ca1e

	// RegTest represents the regression test network.  Message start
	// aa b2 15 12.
	RegTest DimNet = 0x1215b2aa
)

// dnStrings is a map of networks back to their constant names for pretty
// printing.
var dnStrings = map[DimNet]string{
	MainNet: "MainNet",
	TestNet: "TestNet",
	RegTest: "RegTest",
}

// String returns the DimNet in human-readable form.
func (n DimNet) String() string {
	if s, ok := dnStrings[n]; ok {
		return s
	}

	return fmt.Sprintf("Unknown DimNet (%d)", uint32(n))
}

// MessageStart returns the four bytes which open every message on the wire
// for this network.
func (n DimNet) MessageStart() [4]byte {
	var start [4]byte
	binary.LittleEndian.PutUint32(start[:], uint32(n))
	return start
}

// NetFromMessageStart is the inverse of MessageStart.
func NetFromMessageStart(start [4]byte) DimNet {
	return DimNet(binary.LittleEndian.Uint32(start[:]))
}
