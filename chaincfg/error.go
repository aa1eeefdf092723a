// Copyright (c) 2024 The dimd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import "github.com/diminutivecoin/dimd/btcutil/er"

// Err identifies a failure of the network parameter layer.
var Err er.ErrorType = er.NewErrorType("chaincfg.Err")

var (
	// ErrConsensusConstantMismatch describes parameters whose hard coded
	// constants disagree with what they compute, for example a genesis
	// block which does not hash to the expected genesis hash.  The node
	// must not run with such parameters.
	ErrConsensusConstantMismatch = Err.Code("ErrConsensusConstantMismatch")

	// ErrNetworkAlreadySelected describes an attempt to select the active
	// network a second time.
	ErrNetworkAlreadySelected = Err.Code("ErrNetworkAlreadySelected")

	// ErrUnknownNetwork describes a network identity with no parameters.
	ErrUnknownNetwork = Err.Code("ErrUnknownNetwork")

	// ErrDuplicateNet describes an error where the parameters for a
	// network could not be registered because a network with the same
	// magic is already registered.
	ErrDuplicateNet = Err.Code("ErrDuplicateNet")

	// ErrUnknownHDKeyID describes an error where the provided id which
	// is intended to identify the network for a hierarchical deterministic
	// private extended key is not registered.
	ErrUnknownHDKeyID = Err.Code("ErrUnknownHDKeyID")
)
