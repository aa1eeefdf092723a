// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2024 The dimd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"go.uber.org/atomic"

	"github.com/diminutivecoin/dimd/btcutil/er"
	"github.com/diminutivecoin/dimd/wire/protocol"
)

// activeParams is written once, by SelectParams.
var activeParams atomic.Pointer[Params]

// ParamsForNetwork returns the parameters of a default network.
func ParamsForNetwork(n Network) (*Params, er.R) {
	switch n {
	case MainNet:
		return MainNetParams, nil
	case TestNet:
		return TestNetParams, nil
	case RegTest:
		return RegressionNetParams, nil
	}
	return nil, ErrUnknownNetwork.New(n.String(), nil)
}

// SelectParams makes the parameters of n the active ones for the process.  It
// may succeed only once, later calls return ErrNetworkAlreadySelected and
// leave the active network unchanged.
func SelectParams(n Network) er.R {
	p, err := ParamsForNetwork(n)
	if err != nil {
		return err
	}
	if !activeParams.CompareAndSwap(nil, p) {
		return ErrNetworkAlreadySelected.New(
			"active network is "+activeParams.Load().Name, nil)
	}
	log.Infof("Active network is %s", p.Name)
	return nil
}

// ActiveParams returns the parameters selected with SelectParams.  It panics if
// no network has been selected, reading parameters before selection is a
// programming error.
func ActiveParams() *Params {
	p := activeParams.Load()
	if p == nil {
		panic("chaincfg: active network parameters requested but not yet selected")
	}
	return p
}

// IsSelected reports whether SelectParams has succeeded.
func IsSelected() bool {
	return activeParams.Load() != nil
}

// ResetActiveParams clears the active network.
// THIS IS ONLY FOR TESTING.
func ResetActiveParams() {
	activeParams.Store(nil)
}

var (
	registeredNets    = make(map[protocol.DimNet]struct{})
	pubKeyHashAddrIDs = make(map[byte]struct{})
	scriptHashAddrIDs = make(map[byte]struct{})
	hdPrivToPubKeyIDs = make(map[[4]byte][]byte)
)

// Register registers the network parameters for a network.  This may error
// with ErrDuplicateNet if the network is already registered (either due to a
// previous Register call, or the network being one of the default networks).
//
// Network parameters should be registered into this package by a main package
// as early as possible.  Then, library packages may lookup networks or network
// parameters based on inputs and work regardless of the network being standard
// or not.
func Register(params *Params) er.R {
	if _, ok := registeredNets[params.Net]; ok {
		return ErrDuplicateNet.New(params.Net.String(), nil)
	}
	registeredNets[params.Net] = struct{}{}
	pubKeyHashAddrIDs[params.PubKeyHashAddrID] = struct{}{}
	scriptHashAddrIDs[params.ScriptHashAddrID] = struct{}{}
	hdPrivToPubKeyIDs[params.HDPrivateKeyID] = params.HDPublicKeyID[:]
	return nil
}

// mustRegister performs the same function as Register except it panics if there
// is an error.  This should only be called from package init functions.
func mustRegister(params *Params) {
	if err := Register(params); err != nil {
		panic("failed to register network: " + err.String())
	}
}

// IsPubKeyHashAddrID returns whether the id is an identifier known to prefix a
// pay-to-pubkey-hash address on any default or registered network.  It is up
// to the caller to check both this and IsScriptHashAddrID and decide whether an
// address is a pubkey hash address, script hash address, neither, or
// undeterminable (if both return true).
func IsPubKeyHashAddrID(id byte) bool {
	_, ok := pubKeyHashAddrIDs[id]
	return ok
}

// IsScriptHashAddrID returns whether the id is an identifier known to prefix a
// pay-to-script-hash address on any default or registered network.
func IsScriptHashAddrID(id byte) bool {
	_, ok := scriptHashAddrIDs[id]
	return ok
}

// HDPrivateKeyToPublicKeyID accepts a private hierarchical deterministic
// extended key id and returns the associated public key id.  When the provided
// id is not registered, the ErrUnknownHDKeyID error will be returned.
func HDPrivateKeyToPublicKeyID(id []byte) ([]byte, er.R) {
	if len(id) != 4 {
		return nil, ErrUnknownHDKeyID.Default()
	}

	var key [4]byte
	copy(key[:], id)
	pubBytes, ok := hdPrivToPubKeyIDs[key]
	if !ok {
		return nil, ErrUnknownHDKeyID.Default()
	}

	return append([]byte(nil), pubBytes...), nil
}

func init() {
	// Register all default networks when the package is initialized.
	mustRegister(MainNetParams)
	mustRegister(TestNetParams)
	mustRegister(RegressionNetParams)
}
