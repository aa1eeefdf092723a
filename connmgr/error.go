// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2024 The dimd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package connmgr

import "github.com/diminutivecoin/dimd/btcutil/er"

// Err identifies a peer discovery failure.
var Err er.ErrorType = er.NewErrorType("connmgr.Err")

var (
	// ErrDNSLookupFailed indicates a DNS server answered with an error or
	// could not be reached.
	ErrDNSLookupFailed = Err.Code("ErrDNSLookupFailed")

	// ErrTorInvalidAddressResponse indicates an invalid address was
	// returned by the Tor DNS resolver.
	ErrTorInvalidAddressResponse = Err.Code("ErrTorInvalidAddressResponse")

	// ErrTorInvalidProxyResponse indicates the Tor proxy returned a
	// response in an unexpected format.
	ErrTorInvalidProxyResponse = Err.Code("ErrTorInvalidProxyResponse")

	// ErrTorUnrecognizedAuthMethod indicates the authentication method
	// provided is not recognized.
	ErrTorUnrecognizedAuthMethod = Err.Code("ErrTorUnrecognizedAuthMethod")
)
