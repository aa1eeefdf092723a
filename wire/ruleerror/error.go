// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2024 The dimd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ruleerror

import (
	btcwire "github.com/btcsuite/btcd/wire"
	"github.com/diminutivecoin/dimd/btcutil/er"
)

// Err identifies a rule violation.  It is used to indicate that processing of
// a block failed due to one of the chain rules.  The caller can use the codes
// below with ErrorCode.Is to ascertain the specific reason.
var Err er.ErrorType = er.NewErrorType("ruleerror.Err")

var errorStrings = make(map[*er.ErrorCode]string)

func mkError(code *er.ErrorCode, str string) *er.ErrorCode {
	errorStrings[code] = str
	return code
}

// These constants are used to identify a specific Err.
var (
	// ErrBadCheckpoint indicates a block that is expected to be at a
	// checkpoint height does not match the expected one.
	ErrBadCheckpoint = mkError(Err.Code("ErrBadCheckpoint"),
		"checkpoint mismatch")

	// ErrForkTooOld indicates a block is attempting to fork the block chain
	// before the most recent checkpoint.
	ErrForkTooOld = mkError(Err.Code("ErrForkTooOld"),
		"bad-fork-prior-to-checkpoint")
)

// RejectReason returns the short reason string sent to peers for code, or the
// empty string if code is not a rule error.
func RejectReason(code *er.ErrorCode) string {
	return errorStrings[code]
}

// ErrToRejectErr examines the error and returns a reject code and string
// appropriate to be sent in a reject message.
func ErrToRejectErr(err er.R) (btcwire.RejectCode, string) {
	if err == nil {
		return btcwire.RejectInvalid, "rejected"
	}
	for code, str := range errorStrings {
		if code.Is(err) {
			return btcwire.RejectCheckpoint, str
		}
	}
	return btcwire.RejectInvalid, "rejected: " + err.Message()
}
