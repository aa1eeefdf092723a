// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2019 Caleb James DeLisle
// Copyright (c) 2024 The dimd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"github.com/diminutivecoin/dimd/btcutil/er"
	"github.com/diminutivecoin/dimd/wire/ruleerror"
)

// These are just aliases to the relevant ruleerror
var (
	// ErrBadCheckpoint indicates a block that is expected to be at a
	// checkpoint height does not match the expected one.
	ErrBadCheckpoint = ruleerror.ErrBadCheckpoint

	// ErrForkTooOld indicates a block is attempting to fork the block chain
	// before the most recent checkpoint.
	ErrForkTooOld = ruleerror.ErrForkTooOld
)

// ruleError creates an RuleError given a set of arguments.
func ruleError(c *er.ErrorCode, desc string) er.R {
	return c.New(desc, nil)
}
