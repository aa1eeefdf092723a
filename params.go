// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2019 Caleb James DeLisle
// Copyright (c) 2024 The dimd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"path/filepath"

	"github.com/diminutivecoin/dimd/btcutil/er"
	"github.com/diminutivecoin/dimd/chaincfg"
)

// errConfigurationConflict is returned when more than one network is
// requested on the command line or in the config file.
var errConfigurationConflict = er.GenericErrorType.Code("configuration conflict")

// resolveNetwork maps the network flags to exactly one network.  Mainnet is
// used when no flag is given.
func resolveNetwork(testNet, regressionTest bool) (chaincfg.Network, er.R) {
	switch {
	case testNet && regressionTest:
		return 0, errConfigurationConflict.New(
			"the testnet and regtest params can't be used together -- "+
				"choose one of the two", nil)
	case testNet:
		return chaincfg.TestNet, nil
	case regressionTest:
		return chaincfg.RegTest, nil
	}
	return chaincfg.MainNet, nil
}

// netDir places dir under the network's own subdirectory.  Mainnet keeps
// using dir itself.
func netDir(dir string, chainParams *chaincfg.Params) string {
	if chainParams.DataDirName == "" {
		return dir
	}
	return filepath.Join(dir, chainParams.DataDirName)
}
