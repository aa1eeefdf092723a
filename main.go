// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2015-2016 The Decred developers
// Copyright (c) 2024 The dimd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	"github.com/diminutivecoin/dimd/blockchain"
	"github.com/diminutivecoin/dimd/btcutil/er"
	"github.com/diminutivecoin/dimd/chaincfg"
	"github.com/diminutivecoin/dimd/dimconfig/version"
)

// logNetworkSummary writes what the node knows about the selected network
// and checks the genesis block against its own checkpoint table.
func logNetworkSummary(p *chaincfg.Params) er.R {
	start := p.Net.MessageStart()
	dimdLog.Infof("Network %s, magic %x, port %s, rpc port %s", p.Name, start,
		p.DefaultPort, p.RPCPort)
	dimdLog.Infof("Genesis block %s (merkle root %s)", p.GenesisHash,
		p.GenesisMerkleRoot)

	if err := blockchain.CheckBlockCheckpoint(p, 0, &p.GenesisHash); err != nil {
		return err
	}

	cps := p.Checkpoints()
	if len(cps) == 0 {
		dimdLog.Infof("No checkpoints on %s", p.Name)
		return nil
	}
	latest := p.LatestCheckpoint()
	dimdLog.Infof("Loaded %d %s, latest at height %d (%s)", len(cps),
		pickNoun(uint64(len(cps)), "checkpoint", "checkpoints"),
		latest.Height, latest.Hash)
	dimdLog.Debugf("Chain holds at least %d blocks",
		blockchain.TotalBlocksEstimate(p))
	return nil
}

// dimdMain is the real main function for dimd.  It is necessary to work
// around the fact that deferred functions do not run when os.Exit() is called.
func dimdMain() er.R {
	// Get a channel that will be closed when a shutdown signal has been
	// triggered either from an OS signal such as SIGINT (Ctrl+C) or from
	// shutdownRequestChannel.
	interrupt := interruptListener()

	// Load configuration and parse command line.  This function also
	// selects the network and initializes logging.
	cfg, _, err := loadConfig(os.Args[1:])
	if err != nil {
		return err
	}
	defer func() {
		if logRotator != nil {
			logRotator.Close()
		}
	}()
	defer dimdLog.Info("Shutdown complete")

	version.SetUserAgentName("dimd")
	dimdLog.Infof("Version %s", version.Version())
	version.WarnIfPrerelease(dimdLog)
	dimdLog.Infof("Data directory %s", cfg.DataDir)

	if err := logNetworkSummary(cfg.params); err != nil {
		dimdLog.Criticalf("Genesis block rejected: %v", err)
		return err
	}

	metrics := newNodeMetrics()
	metrics.setNetwork(cfg.params)
	if cfg.Prometheus != "" {
		srv, err := startMetricsServer(cfg.Prometheus, metrics)
		if err != nil {
			dimdLog.Errorf("Unable to start prometheus server: %v", err)
			return err
		}
		defer srv.Stop()
	}

	// Return now if an interrupt signal was triggered.
	if interruptRequested(interrupt) {
		return nil
	}

	go func() {
		if cfg.DisableDNSSeed {
			bootstrapPeers(cfg.params, nil, metrics)
			return
		}
		lookup, err := seedLookup(cfg)
		if err != nil {
			dimdLog.Warnf("DNS seeding unavailable, using fixed seeds: %v", err)
		}
		bootstrapPeers(cfg.params, lookup, metrics)
	}()

	// Wait until the interrupt signal is received from an OS signal or
	// shutdown is requested.
	<-interrupt
	return nil
}

func main() {
	if err := dimdMain(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
