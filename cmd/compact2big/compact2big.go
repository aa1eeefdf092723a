// Copyright (c) 2024 The dimd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	btcchain "github.com/btcsuite/btcd/blockchain"
	flags "github.com/jessevdk/go-flags"

	"github.com/diminutivecoin/dimd/btcutil/er"
	"github.com/diminutivecoin/dimd/chaincfg"
	"github.com/diminutivecoin/dimd/dimconfig/version"
)

type options struct {
	Network string `short:"n" long:"net" description:"Print the proof of work limit of this network {mainnet, testnet, regtest}"`
}

func networkByName(name string) (*chaincfg.Params, er.R) {
	for _, n := range []chaincfg.Network{chaincfg.MainNet, chaincfg.TestNet, chaincfg.RegTest} {
		if n.String() == name {
			return chaincfg.ParamsForNetwork(n)
		}
	}
	return nil, chaincfg.ErrUnknownNetwork.New(name, nil)
}

// run prints the target encoded by a compact bits value given in hex, or the
// limit of a network when --net is given.
func run(args []string, w io.Writer) er.R {
	var opts options
	parser := flags.NewParser(&opts, flags.Default)
	parser.Usage = "[OPTIONS] <compact bits in hex>"
	rest, errr := parser.ParseArgs(args)
	if errr != nil {
		return er.E(errr)
	}

	if opts.Network != "" {
		p, err := networkByName(opts.Network)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%08x %s\n", p.PowLimitBits, p.PowLimit().Text(16))
		return nil
	}

	if len(rest) < 1 {
		parser.WriteHelp(w)
		return er.New("missing compact bits")
	}
	num, errr := strconv.ParseUint(rest[0], 16, 32)
	if errr != nil {
		return er.Errorf("expected hex number, got [%s]", rest[0])
	}
	bigNum := btcchain.CompactToBig(uint32(num))
	fmt.Fprintf(w, "%s\n", bigNum.Text(16))
	return nil
}

func main() {
	version.SetUserAgentName("compact2big")
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
