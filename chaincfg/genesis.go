// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2024 The dimd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/txscript"
	btcwire "github.com/btcsuite/btcd/wire"
	"github.com/diminutivecoin/dimd/btcutil/er"
	"github.com/diminutivecoin/dimd/wire"
)

const (
	// genesisScriptBits and genesisScriptExtra are the two numbers which
	// open the genesis coinbase signature script.
	genesisScriptBits  = 486604799
	genesisScriptExtra = 9999

	genesisPayload = "Genesis of DiminutiveCoin"
	genesisComment = "text:diminutivecoin genesis block"

	// genesisTxTime is the timestamp of the genesis coinbase, shared by
	// every network.
	genesisTxTime = 1576081708
)

// GenesisInputs are the literals a genesis block is built from.
type GenesisInputs struct {
	// Timestamp, Bits and Nonce go into the block header.
	Timestamp time.Time
	Bits      uint32
	Nonce     uint32

	// Payload is the text pushed by the coinbase signature script.
	Payload string

	// RewardScript is the public key script of the single output.  The
	// output value is always zero.
	RewardScript []byte

	// TxTime and Comment are the coinbase timestamp and comment.
	TxTime  uint32
	Comment string
}

// BuildGenesisBlock creates the genesis block described by in.  The coinbase
// spends the null outpoint with a placeholder signature script, so nothing it
// creates can ever be spent.  The result only depends on in.
func BuildGenesisBlock(in *GenesisInputs) (*wire.MsgBlock, er.R) {
	sigScript, errr := txscript.NewScriptBuilder().
		AddInt64(genesisScriptBits).
		AddInt64(genesisScriptExtra).
		AddData([]byte(in.Payload)).
		Script()
	if errr != nil {
		return nil, er.E(errr)
	}

	coinbase := wire.NewMsgTx(wire.TxVersion, in.TxTime)
	coinbase.AddTxIn(&btcwire.TxIn{
		PreviousOutPoint: btcwire.OutPoint{
			Hash:  chainhash.Hash{},
			Index: btcwire.MaxPrevOutIndex,
		},
		SignatureScript: sigScript,
		Sequence:        btcwire.MaxTxInSequenceNum,
	})
	coinbase.AddTxOut(&btcwire.TxOut{
		Value:    0,
		PkScript: append([]byte(nil), in.RewardScript...),
	})
	coinbase.Comment = in.Comment

	txHash, err := coinbase.TxHash()
	if err != nil {
		return nil, err
	}

	block := &wire.MsgBlock{
		Header: btcwire.BlockHeader{
			Version:    1,
			PrevBlock:  chainhash.Hash{},
			MerkleRoot: wire.BuildMerkleRoot([]chainhash.Hash{txHash}),
			Timestamp:  in.Timestamp,
			Bits:       in.Bits,
			Nonce:      in.Nonce,
		},
	}
	block.AddTransaction(coinbase)
	return block, nil
}

// genesisInputs returns the genesis literals shared by all networks with the
// header fields given.
func genesisInputs(headerTime int64, bits, nonce uint32) GenesisInputs {
	return GenesisInputs{
		Timestamp: time.Unix(headerTime, 0),
		Bits:      bits,
		Nonce:     nonce,
		Payload:   genesisPayload,
		TxTime:    genesisTxTime,
		Comment:   genesisComment,
	}
}
