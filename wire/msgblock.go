// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2024 The dimd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	btcwire "github.com/btcsuite/btcd/wire"
	"github.com/diminutivecoin/dimd/btcutil/er"
)

// MsgBlock is a block: the standard 80 byte bitcoin header followed by the
// transactions.  The block hash only covers the header.
type MsgBlock struct {
	Header       btcwire.BlockHeader
	Transactions []*MsgTx
}

// AddTransaction adds a transaction to the message.
func (msg *MsgBlock) AddTransaction(tx *MsgTx) {
	msg.Transactions = append(msg.Transactions, tx)
}

// BlockHash computes the block identifier hash for this block.
func (msg *MsgBlock) BlockHash() chainhash.Hash {
	return msg.Header.BlockHash()
}

// TxHashes returns the hashes of the transactions in block order.
func (msg *MsgBlock) TxHashes() ([]chainhash.Hash, er.R) {
	hashes := make([]chainhash.Hash, 0, len(msg.Transactions))
	for _, tx := range msg.Transactions {
		h, err := tx.TxHash()
		if err != nil {
			return nil, err
		}
		hashes = append(hashes, h)
	}
	return hashes, nil
}

// CalcMerkleRoot computes the merkle root of the block's transactions.  It is
// not compared with Header.MerkleRoot.
func (msg *MsgBlock) CalcMerkleRoot() (chainhash.Hash, er.R) {
	hashes, err := msg.TxHashes()
	if err != nil {
		return chainhash.Hash{}, err
	}
	return BuildMerkleRoot(hashes), nil
}

// Copy creates a deep copy of the block.
func (msg *MsgBlock) Copy() *MsgBlock {
	newBlock := MsgBlock{
		Header:       msg.Header,
		Transactions: make([]*MsgTx, 0, len(msg.Transactions)),
	}
	for _, tx := range msg.Transactions {
		newBlock.Transactions = append(newBlock.Transactions, tx.Copy())
	}
	return &newBlock
}
