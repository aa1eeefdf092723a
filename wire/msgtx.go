// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2024 The dimd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	btcwire "github.com/btcsuite/btcd/wire"
	"github.com/diminutivecoin/dimd/btcutil/er"
)

const (
	// TxVersion is the current latest supported transaction version.
	TxVersion = 1

	// MaxTxCommentLength is the longest comment a transaction may carry.
	MaxTxCommentLength = 528

	// pver is the protocol version passed to the btcd variable length
	// encoders, none of which depend on it.
	pver = btcwire.ProtocolVersion
)

// MsgTx is a transaction.  Compared to the bitcoin layout it carries the
// time the transaction was created and a free form comment:
//
//	version(4) time(4) txins txouts locktime(4) comment(varstr)
//
// Inputs and outputs use the bitcoin encoding.
type MsgTx struct {
	Version  int32
	Time     uint32
	TxIn     []*btcwire.TxIn
	TxOut    []*btcwire.TxOut
	LockTime uint32
	Comment  string
}

// AddTxIn adds a transaction input to the message.
func (msg *MsgTx) AddTxIn(ti *btcwire.TxIn) {
	msg.TxIn = append(msg.TxIn, ti)
}

// AddTxOut adds a transaction output to the message.
func (msg *MsgTx) AddTxOut(to *btcwire.TxOut) {
	msg.TxOut = append(msg.TxOut, to)
}

// IsCoinBase determines whether or not a transaction is a coinbase.  A coinbase
// is a special transaction created by miners that has no inputs.  This is
// represented in the block chain by a transaction with a single input that has
// a previous output transaction index set to the maximum value along with a
// zero hash.
func (msg *MsgTx) IsCoinBase() bool {
	if len(msg.TxIn) != 1 {
		return false
	}
	prevOut := &msg.TxIn[0].PreviousOutPoint
	return prevOut.Index == btcwire.MaxPrevOutIndex &&
		prevOut.Hash == chainhash.Hash{}
}

// Serialize encodes the transaction to w.
func (msg *MsgTx) Serialize(w io.Writer) er.R {
	if len(msg.Comment) > MaxTxCommentLength {
		str := fmt.Sprintf("comment is %d bytes, max %d",
			len(msg.Comment), MaxTxCommentLength)
		return messageError("MsgTx.Serialize", str)
	}

	if err := writeElements(w, msg.Version, msg.Time); err != nil {
		return err
	}

	if err := er.E(btcwire.WriteVarInt(w, pver, uint64(len(msg.TxIn)))); err != nil {
		return err
	}
	for _, ti := range msg.TxIn {
		if err := writeTxIn(w, ti); err != nil {
			return err
		}
	}

	if err := er.E(btcwire.WriteVarInt(w, pver, uint64(len(msg.TxOut)))); err != nil {
		return err
	}
	for _, to := range msg.TxOut {
		if err := er.E(btcwire.WriteTxOut(w, pver, msg.Version, to)); err != nil {
			return err
		}
	}

	if err := writeElements(w, msg.LockTime); err != nil {
		return err
	}
	return er.E(btcwire.WriteVarString(w, pver, msg.Comment))
}

// Bytes returns the serialized transaction.
func (msg *MsgTx) Bytes() ([]byte, er.R) {
	var buf bytes.Buffer
	if err := msg.Serialize(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// TxHash generates the hash for the transaction, the double sha256 of its
// serialization.
func (msg *MsgTx) TxHash() (chainhash.Hash, er.R) {
	b, err := msg.Bytes()
	if err != nil {
		return chainhash.Hash{}, err
	}
	return chainhash.DoubleHashH(b), nil
}

// Copy creates a deep copy of the transaction so the caller can modify it
// without touching the original.
func (msg *MsgTx) Copy() *MsgTx {
	newTx := MsgTx{
		Version:  msg.Version,
		Time:     msg.Time,
		TxIn:     make([]*btcwire.TxIn, 0, len(msg.TxIn)),
		TxOut:    make([]*btcwire.TxOut, 0, len(msg.TxOut)),
		LockTime: msg.LockTime,
		Comment:  msg.Comment,
	}
	for _, oldTxIn := range msg.TxIn {
		newTxIn := btcwire.TxIn{
			PreviousOutPoint: oldTxIn.PreviousOutPoint,
			SignatureScript:  append([]byte(nil), oldTxIn.SignatureScript...),
			Sequence:         oldTxIn.Sequence,
		}
		newTx.TxIn = append(newTx.TxIn, &newTxIn)
	}
	for _, oldTxOut := range msg.TxOut {
		newTxOut := btcwire.TxOut{
			Value:    oldTxOut.Value,
			PkScript: append([]byte(nil), oldTxOut.PkScript...),
		}
		newTx.TxOut = append(newTx.TxOut, &newTxOut)
	}
	return &newTx
}

func writeTxIn(w io.Writer, ti *btcwire.TxIn) er.R {
	op := &ti.PreviousOutPoint
	if _, err := w.Write(op.Hash[:]); err != nil {
		return er.E(err)
	}
	if err := writeElements(w, op.Index); err != nil {
		return err
	}
	if err := er.E(btcwire.WriteVarBytes(w, pver, ti.SignatureScript)); err != nil {
		return err
	}
	return writeElements(w, ti.Sequence)
}

// writeElements writes fixed size little-endian integers.
func writeElements(w io.Writer, elements ...interface{}) er.R {
	for _, element := range elements {
		if err := binary.Write(w, binary.LittleEndian, element); err != nil {
			return er.E(err)
		}
	}
	return nil
}

// NewMsgTx returns a new transaction message with the given time and no
// inputs or outputs.
func NewMsgTx(version int32, txTime uint32) *MsgTx {
	return &MsgTx{
		Version: version,
		Time:    txTime,
	}
}
