// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2024 The dimd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"fmt"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/diminutivecoin/dimd/btcutil/er"
	"github.com/diminutivecoin/dimd/chaincfg"
)

// SyncCheckpointSpan is the default depth, in blocks, below the best tip at
// which a block is treated as settled.
const SyncCheckpointSpan = 500

// BlockNode is a block of the chain index.  Parent returns an untyped nil for
// the genesis block.
type BlockNode interface {
	Height() int32
	Hash() chainhash.Hash
	Parent() BlockNode
}

// ChainView gives the current best chain.  Tip returns nil while the chain is
// empty.
type ChainView interface {
	Tip() BlockNode
}

// BlockIndex finds blocks by hash.  LookupNode returns nil for unknown
// hashes.
type BlockIndex interface {
	LookupNode(hash *chainhash.Hash) BlockNode
}

// IsConsistent returns whether a block with the given hash may sit at height.
// Heights without a checkpoint accept any hash.
func IsConsistent(params *chaincfg.Params, height int32, hash *chainhash.Hash) bool {
	want, ok := params.CheckpointHash(height)
	if !ok {
		return true
	}
	return want.IsEqual(hash)
}

// CheckBlockCheckpoint is IsConsistent for the block acceptance path.  A block
// contradicting a checkpoint gets ErrBadCheckpoint and must be rejected along
// with every block built on it, whatever its proof of work.
func CheckBlockCheckpoint(params *chaincfg.Params, height int32, hash *chainhash.Hash) er.R {
	if IsConsistent(params, height, hash) {
		return nil
	}
	want, _ := params.CheckpointHash(height)
	log.Warnf("Block %v at height %d contradicts checkpoint %v", hash, height, want)
	str := fmt.Sprintf("block at height %d does not match checkpoint hash", height)
	return ruleError(ErrBadCheckpoint, str)
}

// TotalBlocksEstimate returns the height of the latest checkpoint, 0 when the
// network has none.  It is only a hint for reporting sync progress.
func TotalBlocksEstimate(params *chaincfg.Params) int32 {
	cp := params.LatestCheckpoint()
	if cp == nil {
		return 0
	}
	return cp.Height
}

// SyncProgress returns how far height is towards TotalBlocksEstimate, between
// 0 and 1.
func SyncProgress(params *chaincfg.Params, height int32) float64 {
	total := TotalBlocksEstimate(params)
	if total <= 0 || height >= total {
		return 1
	}
	if height <= 0 {
		return 0
	}
	return float64(height) / float64(total)
}

// LastCheckpointNode returns the node of the highest checkpoint whose block is
// in index, nil if there is none.  checkpoints must be ordered from oldest to
// newest, as returned by Params.Checkpoints.
func LastCheckpointNode(checkpoints []chaincfg.Checkpoint, index BlockIndex) BlockNode {
	for i := len(checkpoints) - 1; i >= 0; i-- {
		if node := index.LookupNode(checkpoints[i].Hash); node != nil {
			return node
		}
	}
	return nil
}

// CheckForkPoint refuses blocks which fork the chain below the latest
// checkpoint known to index.  Such blocks build on old blocks that were much
// easier to mine.
func CheckForkPoint(params *chaincfg.Params, index BlockIndex, height int32) er.R {
	node := LastCheckpointNode(params.Checkpoints(), index)
	if node != nil && height < node.Height() {
		str := fmt.Sprintf("block at height %d forks the main chain "+
			"before the previous checkpoint at height %d",
			height, node.Height())
		return ruleError(ErrForkTooOld, str)
	}
	return nil
}

// SyncCheckpointSelector picks a recent block of the best chain which is deep
// enough to be treated as settled.  It reads the chain on every call and
// never rejects a block, it only classifies depth.
type SyncCheckpointSelector struct {
	chain ChainView
	span  int32
}

// NewSyncCheckpointSelector returns a selector over chain which settles blocks
// more than span blocks below the tip.
func NewSyncCheckpointSelector(chain ChainView, span int32) *SyncCheckpointSelector {
	return &SyncCheckpointSelector{chain: chain, span: span}
}

// SelectSyncCheckpoint walks back from the tip while the current block is
// within span of the tip and has a parent.  The block the walk stops on is
// the sync checkpoint.  Returns nil when the chain is empty.
func (s *SyncCheckpointSelector) SelectSyncCheckpoint() BlockNode {
	tip := s.chain.Tip()
	if tip == nil {
		return nil
	}
	node := tip
	for {
		parent := node.Parent()
		if parent == nil || node.Height()+s.span <= tip.Height() {
			return node
		}
		node = parent
	}
}

// IsPastSyncCheckpoint returns true if height is above the sync checkpoint,
// that is not yet settled.  With an empty chain nothing is settled.
func (s *SyncCheckpointSelector) IsPastSyncCheckpoint(height int32) bool {
	cp := s.SelectSyncCheckpoint()
	if cp == nil {
		return true
	}
	return height > cp.Height()
}
