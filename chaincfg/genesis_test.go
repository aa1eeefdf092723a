// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2024 The dimd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"bytes"
	"encoding/hex"
	"testing"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/require"
)

// genesisCoinbaseHex is the serialized genesis coinbase, identical on every
// network.
const genesisCoinbaseHex = "010000002c19f15d01000000000000000000000000000000000000" +
	"0000000000000000000000000000ffffffff2204ffff001d020f271947656e65736973" +
	"206f662044696d696e7574697665436f696effffffff01000000000000000000000000" +
	"0021746578743a64696d696e7574697665636f696e2067656e6573697320626c6f636b"

// TestGenesisBlock tests the genesis block of every network for validity by
// checking the encoded coinbase and hashes.
func TestGenesisBlock(t *testing.T) {
	tests := []struct {
		name   string
		spec   *netSpec
		params *Params
		time   int64
		nonce  uint32
		hash   string
	}{
		{"mainnet", &mainNetSpec, MainNetParams, 1576081708, 138199,
			"aa963271dfcdfb37e820e9795a43f97df15d0d49de329a33acc0d4284afdb4ae"},
		{"testnet", &testNetSpec, TestNetParams, 1576081708, 113527,
			"a954b5a226fb22845c5690fb59fad461bb111d1046873e3e774c191f1064422b"},
		{"regtest", &regressionNetSpec, RegressionNetParams, 1576081700, 0,
			"e10779c4f3897d83d4433f333ef4bb5df97d46903f06c31052e89d425962c0af"},
	}

	wantTx, _ := hex.DecodeString(genesisCoinbaseHex)
	for _, test := range tests {
		block, err := BuildGenesisBlock(&test.spec.genesis)
		require.Nil(t, err, test.name)

		require.Len(t, block.Transactions, 1, test.name)
		coinbase := block.Transactions[0]
		gotTx, err := coinbase.Bytes()
		require.Nil(t, err, test.name)
		if !bytes.Equal(gotTx, wantTx) {
			t.Fatalf("%s: genesis coinbase does not appear valid - got %x, "+
				"want %x\n%s", test.name, gotTx, wantTx, spew.Sdump(coinbase))
		}
		require.Equal(t, genesisMerkleRoot, chainhash.DoubleHashH(gotTx).String(), test.name)
		require.True(t, coinbase.IsCoinBase(), test.name)
		require.Equal(t, int64(0), coinbase.TxOut[0].Value, test.name)
		require.Empty(t, coinbase.TxOut[0].PkScript, test.name)

		require.Equal(t, test.time, block.Header.Timestamp.Unix(), test.name)
		require.Equal(t, test.nonce, block.Header.Nonce, test.name)
		require.Equal(t, test.params.PowLimitBits, block.Header.Bits, test.name)
		require.Equal(t, genesisMerkleRoot, block.Header.MerkleRoot.String(), test.name)

		hash := block.BlockHash()
		require.Equal(t, test.hash, hash.String(), test.name)
		require.Equal(t, test.params.GenesisHash, hash, test.name)
		require.Equal(t, hash, test.params.GenesisBlock().BlockHash(), test.name)
	}
}

// TestGenesisDeterministic ensures two independent builds from the same
// literals produce the same block.
func TestGenesisDeterministic(t *testing.T) {
	for _, spec := range []*netSpec{&mainNetSpec, &testNetSpec, &regressionNetSpec} {
		a, err := BuildGenesisBlock(&spec.genesis)
		require.Nil(t, err)
		b, err := BuildGenesisBlock(&spec.genesis)
		require.Nil(t, err)
		require.Equal(t, a.BlockHash(), b.BlockHash(), spec.name)
		require.Equal(t, a, b, spec.name)
	}
}

// TestGenesisBlockCopy ensures a caller cannot alter the genesis block held
// by the parameters.
func TestGenesisBlockCopy(t *testing.T) {
	block := MainNetParams.GenesisBlock()
	block.Header.Nonce++
	block.Transactions[0].Comment = "changed"
	block.Transactions[0].TxIn[0].SignatureScript[0] = 0

	again := MainNetParams.GenesisBlock()
	require.Equal(t, MainNetParams.GenesisHash, again.BlockHash())
	require.Equal(t, genesisComment, again.Transactions[0].Comment)
	root, err := again.CalcMerkleRoot()
	require.Nil(t, err)
	require.Equal(t, MainNetParams.GenesisMerkleRoot, root)
}

func flipHexBit(s string) string {
	b, _ := hex.DecodeString(s)
	b[len(b)-1] ^= 0x01
	return hex.EncodeToString(b)
}

// TestParamsRejectPerturbedConstants ensures that changing any single genesis
// literal by one bit makes building the parameters fail.
func TestParamsRejectPerturbedConstants(t *testing.T) {
	tests := []struct {
		name    string
		perturb func(s *netSpec)
	}{
		{"genesis hash", func(s *netSpec) { s.genesisHash = flipHexBit(s.genesisHash) }},
		{"merkle root", func(s *netSpec) { s.genesisMerkleRoot = flipHexBit(s.genesisMerkleRoot) }},
		{"nonce", func(s *netSpec) { s.genesis.Nonce ^= 1 }},
		{"header time", func(s *netSpec) { s.genesis.Timestamp = s.genesis.Timestamp.Add(1e9) }},
		{"tx time", func(s *netSpec) { s.genesis.TxTime ^= 1 }},
		{"payload", func(s *netSpec) { s.genesis.Payload = "Genesis of DiminutiveCoim" }},
		{"comment", func(s *netSpec) { s.genesis.Comment = "text:diminutivecoin genesis blocj" }},
		{"pow limit bits", func(s *netSpec) { s.powLimitBits ^= 1 }},
		{"alert key", func(s *netSpec) { s.alertPubKey = flipHexBit(s.alertPubKey) }},
		{"checkpoint 0", func(s *netSpec) {
			s.checkpoints = []checkpointSpec{{0, flipHexBit(s.genesisHash)}}
		}},
	}

	for _, base := range []*netSpec{&mainNetSpec, &testNetSpec, &regressionNetSpec} {
		_, err := newParams(base)
		require.Nil(t, err, base.name)

		for _, test := range tests {
			spec := *base
			test.perturb(&spec)
			p, err := newParams(&spec)
			require.Nil(t, p, "%s/%s", base.name, test.name)
			require.True(t, ErrConsensusConstantMismatch.Is(err),
				"%s/%s: %v", base.name, test.name, err)
		}
	}
}

// TestMustNewParamsPanics ensures a mismatch aborts initialization.
func TestMustNewParamsPanics(t *testing.T) {
	spec := mainNetSpec
	spec.genesis.Nonce++
	require.Panics(t, func() { mustNewParams(&spec) })
}
