// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2019 Caleb James DeLisle
// Copyright (c) 2024 The dimd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"encoding/hex"
	"fmt"
	"math"
	"math/big"
	"math/rand"
	"net"
	"time"

	btcchain "github.com/btcsuite/btcd/blockchain"
	"github.com/btcsuite/btcd/btcec"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	btcwire "github.com/btcsuite/btcd/wire"
	"github.com/btcsuite/btcutil"
	"github.com/btcsuite/btcutil/base58"
	"github.com/diminutivecoin/dimd/btcutil/er"
	"github.com/diminutivecoin/dimd/btcutil/util/tmap"
	"github.com/diminutivecoin/dimd/wire"
	"github.com/diminutivecoin/dimd/wire/protocol"
)

// These variables are the chain proof-of-work limit parameters for each default
// network.
var (
	// bigOne is 1 represented as a big.Int.  It is defined here to avoid
	// the overhead of creating it multiple times.
	bigOne = big.NewInt(1)

	// mainPowLimit is the highest proof of work value a block can have for
	// the main network.  It is the value 2^236 - 1.
	mainPowLimit = new(big.Int).Sub(new(big.Int).Lsh(bigOne, 236), bigOne)

	// testNetPowLimit is the highest proof of work value a block can have
	// for the test network.  It is the value 2^240 - 1.
	testNetPowLimit = new(big.Int).Sub(new(big.Int).Lsh(bigOne, 240), bigOne)

	// regressionPowLimit is the highest proof of work value a block can
	// have for the regression test network.  It is the value 2^255 - 1.
	regressionPowLimit = new(big.Int).Sub(new(big.Int).Lsh(bigOne, 255), bigOne)
)

// UnboundedRewardHeight is the LastRewardHeight of a network which never stops
// paying block rewards.
const UnboundedRewardHeight = math.MaxUint64

// Checkpoint identifies a known good point in the block chain.  A block at a
// checkpointed height with any other hash is rejected regardless of its proof
// of work.
type Checkpoint struct {
	Height int32
	Hash   *chainhash.Hash
}

type checkpointSpec struct {
	height int32
	hash   string
}

// netSpec holds the literals one network is built from.
type netSpec struct {
	network     Network
	name        string
	magic       protocol.DimNet
	defaultPort string
	rpcPort     string

	powLimit     *big.Int
	powLimitBits uint32

	genesis           GenesisInputs
	genesisHash       string
	genesisMerkleRoot string

	pubKeyHashAddrID byte
	scriptHashAddrID byte
	privateKeyID     byte
	hdPrivateKeyID   [4]byte
	hdPublicKeyID    [4]byte

	dnsSeeds    []DNSSeed
	fixedSeeds  []SeedSpec6
	checkpoints []checkpointSpec

	requireRPCCredentials bool
	lastRewardHeight      uint64
	dataDirName           string
	alertPubKey           string
}

// Params defines a network by its parameters.  These parameters may be used
// to differentiate networks as well as addresses and keys for one network
// from those intended for use on another network.
//
// Params are only created by this package and are shared by everything in
// the process, they must be treated as read only.  Values which could be
// modified through a returned reference are reachable only through accessor
// methods returning copies.
type Params struct {
	// Name defines a human-readable identifier for the network.
	Name string

	// Network is the identity these parameters belong to.
	Network Network

	// Net defines the magic bytes used to identify the network.
	Net protocol.DimNet

	// DefaultPort defines the default peer-to-peer port for the network.
	DefaultPort string

	// RPCPort is the default port of the remote control interface.
	RPCPort string

	// PowLimitBits defines the highest allowed proof of work value for a
	// block in compact form.
	PowLimitBits uint32

	// GenesisHash is the hash of the first block of the chain.
	GenesisHash chainhash.Hash

	// GenesisMerkleRoot is the merkle root of the genesis block.
	GenesisMerkleRoot chainhash.Hash

	// Address encoding magics
	PubKeyHashAddrID byte // First byte of a P2PKH address
	ScriptHashAddrID byte // First byte of a P2SH address
	PrivateKeyID     byte // First byte of a WIF private key

	// BIP32 hierarchical deterministic extended key magics
	HDPrivateKeyID [4]byte
	HDPublicKeyID  [4]byte

	// RequireRPCCredentials is whether the remote control interface
	// refuses to run without a username and password.
	RequireRPCCredentials bool

	// LastRewardHeight is the last height which pays a block reward.
	LastRewardHeight uint64

	// DataDirName is appended to the data directory, empty for the main
	// network.
	DataDirName string

	powLimit     *big.Int
	genesisBlock *wire.MsgBlock
	alertPubKey  *btcec.PublicKey
	dnsSeeds     []DNSSeed
	fixedSeeds   []*btcwire.NetAddress
	checkpoints  *tmap.Map[int32, chainhash.Hash]
}

func compareHeight(a, b *int32) int {
	switch {
	case *a < *b:
		return -1
	case *a > *b:
		return 1
	}
	return 0
}

func mismatch(spec *netSpec, format string, args ...interface{}) er.R {
	return ErrConsensusConstantMismatch.New(
		spec.name+": "+fmt.Sprintf(format, args...), nil)
}

// newParams builds the parameters for spec and checks them against the
// constants in spec.  Any disagreement is an ErrConsensusConstantMismatch.
func newParams(spec *netSpec) (*Params, er.R) {
	if bits := btcchain.BigToCompact(spec.powLimit); bits != spec.powLimitBits {
		return nil, mismatch(spec, "pow limit compacts to %08x, expected %08x",
			bits, spec.powLimitBits)
	}
	if spec.genesis.Bits != spec.powLimitBits {
		return nil, mismatch(spec, "genesis bits %08x differ from pow limit bits %08x",
			spec.genesis.Bits, spec.powLimitBits)
	}

	genesis, err := BuildGenesisBlock(&spec.genesis)
	if err != nil {
		return nil, err
	}
	wantHash, err := hashFromStr(spec.genesisHash)
	if err != nil {
		return nil, err
	}
	wantRoot, err := hashFromStr(spec.genesisMerkleRoot)
	if err != nil {
		return nil, err
	}
	if got := genesis.BlockHash(); got != *wantHash {
		return nil, mismatch(spec, "genesis hash is %v, expected %v", got, wantHash)
	}
	if got := genesis.Header.MerkleRoot; got != *wantRoot {
		return nil, mismatch(spec, "genesis merkle root is %v, expected %v",
			got, wantRoot)
	}

	keyBytes, errr := hex.DecodeString(spec.alertPubKey)
	if errr != nil {
		return nil, mismatch(spec, "alert key: %v", errr)
	}
	alertKey, errr := btcec.ParsePubKey(keyBytes, btcec.S256())
	if errr != nil {
		return nil, mismatch(spec, "alert key: %v", errr)
	}

	checkpoints := tmap.New[int32, chainhash.Hash](compareHeight)
	for _, cp := range spec.checkpoints {
		hash, err := hashFromStr(cp.hash)
		if err != nil {
			return nil, err
		}
		if cp.height == 0 && *hash != *wantHash {
			return nil, mismatch(spec, "checkpoint 0 is %v, expected genesis %v",
				hash, wantHash)
		}
		height := cp.height
		if k, _ := tmap.Insert(checkpoints, &height, hash); k != nil {
			return nil, mismatch(spec, "duplicate checkpoint at height %d", height)
		}
	}

	rnd := rand.New(rand.NewSource(time.Now().UnixNano()))
	p := &Params{
		Name:                  spec.name,
		Network:               spec.network,
		Net:                   spec.magic,
		DefaultPort:           spec.defaultPort,
		RPCPort:               spec.rpcPort,
		PowLimitBits:          spec.powLimitBits,
		GenesisHash:           *wantHash,
		GenesisMerkleRoot:     *wantRoot,
		PubKeyHashAddrID:      spec.pubKeyHashAddrID,
		ScriptHashAddrID:      spec.scriptHashAddrID,
		PrivateKeyID:          spec.privateKeyID,
		HDPrivateKeyID:        spec.hdPrivateKeyID,
		HDPublicKeyID:         spec.hdPublicKeyID,
		RequireRPCCredentials: spec.requireRPCCredentials,
		LastRewardHeight:      spec.lastRewardHeight,
		DataDirName:           spec.dataDirName,

		powLimit:     new(big.Int).Set(spec.powLimit),
		genesisBlock: genesis,
		alertPubKey:  alertKey,
		dnsSeeds:     copySeeds(spec.dnsSeeds),
		fixedSeeds:   ExpandFixedSeeds(spec.fixedSeeds, time.Now(), rnd),
		checkpoints:  checkpoints,
	}
	log.Debugf("Built %s parameters, genesis %v, %d checkpoints", p.Name,
		p.GenesisHash, tmap.Len(checkpoints))
	return p, nil
}

// mustNewParams performs the same function as newParams except it panics if
// there is an error.  This should only be called from package initialization.
func mustNewParams(spec *netSpec) *Params {
	p, err := newParams(spec)
	if err != nil {
		panic("failed to build network parameters: " + err.String())
	}
	return p
}

// PowLimit returns the highest allowed proof of work value for a block.
func (p *Params) PowLimit() *big.Int {
	return new(big.Int).Set(p.powLimit)
}

// GenesisBlock returns a copy of the first block of the chain.
func (p *Params) GenesisBlock() *wire.MsgBlock {
	return p.genesisBlock.Copy()
}

// AlertPubKey returns the uncompressed public key alerts are signed with.
func (p *Params) AlertPubKey() []byte {
	return p.alertPubKey.SerializeUncompressed()
}

// DNSSeeds returns the DNS seeds of the network in priority order.
func (p *Params) DNSSeeds() []DNSSeed {
	return copySeeds(p.dnsSeeds)
}

// FixedSeeds returns the compiled in peer addresses of the network.
func (p *Params) FixedSeeds() []*btcwire.NetAddress {
	out := make([]*btcwire.NetAddress, 0, len(p.fixedSeeds))
	for _, na := range p.fixedSeeds {
		c := *na
		c.IP = append(net.IP(nil), na.IP...)
		out = append(out, &c)
	}
	return out
}

// Checkpoints returns the checkpoints ordered from oldest to newest.
func (p *Params) Checkpoints() []Checkpoint {
	out := make([]Checkpoint, 0, tmap.Len(p.checkpoints))
	_ = tmap.ForEach(p.checkpoints, func(h *int32, hash *chainhash.Hash) er.R {
		hc := *hash
		out = append(out, Checkpoint{Height: *h, Hash: &hc})
		return nil
	})
	return out
}

// CheckpointHash returns the checkpointed hash at height, false if height is
// not checkpointed.
func (p *Params) CheckpointHash(height int32) (chainhash.Hash, bool) {
	_, hash := tmap.GetEntry(p.checkpoints, &height)
	if hash == nil {
		return chainhash.Hash{}, false
	}
	return *hash, true
}

// LatestCheckpoint returns the most recent checkpoint, nil if the network has
// none.
func (p *Params) LatestCheckpoint() *Checkpoint {
	h, hash := tmap.Last(p.checkpoints)
	if h == nil {
		return nil
	}
	hc := *hash
	return &Checkpoint{Height: *h, Hash: &hc}
}

// EncodeAddress encodes a 20 byte public key hash as a pay-to-pubkey-hash
// address of this network.
func (p *Params) EncodeAddress(pubKeyHash []byte) string {
	return base58.CheckEncode(pubKeyHash, p.PubKeyHashAddrID)
}

// EncodeScriptAddress encodes a 20 byte script hash as a pay-to-script-hash
// address of this network.
func (p *Params) EncodeScriptAddress(scriptHash []byte) string {
	return base58.CheckEncode(scriptHash, p.ScriptHashAddrID)
}

// PubKeyAddress returns the pay-to-pubkey-hash address of a serialized
// public key.
func (p *Params) PubKeyAddress(serializedPubKey []byte) string {
	return p.EncodeAddress(btcutil.Hash160(serializedPubKey))
}

func copySeeds(seeds []DNSSeed) []DNSSeed {
	out := make([]DNSSeed, 0, len(seeds))
	for _, s := range seeds {
		s.FallbackIP = append(net.IP(nil), s.FallbackIP...)
		out = append(out, s)
	}
	return out
}

// hashFromStr converts the passed big-endian hex string into a chainhash.Hash.
func hashFromStr(hexStr string) (*chainhash.Hash, er.R) {
	hash, errr := chainhash.NewHashFromStr(hexStr)
	if errr != nil {
		return nil, ErrConsensusConstantMismatch.New("bad hash literal "+hexStr,
			er.E(errr))
	}
	return hash, nil
}

const genesisMerkleRoot = "8470d587cdf120dddd542c3330f9d4982397f3f49fc7d6fe20a5ae8b53aba415"

var mainNetSpec = netSpec{
	network:     MainNet,
	name:        "mainnet",
	magic:       protocol.MainNet,
	defaultPort: "15500",
	rpcPort:     "15501",

	powLimit:     mainPowLimit,
	powLimitBits: 0x1e0fffff,

	genesis:           genesisInputs(1576081708, 0x1e0fffff, 138199),
	genesisHash:       "aa963271dfcdfb37e820e9795a43f97df15d0d49de329a33acc0d4284afdb4ae",
	genesisMerkleRoot: genesisMerkleRoot,

	pubKeyHashAddrID: 30, // starts with D
	scriptHashAddrID: 31, // starts with D
	privateKeyID:     181,
	hdPrivateKeyID:   [4]byte{0x13, 0x82, 0xab, 0xb1},
	hdPublicKeyID:    [4]byte{0x12, 0xa2, 0x1b, 0x2a},

	dnsSeeds: []DNSSeed{
		{"seed1.dimi.net", net.IPv4(51, 75, 162, 95)},
		{"seed5.dimi.net", net.IPv4(51, 38, 71, 12)},
	},
	fixedSeeds: mainNetFixedSeeds,
	checkpoints: []checkpointSpec{
		{0, "aa963271dfcdfb37e820e9795a43f97df15d0d49de329a33acc0d4284afdb4ae"},
		{500, "000000000f7b5f8219b21c6b0bdcb3cf75a7eb1dd3caa38f5cdcfd66e8be2a46"},
		{1000, "00000000063816988ea0a483bf7457ef2f537a1134a04f3eaec7fc7e119b5da4"},
		{1500, "0000000046bec36becb71205861c5c4632dff80e246c57533d9948fbb596355a"},
		{2000, "0000000001437407968bb888bd1986adda3f00aac398e7166632281d1cf44fc2"},
		{2500, "0000000009469e6afd424963509c82d11943481fb2155675d360fa51803fd802"},
		{3000, "00000000ddd2f8ad358653779f7c9a5b5f235e630dc92d1d7041f8305c09af78"},
		{3500, "000000008d7c4bd424e8c089615a221e22b17c4e4c807cf32aba9f8d57ffbab0"},
		{4000, "000000000bb537e34c285f5149bb0ea7b37701aef358ee077a4e7e65d40d933c"},
		{4500, "00000000592b7a5ebec84a8ef1a213fd0beceaf5ff830ace71e98a3d1441c816"},
		{5000, "00000000515969771ce4f3dc665b30ccef5bd4528c51353aee471b2ea8e07877"},
		{5500, "000000000d5871b1c90c086ecfa5764a2cadd0ba561480b2fdbbe33ae117d76d"},
		{6000, "00000000438a554c32ea6a1def43be2edc0d335d482cecd3646f129381f96f12"},
		{6500, "0000000008aaf279a144c9fe085f76046eae800fe49e7743ef477cc1dea55946"},
		{10000, "000000002c72a8a2b93e70d3a4aab03fd6b965fbac55e5dedd36ee14c24a9b8e"},
		{15000, "00000000221baa3fb004ecb3411cb4d0425dc167d6fc5f51e87a16e7d50bea37"},
		{16000, "000000001d9e894537c321cae49c9d652c0d5996ee8e74052f7a3e53c0c276dd"},
		{17000, "000000000f6eab27036fdc77d9a520f0df44737ab0d77e6ef469d9a076233b68"},
		{18000, "000000003edc980bd0d61b59eaf483e2d1fcf83bf04ed4df4aa63e848064daeb"},
		{20000, "d75b1c9bbae68bc5f1a556b82b851651a2bbd3701c0516bb6f4a34ae37425cc8"},
		{30000, "000000001d239ebfbe7b8aa4a1660802d8304d71c9764cc1daa91363c8c3e2f3"},
		{40000, "0000000001077e21e70887f57c513da3c1d65f6f142f69901b423f818e96cc12"},
		{50000, "0000000007ea31edeeea9b5038047cac91639bfcac3f4876230deeb4e569449e"},
	},

	requireRPCCredentials: true,
	lastRewardHeight:      UnboundedRewardHeight,
	dataDirName:           "",
	alertPubKey:           "0437e1597cb5a7a518bb7e2801ba4bb007dc6dbd51f1ebb6bae4ff2b69d2af01f6eee282b7e3498bb0af65a7a2f203177a7cdef22489367d8a65d249d3a1d5d23e",
}

const testNetAlertPubKey = "048836e98d4486aebfdd108de35f4c79ee89fc364f5f642d1cbc348f0eb807d54c27c04b3385fdf8fd308f870b6f994d4acd2d2d44a25035ef6dd5d36cd204375d"

var testNetSpec = netSpec{
	network:     TestNet,
	name:        "testnet",
	magic:       protocol.TestNet,
	defaultPort: "15001",
	rpcPort:     "15000",

	powLimit:     testNetPowLimit,
	powLimitBits: 0x1f00ffff,

	genesis:           genesisInputs(1576081708, 0x1f00ffff, 113527),
	genesisHash:       "a954b5a226fb22845c5690fb59fad461bb111d1046873e3e774c191f1064422b",
	genesisMerkleRoot: genesisMerkleRoot,

	pubKeyHashAddrID: 111, // starts with m or n
	scriptHashAddrID: 114, // starts with n or o
	privateKeyID:     239,
	hdPrivateKeyID:   [4]byte{0x02, 0x31, 0x63, 0x92},
	hdPublicKeyID:    [4]byte{0x01, 0x21, 0x17, 0x2f},

	checkpoints: []checkpointSpec{
		{0, "a954b5a226fb22845c5690fb59fad461bb111d1046873e3e774c191f1064422b"},
	},

	requireRPCCredentials: true,
	lastRewardHeight:      UnboundedRewardHeight,
	dataDirName:           "testnet",
	alertPubKey:           testNetAlertPubKey,
}

// The regression test network shares the test network address magics and
// alert key.  It has no seeds and no checkpoints.
var regressionNetSpec = netSpec{
	network:     RegTest,
	name:        "regtest",
	magic:       protocol.RegTest,
	defaultPort: "18444",
	rpcPort:     "15000",

	powLimit:     regressionPowLimit,
	powLimitBits: 0x207fffff,

	genesis:           genesisInputs(1576081700, 0x207fffff, 0),
	genesisHash:       "e10779c4f3897d83d4433f333ef4bb5df97d46903f06c31052e89d425962c0af",
	genesisMerkleRoot: genesisMerkleRoot,

	pubKeyHashAddrID: 111,
	scriptHashAddrID: 114,
	privateKeyID:     239,
	hdPrivateKeyID:   [4]byte{0x02, 0x31, 0x63, 0x92},
	hdPublicKeyID:    [4]byte{0x01, 0x21, 0x17, 0x2f},

	requireRPCCredentials: false,
	lastRewardHeight:      UnboundedRewardHeight,
	dataDirName:           "regtest",
	alertPubKey:           testNetAlertPubKey,
}

// The default networks.  They are built and verified when the package is
// initialized, a constant which fails verification aborts the process.
var (
	// MainNetParams defines the network parameters for the main network.
	MainNetParams = mustNewParams(&mainNetSpec)

	// TestNetParams defines the network parameters for the test network.
	TestNetParams = mustNewParams(&testNetSpec)

	// RegressionNetParams defines the network parameters for the
	// regression test network.
	RegressionNetParams = mustNewParams(&regressionNetSpec)
)
