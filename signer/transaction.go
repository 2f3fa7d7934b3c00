package signer

import (
	"encoding/hex"
	"strings"

	ethtypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/rlp"
	lru "github.com/hashicorp/golang-lru"
	"go.uber.org/atomic"

	"github.com/hweb3/go-accounts/common/types"
	"github.com/hweb3/go-accounts/log15"
	"github.com/hweb3/go-accounts/metrics"
	"github.com/hweb3/go-accounts/wallet/walleterrors"
)

const DefaultSenderCacheSize = 1024

// RecoverTransaction returns the sender of a 0x-prefixed raw signed transaction,
// legacy or typed.
func RecoverTransaction(rawTx string) (addr types.Address, err error) {
	defer func() { metrics.Recovered(err) }()

	tx, err := DecodeTransaction(rawTx)
	if err != nil {
		return types.Address{}, err
	}
	return sender(tx)
}

// DecodeTransaction parses a raw transaction after checking that its envelope
// is either an RLP list (legacy) or starts with a typed transaction byte.
func DecodeTransaction(rawTx string) (*ethtypes.Transaction, error) {
	raw, err := hex.DecodeString(strings.TrimPrefix(rawTx, "0x"))
	if err != nil {
		return nil, walleterrors.Codec("transaction is not hex", err)
	}
	if len(raw) == 0 {
		return nil, walleterrors.Codec("empty transaction", nil)
	}

	switch {
	case raw[0] >= 0xc0:
		kind, _, rest, err := rlp.Split(raw)
		if err != nil {
			return nil, walleterrors.Codec("malformed legacy transaction", err)
		}
		if kind != rlp.List || len(rest) != 0 {
			return nil, walleterrors.Codec("legacy transaction is not a single rlp list", nil)
		}
	case raw[0] <= 0x7f:
	default:
		return nil, walleterrors.Codec("unrecognised transaction envelope", nil)
	}

	tx := new(ethtypes.Transaction)
	if err := tx.UnmarshalBinary(raw); err != nil {
		return nil, walleterrors.Codec("malformed transaction", err)
	}
	return tx, nil
}

func sender(tx *ethtypes.Transaction) (types.Address, error) {
	var s ethtypes.Signer
	if tx.Type() == ethtypes.LegacyTxType && !tx.Protected() {
		s = ethtypes.HomesteadSigner{}
	} else {
		s = ethtypes.LatestSignerForChainID(tx.ChainId())
	}
	from, err := ethtypes.Sender(s, tx)
	if err != nil {
		return types.Address{}, walleterrors.InvalidSignature("transaction sender recovery failed", err)
	}
	return from, nil
}

// TxRecoverer is RecoverTransaction with an LRU of senders by transaction hash.
type TxRecoverer struct {
	senders *lru.Cache
	hits    *atomic.Uint64
	log     log15.Logger
}

func NewTxRecoverer(size int) (*TxRecoverer, error) {
	if size <= 0 {
		size = DefaultSenderCacheSize
	}
	cache, err := lru.New(size)
	if err != nil {
		return nil, err
	}
	return &TxRecoverer{
		senders: cache,
		hits:    atomic.NewUint64(0),
		log:     log15.New("module", "signer/tx"),
	}, nil
}

func (r *TxRecoverer) Recover(rawTx string) (addr types.Address, err error) {
	defer func() { metrics.Recovered(err) }()

	tx, err := DecodeTransaction(rawTx)
	if err != nil {
		return types.Address{}, err
	}
	hash := tx.Hash()
	if cached, ok := r.senders.Get(hash); ok {
		r.hits.Inc()
		return cached.(types.Address), nil
	}
	addr, err = sender(tx)
	if err != nil {
		return types.Address{}, err
	}
	r.senders.Add(hash, addr)
	r.log.Debug("Recovered transaction sender", "hash", hash, "type", tx.Type(), "from", addr)
	return addr, nil
}

func (r *TxRecoverer) Len() int {
	return r.senders.Len()
}

// Hits counts recoveries answered from the cache.
func (r *TxRecoverer) Hits() uint64 {
	return r.hits.Load()
}
