package signer

import (
	"math/big"
	"strings"

	ethtypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/pkg/errors"

	"github.com/hweb3/go-accounts/common/types"
	"github.com/hweb3/go-accounts/log15"
	"github.com/hweb3/go-accounts/metrics"
	"github.com/hweb3/go-accounts/wallet/walleterrors"
)

var ErrNoBackend = errors.New("no signing backend configured")

// SignedMessage is the result of Service.Sign.
type SignedMessage struct {
	Message     string
	MessageHash types.Hash
	Signature
	Encoded []byte
}

// Service hashes and signs messages through a Backend and recovers signers.
// Recovery never touches the backend, so the zero Service can recover.
type Service struct {
	backend Backend
	log     log15.Logger
}

func NewService(backend Backend) *Service {
	return &Service{
		backend: backend,
		log:     log15.New("module", "signer"),
	}
}

func (s *Service) HashMessage(data string) types.Hash {
	return HashMessage(data)
}

// Sign hashes data as a personal message and has the backend sign the hash.
func (s *Service) Sign(data string) (*SignedMessage, error) {
	if s.backend == nil {
		return nil, ErrNoBackend
	}
	hash := HashMessage(data)
	raw, err := s.backend.SignData(hash[:])
	if err != nil {
		return nil, errors.Wrap(err, "backend sign")
	}
	sig, err := DecodeSignature(raw)
	if err != nil {
		return nil, err
	}
	s.log.Debug("Signed message", "hash", hash)
	return &SignedMessage{
		Message:     data,
		MessageHash: hash,
		Signature:   sig,
		Encoded:     EncodeSignature(sig),
	}, nil
}

func (s *Service) SignTransaction(tx *ethtypes.Transaction, chainID *big.Int) (*ethtypes.Transaction, error) {
	if s.backend == nil {
		return nil, ErrNoBackend
	}
	signed, err := s.backend.SignTransaction(tx, chainID)
	if err != nil {
		return nil, errors.Wrap(err, "backend sign transaction")
	}
	s.log.Debug("Signed transaction", "hash", signed.Hash(), "type", signed.Type())
	return signed, nil
}

// RecoverFromSignatureObject recovers the signer of obj.MessageHash, which is
// used as is.
func (s *Service) RecoverFromSignatureObject(obj SignatureObject) (types.Address, error) {
	addr, err := recoverAddress(obj.MessageHash, obj.Signature)
	metrics.Recovered(err)
	return addr, err
}

// RecoverFromComponents encodes sig and recovers as RecoverFromMessage does.
func (s *Service) RecoverFromComponents(message string, sig Signature, preFixed bool) (types.Address, error) {
	return s.RecoverFromMessage(message, EncodeSignature(sig), preFixed)
}

// RecoverFromMessage recovers the signer of message. Unless preFixed is set the
// message is hashed with HashMessage first; with preFixed it must already be a
// 32 byte hex hash.
func (s *Service) RecoverFromMessage(message string, signature []byte, preFixed bool) (addr types.Address, err error) {
	defer func() { metrics.Recovered(err) }()

	var hash types.Hash
	if preFixed {
		if hash, err = types.HexToHash(message); err != nil {
			return types.Address{}, walleterrors.Codec("prefixed message is not a 32 byte hash", err)
		}
	} else {
		hash = HashMessage(message)
	}
	sig, err := DecodeSignature(signature)
	if err != nil {
		return types.Address{}, err
	}
	return recoverAddress(hash, sig)
}

// ParseSignature decodes a 0x-prefixed hex signature.
func ParseSignature(hexSig string) ([]byte, error) {
	if !strictHex.MatchString(hexSig) || len(hexSig)%2 != 0 {
		return nil, walleterrors.Codec("signature is not 0x-prefixed hex", nil)
	}
	return hexToBytes(strings.TrimPrefix(hexSig, "0x")), nil
}
