package types

import (
	"encoding/hex"
	"fmt"
	"strings"

	ethcommon "github.com/ethereum/go-ethereum/common"
)

const (
	HashSize = ethcommon.HashLength
)

// Hash is a 32 byte keccak256 digest. Hex() renders it 0x-prefixed.
type Hash = ethcommon.Hash

var ZERO_HASH = Hash{}

func BytesToHash(b []byte) (Hash, error) {
	if len(b) != HashSize {
		return Hash{}, fmt.Errorf("error hash size %v", len(b))
	}
	return ethcommon.BytesToHash(b), nil
}

// HexToHash parses exactly 32 bytes of hex, with or without 0x.
func HexToHash(hexstr string) (Hash, error) {
	hexstr = strings.TrimPrefix(hexstr, "0x")
	if len(hexstr) != 2*HashSize {
		return Hash{}, fmt.Errorf("error hex hash size %v", len(hexstr))
	}
	b, err := hex.DecodeString(hexstr)
	if err != nil {
		return Hash{}, err
	}
	return BytesToHash(b)
}
