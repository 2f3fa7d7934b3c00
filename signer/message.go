package signer

import (
	"encoding/hex"
	"fmt"
	"regexp"
	"strings"

	"github.com/hweb3/go-accounts/common/types"
	vcrypto "github.com/hweb3/go-accounts/crypto"
)

const messagePreamble = "\x19Ethereum Signed Message:\n"

var strictHex = regexp.MustCompile(`^0x[0-9a-fA-F]*$`)

// HashMessage is keccak256(preamble || len(msg) || msg) where len is the byte
// length of the raw message in decimal.
//
// Strict 0x-prefixed hex is taken as the message bytes. Anything else is UTF-8
// text with leading and trailing NUL characters dropped.
func HashMessage(data string) types.Hash {
	msg := messageBytes(data)
	preamble := fmt.Sprintf("%s%d", messagePreamble, len(msg))
	var h types.Hash
	copy(h[:], vcrypto.Hash256([]byte(preamble), msg))
	return h
}

func messageBytes(data string) []byte {
	if strictHex.MatchString(data) {
		return hexToBytes(data[2:])
	}
	return []byte(strings.Trim(data, "\x00"))
}

// hexToBytes reads pairs of nibbles; an odd trailing nibble becomes its own byte.
func hexToBytes(h string) []byte {
	out := make([]byte, 0, (len(h)+1)/2)
	for i := 0; i < len(h); i += 2 {
		end := i + 2
		if end > len(h) {
			end = len(h)
		}
		pair := h[i:end]
		if len(pair) == 1 {
			pair = "0" + pair
		}
		b, _ := hex.DecodeString(pair)
		out = append(out, b...)
	}
	return out
}
