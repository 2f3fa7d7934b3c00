package keystore

import (
	"encoding/json"
	"strings"

	"github.com/hweb3/go-accounts/wallet/walleterrors"
)

const (
	keystoreVersion = 3

	KDFScrypt     = "scrypt"
	KDFPBKDF2     = "pbkdf2"
	PRFHmacSHA256 = "hmac-sha256"

	CipherAES128CTR = "aes-128-ctr"
	CipherAES128CBC = "aes-128-cbc"

	// DefaultScryptN and friends are the parameters used when Options leaves them zero.
	DefaultScryptN = 8192
	DefaultScryptR = 8
	DefaultScryptP = 1
	DefaultPBKDF2C = 262144
	DefaultDKLen   = 32

	// LightScryptN is the N parameter of Scrypt encryption algorithm, using 4MB
	// memory and taking approximately 100ms CPU time on a modern processor.
	LightScryptN = 1 << 12

	// LightScryptP is the P parameter of Scrypt encryption algorithm, using 4MB
	// memory and taking approximately 100ms CPU time on a modern processor.
	LightScryptP = 6

	saltLen = 32
	ivLen   = 16
	uuidLen = 16
)

// Record is a version 3 keystore. Field order is the wire order.
type Record struct {
	Version int        `json:"version"`
	ID      string     `json:"id"`
	Crypto  CryptoJSON `json:"crypto"`
}

type CryptoJSON struct {
	CipherText   string           `json:"ciphertext"`
	CipherParams cipherparamsJSON `json:"cipherparams"`
	Cipher       string           `json:"cipher"`
	KDF          string           `json:"kdf"`
	KDFParams    KDFParams        `json:"kdfparams"`
	MAC          string           `json:"mac"`
}

type cipherparamsJSON struct {
	IV string `json:"iv"`
}

// KDFParams holds the parameters of both kdfs; only the fields of the record's
// kdf are set, so they marshal as dklen,salt,c,prf or dklen,salt,n,r,p.
type KDFParams struct {
	DKLen int    `json:"dklen"`
	Salt  string `json:"salt"`
	C     int    `json:"c,omitempty"`
	PRF   string `json:"prf,omitempty"`
	N     int    `json:"n,omitempty"`
	R     int    `json:"r,omitempty"`
	P     int    `json:"p,omitempty"`
}

// Options tunes EncryptKey. Zero values select the defaults; Salt, IV and UUID
// replace the random draws so output can be made deterministic.
type Options struct {
	KDF    string
	Cipher string

	Salt []byte
	IV   []byte
	UUID []byte

	DKLen int
	// pbkdf2 iteration count
	C int
	// scrypt cost parameters
	N int
	R int
	P int
}

// LightOptions trades brute force resistance for speed. Tests and interactive
// tooling with --lightkdf use it.
func LightOptions() *Options {
	return &Options{KDF: KDFScrypt, N: LightScryptN, P: LightScryptP}
}

// ParseRecord decodes keystore JSON. nonStrict lower-cases the whole text first
// to tolerate inconsistently cased input.
func ParseRecord(keyjson []byte, nonStrict bool) (*Record, error) {
	if nonStrict {
		keyjson = []byte(strings.ToLower(string(keyjson)))
	}
	rec := new(Record)
	if err := json.Unmarshal(keyjson, rec); err != nil {
		return nil, walleterrors.Codec("invalid keystore json", err)
	}
	return rec, nil
}

func (rec *Record) JSON() ([]byte, error) {
	return json.Marshal(rec)
}
