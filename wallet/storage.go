package wallet

import (
	"encoding/json"

	"github.com/pkg/errors"

	"github.com/hweb3/go-accounts/wallet/keystore"
	"github.com/hweb3/go-accounts/wallet/walleterrors"
)

// DefaultStorageKey is the name a wallet is saved under when none is given.
const DefaultStorageKey = "web3js_wallet"

// Storage is a byte oriented key/value store a wallet can be persisted to.
// Get returns walleterrors.ErrNotFind for a missing name.
type Storage interface {
	Available() bool
	Put(name string, data []byte) error
	Get(name string) ([]byte, error)
}

func storageName(name string) string {
	if name == "" {
		return DefaultStorageKey
	}
	return name
}

// Save encrypts every account in reg and writes the records as one JSON array.
func Save(store Storage, reg *Registry, password, name string, opts *keystore.Options) error {
	if store == nil || !store.Available() {
		return walleterrors.ErrStorageUnavailable
	}
	records, err := reg.Encrypt(password, opts)
	if err != nil {
		return err
	}
	data, err := json.Marshal(records)
	if err != nil {
		return errors.Wrap(err, "marshal wallet")
	}
	return store.Put(storageName(name), data)
}

// Load reads a saved wallet and decrypts it into reg. A name that was never
// saved loads as an empty wallet.
func Load(store Storage, reg *Registry, password, name string) error {
	if store == nil || !store.Available() {
		return walleterrors.ErrStorageUnavailable
	}
	data, err := store.Get(storageName(name))
	if errors.Is(err, walleterrors.ErrNotFind) {
		return nil
	}
	if err != nil {
		return err
	}
	var records []*keystore.Record
	if err := json.Unmarshal(data, &records); err != nil {
		return walleterrors.Codec("invalid saved wallet", err)
	}
	return reg.Decrypt(records, password)
}
