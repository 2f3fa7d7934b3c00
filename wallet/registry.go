package wallet

import (
	"strings"

	"github.com/hweb3/go-accounts/log15"
	"github.com/hweb3/go-accounts/metrics"
	"github.com/hweb3/go-accounts/wallet/keystore"
	"github.com/hweb3/go-accounts/wallet/walleterrors"
)

// Registry is an in-memory indexed set of unlocked accounts. Every account is
// reachable by its index and by both its checksum and lowercase address.
//
// A Registry is not safe for concurrent mutation; use Manager to share one.
type Registry struct {
	byIndex   map[int]*Account
	byAddress map[string]*Account
	indexes   *indexSet
	length    int

	log log15.Logger
}

func NewRegistry() *Registry {
	return &Registry{
		byIndex:   make(map[int]*Account),
		byAddress: make(map[string]*Account),
		indexes:   newIndexSet(),
		log:       log15.New("module", "wallet/registry"),
	}
}

// Create generates n accounts and adds them in order.
func (r *Registry) Create(n int, entropy []byte) ([]*Account, error) {
	if n < 0 {
		return nil, walleterrors.Validation("account count must not be negative, got %d", n)
	}
	created := make([]*Account, 0, n)
	for i := 0; i < n; i++ {
		acct, err := NewAccount(entropy)
		if err != nil {
			return created, err
		}
		created = append(created, r.adopt(acct))
	}
	return created, nil
}

// Add registers a copy of acct under the smallest free index and returns the
// copy. acct itself is never stored, so it may belong to another registry. If
// the address is already present the existing account is returned.
func (r *Registry) Add(acct *Account) (*Account, error) {
	if existing, ok := r.byAddress[acct.Address.Hex()]; ok {
		return existing, nil
	}
	owned, err := acct.clone()
	if err != nil {
		return nil, err
	}
	return r.insert(owned), nil
}

// adopt registers acct, which the caller hands over. A duplicate is wiped and
// the registered account returned instead.
func (r *Registry) adopt(acct *Account) *Account {
	if existing, ok := r.byAddress[acct.Address.Hex()]; ok {
		acct.wipe()
		return existing
	}
	return r.insert(acct)
}

func (r *Registry) insert(acct *Account) *Account {
	idx := r.indexes.next()
	r.indexes.claim(idx)
	acct.Index = idx
	r.byIndex[idx] = acct
	r.byAddress[acct.Address.Hex()] = acct
	r.byAddress[strings.ToLower(acct.Address.Hex())] = acct
	r.length++
	metrics.AddAccounts(1)

	r.log.Info("Account added", "index", idx, "address", acct.Address)
	return acct
}

// AddPrivateKey derives the account for hexKey and adds it.
func (r *Registry) AddPrivateKey(hexKey string) (*Account, error) {
	acct, err := PrivateKeyToAccount(hexKey)
	if err != nil {
		return nil, err
	}
	return r.adopt(acct), nil
}

func (r *Registry) Get(index int) (*Account, bool) {
	acct, ok := r.byIndex[index]
	return acct, ok
}

// GetAddress looks addr up in checksum or lowercase form.
func (r *Registry) GetAddress(addr string) (*Account, bool) {
	acct, ok := r.byAddress[addr]
	if !ok {
		acct, ok = r.byAddress[strings.ToLower(addr)]
	}
	return acct, ok
}

// Remove wipes and drops the account at index. It reports whether there was one.
func (r *Registry) Remove(index int) bool {
	acct, ok := r.byIndex[index]
	if !ok {
		return false
	}
	r.remove(acct)
	return true
}

// RemoveAddress is Remove by address.
func (r *Registry) RemoveAddress(addr string) bool {
	acct, ok := r.GetAddress(addr)
	if !ok {
		return false
	}
	r.remove(acct)
	return true
}

func (r *Registry) remove(acct *Account) {
	acct.wipe()

	idx := acct.Index
	delete(r.byIndex, idx)
	delete(r.byAddress, acct.Address.Hex())
	delete(r.byAddress, strings.ToLower(acct.Address.Hex()))
	r.indexes.release(idx)
	r.length--
	metrics.AddAccounts(-1)

	r.log.Info("Account removed", "index", idx, "address", acct.Address)
}

// Clear removes every account.
func (r *Registry) Clear() {
	for _, idx := range r.indexes.sorted() {
		r.Remove(idx)
	}
}

func (r *Registry) Len() int {
	return r.length
}

// Indexes returns the occupied indices in ascending order.
func (r *Registry) Indexes() []int {
	return r.indexes.sorted()
}

// Accounts returns the accounts in index order.
func (r *Registry) Accounts() []*Account {
	idxs := r.indexes.sorted()
	out := make([]*Account, 0, len(idxs))
	for _, idx := range idxs {
		out = append(out, r.byIndex[idx])
	}
	return out
}

// Encrypt seals every account, in index order.
func (r *Registry) Encrypt(password string, opts *keystore.Options) ([]*keystore.Record, error) {
	accts := r.Accounts()
	records := make([]*keystore.Record, 0, len(accts))
	for _, acct := range accts {
		rec, err := acct.Encrypt(password, opts)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}

// Decrypt opens each record and adds the account. The first failure aborts with
// a BatchDecryption error naming the record; accounts added before it stay.
func (r *Registry) Decrypt(records []*keystore.Record, password string) error {
	for i, rec := range records {
		acct, err := decryptAccount(rec, password)
		if err != nil {
			r.log.Warn("Batch decrypt aborted", "record", i, "err", err)
			return walleterrors.BatchDecryption(i, err)
		}
		r.adopt(acct)
	}
	return nil
}
