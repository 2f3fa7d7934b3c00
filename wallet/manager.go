package wallet

import (
	"sync"

	"github.com/hweb3/go-accounts/common/types"
	"github.com/hweb3/go-accounts/log15"
	"github.com/hweb3/go-accounts/signer"
	"github.com/hweb3/go-accounts/wallet/keystore"
	"github.com/hweb3/go-accounts/wallet/walleterrors"
)

const (
	Added   = "Added"
	Removed = "Removed"
)

type Config struct {
	// StorageKey names the saved wallet, DefaultStorageKey when empty.
	StorageKey string
	// Keystore tunes encryption on Save and Export; nil selects the defaults.
	Keystore *keystore.Options
}

type AccountEvent struct {
	Address types.Address
	Index   int
	event   string
}

func (e AccountEvent) String() string {
	return e.Address.Hex() + " " + e.event
}

func (e AccountEvent) Added() bool {
	return e.event == Added
}

// Manager serialises access to a Registry and ties it to an optional Storage.
type Manager struct {
	cfg      Config
	registry *Registry
	store    Storage

	mutex sync.Mutex

	changedLis   map[int]func(event AccountEvent)
	changedIndex int
	log          log15.Logger
}

// New builds a manager; store may be nil, in which case CanPersist is false.
func New(cfg *Config, store Storage) *Manager {
	if cfg == nil {
		cfg = &Config{}
	}
	return &Manager{
		cfg:          *cfg,
		registry:     NewRegistry(),
		store:        store,
		changedLis:   make(map[int]func(event AccountEvent)),
		changedIndex: 100,
		log:          log15.New("module", "wallet/manager"),
	}
}

// CanPersist reports whether Save and Load can reach a storage backend.
func (m *Manager) CanPersist() bool {
	return m.store != nil && m.store.Available()
}

func (m *Manager) AddChangeListener(f func(event AccountEvent)) int {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.changedIndex++
	m.changedLis[m.changedIndex] = f
	return m.changedIndex
}

func (m *Manager) RemoveChangeListener(id int) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	delete(m.changedLis, id)
}

// notify must be called with the mutex held.
func (m *Manager) notify(acct *Account, event string) {
	for _, f := range m.changedLis {
		f(AccountEvent{Address: acct.Address, Index: acct.Index, event: event})
	}
}

func (m *Manager) Create(n int, entropy []byte) ([]types.Address, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	accts, err := m.registry.Create(n, entropy)
	addrs := make([]types.Address, 0, len(accts))
	for _, acct := range accts {
		m.notify(acct, Added)
		addrs = append(addrs, acct.Address)
	}
	return addrs, err
}

func (m *Manager) ImportPrivateKey(hexKey string) (types.Address, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	n := m.registry.Len()
	acct, err := m.registry.AddPrivateKey(hexKey)
	if err != nil {
		return types.Address{}, err
	}
	if m.registry.Len() != n {
		m.notify(acct, Added)
	}
	return acct.Address, nil
}

// ImportKeystore decrypts one keystore file and adds its account.
func (m *Manager) ImportKeystore(keyjson []byte, password string) (types.Address, error) {
	rec, err := keystore.ParseRecord(keyjson, false)
	if err != nil {
		return types.Address{}, err
	}
	acct, err := decryptAccount(rec, password)
	if err != nil {
		return types.Address{}, err
	}

	m.mutex.Lock()
	defer m.mutex.Unlock()
	added := m.registry.adopt(acct)
	if added == acct {
		m.notify(added, Added)
	}
	return added.Address, nil
}

// Export encrypts the account at addr into a keystore record.
func (m *Manager) Export(addr types.Address, password string) (*keystore.Record, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	acct, ok := m.registry.GetAddress(addr.Hex())
	if !ok {
		return nil, walleterrors.ErrNotFind
	}
	return acct.Encrypt(password, m.cfg.Keystore)
}

func (m *Manager) Remove(addr types.Address) bool {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	acct, ok := m.registry.GetAddress(addr.Hex())
	if !ok {
		return false
	}
	m.registry.Remove(acct.Index)
	m.notify(acct, Removed)
	return true
}

func (m *Manager) ListAddress() []types.Address {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	accts := m.registry.Accounts()
	addrs := make([]types.Address, len(accts))
	for i, acct := range accts {
		addrs[i] = acct.Address
	}
	return addrs
}

func (m *Manager) Len() int {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	return m.registry.Len()
}

// Signer returns a signing service backed by the account at addr.
func (m *Manager) Signer(addr types.Address) (*signer.Service, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	acct, ok := m.registry.GetAddress(addr.Hex())
	if !ok {
		return nil, walleterrors.ErrNotFind
	}
	return signer.NewService(signer.NewKeySigner(acct)), nil
}

// SignMessage signs data as a personal message with the account at addr.
func (m *Manager) SignMessage(addr types.Address, data string) (*signer.SignedMessage, error) {
	s, err := m.Signer(addr)
	if err != nil {
		return nil, err
	}
	return s.Sign(data)
}

func (m *Manager) Save(password string) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if err := Save(m.store, m.registry, password, m.cfg.StorageKey, m.cfg.Keystore); err != nil {
		return err
	}
	m.log.Info("Wallet saved", "accounts", m.registry.Len())
	return nil
}

// Load adds the saved accounts to the wallet. On a bad record the accounts
// before it stay loaded.
func (m *Manager) Load(password string) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	before := make(map[int]bool)
	for _, idx := range m.registry.Indexes() {
		before[idx] = true
	}
	err := Load(m.store, m.registry, password, m.cfg.StorageKey)
	for _, acct := range m.registry.Accounts() {
		if !before[acct.Index] {
			m.notify(acct, Added)
		}
	}
	if err == nil {
		m.log.Info("Wallet loaded", "accounts", m.registry.Len())
	}
	return err
}

// Close wipes every account.
func (m *Manager) Close() error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	for _, acct := range m.registry.Accounts() {
		m.registry.Remove(acct.Index)
		m.notify(acct, Removed)
	}
	return nil
}
