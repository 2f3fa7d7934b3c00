package walletstore

import (
	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/storage"
	"github.com/syndtr/goleveldb/leveldb/util"

	"github.com/hweb3/go-accounts/wallet/walleterrors"
)

var keyPrefix = []byte("wallet/")

// LevelDBStore keeps entries in a leveldb database under a common prefix.
type LevelDBStore struct {
	db *leveldb.DB
}

func NewLevelDBStore(dbDir string) (*LevelDBStore, error) {
	db, err := leveldb.OpenFile(dbDir, nil)
	if err != nil {
		return nil, err
	}
	return &LevelDBStore{db: db}, nil
}

// NewMemLevelDBStore is a LevelDBStore over in-memory storage.
func NewMemLevelDBStore() (*LevelDBStore, error) {
	db, err := leveldb.Open(storage.NewMemStorage(), nil)
	if err != nil {
		return nil, err
	}
	return &LevelDBStore{db: db}, nil
}

func dbKey(name string) []byte {
	key := make([]byte, 0, len(keyPrefix)+len(name))
	key = append(key, keyPrefix...)
	return append(key, name...)
}

// Available is false once the store has been closed.
func (s *LevelDBStore) Available() bool {
	_, err := s.db.GetProperty("leveldb.num-files-at-level0")
	return err == nil
}

func (s *LevelDBStore) Put(name string, data []byte) error {
	return s.db.Put(dbKey(name), data, nil)
}

func (s *LevelDBStore) Get(name string) ([]byte, error) {
	data, err := s.db.Get(dbKey(name), nil)
	if err == leveldb.ErrNotFound {
		return nil, walleterrors.ErrNotFind
	}
	return data, err
}

func (s *LevelDBStore) Delete(name string) error {
	return s.db.Delete(dbKey(name), nil)
}

func (s *LevelDBStore) List() ([]string, error) {
	iter := s.db.NewIterator(util.BytesPrefix(keyPrefix), nil)
	defer iter.Release()

	var names []string
	for iter.Next() {
		names = append(names, string(iter.Key()[len(keyPrefix):]))
	}
	return names, iter.Error()
}

func (s *LevelDBStore) Close() error {
	return s.db.Close()
}
