package walletstore

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pkg/errors"

	"github.com/hweb3/go-accounts/common/fileutils"
	"github.com/hweb3/go-accounts/wallet/walleterrors"
)

// FileStore keeps each entry as one file in a directory.
type FileStore struct {
	dir string
}

func NewFileStore(dir string) *FileStore {
	return &FileStore{dir: dir}
}

func (fs *FileStore) Dir() string {
	return fs.dir
}

// Available probes the directory with a throwaway write.
func (fs *FileStore) Available() bool {
	return fs.dir != "" && fileutils.IsWritableDir(fs.dir)
}

func (fs *FileStore) path(name string) (string, error) {
	if name == "" || name != filepath.Base(name) || strings.HasPrefix(name, ".") {
		return "", errors.Errorf("invalid storage name %q", name)
	}
	return filepath.Join(fs.dir, name), nil
}

func (fs *FileStore) Put(name string, data []byte) error {
	p, err := fs.path(name)
	if err != nil {
		return err
	}
	return fileutils.WriteFileAtomic(p, data)
}

func (fs *FileStore) Get(name string) ([]byte, error) {
	p, err := fs.path(name)
	if err != nil {
		return nil, err
	}
	data, err := ioutil.ReadFile(p)
	if os.IsNotExist(err) {
		return nil, walleterrors.ErrNotFind
	}
	return data, err
}

func (fs *FileStore) Delete(name string) error {
	p, err := fs.path(name)
	if err != nil {
		return err
	}
	if err := os.Remove(p); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// List returns the entry names in lexical order. Hidden and temporary files
// are skipped.
func (fs *FileStore) List() ([]string, error) {
	files, err := ioutil.ReadDir(fs.dir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var names []string
	for _, fi := range files {
		if fi.IsDir() || strings.HasPrefix(fi.Name(), ".") || strings.HasSuffix(fi.Name(), "~") {
			continue
		}
		names = append(names, fi.Name())
	}
	sort.Strings(names)
	return names, nil
}
