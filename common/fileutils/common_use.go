package fileutils

import (
	"io/ioutil"
	"os"
	"path/filepath"
)

const (
	dirPerm = 0700
)

// WriteFileAtomic creates a temporary hidden file next to file and renames it
// into place. TempFile assigns mode 0600.
func WriteFileAtomic(file string, content []byte) error {
	if err := os.MkdirAll(filepath.Dir(file), dirPerm); err != nil {
		return err
	}

	f, err := ioutil.TempFile(filepath.Dir(file), "."+filepath.Base(file)+".tmp")
	if err != nil {
		return err
	}
	if _, err := f.Write(content); err != nil {
		f.Close()
		os.Remove(f.Name())
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(f.Name())
		return err
	}
	return os.Rename(f.Name(), file)
}

// IsWritableDir creates dir if needed and probes it with a throwaway file.
func IsWritableDir(dir string) bool {
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return false
	}
	f, err := ioutil.TempFile(dir, ".__storage_test__")
	if err != nil {
		return false
	}
	f.Close()
	return os.Remove(f.Name()) == nil
}

func CreateTempDir() string {
	tmpDir, _ := ioutil.TempDir("", "")
	return tmpDir
}
