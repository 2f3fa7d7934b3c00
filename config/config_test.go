package config

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hweb3/go-accounts/common/fileutils"
	"github.com/hweb3/go-accounts/wallet/keystore"
)

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(os.TempDir(), "no-such-gaccount.config.json"))
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, filepath.Join(cfg.DataDir, "keystore"), cfg.KeyStoreDir)
	assert.Equal(t, &keystore.Options{}, cfg.KeystoreOptions())
}

func TestLoadFile(t *testing.T) {
	dir := fileutils.CreateTempDir()
	defer os.RemoveAll(dir)
	path := filepath.Join(dir, DefaultConfigFileName)
	require.NoError(t, ioutil.WriteFile(path, []byte(`{
		"DataDir": "/tmp/hweb3",
		"LogLevel": "debug",
		"KDF": "pbkdf2",
		"PBKDF2C": 10000,
		"Cipher": "aes-128-cbc"
	}`), 0600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/hweb3", cfg.DataDir)
	assert.Equal(t, "/tmp/hweb3/keystore", cfg.KeyStoreDir)
	assert.Equal(t, "/tmp/hweb3/log", cfg.LogDir())
	assert.Equal(t, "debug", cfg.LogLevel)

	opts := cfg.KeystoreOptions()
	assert.Equal(t, keystore.KDFPBKDF2, opts.KDF)
	assert.Equal(t, 10000, opts.C)
	assert.Equal(t, keystore.CipherAES128CBC, opts.Cipher)

	// lightkdf must not switch a pbkdf2 config over to scrypt
	cfg.LightKDF = true
	opts = cfg.KeystoreOptions()
	assert.Equal(t, keystore.KDFPBKDF2, opts.KDF)
	assert.Equal(t, 10000, opts.C)
	assert.Equal(t, keystore.LightScryptN, opts.N)
	assert.Equal(t, keystore.LightScryptP, opts.P)
	assert.Equal(t, keystore.CipherAES128CBC, opts.Cipher)

	cfg.KDF = ""
	opts = cfg.KeystoreOptions()
	assert.Equal(t, "", opts.KDF)
	assert.Equal(t, keystore.LightScryptN, opts.N)
}

func TestLoadBadJSON(t *testing.T) {
	dir := fileutils.CreateTempDir()
	defer os.RemoveAll(dir)
	path := filepath.Join(dir, "bad.json")
	require.NoError(t, ioutil.WriteFile(path, []byte(`{`), 0600))
	_, err := Load(path)
	assert.Error(t, err)
}

func TestParseLeavesDefaults(t *testing.T) {
	cfg, err := Parse(filepath.Join(os.TempDir(), "no-such-gaccount.config.json"))
	require.NoError(t, err)
	assert.Equal(t, &Config{}, cfg)

	cfg.DataDir = "/data"
	cfg.SetDefaults()
	assert.Equal(t, "/data/keystore", cfg.KeyStoreDir)
	assert.Equal(t, "gaccount.log", cfg.LogFile)
}
