package config

import (
	"encoding/json"
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/hweb3/go-accounts/common"
	"github.com/hweb3/go-accounts/wallet/keystore"
)

const DefaultConfigFileName = "gaccount.config.json"

type Config struct {
	DataDir     string `json:"DataDir"`
	KeyStoreDir string `json:"KeyStoreDir"`

	LogLevel string `json:"LogLevel"`
	LogFile  string `json:"LogFile"`

	// keystore encryption
	KDF      string `json:"KDF"`
	Cipher   string `json:"Cipher"`
	ScryptN  int    `json:"ScryptN"`
	ScryptR  int    `json:"ScryptR"`
	ScryptP  int    `json:"ScryptP"`
	PBKDF2C  int    `json:"PBKDF2C"`
	LightKDF bool   `json:"LightKDF"`

	SenderCacheSize int `json:"SenderCacheSize"`
}

func Default() *Config {
	cfg := &Config{}
	cfg.SetDefaults()
	return cfg
}

// Load reads a json config file and fills in defaults. A missing file yields
// the defaults.
func Load(path string) (*Config, error) {
	cfg, err := Parse(path)
	if err != nil {
		return nil, err
	}
	cfg.SetDefaults()
	return cfg, nil
}

// Parse reads a json config file without applying defaults, so callers can
// overlay flags first.
func Parse(path string) (*Config, error) {
	cfg := &Config{}
	text, err := ioutil.ReadFile(path)
	switch {
	case os.IsNotExist(err):
	case err != nil:
		return nil, errors.Wrapf(err, "read config %s", path)
	default:
		if err := json.Unmarshal(text, cfg); err != nil {
			return nil, errors.Wrapf(err, "parse config %s", path)
		}
	}
	return cfg, nil
}

// SetDefaults fills every empty directory and the log level. KeyStoreDir
// follows DataDir.
func (c *Config) SetDefaults() {
	if c.DataDir == "" {
		c.DataDir = common.DefaultDataDir()
	}
	if c.KeyStoreDir == "" {
		c.KeyStoreDir = filepath.Join(c.DataDir, common.DefaultKeyStoreSubDir)
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.LogFile == "" {
		c.LogFile = common.DefaultLogFile
	}
}

// LogDir is where the rotated log file goes.
func (c *Config) LogDir() string {
	return filepath.Join(c.DataDir, common.DefaultLogSubDir)
}

// KeystoreOptions maps the encryption settings onto keystore options. LightKDF
// lowers only the scrypt cost; the chosen KDF and cipher are kept.
func (c *Config) KeystoreOptions() *keystore.Options {
	opts := &keystore.Options{
		KDF:    c.KDF,
		Cipher: c.Cipher,
		N:      c.ScryptN,
		R:      c.ScryptR,
		P:      c.ScryptP,
		C:      c.PBKDF2C,
	}
	if c.LightKDF {
		light := keystore.LightOptions()
		opts.N, opts.R, opts.P = light.N, light.R, light.P
	}
	return opts
}
