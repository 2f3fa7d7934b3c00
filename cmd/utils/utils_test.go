package utils

import (
	"flag"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/urfave/cli.v1"

	"github.com/hweb3/go-accounts/common"
	"github.com/hweb3/go-accounts/common/fileutils"
)

func TestExpandPath(t *testing.T) {
	home := common.HomeDir()
	if home != "" {
		assert.Equal(t, filepath.Join(home, "wallets"), expandPath("~/wallets"))
	}
	assert.Equal(t, "/a/c", expandPath("/a/b/../c/"))
}

func TestDirectoryFlag(t *testing.T) {
	set := flag.NewFlagSet("test", flag.ContinueOnError)
	f := DirectoryFlag{Name: "datadir", Usage: "dir"}
	f.Apply(set)
	require.NoError(t, set.Parse([]string{"--datadir", "/x/./y"}))
	assert.Equal(t, "/x/y", set.Lookup("datadir").Value.String())
	assert.Equal(t, "--datadir \t"+"dir", f.String())
}

func TestReadPasswordFile(t *testing.T) {
	dir := fileutils.CreateTempDir()
	defer os.RemoveAll(dir)
	file := filepath.Join(dir, "pw")
	require.NoError(t, ioutil.WriteFile(file, []byte("secret\r\nignored\n"), 0600))

	pw, err := ReadPasswordFile(file)
	require.NoError(t, err)
	assert.Equal(t, "secret", pw)

	_, err = ReadPasswordFile(filepath.Join(dir, "missing"))
	assert.Error(t, err)
}

func TestMergeFlags(t *testing.T) {
	merged := MergeFlags([]cli.Flag{ConfigFileFlag}, []cli.Flag{LogLevelFlag, CountFlag})
	assert.Len(t, merged, 3)
}
