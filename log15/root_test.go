package log15

import (
	"bytes"
	"testing"

	"github.com/ethereum/go-ethereum/log"
	"github.com/stretchr/testify/assert"
)

func TestLvlFromString(t *testing.T) {
	assert.Equal(t, LvlDebug, LvlFromString("debug"))
	assert.Equal(t, LvlError, LvlFromString("error"))
	assert.Equal(t, LvlInfo, LvlFromString("nonsense"))
}

func TestSetupFilters(t *testing.T) {
	defer Discard()

	var buf bytes.Buffer
	Setup("warn", log.StreamHandler(&buf, log.LogfmtFormat()))

	l := New("module", "log15/test")
	l.Info("hidden")
	l.Warn("shown", "index", 3)

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown")
	assert.Contains(t, out, "module=log15/test")
	assert.Contains(t, out, "index=3")
}
