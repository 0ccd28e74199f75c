package logger_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/smartcontractkit/chain-registry/pkg/logger"
)

func Test_New(t *testing.T) {
	t.Parallel()

	lggr, err := logger.New()
	require.NoError(t, err)
	require.NotNil(t, lggr)

	assert.Empty(t, lggr.Name())
}

func Test_Config_New(t *testing.T) {
	t.Parallel()

	cfg := logger.Config{Level: zapcore.ErrorLevel}

	lggr, err := cfg.New()
	require.NoError(t, err)
	require.NotNil(t, lggr)
}

func Test_NewWith(t *testing.T) {
	t.Parallel()

	lggr, err := logger.NewWith(func(cfg *zap.Config) {
		cfg.Level.SetLevel(zapcore.WarnLevel)
	})
	require.NoError(t, err)
	require.NotNil(t, lggr)
}

func Test_Test(t *testing.T) {
	t.Parallel()

	lggr := logger.Test(t)
	require.NotNil(t, lggr)

	lggr.Debug("debug")
	lggr.Infof("info %d", 1)
	lggr.Warnw("warn", "key", "value")
}

func Test_TestObserved(t *testing.T) {
	t.Parallel()

	lggr, logs := logger.TestObserved(t, zapcore.InfoLevel)

	lggr.Debugw("below level")
	lggr.Infow("chain loaded", "chainID", uint64(1))

	assert.Equal(t, 0, logs.FilterMessage("below level").Len())

	entries := logs.FilterMessage("chain loaded").All()
	require.Len(t, entries, 1)
	assert.Equal(t, uint64(1), entries[0].ContextMap()["chainID"])
}

func Test_Nop(t *testing.T) {
	t.Parallel()

	lggr := logger.Nop()
	require.NotNil(t, lggr)

	lggr.Error("discarded")
	assert.NoError(t, lggr.Sync())
}

func Test_Named(t *testing.T) {
	t.Parallel()

	lggr := logger.Test(t)

	named := lggr.Named("network")
	assert.Equal(t, "network", named.Name())

	nested := named.Named("loader")
	assert.Equal(t, "network.loader", nested.Name())
}
