package logging_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/katalvlaran/qaoakit/internal/logging"
)

func TestNew(t *testing.T) {
	for _, env := range []string{logging.Production, "development"} {
		log, err := logging.New(env, "warn")
		require.NoError(t, err, env)
		assert.False(t, log.Core().Enabled(zap.InfoLevel), env)
		assert.True(t, log.Core().Enabled(zap.ErrorLevel), env)
	}

	log, err := logging.New("development", "debug")
	require.NoError(t, err)
	assert.True(t, log.Core().Enabled(zap.DebugLevel))

	_, err = logging.New(logging.Production, "loud")
	assert.Error(t, err)
}
