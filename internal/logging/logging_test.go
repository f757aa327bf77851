package logging

import (
	"os"
	"path/filepath"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snake.log")

	logger, closer, err := New("debug", path)
	require.NoError(t, err)
	assert.Equal(t, log.DebugLevel, logger.GetLevel())

	logger.WithField("score", 3).Info("game over")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "game over")
	assert.Contains(t, string(data), "score=3")
}

func TestNewWithoutFile(t *testing.T) {
	logger, closer, err := New("info", "")
	require.NoError(t, err)
	assert.NotNil(t, logger)
	assert.NoError(t, closer.Close())
}

func TestNewBadLevel(t *testing.T) {
	_, _, err := New("loud", "")
	assert.Error(t, err)
}
