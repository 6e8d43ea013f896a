package obslog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProductionLogger(t *testing.T) {
	logger, err := New("production")
	require.NoError(t, err)
	assert.NotNil(t, logger)
}

func TestNewDevelopmentLogger(t *testing.T) {
	logger, err := New("development")
	require.NoError(t, err)
	assert.NotNil(t, logger)
}

func TestNop(t *testing.T) {
	assert.NotNil(t, Nop())
}
