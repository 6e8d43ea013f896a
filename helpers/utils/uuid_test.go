package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateUUIDIsUnique(t *testing.T) {
	assert.NotEqual(t, GenerateUUID(), GenerateUUID())
}

func TestGenerateShortIDLength(t *testing.T) {
	assert.Len(t, GenerateShortID(), 8)
}
