package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWipeByteArray(t *testing.T) {
	password := []byte("hunter2")
	WipeByteArray(password)

	assert.Equal(t, make([]byte, 7), password)
	assert.NotPanics(t, func() { WipeByteArray(nil) })
}

func TestGenerateRandByteArray(t *testing.T) {
	salt := GenerateRandByteArray(16)
	require.Len(t, salt, 16)

	other := GenerateRandByteArray(16)
	assert.NotEqual(t, salt, other)

	assert.Empty(t, GenerateRandByteArray(0))
}
