package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashAndCheckSecret(t *testing.T) {
	hash, err := HashSecret("BBPBAT2025")
	assert.NoError(t, err)
	assert.NotEqual(t, "BBPBAT2025", hash)

	assert.True(t, CheckSecret(hash, "BBPBAT2025"))
	assert.False(t, CheckSecret(hash, "bbpbat2025"))
	assert.False(t, CheckSecret(hash, ""))
	assert.False(t, CheckSecret("bukan-hash", "BBPBAT2025"))
}
