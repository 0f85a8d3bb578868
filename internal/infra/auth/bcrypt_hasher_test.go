package auth

import (
	"testing"

	"couponhub/config"
	"couponhub/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func newTestHasher() *bcryptHasher {
	// MinCost keeps the tests fast; production cost comes from config.
	return &bcryptHasher{cost: bcrypt.MinCost}
}

func TestBcryptHasher_Hash(t *testing.T) {
	hasher := newTestHasher()

	secret := "pw12345678"
	hash, err := hasher.Hash(secret)
	assert.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, secret, hash)

	assert.True(t, hasher.Check(secret, hash))
}

func TestBcryptHasher_Check(t *testing.T) {
	hasher := newTestHasher()
	secret := "pw12345678"

	hash, err := hasher.Hash(secret)
	assert.NoError(t, err)

	assert.True(t, hasher.Check(secret, hash))
	assert.False(t, hasher.Check("wrong-secret", hash))
	assert.False(t, hasher.Check("", hash))
	assert.False(t, hasher.Check(secret, "invalid_hash"))
}

func TestBcryptHasher_UnusableSecretNeverMatches(t *testing.T) {
	hasher := newTestHasher()

	// No fixed input may ever verify against the unusable marker.
	for _, attempt := range []string{"", entity.UnusableSecret, "pw12345678", "!"} {
		assert.False(t, hasher.Check(attempt, entity.UnusableSecret))
	}
	assert.False(t, hasher.Check("anything", ""))
}

func TestNewBcryptHasher_CostFromConfig(t *testing.T) {
	cfg := &config.Config{Auth: &config.AuthConfig{BcryptCost: bcrypt.MinCost}}
	hasher := NewBcryptHasher(cfg)

	hash, err := hasher.Hash("pin12")
	assert.NoError(t, err)
	assert.True(t, hasher.Check("pin12", hash))
}
