package password_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"innkeep/shared/password"
)

func TestHashAndVerify(t *testing.T) {
	hash, err := password.Hash("s3cret-pass")
	assert.NoError(t, err)
	assert.NotEqual(t, "s3cret-pass", hash)

	assert.NoError(t, password.Verify("s3cret-pass", hash))
	assert.ErrorIs(t, password.Verify("wrong-pass", hash), password.ErrInvalidPassword)
}

func TestHash_EmptyPassword(t *testing.T) {
	_, err := password.Hash("")
	assert.Error(t, err)
}

func TestVerify_EmptyInputs(t *testing.T) {
	assert.ErrorIs(t, password.Verify("", "hash"), password.ErrInvalidPassword)
	assert.ErrorIs(t, password.Verify("pass", ""), password.ErrInvalidPassword)
}
