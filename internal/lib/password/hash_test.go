package password

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetHash_And_CompareHash(t *testing.T) {
	hash, err := GetHash("correct horse battery staple")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(hash, "$argon2id$"))
	assert.NoError(t, CompareHash(hash, "correct horse battery staple"))
}

func TestCompareHash_WrongPassword(t *testing.T) {
	hash, err := GetHash("password123")
	require.NoError(t, err)

	tests := []struct {
		name     string
		password string
	}{
		{name: "one char differs", password: "password124"},
		{name: "empty password", password: ""},
		{name: "prefix only", password: "password12"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CompareHash(hash, tt.password)
			assert.ErrorIs(t, err, ErrMismatch)
		})
	}
}

func TestGetHash_SaltedDigestsDiffer(t *testing.T) {
	first, err := GetHash("same password")
	require.NoError(t, err)
	second, err := GetHash("same password")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.NoError(t, CompareHash(first, "same password"))
	assert.NoError(t, CompareHash(second, "same password"))
}

func TestCompareHash_MalformedHash(t *testing.T) {
	tests := []struct {
		name string
		hash string
	}{
		{name: "empty string", hash: ""},
		{name: "bcrypt digest", hash: "$2a$10$N9qo8uLOickgx2ZMRZoMye"},
		{name: "garbage", hash: "not-a-hash"},
		{name: "bad base64 salt", hash: "$argon2id$v=19$m=65536,t=1,p=4$!!!$AAAA"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CompareHash(tt.hash, "whatever")
			assert.ErrorIs(t, err, ErrMismatch)
		})
	}
}
