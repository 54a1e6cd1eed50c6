package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueVerifyRoundtrip(t *testing.T) {
	m := NewManager("test-secret", time.Hour)

	token, err := m.Issue("u1", "a@x.com", "user", "A")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	identity, err := m.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, &Identity{UserID: "u1", Email: "a@x.com", Role: "user", Name: "A"}, identity)
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	issued := NewManager("secret-one", time.Hour)
	token, err := issued.Issue("u1", "a@x.com", "user", "A")
	require.NoError(t, err)

	_, err = NewManager("secret-two", time.Hour).Verify(token)
	assert.Error(t, err)
}

func TestVerifyRejectsExpired(t *testing.T) {
	m := NewManager("test-secret", time.Nanosecond)
	token, err := m.Issue("u1", "a@x.com", "user", "A")
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)
	_, err = m.Verify(token)
	assert.Error(t, err)
}

func TestVerifyRejectsGarbage(t *testing.T) {
	m := NewManager("test-secret", time.Hour)
	_, err := m.Verify("not-a-token")
	assert.Error(t, err)
}

func TestDefaultTTL(t *testing.T) {
	m := NewManager("test-secret", 0)
	assert.Equal(t, DefaultTokenTTL, m.ttl)
}
