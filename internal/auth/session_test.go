package auth

import (
	"crypto/ed25519"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseExpireTime(t *testing.T) {
	for _, never := range []string{"", "0", "never"} {
		d, err := ParseExpireTime(never)
		require.NoError(t, err)
		assert.Zero(t, d)
	}

	d, err := ParseExpireTime("72h")
	require.NoError(t, err)
	assert.Equal(t, 72*time.Hour, d)

	_, err = ParseExpireTime("soon")
	assert.Error(t, err)
}

func TestIssueAndVerifyPlayerKey(t *testing.T) {
	issuer, err := NewKeyIssuer(time.Hour)
	require.NoError(t, err)

	hostID := uuid.New()
	key, err := issuer.IssuePlayerKey(hostID)
	require.NoError(t, err)
	assert.NotEmpty(t, key)

	got, err := issuer.VerifyPlayerKey(key)
	require.NoError(t, err)
	assert.Equal(t, hostID, got)
}

func TestVerifyPlayerKey_OtherIssuer(t *testing.T) {
	a, err := NewKeyIssuer(0)
	require.NoError(t, err)
	b, err := NewKeyIssuer(0)
	require.NoError(t, err)

	key, err := a.IssuePlayerKey(uuid.New())
	require.NoError(t, err)

	_, err = b.VerifyPlayerKey(key)
	assert.Error(t, err)
}

func TestVerifyPlayerKey_Expired(t *testing.T) {
	issuer, err := NewKeyIssuer(time.Hour)
	require.NoError(t, err)

	// Given: a key issued two hours ago with a one hour lifetime
	issuer.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	key, err := issuer.IssuePlayerKey(uuid.New())
	require.NoError(t, err)

	// When: it is verified now
	issuer.now = time.Now
	_, err = issuer.VerifyPlayerKey(key)

	// Then: it is rejected as expired
	require.Error(t, err)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestNewKeyIssuerFromPath(t *testing.T) {
	pub, priv, err := ed25519.GenerateKey(nil)
	require.NoError(t, err)

	dir := t.TempDir()
	privPath := filepath.Join(dir, "key")
	pubPath := filepath.Join(dir, "key.pub")
	require.NoError(t, os.WriteFile(privPath, priv, 0o600))
	require.NoError(t, os.WriteFile(pubPath, pub, 0o644))

	issuer, err := NewKeyIssuerFromPath(privPath, pubPath, 0)
	require.NoError(t, err)

	hostID := uuid.New()
	key, err := issuer.IssuePlayerKey(hostID)
	require.NoError(t, err)
	got, err := issuer.VerifyPlayerKey(key)
	require.NoError(t, err)
	assert.Equal(t, hostID, got)

	_, err = NewKeyIssuerFromPath(filepath.Join(dir, "nope"), pubPath, 0)
	assert.Error(t, err)
}
