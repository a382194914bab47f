// internal/auth/session.go
package auth

import (
	"crypto/ed25519"
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// KeyIssuer signs player keys: EdDSA JWTs whose "sub" is the hosting player's id.
type KeyIssuer struct {
	privateKey ed25519.PrivateKey
	publicKey  ed25519.PublicKey

	// expire is how long an issued key stays valid (0 => never).
	expire time.Duration

	now func() time.Time
}

// ParseExpireTime reads a TOKEN_EXPIRE_TIME value: "never", "0", "" or a duration.
func ParseExpireTime(value string) (time.Duration, error) {
	if value == "never" || value == "0" || value == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("failed to parse token expire time: %w", err)
	}
	return d, nil
}

// NewKeyIssuer generates a fresh ed25519 key pair.
func NewKeyIssuer(expire time.Duration) (*KeyIssuer, error) {
	publicKey, privateKey, err := ed25519.GenerateKey(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to generate ed25519 key pair: %w", err)
	}
	return &KeyIssuer{privateKey: privateKey, publicKey: publicKey, expire: expire, now: time.Now}, nil
}

// NewKeyIssuerFromPath reads ed25519 private/public keys from file.
func NewKeyIssuerFromPath(privatePath, publicPath string, expire time.Duration) (*KeyIssuer, error) {
	privateKeyData, err := os.ReadFile(privatePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read private key file: %w", err)
	}
	publicKeyData, err := os.ReadFile(publicPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read public key file: %w", err)
	}
	if len(privateKeyData) != ed25519.PrivateKeySize || len(publicKeyData) != ed25519.PublicKeySize {
		return nil, fmt.Errorf("invalid ed25519 key size")
	}

	return &KeyIssuer{
		privateKey: ed25519.PrivateKey(privateKeyData),
		publicKey:  ed25519.PublicKey(publicKeyData),
		expire:     expire,
		now:        time.Now,
	}, nil
}

// IssuePlayerKey signs a player key for hostID.
func (k *KeyIssuer) IssuePlayerKey(hostID uuid.UUID) (string, error) {
	issuedAt := k.now()
	claims := jwt.MapClaims{
		"sub": hostID.String(),
		"iat": issuedAt.Unix(),
	}
	if k.expire > 0 {
		claims["exp"] = issuedAt.Add(k.expire).Unix()
	}

	token := jwt.NewWithClaims(jwt.SigningMethodEdDSA, claims)
	return token.SignedString(k.privateKey)
}

// VerifyPlayerKey checks a player key and returns the host id it was issued for.
func (k *KeyIssuer) VerifyPlayerKey(tokenString string) (uuid.UUID, error) {
	t, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodEd25519); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return k.publicKey, nil
	})
	if err != nil {
		return uuid.Nil, fmt.Errorf("jwt parse error: %w", err)
	}
	if !t.Valid {
		return uuid.Nil, fmt.Errorf("invalid token")
	}

	claims, ok := t.Claims.(jwt.MapClaims)
	if !ok {
		return uuid.Nil, fmt.Errorf("invalid jwt claims")
	}
	sub, ok := claims["sub"].(string)
	if !ok {
		return uuid.Nil, fmt.Errorf("missing sub in jwt")
	}

	hostID, err := uuid.Parse(sub)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid host id in jwt: %w", err)
	}
	return hostID, nil
}
