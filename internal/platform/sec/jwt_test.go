// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package sec_test

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/kaamelott/internal/platform/sec"
)

const issuer = "kaamelott.app"

func sign(t *testing.T, key *rsa.PrivateKey, method jwt.SigningMethod, tokenIssuer string, role sec.UserRole, expiresIn time.Duration) string {
	t.Helper()
	now := time.Now()
	token := jwt.NewWithClaims(method, sec.AuthClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    tokenIssuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(expiresIn)),
		},
		UserID: "u-1",
		Role:   role,
	})
	signed, err := token.SignedString(key)
	require.NoError(t, err)
	return signed
}

func TestVerifyToken(t *testing.T) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	other, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	service := sec.NewTokenService(&key.PublicKey, issuer)

	claims, err := service.VerifyToken(sign(t, key, jwt.SigningMethodRS256, issuer, sec.RoleEditor, time.Hour))
	require.NoError(t, err)
	assert.Equal(t, "u-1", claims.UserID)
	assert.Equal(t, sec.RoleEditor, claims.Role)

	tests := []struct {
		name  string
		token string
	}{
		{"wrong issuer", sign(t, key, jwt.SigningMethodRS256, "someone.else", sec.RoleEditor, time.Hour)},
		{"expired", sign(t, key, jwt.SigningMethodRS256, issuer, sec.RoleEditor, -time.Minute)},
		{"foreign key", sign(t, other, jwt.SigningMethodRS256, issuer, sec.RoleEditor, time.Hour)},
		{"other algorithm", sign(t, key, jwt.SigningMethodRS512, issuer, sec.RoleEditor, time.Hour)},
		{"garbage", "not.a.token"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.VerifyToken(tt.token)
			assert.Error(t, err)
		})
	}
}

func TestVerifyToken_UnknownRole(t *testing.T) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	_, err = sec.NewTokenService(&key.PublicKey, issuer).
		VerifyToken(sign(t, key, jwt.SigningMethodRS256, issuer, "guest", time.Hour))

	assert.ErrorIs(t, err, sec.ErrUnknownRole)
}

func TestLoadTokenService(t *testing.T) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	der, err := x509.MarshalPKIXPublicKey(&key.PublicKey)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "jwt.pub")
	require.NoError(t, os.WriteFile(path, pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: der}), 0o600))

	service, err := sec.LoadTokenService(path, issuer)
	require.NoError(t, err)
	_, err = service.VerifyToken(sign(t, key, jwt.SigningMethodRS256, issuer, sec.RoleAdmin, time.Hour))
	assert.NoError(t, err)

	_, err = sec.LoadTokenService(filepath.Join(t.TempDir(), "missing.pub"), issuer)
	assert.Error(t, err)
}

func TestUserRole_AtLeast(t *testing.T) {
	assert.True(t, sec.RoleAdmin.AtLeast(sec.RoleEditor))
	assert.True(t, sec.RoleEditor.AtLeast(sec.RoleEditor))
	assert.False(t, sec.RoleReader.AtLeast(sec.RoleEditor))
	assert.False(t, sec.UserRole("guest").AtLeast(sec.RoleReader))
	assert.False(t, sec.UserRole("").Known())
}
