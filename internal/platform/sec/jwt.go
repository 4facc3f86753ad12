// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package sec verifies editor tokens and ranks catalogue roles.
//
// Tokens are issued by an external identity provider and signed with RS256.
// The catalogue only holds the public key.
package sec

import (
	"crypto/rsa"
	"errors"
	"fmt"
	"os"

	"github.com/golang-jwt/jwt/v5"
)

// ErrUnknownRole is returned for a validly signed token whose role is not a catalogue role.
var ErrUnknownRole = errors.New("sec: unknown role")

// AuthClaims is the access token payload. Custom claim names are abbreviated.
type AuthClaims struct {
	jwt.RegisteredClaims

	UserID   string   `json:"uid"`
	Username string   `json:"unm"`
	Role     UserRole `json:"rol"`
}

// TokenService verifies RS256 access tokens for a single issuer.
type TokenService struct {
	publicKey *rsa.PublicKey
	parser    *jwt.Parser
}

func NewTokenService(publicKey *rsa.PublicKey, issuer string) *TokenService {
	return &TokenService{
		publicKey: publicKey,
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}),
			jwt.WithIssuer(issuer),
			jwt.WithExpirationRequired(),
		),
	}
}

// LoadTokenService reads a PEM encoded RSA public key and binds it to issuer.
func LoadTokenService(publicKeyPath, issuer string) (*TokenService, error) {
	pem, err := os.ReadFile(publicKeyPath)
	if err != nil {
		return nil, fmt.Errorf("sec: read public key %s: %w", publicKeyPath, err)
	}

	publicKey, err := jwt.ParseRSAPublicKeyFromPEM(pem)
	if err != nil {
		return nil, fmt.Errorf("sec: parse public key: %w", err)
	}
	return NewTokenService(publicKey, issuer), nil
}

// VerifyToken checks signature, algorithm, expiry, issuer and role.
func (service *TokenService) VerifyToken(tokenString string) (*AuthClaims, error) {
	claims := &AuthClaims{}
	_, err := service.parser.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return service.publicKey, nil
	})
	if err != nil {
		return nil, fmt.Errorf("sec: invalid token: %w", err)
	}

	if !claims.Role.Known() {
		return nil, fmt.Errorf("%w %q", ErrUnknownRole, claims.Role)
	}
	return claims, nil
}
