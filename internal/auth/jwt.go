// Doclab - Broken Access Control Training Lab
// Copyright 2026 Secdojo Labs
// SPDX-License-Identifier: Apache-2.0
// https://github.com/secdojo/doclab

// Package auth handles bearer token creation and validation and the
// HTTP middleware that turns tokens into caller identities.
package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/secdojo/doclab/internal/config"
)

// Claims are the token claims Doclab issues and accepts. The upn claim
// carries the username and groups carries the role names, matching the
// microprofile token layout lab clients already use.
type Claims struct {
	UPN    string   `json:"upn"`
	Groups []string `json:"groups"`
	jwt.RegisteredClaims
}

// JWTManager creates and validates HS256-signed bearer tokens.
type JWTManager struct {
	secret []byte
	ttl    time.Duration
	issuer string
}

// TokenIssuer is the iss claim on minted tokens.
const TokenIssuer = "https://doclab.secdojo.example/issuer"

// NewJWTManager creates a token manager from the security configuration.
// The secret must be at least 32 characters; config validation enforces
// this before the manager is built.
func NewJWTManager(cfg *config.SecurityConfig) (*JWTManager, error) {
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required but was empty")
	}

	return &JWTManager{
		secret: []byte(cfg.JWTSecret),
		ttl:    cfg.TokenTTL,
		issuer: TokenIssuer,
	}, nil
}

// GenerateToken mints a signed token carrying the username and roles.
// The token expires after the configured TTL.
func (m *JWTManager) GenerateToken(username string, roles []string) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(m.ttl)

	claims := &Claims{
		UPN:    username,
		Groups: roles,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    m.issuer,
			Subject:   username,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, expiresAt, nil
}

// ValidateToken parses and verifies a token string. Tokens signed with
// any algorithm other than HMAC are rejected before signature
// verification, closing the algorithm confusion hole.
func (m *JWTManager) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token claims")
	}

	return claims, nil
}
