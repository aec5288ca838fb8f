package jwtmw

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Generator はワークスペーストークンの発行を定義します。
type Generator interface {
	// GenerateToken は workspaceID を sub に持つ署名済みトークンを返します。
	GenerateToken(workspaceID string) (string, error)
}

var _ Generator = (*generator)(nil)

type generator struct {
	secret     []byte
	expiration time.Duration
}

// NewGenerator は指定されたシークレットと有効期限で Generator を生成します。
func NewGenerator(secret string, expiration time.Duration) *generator {
	return &generator{
		secret:     []byte(secret),
		expiration: expiration,
	}
}

// GenerateToken はHS256で署名したトークンを生成します。
func (g *generator) GenerateToken(workspaceID string) (string, error) {
	if workspaceID == "" {
		return "", errors.New("workspace id is required")
	}
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": workspaceID,
		"exp": now.Add(g.expiration).Unix(),
		"iat": now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(g.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, nil
}
