// Package jwtmw はワークスペーストークンの発行と検証を提供します。
package jwtmw

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const ContextWorkspaceID = "workspaceID"

// WorkspaceRequired はBearerトークンを検証し、sub がパスパラメータ param と一致する場合のみ通過させます。
// param が空の場合は一致チェックを行いません。
func WorkspaceRequired(secret, param string) gin.HandlerFunc {
	return func(c *gin.Context) {
		// 1. Authorization ヘッダー
		auth := c.GetHeader("Authorization")
		if !strings.HasPrefix(auth, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}
		tokenStr := strings.TrimPrefix(auth, "Bearer ")

		if secret == "" {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "server misconfigured"})
			return
		}

		// 2. 署名検証 (HMACのみ許可)
		token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		// 3. sub とワークスペースIDの照合
		sub, err := token.Claims.GetSubject()
		if err != nil || sub == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}
		if param != "" && c.Param(param) != sub {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "token does not grant access to this workspace"})
			return
		}

		c.Set(ContextWorkspaceID, sub)
		c.Next()
	}
}
