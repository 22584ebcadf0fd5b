package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	"glowdesk/utils"

	"github.com/gin-gonic/gin"
)

// Context keys set by the auth middleware.
const (
	CtxSubjectID  = "authSubjectID"
	CtxBusinessID = "authBusinessID"
	CtxRole       = "authRole"
)

func bearerToken(c *gin.Context) (string, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return "", false
	}
	token := strings.TrimPrefix(authHeader, "Bearer ")
	return token, token != ""
}

// JWTAuthMiddleware validates the bearer token and stashes its claims on
// the request context. requiredRole restricts access further; pass "" to
// accept any authenticated principal.
func JWTAuthMiddleware(requiredRole string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}

		subject, businessID, role, ok := cachedClaims(token)
		if !ok {
			var err error
			subject, businessID, role, err = utils.ExtractClaims(token)
			if err != nil {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
				return
			}
			cacheClaims(token, subject, businessID, role)
		}
		if requiredRole != "" && role != requiredRole {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
			return
		}

		c.Set(CtxSubjectID, subject)
		c.Set(CtxBusinessID, businessID)
		c.Set(CtxRole, role)
		c.Next()
	}
}

// cachedClaims looks up a previously validated token in the auth cache,
// keyed by the token's hash so raw tokens never land in Redis.
func cachedClaims(token string) (subject, businessID, role string, ok bool) {
	client := utils.AuthCacheClient
	if client == nil {
		return "", "", "", false
	}
	ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer cancel()

	val, err := client.Get(ctx, utils.AuthCachePrefix+utils.HashToken(token)).Result()
	if err != nil {
		return "", "", "", false
	}
	parts := strings.SplitN(val, "|", 3)
	if len(parts) != 3 {
		return "", "", "", false
	}
	return parts[0], parts[1], parts[2], true
}

func cacheClaims(token, subject, businessID, role string) {
	client := utils.AuthCacheClient
	if client == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer cancel()

	client.Set(ctx, utils.AuthCachePrefix+utils.HashToken(token),
		subject+"|"+businessID+"|"+role, utils.AuthCacheTTL)
}

// OwnerAuthMiddleware restricts a route group to business owners.
func OwnerAuthMiddleware() gin.HandlerFunc {
	return JWTAuthMiddleware("owner")
}

// BusinessID returns the authenticated tenant ID for the request.
func BusinessID(c *gin.Context) string {
	return c.GetString(CtxBusinessID)
}
