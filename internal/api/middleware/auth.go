package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/infoaidtech/backend/internal/auth"
	"github.com/infoaidtech/backend/internal/cache"
	"github.com/infoaidtech/backend/internal/models"
	mongorepo "github.com/infoaidtech/backend/internal/repositories/mongo"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	ctxUser   = "user"
	ctxClaims = "claims"
)

func abortUnauthorized(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": msg})
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
}

// resolveToken verifies the raw token, checks the logout denylist, and
// resolves the subject to a live user record.
func resolveToken(c *gin.Context, issuer *auth.Issuer, users mongorepo.UserRepository, denylist cache.Denylist, raw string) (*models.User, *auth.Claims, error) {
	claims, err := issuer.Verify(raw)
	if err != nil {
		if errors.Is(err, auth.ErrExpiredToken) {
			return nil, nil, errors.New("not authorized, token expired")
		}
		return nil, nil, errors.New("not authorized, invalid token")
	}

	if denylist != nil {
		revoked, err := denylist.IsRevoked(c.Request.Context(), claims.ID)
		if err != nil {
			// Fail open: an unreachable denylist does not lock callers out.
			// The error surfaces in the request log.
			_ = c.Error(err)
		} else if revoked {
			return nil, nil, errors.New("not authorized, token revoked")
		}
	}

	uid, err := primitive.ObjectIDFromHex(claims.Subject)
	if err != nil {
		return nil, nil, errors.New("not authorized, invalid token")
	}
	user, err := users.GetByID(c.Request.Context(), uid)
	if err != nil {
		return nil, nil, errors.New("not authorized, user not found")
	}
	if !user.IsActive {
		return nil, nil, errors.New("account is deactivated")
	}
	return user, claims, nil
}

// RequireAuth guards a route with bearer-token authentication.
func RequireAuth(issuer *auth.Issuer, users mongorepo.UserRepository, denylist cache.Denylist) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := bearerToken(c)
		if raw == "" {
			abortUnauthorized(c, "not authorized, no token")
			return
		}

		user, claims, err := resolveToken(c, issuer, users, denylist, raw)
		if err != nil {
			abortUnauthorized(c, err.Error())
			return
		}

		c.Set(ctxUser, user)
		c.Set(ctxClaims, claims)
		c.Next()
	}
}

// OptionalAuth attaches the caller when a valid token is presented and
// proceeds unauthenticated otherwise.
func OptionalAuth(issuer *auth.Issuer, users mongorepo.UserRepository, denylist cache.Denylist) gin.HandlerFunc {
	return func(c *gin.Context) {
		if raw := bearerToken(c); raw != "" {
			if user, claims, err := resolveToken(c, issuer, users, denylist, raw); err == nil {
				c.Set(ctxUser, user)
				c.Set(ctxClaims, claims)
			}
		}
		c.Next()
	}
}

// CurrentUser returns the user attached by RequireAuth or OptionalAuth.
func CurrentUser(c *gin.Context) (*models.User, bool) {
	v, ok := c.Get(ctxUser)
	if !ok {
		return nil, false
	}
	u, ok := v.(*models.User)
	return u, ok
}

// CurrentClaims returns the verified token claims, when present.
func CurrentClaims(c *gin.Context) (*auth.Claims, bool) {
	v, ok := c.Get(ctxClaims)
	if !ok {
		return nil, false
	}
	cl, ok := v.(*auth.Claims)
	return cl, ok
}
