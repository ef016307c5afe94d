package middleware

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"chatterbox/store"
)

// SessionCookie is the cookie carrying the signed session token.
const SessionCookie = "access_token"

// SessionTTL is how long an issued session stays valid.
const SessionTTL = 24 * time.Hour

// ContextEmail is the gin context key holding the verified caller email.
const ContextEmail = "email"

type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// SignSession issues a session token for the given email.
func SignSession(email, secret string) (string, error) {
	claims := &Claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(SessionTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Auth verifies the session cookie and exposes the caller's email to
// downstream handlers. Missing or invalid tokens abort with 401.
func Auth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		email, ok := verifyCookie(c, secret)
		if !ok {
			abortUnauthenticated(c)
			return
		}
		c.Set(ContextEmail, email)
		c.Next()
	}
}

// AdminAuth is Auth plus a store-backed role check: the caller's user
// record must exist and carry the admin role, otherwise 403.
func AdminAuth(secret string, db store.Store, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		email, ok := verifyCookie(c, secret)
		if !ok {
			abortUnauthenticated(c)
			return
		}

		user, err := db.UserByEmail(c.Request.Context(), email)
		if err != nil {
			if !errors.Is(err, store.ErrNotFound) {
				log.Warn("admin check failed", zap.String("email", email), zap.Error(err))
			}
			// A store error never grants admin.
			abortForbidden(c)
			return
		}
		if !user.IsAdmin() {
			abortForbidden(c)
			return
		}

		c.Set(ContextEmail, email)
		c.Next()
	}
}

func verifyCookie(c *gin.Context, secret string) (string, bool) {
	cookie, err := c.Cookie(SessionCookie)
	if err != nil || cookie == "" {
		return "", false
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(cookie, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid || claims.Email == "" {
		return "", false
	}
	return claims.Email, true
}

func abortUnauthenticated(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"success": false,
		"message": "Authentication failed!",
	})
}

func abortForbidden(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
		"success": false,
		"message": "Forbidden Request",
	})
}
