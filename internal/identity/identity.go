// Package identity authenticates requests via JWT bearer tokens and
// exposes the caller's name and roles to the handlers.
package identity

import (
	"errors"
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// Roles known to the API.
const (
	RoleEmployee      = "employee"
	RolePayroll       = "payroll"
	RoleSubcontractor = "subcontractor"
	RoleAdmin         = "admin"
)

const contextKey = "identity"

// Identity is the authenticated caller of a request.
type Identity struct {
	Name  string
	Roles []string
}

// HasRole reports whether the identity carries the role. Admins pass
// every role check.
func (i Identity) HasRole(role string) bool {
	return slices.Contains(i.Roles, role) || slices.Contains(i.Roles, RoleAdmin)
}

func (i Identity) IsAdmin() bool {
	return slices.Contains(i.Roles, RoleAdmin)
}

// Claims is the token payload. The subject is the user name.
type Claims struct {
	Roles []string `json:"roles"`
	jwt.RegisteredClaims
}

var jwtSecret []byte

// SetSecret configures the HMAC secret tokens are signed with.
func SetSecret(secret string) {
	jwtSecret = []byte(secret)
}

// Token signs a token for a user. Used by tests and provisioning tooling;
// the API itself does not issue tokens.
func Token(name string, roles []string, expiration time.Duration) (string, error) {
	claims := &Claims{
		Roles: roles,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   name,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiration)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(jwtSecret)
}

// validate parses and verifies a token string.
func validate(tokenString string) (Identity, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(_ *jwt.Token) (interface{}, error) {
		return jwtSecret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return Identity{}, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.Subject == "" {
		return Identity{}, jwt.ErrTokenInvalidClaims
	}

	return Identity{Name: claims.Subject, Roles: claims.Roles}, nil
}

// Middleware authenticates the request from the Authorization header and
// stores the identity in the request context.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		scheme, tokenString, found := strings.Cut(header, " ")
		if !found || !strings.EqualFold(scheme, "Bearer") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "a bearer token is required"})
			return
		}

		id, err := validate(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "the bearer token is invalid or expired"})
			return
		}

		c.Set(contextKey, id)
		c.Next()
	}
}

// RequireRole rejects requests whose identity carries none of the roles.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := FromContext(c)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "a bearer token is required"})
			return
		}

		for _, role := range roles {
			if id.HasRole(role) {
				c.Next()
				return
			}
		}

		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "you do not have the role required for this endpoint"})
	}
}

// FromContext returns the identity the middleware stored for the request.
func FromContext(c *gin.Context) (Identity, error) {
	id, ok := c.Get(contextKey)
	if !ok {
		return Identity{}, errors.New("request is not authenticated")
	}

	return id.(Identity), nil
}
