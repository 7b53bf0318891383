package middleware

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stpnv0/StayBooker/internal/domain"
	"github.com/stpnv0/StayBooker/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

const actorKey = "actor"

type Claims struct {
	IsStaff bool `json:"is_staff"`
	jwt.RegisteredClaims
}

// Auth resolves the caller from an optional HS256 bearer token. Requests
// without a token continue anonymously; a malformed or expired token is
// rejected.
func Auth(secret string) ginext.HandlerFunc {
	key := []byte(secret)

	return func(c *ginext.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.Next()
			return
		}

		raw, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || raw == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "missing bearer token"})
			return
		}

		claims := &Claims{}
		tok, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("unexpected signing method")
			}
			return key, nil
		})
		if err != nil || !tok.Valid || claims.Subject == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "invalid token"})
			return
		}

		c.Set(actorKey, domain.Actor{UserID: claims.Subject, IsStaff: claims.IsStaff})
		c.Next()
	}
}

// RequireAuth rejects anonymous requests.
func RequireAuth() ginext.HandlerFunc {
	return func(c *ginext.Context) {
		if !ActorFrom(c).Authenticated() {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Error: domain.ErrUnauthenticated.Error()})
			return
		}
		c.Next()
	}
}

func ActorFrom(c *ginext.Context) domain.Actor {
	v, ok := c.Get(actorKey)
	if !ok {
		return domain.Actor{}
	}
	actor, _ := v.(domain.Actor)
	return actor
}

// IssueToken signs a token for userID. Used by the seeder and tests.
func IssueToken(secret, userID string, isStaff bool, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		IsStaff: isStaff,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}
