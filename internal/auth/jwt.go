package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Account kinds encoded in the session token. The kind decides which
// endpoints a session may reach; ownership is checked separately.
const (
	KindUser      = "user"
	KindOrganizer = "organizer"
)

var (
	ErrInvalidToken = errors.New("invalid token")
)

// Claims is the one canonical session-claim structure. Both account kinds use
// it; the subject is the account id and Name is the email (users) or the
// organizer name (organizers).
type Claims struct {
	Sub  int64  `json:"sub"`
	Name string `json:"name"`
	Kind string `json:"kind"`
	jwt.RegisteredClaims
}

func NewSessionToken(sub int64, name, kind, secret string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		Sub:  sub,
		Name: name,
		Kind: kind,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			Audience:  []string{"planventura-api"},
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Parse verifies signature and expiry and validates the identity claims
// strictly: a token without a subject id or with an unknown kind is invalid,
// never an "anonymous" success.
func Parse(tokenString, secret string) (*Claims, error) {
	tok, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := tok.Claims.(*Claims)
	if !ok || !tok.Valid {
		return nil, ErrInvalidToken
	}
	if claims.Sub <= 0 {
		return nil, ErrInvalidToken
	}
	if claims.Kind != KindUser && claims.Kind != KindOrganizer {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
