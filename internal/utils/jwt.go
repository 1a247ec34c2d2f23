package utils // package utils provides helpers for token creation and password hashing

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/iliyamo/flight-reservation-api/internal/model"
)

// ErrInvalidToken is returned for any token that cannot be trusted: bad
// signature, unexpected signing method, malformed payload or past expiry.
// Callers never learn which check failed; decoding fails closed.
var ErrInvalidToken = errors.New("invalid token")

// Claims are the identity claims carried by an access token. Subject
// duplicates the username because usernames are the stable user identifier
// in this system (user documents are looked up by username, not by _id).
type Claims struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// AccessToken is a signed HS256 JWT along with its expiry time.
type AccessToken struct {
	Token string
	Exp   time.Time
}

// NewAccessToken builds and signs an HS256 JWT for a user. The token
// carries {sub, username, role, iat, exp}; ttlMin controls the lifetime
// (the deployment default is one hour).
func NewAccessToken(secret string, user *model.User, ttlMin int) (AccessToken, error) {
	now := time.Now().UTC()
	exp := now.Add(time.Duration(ttlMin) * time.Minute)
	claims := Claims{
		Username: user.Username,
		Role:     user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.Username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString([]byte(secret))
	if err != nil {
		return AccessToken{}, err
	}
	return AccessToken{Token: signed, Exp: exp}, nil
}

// DecodeAccessToken parses and validates a raw token string. Expiry is
// enforced by the parser; the signing method is pinned to HMAC so a token
// signed with "none" or an asymmetric method is rejected outright.
func DecodeAccessToken(secret, raw string) (*Claims, error) {
	tok, err := jwt.ParseWithClaims(raw, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(secret), nil
	})
	if err != nil || !tok.Valid {
		return nil, ErrInvalidToken
	}
	claims, ok := tok.Claims.(*Claims)
	if !ok || claims.Username == "" || claims.Role == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
