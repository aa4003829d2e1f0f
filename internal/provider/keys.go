package provider

import (
	"errors"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	RoleAnon          = "anon"
	RoleServiceRole   = "service_role"
	RoleAuthenticated = "authenticated"

	issuer = "dayflow"
)

type apiKeyClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

type sessionClaims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

// MintAPIKey signs a long-lived API key for role (anon or service_role).
func MintAPIKey(secret string, role string) (string, error) {
	if role != RoleAnon && role != RoleServiceRole {
		return "", errors.New("unknown api key role: " + role)
	}
	claims := &apiKeyClaims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:   issuer,
			IssuedAt: jwt.NewNumericDate(time.Now()),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

func keyFunc(secret []byte) jwt.Keyfunc {
	return func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secret, nil
	}
}

func parseAPIKey(secret []byte, key string) (string, error) {
	claims := &apiKeyClaims{}
	token, err := jwt.ParseWithClaims(key, claims, keyFunc(secret))
	if err != nil || !token.Valid {
		return "", newError(http.StatusUnauthorized, CodeInvalidAPIKey, "Invalid API key")
	}
	if claims.Role != RoleAnon && claims.Role != RoleServiceRole {
		return "", newError(http.StatusUnauthorized, CodeInvalidAPIKey, "Invalid API key")
	}
	return claims.Role, nil
}

func signSession(secret []byte, claims *sessionClaims) (string, error) {
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}

func parseSession(secret []byte, token string, now func() time.Time) (*sessionClaims, error) {
	claims := &sessionClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, keyFunc(secret), jwt.WithExpirationRequired(), jwt.WithTimeFunc(now))
	if err != nil || !parsed.Valid || claims.Role != RoleAuthenticated || claims.Subject == "" {
		return nil, newError(http.StatusUnauthorized, CodeBadJWT, "invalid JWT: unable to parse or verify signature")
	}
	return claims, nil
}
