// Package auth validates HS256 bearer tokens on every non-public endpoint.
// Tokens are issued elsewhere; this service only checks the signature and
// the sub and exp claims.
package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"clinic-records/internal/common/apperror"
	"clinic-records/internal/handler/http/respond"
)

type ctxKey string

const ctxUser ctxKey = "user"

var (
	errMissingToken = errors.New("missing bearer token")
	errInvalidToken = errors.New("invalid token")
	errExpiredToken = errors.New("token expired")
	errInvalidSub   = errors.New("invalid sub claim")
)

// Authz returns middleware requiring a valid bearer token signed with secret
// for every method on protected endpoints. The token subject is stored in
// the request context.
func Authz(secret []byte) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if IsPublicEndpoint(r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			start := time.Now()
			user, err := validateJWT(r.Header.Get("Authorization"), secret)
			RecordAuthDuration(time.Since(start).Seconds())
			if err != nil {
				RecordAuthRequest("failure")
				respond.Error(w, apperror.Unauthorized(err.Error()))
				return
			}
			RecordAuthRequest("success")

			next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), user)))
		})
	}
}

// WithUser stores the authenticated subject in ctx.
func WithUser(ctx context.Context, user string) context.Context {
	return context.WithValue(ctx, ctxUser, user)
}

// UserFromContext returns the authenticated subject, if any.
func UserFromContext(ctx context.Context) (string, bool) {
	user, ok := ctx.Value(ctxUser).(string)
	return user, ok && user != ""
}

// NewToken signs a token for subject that expires after ttl.
func NewToken(secret []byte, subject string, ttl time.Duration) (string, error) {
	now := time.Now()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": subject,
		"iat": now.Unix(),
		"exp": now.Add(ttl).Unix(),
	})
	return tok.SignedString(secret)
}

func validateJWT(authz string, secret []byte) (string, error) {
	const prefix = "Bearer "
	if !strings.HasPrefix(authz, prefix) {
		return "", errMissingToken
	}
	tokenString := strings.TrimSpace(strings.TrimPrefix(authz, prefix))
	tok, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		return secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", errExpiredToken
		}
		return "", errInvalidToken
	}
	if !tok.Valid {
		return "", errInvalidToken
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return "", errInvalidToken
	}
	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return "", errInvalidSub
	}
	return sub, nil
}
