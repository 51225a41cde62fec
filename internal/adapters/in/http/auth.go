package http

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

const actorKey = "actorID"

// ErrMissingSubject is returned for tokens without a "sub" claim.
var ErrMissingSubject = errors.New("token has no subject")

// TokenVerifier checks HS256 bearer tokens issued by the identity provider.
// The subject claim is the user id every use case acts on behalf of.
type TokenVerifier struct {
	secret []byte
	parser *jwt.Parser
}

func NewTokenVerifier(secret string) TokenVerifier {
	return TokenVerifier{
		secret: []byte(secret),
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithExpirationRequired(),
			jwt.WithLeeway(30*time.Second),
		),
	}
}

// Verify returns the token subject.
func (v TokenVerifier) Verify(token string) (string, error) {
	claims := jwt.RegisteredClaims{}
	if _, err := v.parser.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return v.secret, nil
	}); err != nil {
		return "", err
	}
	if claims.Subject == "" {
		return "", ErrMissingSubject
	}
	return claims.Subject, nil
}

// Issue signs a token for userID. It is used by tests and local tooling.
func (v TokenVerifier) Issue(userID string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(v.secret)
}

// authenticate rejects requests without a valid bearer token and stores the
// subject for actorID.
func authenticate(v TokenVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			header := ctx.Request().Header.Get(echo.HeaderAuthorization)
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				return echo.NewHTTPError(http.StatusUnauthorized)
			}

			subject, err := v.Verify(token)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized).SetInternal(err)
			}

			ctx.Set(actorKey, subject)
			return next(ctx)
		}
	}
}

func actorID(ctx echo.Context) string {
	id, _ := ctx.Get(actorKey).(string)
	return id
}
