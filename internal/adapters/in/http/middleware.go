package http

import (
	"crypto/rsa"
	"errors"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// authSubjectKey is the echo context key holding the verified token subject.
const authSubjectKey = "auth_subject"

// TokenVerifier validates RS256 bearer tokens against an injected public key
// and checks the issuer and audience claims.
type TokenVerifier struct {
	publicKey *rsa.PublicKey
	issuer    string
	audience  string
}

// NewTokenVerifier creates a verifier for tokens signed by the holder of the
// given public key's private counterpart.
func NewTokenVerifier(publicKey *rsa.PublicKey, issuer, audience string) *TokenVerifier {
	return &TokenVerifier{
		publicKey: publicKey,
		issuer:    issuer,
		audience:  audience,
	}
}

// Verify checks the token signature and claims and returns the subject.
// Failures are reported as *AuthError values tagged with the failure kind.
func (v *TokenVerifier) Verify(tokenString string) (string, error) {
	if v.publicKey == nil {
		return "", NewAuthError(AuthErrorNoVerificationKey)
	}

	token, err := jwt.Parse(tokenString,
		func(token *jwt.Token) (any, error) {
			if _, ok := token.Method.(*jwt.SigningMethodRSA); !ok {
				return nil, NewAuthError(AuthErrorInvalidHeader)
			}
			return v.publicKey, nil
		},
		jwt.WithValidMethods([]string{"RS256"}),
		jwt.WithIssuer(v.issuer),
		jwt.WithAudience(v.audience),
	)
	if err != nil {
		return "", classifyTokenError(err)
	}

	subject, err := token.Claims.GetSubject()
	if err != nil || subject == "" {
		return "", NewAuthError(AuthErrorInvalidClaims)
	}

	return subject, nil
}

func classifyTokenError(err error) *AuthError {
	var authErr *AuthError
	if errors.As(err, &authErr) {
		return authErr
	}

	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return NewAuthError(AuthErrorTokenExpired)
	case errors.Is(err, jwt.ErrTokenInvalidIssuer),
		errors.Is(err, jwt.ErrTokenInvalidAudience),
		errors.Is(err, jwt.ErrTokenRequiredClaimMissing):
		return NewAuthError(AuthErrorInvalidClaims)
	default:
		return NewAuthError(AuthErrorInvalidHeader)
	}
}

// BearerAuth returns middleware that authenticates requests with an RS256
// bearer token and stores the verified subject in the request context.
// Every failure answers 401 with the failure's code and description.
func BearerAuth(verifier *TokenVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if header == "" {
				return unauthorized(c, NewAuthError(AuthErrorNoAuthHeader))
			}

			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				return unauthorized(c, NewAuthError(AuthErrorInvalidHeader))
			}

			subject, err := verifier.Verify(parts[1])
			if err != nil {
				var authErr *AuthError
				if errors.As(err, &authErr) {
					return unauthorized(c, authErr)
				}
				return unauthorized(c, NewAuthError(AuthErrorInvalidHeader))
			}

			c.Set(authSubjectKey, subject)
			return next(c)
		}
	}
}

func unauthorized(c echo.Context, authErr *AuthError) error {
	return c.JSON(http.StatusUnauthorized, AuthErrorResponse{
		Code:        authErr.Code(),
		Description: authErr.Description(),
	})
}

// authSubject returns the verified token subject set by BearerAuth.
func authSubject(c echo.Context) string {
	subject, _ := c.Get(authSubjectKey).(string)
	return subject
}
