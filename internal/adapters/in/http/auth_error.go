package http

// AuthErrorKind enumerates the ways bearer-token authentication can fail.
type AuthErrorKind int

const (
	// AuthErrorNoAuthHeader means the Authorization header was absent.
	AuthErrorNoAuthHeader AuthErrorKind = iota
	// AuthErrorInvalidHeader means the header or token could not be parsed,
	// or the token was not an RS256-signed JWT.
	AuthErrorInvalidHeader
	// AuthErrorTokenExpired means the token's expiry has passed.
	AuthErrorTokenExpired
	// AuthErrorInvalidClaims means the issuer, audience, or subject claims
	// did not check out.
	AuthErrorInvalidClaims
	// AuthErrorNoVerificationKey means the server has no public key to
	// verify signatures with.
	AuthErrorNoVerificationKey
)

// AuthError is the single authentication failure type, tagged by kind.
// Every kind maps to a fixed code and description pair and is always
// answered with HTTP 401.
type AuthError struct {
	kind AuthErrorKind
}

// NewAuthError creates an AuthError of the given kind.
func NewAuthError(kind AuthErrorKind) *AuthError {
	return &AuthError{kind: kind}
}

// Kind reports which authentication failure occurred.
func (e *AuthError) Kind() AuthErrorKind {
	return e.kind
}

// Code returns the stable machine-readable failure code.
func (e *AuthError) Code() string {
	switch e.kind {
	case AuthErrorNoAuthHeader:
		return "no_auth_header"
	case AuthErrorInvalidHeader:
		return "invalid_header"
	case AuthErrorTokenExpired:
		return "token_expired"
	case AuthErrorInvalidClaims:
		return "invalid_claims"
	case AuthErrorNoVerificationKey:
		return "no_verification_key"
	}
	return "unauthorized"
}

// Description returns the human-readable failure description.
func (e *AuthError) Description() string {
	switch e.kind {
	case AuthErrorNoAuthHeader:
		return "Authorization header is missing"
	case AuthErrorInvalidHeader:
		return "Invalid header. Use an RS256 signed JWT Access Token"
	case AuthErrorTokenExpired:
		return "token is expired"
	case AuthErrorInvalidClaims:
		return "incorrect claims, please check the audience and issuer"
	case AuthErrorNoVerificationKey:
		return "no verification key is configured"
	}
	return "unauthorized"
}

func (e *AuthError) Error() string {
	return e.Code() + ": " + e.Description()
}
