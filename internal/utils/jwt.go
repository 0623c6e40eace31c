package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-project-hub/models"
	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidJWTParams is returned by GenerateJWTToken when a required
// parameter is missing or out of range.
var ErrInvalidJWTParams = errors.New("invalid params for generating JWT Token")

// GenerateJWTToken creates a signed HMAC-SHA256 JWT token for the given
// identity claims.
//
// Besides the custom claims (userId, email, name) the token includes:
//   - Subject   (sub): the user ID
//   - IssuedAt  (iat): issuedAt
//   - ExpiresAt (exp): issuedAt plus tokenDuration
//   - Issuer    (iss): issuer, only when non-empty
//
// Parameters:
//
//	claims        - identity to embed; claims.UserID is required
//	issuer        - optional identifier of the token issuer (e.g. service name)
//	issuedAt      - the issuance instant, normally time.Now()
//	tokenDuration - how long the token remains valid, must be positive
//	signKey       - secret key used to sign the token with HMAC-SHA256
//
// Example usage:
//
//	token, err := utils.GenerateJWTToken(user.Claims(), "", time.Now(), 10*time.Hour, "secret")
func GenerateJWTToken(claims models.Claims, issuer string, issuedAt time.Time, tokenDuration time.Duration, signKey string) (models.Token, error) {
	if claims.UserID == "" || tokenDuration <= 0 || signKey == "" {
		return models.Token{}, ErrInvalidJWTParams
	}

	claims.RegisteredClaims = jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   claims.UserID,
		ExpiresAt: jwt.NewNumericDate(issuedAt.Add(tokenDuration)),
		IssuedAt:  jwt.NewNumericDate(issuedAt),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during singing JWT token: %w", err)
	}

	return models.Token{SignedString: tokenString, Claims: claims}, nil
}

// ValidateAndParseJWTToken validates the given JWT token string and extracts its claims.
//
// Validation includes:
//   - Signature verification using the provided sign key (HS256 only)
//   - Expiration (exp) claim presence and check
//   - Issuer (iss) claim check, only when tokenIssuer is non-empty
//   - userId claim presence
//
// The returned error wraps the underlying jwt error (for example
// [jwt.ErrTokenExpired] or [jwt.ErrTokenSignatureInvalid]) so callers that
// care can tell reasons apart with errors.Is.
//
// Example usage:
//
//	token, err := utils.ValidateAndParseJWTToken(rawToken, "secret", "")
//	if err != nil {
//	    // handle invalid or expired token
//	}
func ValidateAndParseJWTToken(tokenString, tokenSignKey, tokenIssuer string) (models.Token, error) {
	options := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if tokenIssuer != "" {
		options = append(options, jwt.WithIssuer(tokenIssuer))
	}

	var claims models.Claims
	_, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	}, options...)
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	if claims.UserID == "" {
		return models.Token{}, errors.New("empty userId claim error")
	}

	return models.Token{SignedString: tokenString, Claims: claims}, nil
}
