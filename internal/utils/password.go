package utils

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword returns the bcrypt digest of password computed with the given
// work factor. Each call uses a fresh random salt, so hashing the same
// password twice yields different digests.
//
// Returns an error if the cost is out of range or the password exceeds
// bcrypt's 72-byte input limit.
func HashPassword(password string, cost int) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(hash), nil
}

// ComparePassword reports whether password matches the bcrypt digest hash.
// The comparison runs in constant time with respect to the digest.
func ComparePassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
