package utils

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword derives a one-way, salted bcrypt digest from the given
// plaintext password. The digest embeds its own random salt and cost factor,
// so no additional key material needs to be stored alongside it.
//
// Returns an error if the plaintext exceeds bcrypt's 72-byte input limit.
func HashPassword(password string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(digest), nil
}

// VerifyPassword reports whether the plaintext password matches the stored
// bcrypt digest. Any mismatch or malformed digest yields false; the caller
// never learns which of the two it was.
func VerifyPassword(password, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)) == nil
}
