package service

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"blogapi/internal/model"
)

// HashPassword returns a salted bcrypt hash of plain.
// Inputs longer than model.MaxPasswordBytes fail with model.ErrPasswordTooLong.
func HashPassword(plain string) (string, error) {
	if len(plain) > model.MaxPasswordBytes {
		return "", model.ErrPasswordTooLong
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashed), nil
}

func VerifyPassword(plain, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
