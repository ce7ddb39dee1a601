package services

import (
	"strings"
	"unicode"

	"golang.org/x/crypto/bcrypt"
)

// MinPasswordStrength is the lowest PasswordStrength score accepted for a new password.
const MinPasswordStrength = 30

const passwordSymbols = "!@#$%^&*"

// PasswordStrength scores password from 0 to 100.
func PasswordStrength(password string) int {
	score := 0
	n := len([]rune(password))
	if n >= 8 {
		score += 25
	}
	if n >= 12 {
		score += 25
	}

	var hasLower, hasUpper, hasDigit, hasSymbol bool
	for _, r := range password {
		switch {
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsDigit(r):
			hasDigit = true
		case strings.ContainsRune(passwordSymbols, r):
			hasSymbol = true
		}
	}
	if hasLower && hasUpper {
		score += 25
	}
	if hasDigit {
		score += 15
	}
	if hasSymbol {
		score += 10
	}
	if score > 100 {
		score = 100
	}
	return score
}

func hashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func checkPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
