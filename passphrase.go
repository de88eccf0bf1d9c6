package ferreus

import (
	"unicode"

	zxcvbn "github.com/nbutton23/zxcvbn-go"
)

// minPasswordLength is the floor of the master password policy.
const minPasswordLength = 12

// ValidateMasterPassword applies the local master password policy: at
// least 12 characters drawn from at least three of the four character
// classes (lower, upper, digit, other). It runs before any cryptographic
// work and fails with ErrInvalidPassword.
func ValidateMasterPassword(password string) error {
	if len(password) < minPasswordLength {
		return ErrInvalidPassword
	}

	var hasLower, hasUpper, hasDigit, hasSpecial bool
	for _, r := range password {
		switch {
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsDigit(r):
			hasDigit = true
		default:
			hasSpecial = true
		}
	}

	categories := 0
	for _, present := range []bool{hasLower, hasUpper, hasDigit, hasSpecial} {
		if present {
			categories++
		}
	}
	if categories < 3 {
		return ErrInvalidPassword
	}
	return nil
}

// EstimateStrength scores a candidate password from 0 to 100 using the
// zxcvbn entropy estimator, with 128 bits of entropy mapping to 100.
func EstimateStrength(password string) float64 {
	if password == "" {
		return 0
	}
	entropy := zxcvbn.PasswordStrength(password, nil).Entropy

	score := entropy / 128.0 * 100.0
	if score > 100 {
		score = 100
	}
	if score < 0 {
		score = 0
	}
	return score
}
