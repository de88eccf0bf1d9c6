package ferreus

import (
	"errors"
	"testing"
)

func TestValidateMasterPassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		valid    bool
	}{
		{"empty", "", false},
		{"too short", "Ab1!x", false},
		{"long but one class", "aaaaaaaaaaaaaaaa", false},
		{"long but two classes", "aaaaaaaaaaaa1234", false},
		{"three classes", "aaaaaaaaaA1234", true},
		{"all four classes", "StrongPassword123!@#", true},
		{"no lowercase", "AAAABBBB1234!@#$", true},
		{"exactly twelve", "Abcdefgh123!", true},
		{"eleven chars all classes", "Abcdefg123!", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateMasterPassword(tt.password)
			if tt.valid && err != nil {
				t.Fatalf("expected valid, got %v", err)
			}
			if !tt.valid && !errors.Is(err, ErrInvalidPassword) {
				t.Fatalf("expected ErrInvalidPassword, got %v", err)
			}
		})
	}
}

func TestEstimateStrength(t *testing.T) {
	if got := EstimateStrength(""); got != 0 {
		t.Fatalf("empty password scored %f, want 0", got)
	}

	weak := EstimateStrength("password")
	strong := EstimateStrength("xK9#mQ2$vL8@pR5&wN3!")
	if weak >= strong {
		t.Fatalf("weak (%f) should score below strong (%f)", weak, strong)
	}

	for _, password := range []string{"a", "password", "StrongPassword123!@#", "xK9#mQ2$vL8@pR5&wN3!zT7*"} {
		score := EstimateStrength(password)
		if score < 0 || score > 100 {
			t.Fatalf("score %f for %q out of range", score, password)
		}
	}
}
