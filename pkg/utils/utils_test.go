package utils

import (
	"testing"
)

func TestGenerateRandomString(t *testing.T) {
	generatedString := make(map[string]bool)
	for i := 0; i < 100; i++ {
		str, err := GenerateRandomString(32)
		if err != nil {
			t.Fatalf("Error: %s", err)
		}
		if len(str) != 32 {
			t.Fatalf("Expected 32, but got %d", len(str))
		}
		if generatedString[str] {
			t.Fatalf("Duplicated string: %s", str)
		}
		generatedString[str] = true
	}
}

func TestGenerateRecoveryCode(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		code, err := GenerateRecoveryCode()
		if err != nil {
			t.Fatalf("Error: %s", err)
		}
		if len(code) != 14 {
			t.Fatalf("Expected 14, but got %d", len(code))
		}
		if code[4] != '-' || code[9] != '-' {
			t.Fatalf("Malformed code: %s", code)
		}
		if seen[code] {
			t.Fatalf("Duplicated code: %s", code)
		}
		seen[code] = true
	}
}
