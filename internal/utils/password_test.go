package utils

import (
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestHashPassword_RoundTrip(t *testing.T) {
	hash, err := HashPassword("s3cret!", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if hash == "s3cret!" {
		t.Fatal("hash must not equal the plaintext")
	}
	if !strings.HasPrefix(hash, "$2a$") {
		t.Errorf("expected bcrypt hash, got %q", hash)
	}
	if !CheckPassword(hash, "s3cret!") {
		t.Error("expected password to match its hash")
	}
	if CheckPassword(hash, "S3cret!") {
		t.Error("expected different password not to match")
	}
}

func TestHashPassword_Salted(t *testing.T) {
	first, _ := HashPassword("same-password", bcrypt.MinCost)
	second, _ := HashPassword("same-password", bcrypt.MinCost)

	if first == second {
		t.Error("expected two hashes of the same password to differ")
	}
}

func TestHashPassword_InvalidCostFallsBack(t *testing.T) {
	hash, err := HashPassword("password", 0)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	cost, err := bcrypt.Cost([]byte(hash))
	if err != nil {
		t.Fatal(err)
	}
	if cost != bcrypt.DefaultCost {
		t.Errorf("expected default cost %d, got %d", bcrypt.DefaultCost, cost)
	}
}

func TestHashPassword_TooLong(t *testing.T) {
	if _, err := HashPassword(strings.Repeat("a", 73), bcrypt.MinCost); err == nil {
		t.Error("expected error for a password over 72 bytes")
	}
}

func TestCheckPassword_GarbageHash(t *testing.T) {
	if CheckPassword("not-a-hash", "password") {
		t.Error("expected garbage hash not to match")
	}
}
