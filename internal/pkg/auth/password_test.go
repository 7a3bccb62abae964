package auth

import "testing"

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("staff123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if hash == "staff123" {
		t.Fatal("hash must not equal the plain password")
	}

	if !CheckPassword(hash, "staff123") {
		t.Error("expected matching password to verify")
	}
	if CheckPassword(hash, "staff124") {
		t.Error("expected mismatched password to fail")
	}
	if CheckPassword("not-a-bcrypt-hash", "staff123") {
		t.Error("expected malformed hash to fail")
	}
}
