package service

import "testing"

func TestPassword_HashAndCheck(t *testing.T) {
	hash, err := HashPassword("sifre123")
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	if hash == "sifre123" {
		t.Fatalf("hash equals plaintext")
	}

	if !CheckPassword(hash, "sifre123") {
		t.Fatalf("expected correct password to verify")
	}
	if CheckPassword(hash, "yanlis") {
		t.Fatalf("expected wrong password to fail")
	}
}

func TestPassword_DistinctSalts(t *testing.T) {
	h1, err := HashPassword("sifre123")
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	h2, err := HashPassword("sifre123")
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	if h1 == h2 {
		t.Fatalf("expected salted hashes to differ")
	}
}
