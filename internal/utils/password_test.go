package utils

import "testing"

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("123456", 4) // min cost keeps the test fast
	if err != nil {
		t.Fatalf("HashPassword() error: %v", err)
	}
	if hash == "123456" {
		t.Fatal("HashPassword() returned the plaintext")
	}
	if !VerifyPassword(hash, "123456") {
		t.Error("VerifyPassword() rejected the correct password")
	}
	if VerifyPassword(hash, "1234567") {
		t.Error("VerifyPassword() accepted a wrong password")
	}
	if VerifyPassword(hash, "") {
		t.Error("VerifyPassword() accepted an empty password")
	}
}
