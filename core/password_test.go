package core

import "testing"

func TestHashIsOneWay(t *testing.T) {
	h := NewPasswordHasher(4)

	hash, err := h.Hash("secret123")
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}
	if hash == "secret123" {
		t.Fatal("stored hash must not equal the plaintext password")
	}
	if !h.Verify("secret123", hash) {
		t.Fatal("Verify should accept the original password")
	}
	if h.Verify("wrong", hash) {
		t.Fatal("Verify should reject a different password")
	}
}

func TestHashIsSalted(t *testing.T) {
	h := NewPasswordHasher(4)

	first, err := h.Hash("secret123")
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}
	second, err := h.Hash("secret123")
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}
	if first == second {
		t.Fatal("two hashes of the same password should differ")
	}
}

func TestNewPasswordHasherClampsCost(t *testing.T) {
	if h := NewPasswordHasher(0); h.cost != DefaultBcryptCost {
		t.Fatalf("expected cost %d for out-of-range input, got %d", DefaultBcryptCost, h.cost)
	}
	if h := NewPasswordHasher(99); h.cost != DefaultBcryptCost {
		t.Fatalf("expected cost %d for out-of-range input, got %d", DefaultBcryptCost, h.cost)
	}
	if h := NewPasswordHasher(4); h.cost != 4 {
		t.Fatalf("expected cost 4 to be kept, got %d", h.cost)
	}
}
