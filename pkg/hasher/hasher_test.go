package hasher

import "testing"

func TestHashAndVerify(t *testing.T) {
	h := NewBcryptHasher(4)

	hash, err := h.Hash("s3cret")
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	if hash == "" {
		t.Fatalf("expected non-empty hash")
	}
	if hash == "s3cret" {
		t.Fatalf("hash must not equal the plaintext password")
	}
	if !h.Verify(hash, "s3cret") {
		t.Fatalf("expected password check to pass")
	}
	if h.Verify(hash, "s3cretx") {
		t.Fatalf("expected password check to fail for wrong password")
	}
}

func TestHashIsSalted(t *testing.T) {
	h := NewBcryptHasher(4)

	first, err := h.Hash("same-password")
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	second, err := h.Hash("same-password")
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	if first == second {
		t.Fatalf("two hashes of the same password must differ")
	}
	if !h.Verify(first, "same-password") || !h.Verify(second, "same-password") {
		t.Fatalf("both salted hashes must verify against the original password")
	}
}

func TestNewBcryptHasherClampsCost(t *testing.T) {
	h := NewBcryptHasher(99)
	hash, err := h.Hash("pw")
	if err != nil {
		t.Fatalf("hash with clamped cost: %v", err)
	}
	if !h.Verify(hash, "pw") {
		t.Fatalf("expected clamped-cost hash to verify")
	}
}
