package service

import "testing"

func TestPasswordHasher_RoundTrip(t *testing.T) {
	h := NewPasswordHasher()

	hash, err := h.Hash("s3cretpass")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	if hash == "s3cretpass" {
		t.Fatalf("hash equals plaintext")
	}
	if !h.Verify("s3cretpass", hash) {
		t.Fatalf("verify rejected the original plaintext")
	}
	if h.Verify("otherpass", hash) {
		t.Fatalf("verify accepted a different plaintext")
	}
}

func TestPasswordHasher_SaltedOutput(t *testing.T) {
	h := NewPasswordHasher()

	a, err := h.Hash("s3cretpass")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	b, err := h.Hash("s3cretpass")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	if a == b {
		t.Fatalf("two hashes of the same plaintext are identical, salt missing")
	}
}

func TestPasswordHasher_MalformedHash(t *testing.T) {
	h := NewPasswordHasher()

	if h.Verify("anything", "not-a-bcrypt-hash") {
		t.Fatalf("verify accepted a malformed stored hash")
	}
	if h.Verify("anything", "") {
		t.Fatalf("verify accepted an empty stored hash")
	}
}
