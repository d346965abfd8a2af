package service

import "golang.org/x/crypto/bcrypt"

// hashCost matches the work factor the system has always used.
const hashCost = 10

// PasswordHasher wraps bcrypt hashing and verification. The salt is
// generated per call and embedded in the output, so hashing the same
// plaintext twice yields different strings.
type PasswordHasher struct {
	cost int
}

func NewPasswordHasher() *PasswordHasher {
	return &PasswordHasher{cost: hashCost}
}

// Hash computes a salted one-way hash of plain.
func (h *PasswordHasher) Hash(plain string) (string, error) {
	out, err := bcrypt.GenerateFromPassword([]byte(plain), h.cost)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// Verify reports whether plain produced hashed. Malformed stored hashes
// compare as non-matching rather than erroring.
func (h *PasswordHasher) Verify(plain, hashed string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain)) == nil
}
