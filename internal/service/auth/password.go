package auth

import "golang.org/x/crypto/bcrypt"

// PasswordHasher defines the interface for hashing plaintext passwords.
type PasswordHasher interface {
	// Hash returns the bcrypt hash of the given plaintext password.
	Hash(password string) (string, error)
}

// PasswordVerifier defines the interface for comparing passwords.
type PasswordVerifier interface {
	// Compare compares a hashed password with its possible plaintext equivalent.
	// Returns nil on success, or an error on failure (e.g., mismatch).
	Compare(hashedPassword, password string) error
}

// BcryptVerifier implements PasswordHasher and PasswordVerifier using bcrypt.
type BcryptVerifier struct {
	cost int
}

// NewBcryptVerifier creates a new BcryptVerifier with the default cost.
func NewBcryptVerifier() *BcryptVerifier {
	return &BcryptVerifier{cost: bcrypt.DefaultCost}
}

// Hash implements the PasswordHasher interface using bcrypt.
func (v *BcryptVerifier) Hash(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), v.cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// Compare implements the PasswordVerifier interface using bcrypt.
func (v *BcryptVerifier) Compare(hashedPassword, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
}
