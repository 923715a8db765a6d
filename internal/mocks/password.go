package mocks

import "errors"

// MockPasswordHasher implements auth.PasswordHasher for testing.
type MockPasswordHasher struct {
	HashFn func(password string) (string, error)

	// Defaults used when HashFn is nil.
	Hashed string
	Err    error
}

func (m *MockPasswordHasher) Hash(password string) (string, error) {
	if m.HashFn != nil {
		return m.HashFn(password)
	}
	if m.Hashed != "" {
		return m.Hashed, m.Err
	}
	return "hashed:" + password, m.Err
}

// MockPasswordVerifier implements auth.PasswordVerifier for testing.
type MockPasswordVerifier struct {
	ShouldSucceed bool

	CompareFn func(hashedPassword, password string) error

	CompareCallCount int
}

func (m *MockPasswordVerifier) Compare(hashedPassword, password string) error {
	m.CompareCallCount++
	if m.CompareFn != nil {
		return m.CompareFn(hashedPassword, password)
	}
	if m.ShouldSucceed {
		return nil
	}
	return errors.New("password mismatch")
}
