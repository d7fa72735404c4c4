package adapter

// PasswordService defines the interface for password hashing operations.
type PasswordService interface {
	// Hash generates a hash from a plain-text password.
	Hash(password string) (string, error)

	// Compare checks whether a plain-text password matches a hash.
	Compare(hashedPassword, password string) error
}
