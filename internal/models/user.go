package models

// User represents a registered account.
type User struct {
	// ID is the unique identifier for the user (UUID format).
	ID string

	// Username is the unique login name (max 128 chars, letters,
	// digits, '.', '_' and '-' only).
	Username string

	// PasswordHash is the bcrypt hash of the user's password.
	// Opaque to everything outside the auth package.
	PasswordHash string

	// CreatedAt is the Unix timestamp when the account was created.
	CreatedAt int64
}
