// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

// PasswordHasher defines the interface for password hashing and verification.
// This abstracts the underlying hashing algorithm (e.g., bcrypt), keeping the domain pure.
//
// Implementations must be safe for concurrent use; each call reads only its
// arguments and, for Hash, a cryptographically secure random source.
type PasswordHasher interface {
	// Hash generates a salted hash from a plaintext password. The salt is
	// freshly generated per call, so hashing the same password twice yields
	// two different encoded strings that both verify successfully.
	Hash(password string) (string, error)

	// Verify compares a plaintext password with a stored encoded hash in
	// constant time. A non-matching password returns (false, nil); an
	// encoded value that was not produced by Hash returns (false, err)
	// where err matches domainerrors.ErrMalformedHash.
	Verify(password, encoded string) (bool, error)
}

// PasswordValidator enforces the password complexity policy.
// Policy checking and hashing are independent concerns: Hash never
// re-validates, and Validate never touches the hashing algorithm.
type PasswordValidator interface {
	// Validate checks a candidate password against the configured policy.
	// On failure it returns a *domainerrors.PasswordPolicyError carrying
	// every violated rule, so callers can report all of them at once.
	Validate(candidate string) error
}
