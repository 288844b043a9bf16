package usecases

import "context"

// PasswordHasher abstracts password hashing. Implemented by the bcrypt hasher.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) error
}

// TokenIssuer issues signed access tokens.
type TokenIssuer interface {
	GenerateToken(userID uint, role string) (string, error)
}

// EmailSender delivers transactional mail.
type EmailSender interface {
	SendPasswordReset(to, resetURL string) error
}

// TransactionManager wraps a unit of work in a database transaction.
type TransactionManager interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
