package domain

// User is an account as the service sees it. PasswordHash is never plaintext.
type User struct {
	UserID       string
	Email        string
	PasswordHash string
}
