package domain

// Identity is the account information carried inside a bearer token.
type Identity struct {
	Email    string `json:"email"`
	Username string `json:"username"`
}
