package entity

// Account represents a storefront account as returned by the backend.
// The client never sees password material, only the public profile and role.
type Account struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

// TokenInfo carries the claims the client can read out of its bearer token
// without verifying the signature. The token stays opaque for authentication
// purposes; these fields are display-only.
type TokenInfo struct {
	Subject   string
	ExpiresAt int64 // Unix seconds, zero when the claim is absent.
	Roles     []string
}
