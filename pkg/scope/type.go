package scope

// Payload is the verified content of an access token.
type Payload struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	IsAdmin  bool   `json:"is_admin"`

	Subject   string `json:"sub"`
	Issuer    string `json:"iss"`
	Id        string `json:"jti"`
	ExpiresAt int64  `json:"exp"`
	IssuedAt  int64  `json:"iat"`
}

// Manager verifies access tokens.
type Manager interface {
	Verify(token string) (Payload, error)
}
