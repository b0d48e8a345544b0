package domain

// TokenInfo is the credential assignment nested in a login response. The header name is
// chosen by the server and must be treated as opaque.
type TokenInfo struct {
	TokenName  string `json:"tokenName,omitempty"`
	TokenValue string `json:"tokenValue,omitempty"`
}

// Complete reports whether both halves of the credential are present.
func (t *TokenInfo) Complete() bool {
	return t != nil && t.TokenName != "" && t.TokenValue != ""
}

// LoginRequest is the payload of the login endpoint.
type LoginRequest struct {
	UserAccount  string `json:"userAccount"`
	UserPassword string `json:"userPassword"`
}

// RegisterRequest is the payload of the registration endpoint.
type RegisterRequest struct {
	UserAccount   string `json:"userAccount"`
	UserPassword  string `json:"userPassword"`
	CheckPassword string `json:"checkPassword"`
	UserName      string `json:"userName,omitempty"`
	Phone         string `json:"phone,omitempty"`
	Email         string `json:"email,omitempty"`
}
