package dto

import "github.com/spec-kit/rental-console/internal/domain"

// LoginRequest payload.
type LoginRequest struct {
	Account  string `json:"account"`
	Password string `json:"password"`
}

// RegisterRequest payload for new accounts.
type RegisterRequest struct {
	Account         string `json:"account"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
	Name            string `json:"name"`
	Phone           string `json:"phone"`
	Email           string `json:"email"`
}

// ToDomain maps the payload onto the API's registration request.
func (r RegisterRequest) ToDomain() domain.RegisterRequest {
	return domain.RegisterRequest{
		UserAccount:   r.Account,
		UserPassword:  r.Password,
		CheckPassword: r.ConfirmPassword,
		UserName:      r.Name,
		Phone:         r.Phone,
		Email:         r.Email,
	}
}
