package response

import (
	"villabook/internal/usecase/commands"
)

type LoginResponse struct {
	Success bool      `json:"success"`
	Token   string    `json:"token"`
	User    AdminUser `json:"user"`
}

type AdminUser struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

func FromLoginResult(result *commands.LoginResult) *LoginResponse {
	return &LoginResponse{
		Success: true,
		Token:   result.Token,
		User: AdminUser{
			Email: result.User.Email,
			Name:  result.User.Name,
			Role:  result.User.Role,
		},
	}
}
