package commands

import (
	"context"
	"crypto/subtle"
	"log/slog"

	"villabook/internal/pkg/config"
	"villabook/internal/pkg/errs"
	"villabook/internal/pkg/password"
)

var (
	ErrInvalidCredentials   = errs.New("invalid credentials")
	ErrAuthenticationFailed = errs.New("authentication failed")
)

// AdminRole is the only role the site has; there is no user table behind the
// admin login, just the configured credential pair.
const AdminRole = "admin"

const adminDisplayName = "Villa Administrator"

type AdminUser struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

type LoginResult struct {
	Token string    `json:"token"`
	User  AdminUser `json:"user"`
}

type AuthCommands interface {
	// Login validates the submitted credentials against the configured admin
	// account and hands back the static session token on success.
	Login(ctx context.Context, email, pass string) (*LoginResult, error)
}

type authCommandsImpl struct {
	email        string
	passwordHash string
	token        string
}

// NewAuthCommands hashes the configured admin password once at construction
// so login compares against a bcrypt hash rather than the plaintext.
func NewAuthCommands(cfg config.AdminConfig) (AuthCommands, error) {
	hash, err := password.HashPassword(cfg.Password)
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	return &authCommandsImpl{
		email:        cfg.Email,
		passwordHash: hash,
		token:        cfg.Token,
	}, nil
}

func (a *authCommandsImpl) Login(_ context.Context, email, pass string) (*LoginResult, error) {
	emailOK := subtle.ConstantTimeCompare([]byte(email), []byte(a.email)) == 1
	passErr := password.ComparePassword(a.passwordHash, pass)

	if !emailOK || passErr != nil {
		slog.Info("admin login rejected", "email", email)
		return nil, ErrInvalidCredentials
	}

	return &LoginResult{
		Token: a.token,
		User: AdminUser{
			Email: a.email,
			Name:  adminDisplayName,
			Role:  AdminRole,
		},
	}, nil
}
