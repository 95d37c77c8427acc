//go:build unit

package commands_test

import (
	"context"
	"testing"

	"villabook/internal/pkg/config"
	"villabook/internal/usecase/commands"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

var testAdminConfig = config.NewTestConfig().Admin

type AuthCommandsTestSuite struct {
	suite.Suite
	commands commands.AuthCommands
}

func (s *AuthCommandsTestSuite) SetupTest() {
	var err error
	s.commands, err = commands.NewAuthCommands(testAdminConfig)
	require.NoError(s.T(), err)
}

func TestAuthCommandsSuite(t *testing.T) {
	suite.Run(t, new(AuthCommandsTestSuite))
}

func (s *AuthCommandsTestSuite) TestLogin() {
	s.Run("issues the static token for the configured credentials", func() {
		got, err := s.commands.Login(context.Background(), testAdminConfig.Email, testAdminConfig.Password)

		s.NoError(err)
		s.Equal(testAdminConfig.Token, got.Token)
		s.Equal(testAdminConfig.Email, got.User.Email)
		s.Equal("Villa Administrator", got.User.Name)
		s.Equal(commands.AdminRole, got.User.Role)
	})

	s.Run("rejects a wrong password", func() {
		got, err := s.commands.Login(context.Background(), testAdminConfig.Email, "not-the-password")

		s.Nil(got)
		s.ErrorIs(err, commands.ErrInvalidCredentials)
	})

	s.Run("rejects an unknown email", func() {
		got, err := s.commands.Login(context.Background(), "someone@example.com", testAdminConfig.Password)

		s.Nil(got)
		s.ErrorIs(err, commands.ErrInvalidCredentials)
	})

	s.Run("rejects empty credentials", func() {
		got, err := s.commands.Login(context.Background(), "", "")

		s.Nil(got)
		s.ErrorIs(err, commands.ErrInvalidCredentials)
	})
}
