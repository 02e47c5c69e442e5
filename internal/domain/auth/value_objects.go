package auth

import (
	"cinema-ticketing/internal/domain/user"
	"cinema-ticketing/internal/pkg/errs"
)

var (
	ErrInvalidCredentials = errs.New("invalid username or password")
)

type Credentials struct {
	username user.Username
	password string
}

// NewCredentials only checks presence; password policy applies at registration.
func NewCredentials(usernameStr, passwordStr string) (Credentials, error) {
	username, err := user.NewUsername(usernameStr)
	if err != nil {
		return Credentials{}, ErrInvalidCredentials
	}
	if passwordStr == "" {
		return Credentials{}, ErrInvalidCredentials
	}

	return Credentials{
		username: username,
		password: passwordStr,
	}, nil
}

func (c Credentials) Username() user.Username {
	return c.username
}

func (c Credentials) Password() string {
	return c.password
}
