//go:build unit || e2e

package builder

import (
	reqdto "cinema-ticketing/internal/handler/dto/request"
)

type AuthBuilder struct {
	Name     string
	Surname  string
	Email    string
	Username string
	Password string
}

func NewAuthBuilder() *AuthBuilder {
	return &AuthBuilder{
		Name:     "Emma",
		Surname:  "Stone",
		Email:    "emma@example.com",
		Username: "emma",
		Password: "correct-horse-battery",
	}
}

func (a *AuthBuilder) WithUsername(username string) *AuthBuilder {
	a.Username = username
	return a
}

func (a *AuthBuilder) WithPassword(password string) *AuthBuilder {
	a.Password = password
	return a
}

func (a *AuthBuilder) WithEmail(email string) *AuthBuilder {
	a.Email = email
	return a
}

func (a *AuthBuilder) BuildDTO() reqdto.LoginRequest {
	return reqdto.LoginRequest{
		Username: a.Username,
		Password: a.Password,
	}
}

func (a *AuthBuilder) BuildRegisterDTO() reqdto.RegisterRequest {
	return reqdto.RegisterRequest{
		Name:           a.Name,
		Surname:        a.Surname,
		Email:          a.Email,
		Username:       a.Username,
		Password:       a.Password,
		RepeatPassword: a.Password,
	}
}
