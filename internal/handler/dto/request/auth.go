package request

import (
	"cinema-ticketing/internal/usecase/commands"
)

type RegisterRequest struct {
	Name           string `json:"name" binding:"required,max=100"`
	Surname        string `json:"surname" binding:"required,max=100"`
	Email          string `json:"email" binding:"required,email"`
	Username       string `json:"username" binding:"required,max=50"`
	Password       string `json:"password" binding:"required"`
	RepeatPassword string `json:"repeat_password" binding:"required"`
}

func (r *RegisterRequest) ToCommand() commands.RegisterUserRequest {
	return commands.RegisterUserRequest{
		Name:           r.Name,
		Surname:        r.Surname,
		Email:          r.Email,
		Username:       r.Username,
		Password:       r.Password,
		RepeatPassword: r.RepeatPassword,
	}
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (r *LoginRequest) ToCommand() commands.LoginRequest {
	return commands.LoginRequest{
		Username: r.Username,
		Password: r.Password,
	}
}
