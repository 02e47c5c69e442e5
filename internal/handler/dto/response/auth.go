package response

import (
	"cinema-ticketing/internal/usecase/commands"

	"github.com/google/uuid"
)

type RegisterResponse struct {
	UserID   uuid.UUID `json:"user_id"`
	Username string    `json:"username"`
}

func FromRegisterResult(r *commands.RegisterResult) (*RegisterResponse, error) {
	return from[RegisterResponse](r)
}

type LoginResponse struct {
	AccessToken string    `json:"access_token"`
	UserID      uuid.UUID `json:"user_id"`
	Username    string    `json:"username"`
	Role        string    `json:"role"`
}

func FromLoginResult(r *commands.LoginResult) (*LoginResponse, error) {
	return from[LoginResponse](r)
}
