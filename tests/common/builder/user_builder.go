//go:build unit || e2e

package builder

import (
	"time"

	"cinema-ticketing/internal/domain/user"
	"cinema-ticketing/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserBuilder struct {
	Name         string
	Surname      string
	Email        string
	Username     string
	PasswordHash string
	Role         string
	Points       int
	CreatedAt    time.Time
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		Name:         "Emma",
		Surname:      "Stone",
		Email:        "emma@example.com",
		Username:     "emma",
		PasswordHash: "hashed_password",
		Role:         "customer",
		CreatedAt:    time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (u *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(u)
	return u
}

// Build methods
func (u *UserBuilder) BuildProfile() (user.Profile, error) {
	name, err := user.NewName(u.Name)
	if err != nil {
		return user.Profile{}, err
	}
	surname, err := user.NewName(u.Surname)
	if err != nil {
		return user.Profile{}, err
	}
	email, err := user.NewEmail(u.Email)
	if err != nil {
		return user.Profile{}, err
	}
	username, err := user.NewUsername(u.Username)
	if err != nil {
		return user.Profile{}, err
	}
	return user.Profile{Name: name, Surname: surname, Email: email, Username: username}, nil
}

func (u *UserBuilder) BuildDomain() (*user.User, error) {
	profile, err := u.BuildProfile()
	if err != nil {
		return nil, err
	}

	role, err := user.NewRole(u.Role)
	if err != nil {
		return nil, err
	}

	if u.Points > 0 {
		return user.Reconstruct(uuid.New(), profile, u.PasswordHash, role, u.Points, u.CreatedAt, 1), nil
	}
	return user.NewUser(profile, u.PasswordHash, role, u.CreatedAt), nil
}

func (u *UserBuilder) BuildReadModel() *queries.UserView {
	return &queries.UserView{
		ID:        uuid.New(),
		Name:      u.Name,
		Surname:   u.Surname,
		Email:     u.Email,
		Username:  u.Username,
		Role:      u.Role,
		Points:    u.Points,
		CreatedAt: u.CreatedAt,
	}
}

// Fluent builder methods
func (u *UserBuilder) WithEmail(email string) *UserBuilder {
	u.Email = email
	return u
}

func (u *UserBuilder) WithUsername(username string) *UserBuilder {
	u.Username = username
	return u
}

func (u *UserBuilder) WithName(name, surname string) *UserBuilder {
	u.Name = name
	u.Surname = surname
	return u
}

func (u *UserBuilder) WithRole(role string) *UserBuilder {
	u.Role = role
	return u
}

func (u *UserBuilder) WithPasswordHash(hash string) *UserBuilder {
	u.PasswordHash = hash
	return u
}

func (u *UserBuilder) WithPoints(points int) *UserBuilder {
	u.Points = points
	return u
}

func (u *UserBuilder) AsAdmin() *UserBuilder {
	u.Role = string(user.RoleAdmin)
	return u
}
