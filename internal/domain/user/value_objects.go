package user

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"cinema-ticketing/internal/pkg/errs"
)

const (
	MinPasswordLength = 12
	MaxUsernameLength = 50
	MaxNameLength     = 100
)

var (
	ErrInvalidEmail       = errs.New("invalid email format")
	ErrInvalidRole        = errs.New("invalid role")
	ErrInvalidUsername    = errs.New("username must not be blank")
	ErrUsernameTooLong    = errs.New("username must be at most 50 characters")
	ErrInvalidName        = errs.New("name must not be blank")
	ErrNameTooLong        = errs.New("name must be at most 100 characters")
	ErrPasswordTooWeak    = errs.New("password must be at least 12 characters long")
	ErrPasswordsDontMatch = errs.New("password and repeated password must be equal")
	ErrInvalidPoints      = errs.New("points to add must be positive")
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

type Email struct {
	value string
}

func NewEmail(s string) (Email, error) {
	s = strings.TrimSpace(s)
	if !emailRegex.MatchString(s) {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: s}, nil
}

func (e Email) Value() string {
	return e.value
}

type Username struct {
	value string
}

func NewUsername(s string) (Username, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Username{}, ErrInvalidUsername
	}
	if utf8.RuneCountInString(s) > MaxUsernameLength {
		return Username{}, ErrUsernameTooLong
	}
	return Username{value: s}, nil
}

func (u Username) Value() string {
	return u.value
}

type Name struct {
	value string
}

func NewName(s string) (Name, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Name{}, ErrInvalidName
	}
	if utf8.RuneCountInString(s) > MaxNameLength {
		return Name{}, ErrNameTooLong
	}
	return Name{value: s}, nil
}

func (n Name) Value() string {
	return n.value
}

// Password is a validated plain text password. It is never persisted.
type Password struct {
	value string
}

func NewPassword(s, repeated string) (Password, error) {
	if utf8.RuneCountInString(s) < MinPasswordLength {
		return Password{}, ErrPasswordTooWeak
	}
	if s != repeated {
		return Password{}, ErrPasswordsDontMatch
	}
	return Password{value: s}, nil
}

func (p Password) Value() string {
	return p.value
}
