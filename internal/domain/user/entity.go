package user

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	id            uuid.UUID
	name          Name
	surname       Name
	email         Email
	username      Username
	passwordHash  string
	role          Role
	points        int
	createdAt     time.Time
	version       int64
	loadedVersion int64
}

type Profile struct {
	Name     Name
	Surname  Name
	Email    Email
	Username Username
}

// NewProfile validates the raw profile fields.
func NewProfile(name, surname, email, username string) (Profile, error) {
	n, err := NewName(name)
	if err != nil {
		return Profile{}, err
	}
	sn, err := NewName(surname)
	if err != nil {
		return Profile{}, err
	}
	e, err := NewEmail(email)
	if err != nil {
		return Profile{}, err
	}
	un, err := NewUsername(username)
	if err != nil {
		return Profile{}, err
	}
	return Profile{Name: n, Surname: sn, Email: e, Username: un}, nil
}

func NewUser(p Profile, passwordHash string, role Role, now time.Time) *User {
	return &User{
		id:           uuid.New(),
		name:         p.Name,
		surname:      p.Surname,
		email:        p.Email,
		username:     p.Username,
		passwordHash: passwordHash,
		role:         role,
		createdAt:    now,
	}
}

func Reconstruct(id uuid.UUID, p Profile, passwordHash string, role Role, points int, createdAt time.Time, version int64) *User {
	return &User{
		id:            id,
		name:          p.Name,
		surname:       p.Surname,
		email:         p.Email,
		username:      p.Username,
		passwordHash:  passwordHash,
		role:          role,
		points:        points,
		createdAt:     createdAt,
		version:       version,
		loadedVersion: version,
	}
}

func (u *User) ID() uuid.UUID        { return u.id }
func (u *User) Name() Name           { return u.name }
func (u *User) Surname() Name        { return u.surname }
func (u *User) Email() Email         { return u.email }
func (u *User) Username() Username   { return u.username }
func (u *User) PasswordHash() string { return u.passwordHash }
func (u *User) Role() Role           { return u.role }
func (u *User) Points() int          { return u.points }
func (u *User) CreatedAt() time.Time { return u.createdAt }
func (u *User) Version() int64       { return u.version }
func (u *User) LoadedVersion() int64 { return u.loadedVersion }
func (u *User) Changed() bool        { return u.version != u.loadedVersion }
func (u *User) IsAdmin() bool        { return u.role == RoleAdmin }

func (u *User) AddPoints(points int) error {
	if points <= 0 {
		return ErrInvalidPoints
	}
	u.points += points
	u.version++
	return nil
}

// LoginAudit records one login attempt. UserID is nil when the username is unknown.
type LoginAudit struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Username  string
	Succeeded bool
	At        time.Time
}

func NewLoginAudit(userID uuid.UUID, username string, succeeded bool, at time.Time) LoginAudit {
	return LoginAudit{
		ID:        uuid.New(),
		UserID:    userID,
		Username:  username,
		Succeeded: succeeded,
		At:        at,
	}
}
