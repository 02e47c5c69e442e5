package commands

import (
	"context"
	"errors"
	"log/slog"

	"cinema-ticketing/internal/domain/auth"
	"cinema-ticketing/internal/domain/user"
	"cinema-ticketing/internal/pkg/clock"
	"cinema-ticketing/internal/pkg/errs"
	"cinema-ticketing/internal/usecase/shared"

	"github.com/google/uuid"
)

//go:generate mockgen -source=account.go -destination=../../../tests/mock/commands/account_mock.go -package=commandsmock

const OperationRegister = "register"

type RegisterUserRequest struct {
	Name           string
	Surname        string
	Email          string
	Username       string
	Password       string
	RepeatPassword string
}

type RegisterResult struct {
	UserID   uuid.UUID
	Username string
}

type LoginRequest struct {
	Username string
	Password string
}

type LoginResult struct {
	UserID      uuid.UUID
	Username    string
	Role        string
	AccessToken string
}

type AccountCommands interface {
	RegisterUser(ctx context.Context, req RegisterUserRequest) (*RegisterResult, error)
	// EnsureAdmin registers an admin account unless the username already exists.
	EnsureAdmin(ctx context.Context, req RegisterUserRequest) error
	Login(ctx context.Context, req LoginRequest) (*LoginResult, error)
}

type accountUseCaseImpl struct {
	uow      shared.UnitOfWork
	clock    clock.Clock
	hasher   PasswordHasher
	tokens   TokenIssuer
	observer OperationObserver
}

func NewAccountUseCase(uow shared.UnitOfWork, clk clock.Clock, hasher PasswordHasher, tokens TokenIssuer, observer OperationObserver) AccountCommands {
	if observer == nil {
		observer = noopObserver{}
	}
	return &accountUseCaseImpl{uow: uow, clock: clk, hasher: hasher, tokens: tokens, observer: observer}
}

// RegisterUser creates a customer. Two concurrent registrations of one username
// resolve to one success and one ErrUsernameTaken through the retry path.
func (uc *accountUseCaseImpl) RegisterUser(ctx context.Context, req RegisterUserRequest) (*RegisterResult, error) {
	u, err := uc.register(ctx, req, user.RoleCustomer)
	uc.observer.ObserveOperation(OperationRegister, resultLabel(err))
	if err != nil {
		return nil, err
	}
	return &RegisterResult{UserID: u.ID(), Username: u.Username().Value()}, nil
}

func (uc *accountUseCaseImpl) EnsureAdmin(ctx context.Context, req RegisterUserRequest) error {
	_, err := uc.register(ctx, req, user.RoleAdmin)
	if errors.Is(err, ErrUsernameTaken) {
		return nil
	}
	return err
}

func (uc *accountUseCaseImpl) register(ctx context.Context, req RegisterUserRequest, role user.Role) (*user.User, error) {
	profile, password, err := registrationValues(req)
	if err != nil {
		return nil, err
	}

	hash, err := uc.hasher.Hash(password.Value())
	if err != nil {
		return nil, err
	}

	var created *user.User
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		taken, derr := tx.Users().ExistsByUsername(ctx, profile.Username.Value())
		if derr != nil {
			return derr
		}
		if taken {
			return ErrUsernameTaken
		}

		u := user.NewUser(profile, hash, role, uc.clock.Now())
		if derr = tx.Users().Create(ctx, u); derr != nil {
			return derr
		}
		created = u
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// Login verifies the credentials and records the attempt. Failing to write the
// audit row never fails the login.
func (uc *accountUseCaseImpl) Login(ctx context.Context, req LoginRequest) (*LoginResult, error) {
	credentials, err := auth.NewCredentials(req.Username, req.Password)
	if err != nil {
		return nil, err
	}

	var found *user.User
	err = uc.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		u, derr := tx.Users().FindByUsername(ctx, credentials.Username().Value())
		if derr != nil {
			return derr
		}
		found = u
		return nil
	})
	if err != nil && !errors.Is(err, errs.ErrNotFound) {
		return nil, err
	}

	if found == nil {
		uc.audit(ctx, uuid.Nil, credentials.Username().Value(), false)
		return nil, ErrInvalidCredentials
	}
	if err = uc.hasher.Compare(found.PasswordHash(), credentials.Password()); err != nil {
		uc.audit(ctx, found.ID(), found.Username().Value(), false)
		return nil, ErrInvalidCredentials
	}

	token, err := uc.tokens.GenerateToken(found.ID(), found.Username().Value(), found.Role().String())
	if err != nil {
		return nil, errs.WithCause(ErrTokenGeneration, err)
	}
	uc.audit(ctx, found.ID(), found.Username().Value(), true)

	return &LoginResult{
		UserID:      found.ID(),
		Username:    found.Username().Value(),
		Role:        found.Role().String(),
		AccessToken: token,
	}, nil
}

func (uc *accountUseCaseImpl) audit(ctx context.Context, userID uuid.UUID, username string, succeeded bool) {
	entry := user.NewLoginAudit(userID, username, succeeded, uc.clock.Now())
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.LoginAudits().Create(ctx, entry)
	})
	if err != nil {
		slog.Warn("failed to record login audit", "username", username, "error", err.Error())
	}
}

func registrationValues(req RegisterUserRequest) (user.Profile, user.Password, error) {
	profile, err := user.NewProfile(req.Name, req.Surname, req.Email, req.Username)
	if err != nil {
		return user.Profile{}, user.Password{}, err
	}
	password, err := user.NewPassword(req.Password, req.RepeatPassword)
	if err != nil {
		return user.Profile{}, user.Password{}, err
	}
	return profile, password, nil
}
