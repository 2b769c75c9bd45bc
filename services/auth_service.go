package services

import (
	"context"

	"hotelinfo/constants"
	"hotelinfo/errors"
	"hotelinfo/models"
	"hotelinfo/services/logger"

	"golang.org/x/crypto/bcrypt"
)

// UserStore is the part of the repository the auth service needs.
type UserStore interface {
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	UpsertUser(ctx context.Context, user *models.User) error
}

// SeedUser is a login provisioned from configuration at startup.
type SeedUser struct {
	Username  string
	Password  string
	FirstName string
	LastName  string
	Role      string
}

type AuthService struct {
	users  UserStore
	tokens *TokenService
	logger logger.Logger
}

type AuthServiceOptions struct {
	Users  UserStore
	Tokens *TokenService
	Logger logger.Logger
}

func NewAuthService(opts AuthServiceOptions) *AuthService {
	return &AuthService{
		users:  opts.Users,
		tokens: opts.Tokens,
		logger: opts.Logger,
	}
}

// Login checks the credentials and returns the user and a signed token.
func (s *AuthService) Login(ctx context.Context, username, password string) (*models.User, string, error) {
	user, err := s.users.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, errors.ErrNotFound) {
			// compare against a dummy hash so unknown users cost the same as wrong passwords
			_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
			return nil, "", errors.NewAppError(errors.ErrCodeInvalidCredentials, "Invalid username or password", errors.ErrInvalidCredentials)
		}
		return nil, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		s.logger.Info("failed login for %s", username)
		return nil, "", errors.NewAppError(errors.ErrCodeInvalidCredentials, "Invalid username or password", errors.ErrInvalidCredentials)
	}

	token, err := s.tokens.GenerateToken(UserInfo{
		UserId:     user.ID,
		Username:   user.Username,
		GivenName:  user.FirstName,
		FamilyName: user.LastName,
		Role:       user.Role,
	})
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// SeedUsers provisions the configured logins. Entries without a password are skipped.
func (s *AuthService) SeedUsers(ctx context.Context, seeds []SeedUser) error {
	for _, seed := range seeds {
		if seed.Username == "" {
			continue
		}
		if seed.Password == "" {
			s.logger.Info("skipping seed user %s: no password configured", seed.Username)
			continue
		}
		if seed.Role != constants.RoleAdmin && seed.Role != constants.RoleUser {
			return errors.NewAppError(errors.ErrCodeInvalidRole, "invalid role for seed user "+seed.Username, nil)
		}
		hash, err := HashPassword(seed.Password)
		if err != nil {
			return err
		}
		user := &models.User{
			Username:     seed.Username,
			PasswordHash: hash,
			FirstName:    seed.FirstName,
			LastName:     seed.LastName,
			Role:         seed.Role,
		}
		if err := s.users.UpsertUser(ctx, user); err != nil {
			return err
		}
		s.logger.Info("seeded user %s with role %s", seed.Username, seed.Role)
	}
	return nil
}

func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("hotelinfo-dummy-password"), bcrypt.MinCost)
