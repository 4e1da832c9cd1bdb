package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/sbilibin2017/blog-api/internal/logger"
	"github.com/sbilibin2017/blog-api/internal/models"
	"golang.org/x/crypto/bcrypt"
)

// CredentialsReader defines the user lookup needed for authentication.
type CredentialsReader interface {
	GetByUsernameOrEmail(ctx context.Context, username *string, email *string) (*models.UserDB, error)
}

// JWTGenerator defines an interface for generating JWT tokens.
type JWTGenerator interface {
	Generate(ctx context.Context, userID uuid.UUID) (string, error)
}

// AuthService verifies credentials and issues tokens.
type AuthService struct {
	reader CredentialsReader
	jwt    JWTGenerator
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader CredentialsReader, jwt JWTGenerator) *AuthService {
	return &AuthService{
		reader: reader,
		jwt:    jwt,
	}
}

// Login authenticates a user by username or email and returns a JWT token.
// An unknown identifier and a wrong password both yield ErrInvalidCredentials
// so callers cannot tell which part was wrong.
func (svc *AuthService) Login(ctx context.Context, identifier, password string) (string, error) {
	user, err := svc.reader.GetByUsernameOrEmail(ctx, &identifier, &identifier)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return "", err
	}
	if user == nil {
		logger.Log.Infow("login for unknown identifier", "identifier", identifier)
		return "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		logger.Log.Infow("invalid credentials", "identifier", identifier)
		return "", ErrInvalidCredentials
	}

	token, err := svc.jwt.Generate(ctx, user.ID)
	if err != nil {
		logger.Log.Errorw("failed to generate JWT", "err", err)
		return "", err
	}

	return token, nil
}
