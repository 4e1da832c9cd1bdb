package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/blog-api/internal/logger"
	"github.com/sbilibin2017/blog-api/internal/models"
	"golang.org/x/crypto/bcrypt"
)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.UserDB, error)
	GetByUsernameOrEmail(ctx context.Context, username *string, email *string) (*models.UserDB, error)
	List(ctx context.Context, limit, offset uint64) ([]models.UserDB, error)
	Count(ctx context.Context) (int64, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, user *models.UserDB) error
	Update(ctx context.Context, id uuid.UUID, upd models.UserUpdate) (int64, error)
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
}

// UserService implements the user resource operations.
type UserService struct {
	reader UserReader
	writer UserWriter
}

// NewUserService creates a new UserService instance.
func NewUserService(reader UserReader, writer UserWriter) *UserService {
	return &UserService{
		reader: reader,
		writer: writer,
	}
}

// Create registers a new user with a hashed password. An empty role defaults
// to models.DefaultUserRole. A duplicate username or email yields
// ErrUserAlreadyExists, whether caught by the pre-check or by the unique
// constraint on insert.
func (svc *UserService) Create(ctx context.Context, username, email, password, firstname, lastname, role string) (*models.UserDB, error) {
	existing, err := svc.reader.GetByUsernameOrEmail(ctx, &username, &email)
	if err != nil {
		logger.Log.Errorw("failed to check user exists", "err", err)
		return nil, err
	}
	if existing != nil {
		return nil, ErrUserAlreadyExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return nil, err
	}

	if role == "" {
		role = models.DefaultUserRole
	}

	now := time.Now().UTC()
	user := &models.UserDB{
		ID:        uuid.New(),
		Username:  username,
		Email:     email,
		Password:  string(hashedPassword),
		Firstname: firstname,
		Lastname:  lastname,
		CreatedAt: now,
		UpdatedAt: now,
		IsActive:  true,
		Role:      role,
	}

	if err := svc.writer.Save(ctx, user); err != nil {
		if isUniqueViolation(err) {
			return nil, ErrUserAlreadyExists
		}
		logger.Log.Errorw("failed to save user", "err", err)
		return nil, err
	}

	return user, nil
}

// List returns one page of users plus the total row count.
func (svc *UserService) List(ctx context.Context, page, perPage int) ([]models.UserDB, int64, error) {
	users, err := svc.reader.List(ctx, uint64(perPage), uint64((page-1)*perPage))
	if err != nil {
		return nil, 0, err
	}

	total, err := svc.reader.Count(ctx)
	if err != nil {
		return nil, 0, err
	}

	return users, total, nil
}

// Get returns the user with the given id or ErrUserNotFound.
func (svc *UserService) Get(ctx context.Context, id uuid.UUID) (*models.UserDB, error) {
	user, err := svc.reader.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// Update applies a partial update and returns the updated resource.
func (svc *UserService) Update(ctx context.Context, id uuid.UUID, upd models.UserUpdate) (*models.UserDB, error) {
	rows, err := svc.writer.Update(ctx, id, upd)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrUserAlreadyExists
		}
		logger.Log.Errorw("failed to update user", "err", err)
		return nil, err
	}
	if rows == 0 {
		return nil, ErrUserNotFound
	}

	return svc.Get(ctx, id)
}

// Delete removes the user with the given id or returns ErrUserNotFound.
func (svc *UserService) Delete(ctx context.Context, id uuid.UUID) error {
	rows, err := svc.writer.Delete(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to delete user", "err", err)
		return err
	}
	if rows == 0 {
		return ErrUserNotFound
	}
	return nil
}
