package repositories

import (
	"context"
	"database/sql"
	"errors"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/blog-api/internal/logger"
	"github.com/sbilibin2017/blog-api/internal/models"
)

var userColumns = []string{
	"id", "username", "email", "password", "firstname", "lastname",
	"created_at", "updated_at", "is_active", "role",
}

type UserReadRepository struct {
	db *sqlx.DB
}

func NewUserReadRepository(db *sqlx.DB) *UserReadRepository {
	return &UserReadRepository{db: db}
}

// GetByID returns the user with the given id, or nil if no such row exists.
func (r *UserReadRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.UserDB, error) {
	query, args, err := qb.Select(userColumns...).
		From("users").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, err
	}

	var user models.UserDB
	if err := sqlx.GetContext(ctx, ext(ctx, r.db), &user, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		logger.Log.Errorw("users select failed", "query", query, "error", err)
		return nil, err
	}
	return &user, nil
}

// GetByUsernameOrEmail returns the first user matching either field.
// Passing the same value for both looks a login identifier up across
// username and email at once. Returns nil when nothing matches.
func (r *UserReadRepository) GetByUsernameOrEmail(ctx context.Context, username, email *string) (*models.UserDB, error) {
	or := sq.Or{}
	if username != nil {
		or = append(or, sq.Eq{"username": *username})
	}
	if email != nil {
		or = append(or, sq.Eq{"email": *email})
	}
	if len(or) == 0 {
		return nil, nil
	}

	query, args, err := qb.Select(userColumns...).
		From("users").
		Where(or).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, err
	}

	var user models.UserDB
	if err := sqlx.GetContext(ctx, ext(ctx, r.db), &user, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		logger.Log.Errorw("users select failed", "query", query, "error", err)
		return nil, err
	}
	return &user, nil
}

// List returns one page of users in stable creation order.
func (r *UserReadRepository) List(ctx context.Context, limit, offset uint64) ([]models.UserDB, error) {
	query, args, err := qb.Select(userColumns...).
		From("users").
		OrderBy("created_at ASC", "id ASC").
		Limit(limit).
		Offset(offset).
		ToSql()
	if err != nil {
		return nil, err
	}

	users := []models.UserDB{}
	if err := sqlx.SelectContext(ctx, ext(ctx, r.db), &users, query, args...); err != nil {
		logger.Log.Errorw("users select failed", "query", query, "error", err)
		return nil, err
	}
	return users, nil
}

// Count returns the total number of user rows.
func (r *UserReadRepository) Count(ctx context.Context) (int64, error) {
	query, args, err := qb.Select("COUNT(*)").From("users").ToSql()
	if err != nil {
		return 0, err
	}

	var total int64
	if err := sqlx.GetContext(ctx, ext(ctx, r.db), &total, query, args...); err != nil {
		logger.Log.Errorw("users count failed", "query", query, "error", err)
		return 0, err
	}
	return total, nil
}

type UserWriteRepository struct {
	db *sqlx.DB
}

func NewUserWriteRepository(db *sqlx.DB) *UserWriteRepository {
	return &UserWriteRepository{db: db}
}

// Save inserts a new user row. Uniqueness of username and email is enforced
// by the table constraints; violations surface as a database error.
func (r *UserWriteRepository) Save(ctx context.Context, user *models.UserDB) error {
	query, args, err := qb.Insert("users").
		Columns(userColumns...).
		Values(
			user.ID, user.Username, user.Email, user.Password,
			user.Firstname, user.Lastname, user.CreatedAt, user.UpdatedAt,
			user.IsActive, user.Role,
		).
		ToSql()
	if err != nil {
		return err
	}

	if _, err := ext(ctx, r.db).ExecContext(ctx, query, args...); err != nil {
		logger.Log.Errorw("users insert failed", "query", query, "error", err)
		return err
	}
	return nil
}

// Update applies a partial update and returns the number of rows affected.
func (r *UserWriteRepository) Update(ctx context.Context, id uuid.UUID, upd models.UserUpdate) (int64, error) {
	b := qb.Update("users").
		Set("updated_at", time.Now().UTC()).
		Where(sq.Eq{"id": id})
	if upd.Username != nil {
		b = b.Set("username", *upd.Username)
	}
	if upd.Email != nil {
		b = b.Set("email", *upd.Email)
	}
	if upd.IsActive != nil {
		b = b.Set("is_active", *upd.IsActive)
	}
	if upd.Role != nil {
		b = b.Set("role", *upd.Role)
	}

	query, args, err := b.ToSql()
	if err != nil {
		return 0, err
	}

	res, err := ext(ctx, r.db).ExecContext(ctx, query, args...)
	if err != nil {
		logger.Log.Errorw("users update failed", "query", query, "error", err)
		return 0, err
	}
	return res.RowsAffected()
}

// Delete removes the user row and returns the number of rows affected.
func (r *UserWriteRepository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	query, args, err := qb.Delete("users").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return 0, err
	}

	res, err := ext(ctx, r.db).ExecContext(ctx, query, args...)
	if err != nil {
		logger.Log.Errorw("users delete failed", "query", query, "error", err)
		return 0, err
	}
	return res.RowsAffected()
}
