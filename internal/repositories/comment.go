package repositories

import (
	"context"
	"database/sql"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/blog-api/internal/logger"
	"github.com/sbilibin2017/blog-api/internal/models"
)

var commentColumns = []string{"id", "blog_post_id", "user_id", "comment", "created_at"}

type CommentReadRepository struct {
	db *sqlx.DB
}

func NewCommentReadRepository(db *sqlx.DB) *CommentReadRepository {
	return &CommentReadRepository{db: db}
}

// GetByID returns the comment with the given id, or nil if no such row exists.
func (r *CommentReadRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.CommentDB, error) {
	query, args, err := qb.Select(commentColumns...).
		From("comments").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, err
	}

	var comment models.CommentDB
	if err := sqlx.GetContext(ctx, ext(ctx, r.db), &comment, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		logger.Log.Errorw("comments select failed", "query", query, "error", err)
		return nil, err
	}
	return &comment, nil
}

// ListByBlogPost returns one page of comments on a post, oldest first.
func (r *CommentReadRepository) ListByBlogPost(ctx context.Context, blogPostID uuid.UUID, limit, offset uint64) ([]models.CommentDB, error) {
	query, args, err := qb.Select(commentColumns...).
		From("comments").
		Where(sq.Eq{"blog_post_id": blogPostID}).
		OrderBy("created_at ASC", "id ASC").
		Limit(limit).
		Offset(offset).
		ToSql()
	if err != nil {
		return nil, err
	}

	comments := []models.CommentDB{}
	if err := sqlx.SelectContext(ctx, ext(ctx, r.db), &comments, query, args...); err != nil {
		logger.Log.Errorw("comments select failed", "query", query, "error", err)
		return nil, err
	}
	return comments, nil
}

// CountByBlogPost returns the number of comments on a post.
func (r *CommentReadRepository) CountByBlogPost(ctx context.Context, blogPostID uuid.UUID) (int64, error) {
	query, args, err := qb.Select("COUNT(*)").
		From("comments").
		Where(sq.Eq{"blog_post_id": blogPostID}).
		ToSql()
	if err != nil {
		return 0, err
	}

	var total int64
	if err := sqlx.GetContext(ctx, ext(ctx, r.db), &total, query, args...); err != nil {
		logger.Log.Errorw("comments count failed", "query", query, "error", err)
		return 0, err
	}
	return total, nil
}

type CommentWriteRepository struct {
	db *sqlx.DB
}

func NewCommentWriteRepository(db *sqlx.DB) *CommentWriteRepository {
	return &CommentWriteRepository{db: db}
}

// Save inserts a new comment row. Both foreign keys are enforced by the table
// constraints; violations surface as a database error.
func (r *CommentWriteRepository) Save(ctx context.Context, comment *models.CommentDB) error {
	query, args, err := qb.Insert("comments").
		Columns(commentColumns...).
		Values(comment.ID, comment.BlogPostID, comment.UserID, comment.Comment, comment.CreatedAt).
		ToSql()
	if err != nil {
		return err
	}

	if _, err := ext(ctx, r.db).ExecContext(ctx, query, args...); err != nil {
		logger.Log.Errorw("comments insert failed", "query", query, "error", err)
		return err
	}
	return nil
}

// Update replaces the comment body and returns the number of rows affected.
func (r *CommentWriteRepository) Update(ctx context.Context, id uuid.UUID, comment string) (int64, error) {
	query, args, err := qb.Update("comments").
		Set("comment", comment).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return 0, err
	}

	res, err := ext(ctx, r.db).ExecContext(ctx, query, args...)
	if err != nil {
		logger.Log.Errorw("comments update failed", "query", query, "error", err)
		return 0, err
	}
	return res.RowsAffected()
}

// Delete removes the comment row and returns the number of rows affected.
func (r *CommentWriteRepository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	query, args, err := qb.Delete("comments").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return 0, err
	}

	res, err := ext(ctx, r.db).ExecContext(ctx, query, args...)
	if err != nil {
		logger.Log.Errorw("comments delete failed", "query", query, "error", err)
		return 0, err
	}
	return res.RowsAffected()
}
