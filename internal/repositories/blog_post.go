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

var blogPostColumns = []string{"id", "title", "content", "created_at", "updated_at", "author_id"}

type BlogPostReadRepository struct {
	db *sqlx.DB
}

func NewBlogPostReadRepository(db *sqlx.DB) *BlogPostReadRepository {
	return &BlogPostReadRepository{db: db}
}

// GetByID returns the blog post with the given id, or nil if no such row exists.
func (r *BlogPostReadRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.BlogPostDB, error) {
	query, args, err := qb.Select(blogPostColumns...).
		From("blog_posts").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, err
	}

	var post models.BlogPostDB
	if err := sqlx.GetContext(ctx, ext(ctx, r.db), &post, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		logger.Log.Errorw("blog_posts select failed", "query", query, "error", err)
		return nil, err
	}
	return &post, nil
}

// List returns one page of blog posts, newest first.
func (r *BlogPostReadRepository) List(ctx context.Context, limit, offset uint64) ([]models.BlogPostDB, error) {
	query, args, err := qb.Select(blogPostColumns...).
		From("blog_posts").
		OrderBy("created_at DESC", "id ASC").
		Limit(limit).
		Offset(offset).
		ToSql()
	if err != nil {
		return nil, err
	}

	posts := []models.BlogPostDB{}
	if err := sqlx.SelectContext(ctx, ext(ctx, r.db), &posts, query, args...); err != nil {
		logger.Log.Errorw("blog_posts select failed", "query", query, "error", err)
		return nil, err
	}
	return posts, nil
}

// Count returns the total number of blog post rows.
func (r *BlogPostReadRepository) Count(ctx context.Context) (int64, error) {
	query, args, err := qb.Select("COUNT(*)").From("blog_posts").ToSql()
	if err != nil {
		return 0, err
	}

	var total int64
	if err := sqlx.GetContext(ctx, ext(ctx, r.db), &total, query, args...); err != nil {
		logger.Log.Errorw("blog_posts count failed", "query", query, "error", err)
		return 0, err
	}
	return total, nil
}

type BlogPostWriteRepository struct {
	db *sqlx.DB
}

func NewBlogPostWriteRepository(db *sqlx.DB) *BlogPostWriteRepository {
	return &BlogPostWriteRepository{db: db}
}

// Save inserts a new blog post row. The author foreign key is enforced by the
// table constraints; violations surface as a database error.
func (r *BlogPostWriteRepository) Save(ctx context.Context, post *models.BlogPostDB) error {
	query, args, err := qb.Insert("blog_posts").
		Columns(blogPostColumns...).
		Values(post.ID, post.Title, post.Content, post.CreatedAt, post.UpdatedAt, post.AuthorID).
		ToSql()
	if err != nil {
		return err
	}

	if _, err := ext(ctx, r.db).ExecContext(ctx, query, args...); err != nil {
		logger.Log.Errorw("blog_posts insert failed", "query", query, "error", err)
		return err
	}
	return nil
}

// Update applies a partial update and returns the number of rows affected.
func (r *BlogPostWriteRepository) Update(ctx context.Context, id uuid.UUID, upd models.BlogPostUpdate) (int64, error) {
	b := qb.Update("blog_posts").
		Set("updated_at", time.Now().UTC()).
		Where(sq.Eq{"id": id})
	if upd.Title != nil {
		b = b.Set("title", *upd.Title)
	}
	if upd.Content != nil {
		b = b.Set("content", *upd.Content)
	}

	query, args, err := b.ToSql()
	if err != nil {
		return 0, err
	}

	res, err := ext(ctx, r.db).ExecContext(ctx, query, args...)
	if err != nil {
		logger.Log.Errorw("blog_posts update failed", "query", query, "error", err)
		return 0, err
	}
	return res.RowsAffected()
}

// Delete removes the blog post row and returns the number of rows affected.
// Comments on the post go with it via the ON DELETE CASCADE constraint.
func (r *BlogPostWriteRepository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	query, args, err := qb.Delete("blog_posts").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return 0, err
	}

	res, err := ext(ctx, r.db).ExecContext(ctx, query, args...)
	if err != nil {
		logger.Log.Errorw("blog_posts delete failed", "query", query, "error", err)
		return 0, err
	}
	return res.RowsAffected()
}
