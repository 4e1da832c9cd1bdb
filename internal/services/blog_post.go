package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/blog-api/internal/logger"
	"github.com/sbilibin2017/blog-api/internal/models"
)

// BlogPostReader defines read-only operations for blog posts.
type BlogPostReader interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.BlogPostDB, error)
	List(ctx context.Context, limit, offset uint64) ([]models.BlogPostDB, error)
	Count(ctx context.Context) (int64, error)
}

// BlogPostWriter defines write operations for blog posts.
type BlogPostWriter interface {
	Save(ctx context.Context, post *models.BlogPostDB) error
	Update(ctx context.Context, id uuid.UUID, upd models.BlogPostUpdate) (int64, error)
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
}

// AuthorReader defines the user lookup needed to validate ownership references.
type AuthorReader interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.UserDB, error)
}

// BlogPostService implements the blog post resource operations.
type BlogPostService struct {
	reader  BlogPostReader
	writer  BlogPostWriter
	authors AuthorReader
}

// NewBlogPostService creates a new BlogPostService instance.
func NewBlogPostService(reader BlogPostReader, writer BlogPostWriter, authors AuthorReader) *BlogPostService {
	return &BlogPostService{
		reader:  reader,
		writer:  writer,
		authors: authors,
	}
}

// Create persists a new blog post after checking the author exists. The
// foreign key constraint backs the check under concurrent deletes.
func (svc *BlogPostService) Create(ctx context.Context, title, content string, authorID uuid.UUID) (*models.BlogPostDB, error) {
	author, err := svc.authors.GetByID(ctx, authorID)
	if err != nil {
		logger.Log.Errorw("failed to check author exists", "err", err)
		return nil, err
	}
	if author == nil {
		return nil, ErrUserNotFound
	}

	now := time.Now().UTC()
	post := &models.BlogPostDB{
		ID:        uuid.New(),
		Title:     title,
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
		AuthorID:  authorID,
	}

	if err := svc.writer.Save(ctx, post); err != nil {
		if foreignKeyConstraint(err) != "" {
			return nil, ErrUserNotFound
		}
		logger.Log.Errorw("failed to save blog post", "err", err)
		return nil, err
	}

	return post, nil
}

// List returns one page of blog posts plus the total row count.
func (svc *BlogPostService) List(ctx context.Context, page, perPage int) ([]models.BlogPostDB, int64, error) {
	posts, err := svc.reader.List(ctx, uint64(perPage), uint64((page-1)*perPage))
	if err != nil {
		return nil, 0, err
	}

	total, err := svc.reader.Count(ctx)
	if err != nil {
		return nil, 0, err
	}

	return posts, total, nil
}

// Get returns the blog post with the given id or ErrBlogPostNotFound.
func (svc *BlogPostService) Get(ctx context.Context, id uuid.UUID) (*models.BlogPostDB, error) {
	post, err := svc.reader.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrBlogPostNotFound
	}
	return post, nil
}

// Update applies a partial update over title and content and returns the
// updated resource.
func (svc *BlogPostService) Update(ctx context.Context, id uuid.UUID, upd models.BlogPostUpdate) (*models.BlogPostDB, error) {
	rows, err := svc.writer.Update(ctx, id, upd)
	if err != nil {
		logger.Log.Errorw("failed to update blog post", "err", err)
		return nil, err
	}
	if rows == 0 {
		return nil, ErrBlogPostNotFound
	}

	return svc.Get(ctx, id)
}

// Delete removes the blog post with the given id or returns
// ErrBlogPostNotFound. Its comments are removed by the cascade constraint.
func (svc *BlogPostService) Delete(ctx context.Context, id uuid.UUID) error {
	rows, err := svc.writer.Delete(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to delete blog post", "err", err)
		return err
	}
	if rows == 0 {
		return ErrBlogPostNotFound
	}
	return nil
}
