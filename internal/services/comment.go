package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/blog-api/internal/logger"
	"github.com/sbilibin2017/blog-api/internal/models"
)

// CommentReader defines read-only operations for comments.
type CommentReader interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.CommentDB, error)
	ListByBlogPost(ctx context.Context, blogPostID uuid.UUID, limit, offset uint64) ([]models.CommentDB, error)
	CountByBlogPost(ctx context.Context, blogPostID uuid.UUID) (int64, error)
}

// CommentWriter defines write operations for comments.
type CommentWriter interface {
	Save(ctx context.Context, comment *models.CommentDB) error
	Update(ctx context.Context, id uuid.UUID, comment string) (int64, error)
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
}

// PostReader defines the blog post lookup needed to validate comment references.
type PostReader interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.BlogPostDB, error)
}

// CommentService implements the comment resource operations.
type CommentService struct {
	reader CommentReader
	writer CommentWriter
	posts  PostReader
	users  AuthorReader
}

// NewCommentService creates a new CommentService instance.
func NewCommentService(reader CommentReader, writer CommentWriter, posts PostReader, users AuthorReader) *CommentService {
	return &CommentService{
		reader: reader,
		writer: writer,
		posts:  posts,
		users:  users,
	}
}

// Create persists a new comment after checking both referenced entities
// exist. The foreign key constraints back the checks under concurrent
// deletes; the violated constraint name tells the two cases apart.
func (svc *CommentService) Create(ctx context.Context, blogPostID, userID uuid.UUID, text string) (*models.CommentDB, error) {
	post, err := svc.posts.GetByID(ctx, blogPostID)
	if err != nil {
		logger.Log.Errorw("failed to check blog post exists", "err", err)
		return nil, err
	}
	if post == nil {
		return nil, ErrBlogPostNotFound
	}

	user, err := svc.users.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to check user exists", "err", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	comment := &models.CommentDB{
		ID:         uuid.New(),
		BlogPostID: blogPostID,
		UserID:     userID,
		Comment:    text,
		CreatedAt:  time.Now().UTC(),
	}

	if err := svc.writer.Save(ctx, comment); err != nil {
		if constraint := foreignKeyConstraint(err); constraint != "" {
			if strings.Contains(constraint, "blog_post") {
				return nil, ErrBlogPostNotFound
			}
			return nil, ErrUserNotFound
		}
		logger.Log.Errorw("failed to save comment", "err", err)
		return nil, err
	}

	return comment, nil
}

// ListForBlogPost returns one page of comments on the given post plus the
// total count, or ErrBlogPostNotFound if the post itself does not exist.
func (svc *CommentService) ListForBlogPost(ctx context.Context, blogPostID uuid.UUID, page, perPage int) ([]models.CommentDB, int64, error) {
	post, err := svc.posts.GetByID(ctx, blogPostID)
	if err != nil {
		return nil, 0, err
	}
	if post == nil {
		return nil, 0, ErrBlogPostNotFound
	}

	comments, err := svc.reader.ListByBlogPost(ctx, blogPostID, uint64(perPage), uint64((page-1)*perPage))
	if err != nil {
		return nil, 0, err
	}

	total, err := svc.reader.CountByBlogPost(ctx, blogPostID)
	if err != nil {
		return nil, 0, err
	}

	return comments, total, nil
}

// Get returns the comment with the given id or ErrCommentNotFound.
func (svc *CommentService) Get(ctx context.Context, id uuid.UUID) (*models.CommentDB, error) {
	comment, err := svc.reader.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if comment == nil {
		return nil, ErrCommentNotFound
	}
	return comment, nil
}

// Update replaces the comment body and returns the updated resource.
func (svc *CommentService) Update(ctx context.Context, id uuid.UUID, text string) (*models.CommentDB, error) {
	rows, err := svc.writer.Update(ctx, id, text)
	if err != nil {
		logger.Log.Errorw("failed to update comment", "err", err)
		return nil, err
	}
	if rows == 0 {
		return nil, ErrCommentNotFound
	}

	return svc.Get(ctx, id)
}

// Delete removes the comment with the given id or returns ErrCommentNotFound.
func (svc *CommentService) Delete(ctx context.Context, id uuid.UUID) error {
	rows, err := svc.writer.Delete(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to delete comment", "err", err)
		return err
	}
	if rows == 0 {
		return ErrCommentNotFound
	}
	return nil
}
