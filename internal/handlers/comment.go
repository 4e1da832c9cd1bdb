package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sbilibin2017/blog-api/internal/logger"
	"github.com/sbilibin2017/blog-api/internal/models"
	"github.com/sbilibin2017/blog-api/internal/services"
)

// CommentCreator defines the interface that the comment creation service must implement.
type CommentCreator interface {
	Create(ctx context.Context, blogPostID, userID uuid.UUID, text string) (*models.CommentDB, error)
}

// CommentLister defines the interface that the comment listing service must implement.
type CommentLister interface {
	ListForBlogPost(ctx context.Context, blogPostID uuid.UUID, page, perPage int) ([]models.CommentDB, int64, error)
}

// CommentGetter defines the interface that the comment fetch service must implement.
type CommentGetter interface {
	Get(ctx context.Context, id uuid.UUID) (*models.CommentDB, error)
}

// CommentUpdater defines the interface that the comment update service must implement.
type CommentUpdater interface {
	Update(ctx context.Context, id uuid.UUID, text string) (*models.CommentDB, error)
}

// CommentDeleter defines the interface that the comment deletion service must implement.
type CommentDeleter interface {
	Delete(ctx context.Context, id uuid.UUID) error
}

// CreateCommentRequest represents the JSON body for comment creation
// swagger:model CreateCommentRequest
type CreateCommentRequest struct {
	// Commented post id (UUID)
	// required: true
	BlogPostID string `json:"blog_post_id"`

	// Commenting user id (UUID)
	// required: true
	UserID string `json:"user_id"`

	// Comment body
	// required: true
	// example: Nice post!
	Comment string `json:"comment"`
}

// CreateCommentResponse represents a successful comment creation response
// swagger:model CreateCommentResponse
type CreateCommentResponse struct {
	// Success message
	// example: Comment added successfully
	Message string `json:"message"`

	CommentResponse
}

// NewCreateCommentHandler returns an HTTP handler for comment creation.
// @Summary Create a comment
// @Description Creates a comment on an existing blog post by an existing user
// @Tags comments
// @Accept json
// @Produce json
// @Param createCommentRequest body handlers.CreateCommentRequest true "Comment creation request"
// @Success 201 {object} handlers.CreateCommentResponse "Comment created"
// @Failure 400 {object} handlers.ErrorResponse "Missing or malformed fields"
// @Failure 404 {object} handlers.ErrorResponse "Blog post or user not found"
// @Router /comments [post]
// @Security BearerAuth
func NewCreateCommentHandler(svc CommentCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateCommentRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		if req.BlogPostID == "" || req.UserID == "" || req.Comment == "" {
			writeError(w, http.StatusBadRequest, "Missing required fields")
			return
		}

		blogPostID, err := uuid.Parse(req.BlogPostID)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid blog_post_id format")
			return
		}
		userID, err := uuid.Parse(req.UserID)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid user_id format")
			return
		}

		comment, err := svc.Create(r.Context(), blogPostID, userID, req.Comment)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrBlogPostNotFound):
				writeError(w, http.StatusNotFound, "Blog post not found")
			case errors.Is(err, services.ErrUserNotFound):
				writeError(w, http.StatusNotFound, "User not found")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		writeJSON(w, http.StatusCreated, CreateCommentResponse{
			Message:         "Comment added successfully",
			CommentResponse: newCommentResponse(comment),
		})
	}
}

// CommentListResponse represents one page of comments on a blog post
// swagger:model CommentListResponse
type CommentListResponse struct {
	Comments []CommentResponse `json:"comments"`

	PageMeta
}

// NewListCommentsHandler returns an HTTP handler for the paginated comment
// listing of one blog post.
// @Summary List comments for a blog post
// @Description Returns one page of comments on the given post plus pagination counters
// @Tags comments
// @Produce json
// @Param id path string true "Blog post id (UUID)"
// @Param page query int false "Page number, starting at 1"
// @Param per_page query int false "Page size, default 10"
// @Success 200 {object} handlers.CommentListResponse "Page of comments"
// @Failure 400 {object} handlers.ErrorResponse "Invalid pagination parameters"
// @Failure 404 {object} handlers.ErrorResponse "Blog post not found"
// @Router /blog_posts/{id}/comments [get]
// @Security BearerAuth
func NewListCommentsHandler(svc CommentLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		blogPostID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid id format")
			return
		}

		page, perPage, err := parsePageParams(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Page number and per_page must be positive integers")
			return
		}

		comments, total, err := svc.ListForBlogPost(r.Context(), blogPostID, page, perPage)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrBlogPostNotFound):
				writeError(w, http.StatusNotFound, "Blog post not found")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		writeJSON(w, http.StatusOK, CommentListResponse{
			Comments: newCommentResponses(comments),
			PageMeta: newPageMeta(total, page, perPage),
		})
	}
}

// NewGetCommentHandler returns an HTTP handler for fetching one comment by id.
// @Summary Get comment
// @Description Returns the comment with the given id
// @Tags comments
// @Produce json
// @Param id path string true "Comment id (UUID)"
// @Success 200 {object} handlers.CommentResponse "Comment"
// @Failure 400 {object} handlers.ErrorResponse "Malformed id"
// @Failure 404 {object} handlers.ErrorResponse "Comment not found"
// @Router /comments/{id} [get]
// @Security BearerAuth
func NewGetCommentHandler(svc CommentGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid id format")
			return
		}

		comment, err := svc.Get(r.Context(), id)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrCommentNotFound):
				writeError(w, http.StatusNotFound, "Comment not found")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		writeJSON(w, http.StatusOK, newCommentResponse(comment))
	}
}

// UpdateCommentRequest represents the JSON body for a comment update
// swagger:model UpdateCommentRequest
type UpdateCommentRequest struct {
	// Comment body
	// required: true
	// example: Edited comment
	Comment string `json:"comment"`
}

// UpdateCommentResponse represents a successful comment update response
// swagger:model UpdateCommentResponse
type UpdateCommentResponse struct {
	// Success message
	// example: Comment updated successfully
	Message string `json:"message"`

	CommentResponse
}

// NewUpdateCommentHandler returns an HTTP handler for comment updates.
// @Summary Update comment
// @Description Replaces the comment body
// @Tags comments
// @Accept json
// @Produce json
// @Param id path string true "Comment id (UUID)"
// @Param updateCommentRequest body handlers.UpdateCommentRequest true "Comment update request"
// @Success 200 {object} handlers.UpdateCommentResponse "Updated comment"
// @Failure 400 {object} handlers.ErrorResponse "Malformed id or missing comment body"
// @Failure 404 {object} handlers.ErrorResponse "Comment not found"
// @Router /comments/{id} [put]
// @Security BearerAuth
func NewUpdateCommentHandler(svc CommentUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid id format")
			return
		}

		var req UpdateCommentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		if req.Comment == "" {
			writeError(w, http.StatusBadRequest, "Missing required fields")
			return
		}

		comment, err := svc.Update(r.Context(), id, req.Comment)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrCommentNotFound):
				writeError(w, http.StatusNotFound, "Comment not found")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		writeJSON(w, http.StatusOK, UpdateCommentResponse{
			Message:         "Comment updated successfully",
			CommentResponse: newCommentResponse(comment),
		})
	}
}

// NewDeleteCommentHandler returns an HTTP handler for comment deletion.
// @Summary Delete comment
// @Description Removes the comment with the given id
// @Tags comments
// @Produce json
// @Param id path string true "Comment id (UUID)"
// @Success 200 {object} handlers.MessageResponse "Comment deleted"
// @Failure 400 {object} handlers.ErrorResponse "Malformed id"
// @Failure 404 {object} handlers.ErrorResponse "Comment not found"
// @Router /comments/{id} [delete]
// @Security BearerAuth
func NewDeleteCommentHandler(svc CommentDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid id format")
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			switch {
			case errors.Is(err, services.ErrCommentNotFound):
				writeError(w, http.StatusNotFound, "Comment not found")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		writeJSON(w, http.StatusOK, MessageResponse{Message: "Comment deleted successfully"})
	}
}
