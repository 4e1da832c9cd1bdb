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

// BlogPostCreator defines the interface that the post creation service must implement.
type BlogPostCreator interface {
	Create(ctx context.Context, title, content string, authorID uuid.UUID) (*models.BlogPostDB, error)
}

// BlogPostLister defines the interface that the post listing service must implement.
type BlogPostLister interface {
	List(ctx context.Context, page, perPage int) ([]models.BlogPostDB, int64, error)
}

// BlogPostGetter defines the interface that the post fetch service must implement.
type BlogPostGetter interface {
	Get(ctx context.Context, id uuid.UUID) (*models.BlogPostDB, error)
}

// BlogPostUpdater defines the interface that the post update service must implement.
type BlogPostUpdater interface {
	Update(ctx context.Context, id uuid.UUID, upd models.BlogPostUpdate) (*models.BlogPostDB, error)
}

// BlogPostDeleter defines the interface that the post deletion service must implement.
type BlogPostDeleter interface {
	Delete(ctx context.Context, id uuid.UUID) error
}

// CreateBlogPostRequest represents the JSON body for blog post creation
// swagger:model CreateBlogPostRequest
type CreateBlogPostRequest struct {
	// Title, at most 200 characters
	// required: true
	// example: My first post
	Title string `json:"title"`

	// Body text
	// required: true
	// example: Hello world
	Content string `json:"content"`

	// Owning user id (UUID)
	// required: true
	AuthorID string `json:"author_id"`
}

// CreateBlogPostResponse represents a successful blog post creation response
// swagger:model CreateBlogPostResponse
type CreateBlogPostResponse struct {
	// Success message
	// example: Blog post created successfully
	Message string `json:"message"`

	BlogPostResponse
}

// NewCreateBlogPostHandler returns an HTTP handler for blog post creation.
// @Summary Create a blog post
// @Description Creates a blog post owned by an existing user
// @Tags blog_posts
// @Accept json
// @Produce json
// @Param createBlogPostRequest body handlers.CreateBlogPostRequest true "Blog post creation request"
// @Success 201 {object} handlers.CreateBlogPostResponse "Blog post created"
// @Failure 400 {object} handlers.ErrorResponse "Missing or malformed fields"
// @Failure 404 {object} handlers.ErrorResponse "Author not found"
// @Router /blog_posts [post]
// @Security BearerAuth
func NewCreateBlogPostHandler(svc BlogPostCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateBlogPostRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		if req.Title == "" || req.Content == "" || req.AuthorID == "" {
			writeError(w, http.StatusBadRequest, "Missing required fields")
			return
		}

		if len(req.Title) > models.MaxBlogPostTitleLen {
			writeError(w, http.StatusBadRequest, "Title is too long")
			return
		}

		authorID, err := uuid.Parse(req.AuthorID)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid author_id format")
			return
		}

		post, err := svc.Create(r.Context(), req.Title, req.Content, authorID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserNotFound):
				writeError(w, http.StatusNotFound, "Author not found")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		writeJSON(w, http.StatusCreated, CreateBlogPostResponse{
			Message:          "Blog post created successfully",
			BlogPostResponse: newBlogPostResponse(post),
		})
	}
}

// BlogPostListResponse represents one page of blog posts
// swagger:model BlogPostListResponse
type BlogPostListResponse struct {
	BlogPosts []BlogPostResponse `json:"blog_posts"`

	PageMeta
}

// NewListBlogPostsHandler returns an HTTP handler for the paginated blog post listing.
// @Summary List blog posts
// @Description Returns one page of blog posts plus pagination counters
// @Tags blog_posts
// @Produce json
// @Param page query int false "Page number, starting at 1"
// @Param per_page query int false "Page size, default 10"
// @Success 200 {object} handlers.BlogPostListResponse "Page of blog posts"
// @Failure 400 {object} handlers.ErrorResponse "Invalid pagination parameters"
// @Router /blog_posts [get]
func NewListBlogPostsHandler(svc BlogPostLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, perPage, err := parsePageParams(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Page number and per_page must be positive integers")
			return
		}

		posts, total, err := svc.List(r.Context(), page, perPage)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		writeJSON(w, http.StatusOK, BlogPostListResponse{
			BlogPosts: newBlogPostResponses(posts),
			PageMeta:  newPageMeta(total, page, perPage),
		})
	}
}

// NewGetBlogPostHandler returns an HTTP handler for fetching one blog post by id.
// @Summary Get blog post
// @Description Returns the blog post with the given id
// @Tags blog_posts
// @Produce json
// @Param id path string true "Blog post id (UUID)"
// @Success 200 {object} handlers.BlogPostResponse "Blog post"
// @Failure 400 {object} handlers.ErrorResponse "Malformed id"
// @Failure 404 {object} handlers.ErrorResponse "Blog post not found"
// @Router /blog_posts/{id} [get]
// @Security BearerAuth
func NewGetBlogPostHandler(svc BlogPostGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid id format")
			return
		}

		post, err := svc.Get(r.Context(), id)
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

		writeJSON(w, http.StatusOK, newBlogPostResponse(post))
	}
}

// UpdateBlogPostRequest represents the JSON body for a partial blog post
// update. At least one field must be present.
// swagger:model UpdateBlogPostRequest
type UpdateBlogPostRequest struct {
	// Title, at most 200 characters
	// example: Updated title
	Title *string `json:"title"`

	// Body text
	// example: Updated content
	Content *string `json:"content"`
}

// UpdateBlogPostResponse represents a successful blog post update response
// swagger:model UpdateBlogPostResponse
type UpdateBlogPostResponse struct {
	// Success message
	// example: Blog post updated successfully
	Message string `json:"message"`

	BlogPostResponse
}

// NewUpdateBlogPostHandler returns an HTTP handler for partial blog post updates.
// @Summary Update blog post
// @Description Applies a partial update over title and content; at least one must be supplied
// @Tags blog_posts
// @Accept json
// @Produce json
// @Param id path string true "Blog post id (UUID)"
// @Param updateBlogPostRequest body handlers.UpdateBlogPostRequest true "Fields to update"
// @Success 200 {object} handlers.UpdateBlogPostResponse "Updated blog post"
// @Failure 400 {object} handlers.ErrorResponse "Malformed id or no fields to update"
// @Failure 404 {object} handlers.ErrorResponse "Blog post not found"
// @Router /blog_posts/{id} [put]
// @Security BearerAuth
func NewUpdateBlogPostHandler(svc BlogPostUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid id format")
			return
		}

		var req UpdateBlogPostRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		upd := models.BlogPostUpdate{
			Title:   req.Title,
			Content: req.Content,
		}
		if upd.IsEmpty() {
			writeError(w, http.StatusBadRequest, "Missing fields to update")
			return
		}
		if upd.Title != nil && len(*upd.Title) > models.MaxBlogPostTitleLen {
			writeError(w, http.StatusBadRequest, "Title is too long")
			return
		}

		post, err := svc.Update(r.Context(), id, upd)
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

		writeJSON(w, http.StatusOK, UpdateBlogPostResponse{
			Message:          "Blog post updated successfully",
			BlogPostResponse: newBlogPostResponse(post),
		})
	}
}

// NewDeleteBlogPostHandler returns an HTTP handler for blog post deletion.
// @Summary Delete blog post
// @Description Removes the blog post with the given id along with its comments
// @Tags blog_posts
// @Produce json
// @Param id path string true "Blog post id (UUID)"
// @Success 200 {object} handlers.MessageResponse "Blog post deleted"
// @Failure 400 {object} handlers.ErrorResponse "Malformed id"
// @Failure 404 {object} handlers.ErrorResponse "Blog post not found"
// @Router /blog_posts/{id} [delete]
// @Security BearerAuth
func NewDeleteBlogPostHandler(svc BlogPostDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid id format")
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			switch {
			case errors.Is(err, services.ErrBlogPostNotFound):
				writeError(w, http.StatusNotFound, "Blog post not found")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		writeJSON(w, http.StatusOK, MessageResponse{Message: "Blog post deleted successfully"})
	}
}
