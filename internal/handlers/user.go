package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sbilibin2017/blog-api/internal/logger"
	"github.com/sbilibin2017/blog-api/internal/models"
	"github.com/sbilibin2017/blog-api/internal/services"
)

// UserCreator defines the interface that the user creation service must implement.
type UserCreator interface {
	Create(ctx context.Context, username, email, password, firstname, lastname, role string) (*models.UserDB, error)
}

// UserLister defines the interface that the user listing service must implement.
type UserLister interface {
	List(ctx context.Context, page, perPage int) ([]models.UserDB, int64, error)
}

// UserGetter defines the interface that the user fetch service must implement.
type UserGetter interface {
	Get(ctx context.Context, id uuid.UUID) (*models.UserDB, error)
}

// UserUpdater defines the interface that the user update service must implement.
type UserUpdater interface {
	Update(ctx context.Context, id uuid.UUID, upd models.UserUpdate) (*models.UserDB, error)
}

// UserDeleter defines the interface that the user deletion service must implement.
type UserDeleter interface {
	Delete(ctx context.Context, id uuid.UUID) error
}

// CreateUserRequest represents the JSON body for user creation
// swagger:model CreateUserRequest
type CreateUserRequest struct {
	// Username
	// required: true
	// example: john_doe
	Username string `json:"username"`

	// Email
	// required: true
	// example: john@example.com
	Email string `json:"email"`

	// Password
	// required: true
	// example: secret123
	Password string `json:"password"`

	// First name
	// required: true
	// example: John
	Firstname string `json:"firstname"`

	// Last name
	// required: true
	// example: Doe
	Lastname string `json:"lastname"`

	// Role, defaults to author
	// example: author
	Role string `json:"role"`
}

// CreateUserResponse represents a successful user creation response
// swagger:model CreateUserResponse
type CreateUserResponse struct {
	// Success message
	// example: User created successfully
	Message string `json:"message"`

	UserResponse
}

// NewCreateUserHandler returns an HTTP handler for user creation.
// @Summary Create a new user
// @Description Creates a user account with a unique username and email. The password is hashed before storing and never returned.
// @Tags users
// @Accept json
// @Produce json
// @Param createUserRequest body handlers.CreateUserRequest true "User creation request"
// @Success 201 {object} handlers.CreateUserResponse "User created"
// @Failure 400 {object} handlers.ErrorResponse "Missing or malformed fields"
// @Failure 409 {object} handlers.ErrorResponse "Username or email already exists"
// @Router /users [post]
func NewCreateUserHandler(svc UserCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateUserRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		if req.Username == "" || req.Email == "" || req.Password == "" ||
			req.Firstname == "" || req.Lastname == "" {
			writeError(w, http.StatusBadRequest, "Missing required fields")
			return
		}

		// Minimal syntactic check, intentionally not RFC-compliant.
		if !strings.Contains(req.Email, "@") {
			writeError(w, http.StatusBadRequest, "Invalid email address")
			return
		}

		user, err := svc.Create(r.Context(), req.Username, req.Email, req.Password, req.Firstname, req.Lastname, req.Role)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserAlreadyExists):
				writeError(w, http.StatusConflict, "User with that username or email already exists")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		writeJSON(w, http.StatusCreated, CreateUserResponse{
			Message:      "User created successfully",
			UserResponse: newUserResponse(user),
		})
	}
}

// UserListResponse represents one page of users
// swagger:model UserListResponse
type UserListResponse struct {
	Users []UserResponse `json:"users"`

	PageMeta
}

// NewListUsersHandler returns an HTTP handler for the paginated user listing.
// @Summary List users
// @Description Returns one page of users plus pagination counters
// @Tags users
// @Produce json
// @Param page query int false "Page number, starting at 1"
// @Param per_page query int false "Page size, default 10"
// @Success 200 {object} handlers.UserListResponse "Page of users"
// @Failure 400 {object} handlers.ErrorResponse "Invalid pagination parameters"
// @Router /users [get]
// @Security BearerAuth
func NewListUsersHandler(svc UserLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, perPage, err := parsePageParams(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Page number and per_page must be positive integers")
			return
		}

		users, total, err := svc.List(r.Context(), page, perPage)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		writeJSON(w, http.StatusOK, UserListResponse{
			Users:    newUserResponses(users),
			PageMeta: newPageMeta(total, page, perPage),
		})
	}
}

// NewGetUserHandler returns an HTTP handler for fetching one user by id.
// @Summary Get user
// @Description Returns the user with the given id
// @Tags users
// @Produce json
// @Param id path string true "User id (UUID)"
// @Success 200 {object} handlers.UserResponse "User"
// @Failure 400 {object} handlers.ErrorResponse "Malformed id"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Router /users/{id} [get]
// @Security BearerAuth
func NewGetUserHandler(svc UserGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid id format")
			return
		}

		user, err := svc.Get(r.Context(), id)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserNotFound):
				writeError(w, http.StatusNotFound, "User not found")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		writeJSON(w, http.StatusOK, newUserResponse(user))
	}
}

// UpdateUserRequest represents the JSON body for a partial user update.
// Absent fields keep their prior value.
// swagger:model UpdateUserRequest
type UpdateUserRequest struct {
	// Username
	// example: john_doe
	Username *string `json:"username"`

	// Email
	// example: john@example.com
	Email *string `json:"email"`

	// Active flag
	// example: true
	IsActive *bool `json:"is_active"`

	// Role
	// example: author
	Role *string `json:"role"`
}

// UpdateUserResponse represents a successful user update response
// swagger:model UpdateUserResponse
type UpdateUserResponse struct {
	// Success message
	// example: User updated successfully
	Message string `json:"message"`

	UserResponse
}

// NewUpdateUserHandler returns an HTTP handler for partial user updates.
// @Summary Update user
// @Description Applies a partial update over username, email, is_active and role
// @Tags users
// @Accept json
// @Produce json
// @Param id path string true "User id (UUID)"
// @Param updateUserRequest body handlers.UpdateUserRequest true "Fields to update"
// @Success 200 {object} handlers.UpdateUserResponse "Updated user"
// @Failure 400 {object} handlers.ErrorResponse "Malformed id or no fields to update"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Failure 409 {object} handlers.ErrorResponse "Username or email already exists"
// @Router /users/{id} [put]
// @Security BearerAuth
func NewUpdateUserHandler(svc UserUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid id format")
			return
		}

		var req UpdateUserRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		upd := models.UserUpdate{
			Username: req.Username,
			Email:    req.Email,
			IsActive: req.IsActive,
			Role:     req.Role,
		}
		if upd.IsEmpty() {
			writeError(w, http.StatusBadRequest, "Missing fields to update")
			return
		}

		user, err := svc.Update(r.Context(), id, upd)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserNotFound):
				writeError(w, http.StatusNotFound, "User not found")
			case errors.Is(err, services.ErrUserAlreadyExists):
				writeError(w, http.StatusConflict, "User with that username or email already exists")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		writeJSON(w, http.StatusOK, UpdateUserResponse{
			Message:      "User updated successfully",
			UserResponse: newUserResponse(user),
		})
	}
}

// NewDeleteUserHandler returns an HTTP handler for user deletion.
// @Summary Delete user
// @Description Removes the user with the given id
// @Tags users
// @Produce json
// @Param id path string true "User id (UUID)"
// @Success 200 {object} handlers.MessageResponse "User deleted"
// @Failure 400 {object} handlers.ErrorResponse "Malformed id"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Router /users/{id} [delete]
// @Security BearerAuth
func NewDeleteUserHandler(svc UserDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid id format")
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			switch {
			case errors.Is(err, services.ErrUserNotFound):
				writeError(w, http.StatusNotFound, "User not found")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		writeJSON(w, http.StatusOK, MessageResponse{Message: "User deleted successfully"})
	}
}
