package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/blog-api/internal/models"
)

// timeLayout is the fixed wire format for timestamps.
const timeLayout = "2006-01-02 15:04:05"

// ErrorResponse is the envelope for every failure body
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Failure reason
	// example: User not found
	Message string `json:"message"`
}

// MessageResponse is the envelope for bodyless success responses
// swagger:model MessageResponse
type MessageResponse struct {
	// Success message
	// example: User deleted successfully
	Message string `json:"message"`
}

// UserResponse is the outbound shape of a user. The password hash is never
// part of it.
// swagger:model UserResponse
type UserResponse struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	Firstname string `json:"firstname"`
	Lastname  string `json:"lastname"`
	IsActive  bool   `json:"is_active"`
	Role      string `json:"role"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

func newUserResponse(user *models.UserDB) UserResponse {
	return UserResponse{
		ID:        user.ID.String(),
		Username:  user.Username,
		Email:     user.Email,
		Firstname: user.Firstname,
		Lastname:  user.Lastname,
		IsActive:  user.IsActive,
		Role:      user.Role,
		CreatedAt: user.CreatedAt.Format(timeLayout),
		UpdatedAt: user.UpdatedAt.Format(timeLayout),
	}
}

func newUserResponses(users []models.UserDB) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for i := range users {
		out = append(out, newUserResponse(&users[i]))
	}
	return out
}

// BlogPostResponse is the outbound shape of a blog post
// swagger:model BlogPostResponse
type BlogPostResponse struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	AuthorID  string `json:"author_id"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

func newBlogPostResponse(post *models.BlogPostDB) BlogPostResponse {
	return BlogPostResponse{
		ID:        post.ID.String(),
		Title:     post.Title,
		Content:   post.Content,
		AuthorID:  post.AuthorID.String(),
		CreatedAt: post.CreatedAt.Format(timeLayout),
		UpdatedAt: post.UpdatedAt.Format(timeLayout),
	}
}

func newBlogPostResponses(posts []models.BlogPostDB) []BlogPostResponse {
	out := make([]BlogPostResponse, 0, len(posts))
	for i := range posts {
		out = append(out, newBlogPostResponse(&posts[i]))
	}
	return out
}

// CommentResponse is the outbound shape of a comment
// swagger:model CommentResponse
type CommentResponse struct {
	ID         string `json:"id"`
	BlogPostID string `json:"blog_post_id"`
	UserID     string `json:"user_id"`
	Comment    string `json:"comment"`
	CreatedAt  string `json:"created_at"`
}

func newCommentResponse(comment *models.CommentDB) CommentResponse {
	return CommentResponse{
		ID:         comment.ID.String(),
		BlogPostID: comment.BlogPostID.String(),
		UserID:     comment.UserID.String(),
		Comment:    comment.Comment,
		CreatedAt:  comment.CreatedAt.Format(timeLayout),
	}
}

func newCommentResponses(comments []models.CommentDB) []CommentResponse {
	out := make([]CommentResponse, 0, len(comments))
	for i := range comments {
		out = append(out, newCommentResponse(&comments[i]))
	}
	return out
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, ErrorResponse{Message: message})
}
