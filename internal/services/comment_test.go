package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sbilibin2017/blog-api/internal/models"
	"github.com/sbilibin2017/blog-api/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestCommentService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	blogPostID := uuid.New()
	userID := uuid.New()

	tests := []struct {
		name    string
		post    *models.BlogPostDB
		postErr error
		user    *models.UserDB
		userErr error
		saveErr error
		wantErr error
	}{
		{
			name: "successful creation",
			post: &models.BlogPostDB{ID: blogPostID},
			user: &models.UserDB{ID: userID},
		},
		{
			name:    "blog post not found",
			post:    nil,
			wantErr: services.ErrBlogPostNotFound,
		},
		{
			name:    "post lookup error",
			postErr: errors.New("db error"),
			wantErr: errors.New("db error"),
		},
		{
			name:    "user not found",
			post:    &models.BlogPostDB{ID: blogPostID},
			user:    nil,
			wantErr: services.ErrUserNotFound,
		},
		{
			name:    "user lookup error",
			post:    &models.BlogPostDB{ID: blogPostID},
			userErr: errors.New("db error"),
			wantErr: errors.New("db error"),
		},
		{
			name:    "post deleted concurrently",
			post:    &models.BlogPostDB{ID: blogPostID},
			user:    &models.UserDB{ID: userID},
			saveErr: &pgconn.PgError{Code: "23503", ConstraintName: "comments_blog_post_id_fkey"},
			wantErr: services.ErrBlogPostNotFound,
		},
		{
			name:    "user deleted concurrently",
			post:    &models.BlogPostDB{ID: blogPostID},
			user:    &models.UserDB{ID: userID},
			saveErr: &pgconn.PgError{Code: "23503", ConstraintName: "comments_user_id_fkey"},
			wantErr: services.ErrUserNotFound,
		},
		{
			name:    "save error",
			post:    &models.BlogPostDB{ID: blogPostID},
			user:    &models.UserDB{ID: userID},
			saveErr: errors.New("db error"),
			wantErr: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockReader := services.NewMockCommentReader(ctrl)
			mockWriter := services.NewMockCommentWriter(ctrl)
			mockPosts := services.NewMockPostReader(ctrl)
			mockUsers := services.NewMockAuthorReader(ctrl)
			svc := services.NewCommentService(mockReader, mockWriter, mockPosts, mockUsers)

			mockPosts.EXPECT().GetByID(gomock.Any(), blogPostID).Return(tt.post, tt.postErr)

			if tt.post != nil && tt.postErr == nil {
				mockUsers.EXPECT().GetByID(gomock.Any(), userID).Return(tt.user, tt.userErr)
			}
			if tt.post != nil && tt.postErr == nil && tt.user != nil && tt.userErr == nil {
				mockWriter.EXPECT().Save(gomock.Any(), gomock.Any()).Return(tt.saveErr)
			}

			comment, err := svc.Create(context.Background(), blogPostID, userID, "Nice post!")
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Nil(t, comment)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, blogPostID, comment.BlogPostID)
			assert.Equal(t, userID, comment.UserID)
			assert.Equal(t, "Nice post!", comment.Comment)
			assert.NotEqual(t, uuid.Nil, comment.ID)
		})
	}
}

func TestCommentService_ListForBlogPost(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	blogPostID := uuid.New()
	comments := []models.CommentDB{{ID: uuid.New()}, {ID: uuid.New()}}

	tests := []struct {
		name     string
		post     *models.BlogPostDB
		postErr  error
		listErr  error
		countErr error
		wantErr  error
	}{
		{name: "first page", post: &models.BlogPostDB{ID: blogPostID}},
		{name: "blog post not found", post: nil, wantErr: services.ErrBlogPostNotFound},
		{name: "post lookup error", postErr: errors.New("db error"), wantErr: errors.New("db error")},
		{
			name:    "list error",
			post:    &models.BlogPostDB{ID: blogPostID},
			listErr: errors.New("db error"),
			wantErr: errors.New("db error"),
		},
		{
			name:     "count error",
			post:     &models.BlogPostDB{ID: blogPostID},
			countErr: errors.New("db error"),
			wantErr:  errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockReader := services.NewMockCommentReader(ctrl)
			mockWriter := services.NewMockCommentWriter(ctrl)
			mockPosts := services.NewMockPostReader(ctrl)
			mockUsers := services.NewMockAuthorReader(ctrl)
			svc := services.NewCommentService(mockReader, mockWriter, mockPosts, mockUsers)

			mockPosts.EXPECT().GetByID(gomock.Any(), blogPostID).Return(tt.post, tt.postErr)

			if tt.post != nil && tt.postErr == nil {
				mockReader.EXPECT().
					ListByBlogPost(gomock.Any(), blogPostID, uint64(10), uint64(0)).
					Return(comments, tt.listErr)
				if tt.listErr == nil {
					mockReader.EXPECT().
						CountByBlogPost(gomock.Any(), blogPostID).
						Return(int64(2), tt.countErr)
				}
			}

			got, total, err := svc.ListForBlogPost(context.Background(), blogPostID, 1, 10)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, comments, got)
			assert.Equal(t, int64(2), total)
		})
	}
}

func TestCommentService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	id := uuid.New()

	tests := []struct {
		name    string
		comment *models.CommentDB
		getErr  error
		wantErr error
	}{
		{name: "found", comment: &models.CommentDB{ID: id}},
		{name: "not found", comment: nil, wantErr: services.ErrCommentNotFound},
		{name: "reader error", getErr: errors.New("db error"), wantErr: errors.New("db error")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockReader := services.NewMockCommentReader(ctrl)
			mockWriter := services.NewMockCommentWriter(ctrl)
			mockPosts := services.NewMockPostReader(ctrl)
			mockUsers := services.NewMockAuthorReader(ctrl)
			svc := services.NewCommentService(mockReader, mockWriter, mockPosts, mockUsers)

			mockReader.EXPECT().GetByID(gomock.Any(), id).Return(tt.comment, tt.getErr)

			comment, err := svc.Get(context.Background(), id)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Nil(t, comment)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.comment, comment)
			}
		})
	}
}

func TestCommentService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	id := uuid.New()

	tests := []struct {
		name      string
		rows      int64
		updateErr error
		wantErr   error
	}{
		{name: "successful update", rows: 1},
		{name: "not found", rows: 0, wantErr: services.ErrCommentNotFound},
		{name: "writer error", updateErr: errors.New("db error"), wantErr: errors.New("db error")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockReader := services.NewMockCommentReader(ctrl)
			mockWriter := services.NewMockCommentWriter(ctrl)
			mockPosts := services.NewMockPostReader(ctrl)
			mockUsers := services.NewMockAuthorReader(ctrl)
			svc := services.NewCommentService(mockReader, mockWriter, mockPosts, mockUsers)

			mockWriter.EXPECT().Update(gomock.Any(), id, "edited").Return(tt.rows, tt.updateErr)

			if tt.updateErr == nil && tt.rows > 0 {
				mockReader.EXPECT().
					GetByID(gomock.Any(), id).
					Return(&models.CommentDB{ID: id, Comment: "edited"}, nil)
			}

			comment, err := svc.Update(context.Background(), id, "edited")
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Nil(t, comment)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "edited", comment.Comment)
			}
		})
	}
}

func TestCommentService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	id := uuid.New()

	tests := []struct {
		name      string
		rows      int64
		deleteErr error
		wantErr   error
	}{
		{name: "successful delete", rows: 1},
		{name: "not found", rows: 0, wantErr: services.ErrCommentNotFound},
		{name: "writer error", deleteErr: errors.New("db error"), wantErr: errors.New("db error")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockReader := services.NewMockCommentReader(ctrl)
			mockWriter := services.NewMockCommentWriter(ctrl)
			mockPosts := services.NewMockPostReader(ctrl)
			mockUsers := services.NewMockAuthorReader(ctrl)
			svc := services.NewCommentService(mockReader, mockWriter, mockPosts, mockUsers)

			mockWriter.EXPECT().Delete(gomock.Any(), id).Return(tt.rows, tt.deleteErr)

			err := svc.Delete(context.Background(), id)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
