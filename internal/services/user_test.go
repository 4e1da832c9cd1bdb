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
	"golang.org/x/crypto/bcrypt"
)

func TestUserService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name         string
		username     string
		email        string
		role         string
		existingUser *models.UserDB
		readerErr    error
		writerErr    error
		wantRole     string
		wantErr      error
	}{
		{
			name:     "successful creation",
			username: "alice",
			email:    "alice@example.com",
			role:     "admin",
			wantRole: "admin",
		},
		{
			name:     "empty role defaults to author",
			username: "bob",
			email:    "bob@example.com",
			role:     "",
			wantRole: models.DefaultUserRole,
		},
		{
			name:         "user already exists",
			username:     "carol",
			email:        "carol@example.com",
			existingUser: &models.UserDB{ID: uuid.New()},
			wantErr:      services.ErrUserAlreadyExists,
		},
		{
			name:      "unique violation on insert",
			username:  "dave",
			email:     "dave@example.com",
			writerErr: &pgconn.PgError{Code: "23505", ConstraintName: "users_username_key"},
			wantErr:   services.ErrUserAlreadyExists,
		},
		{
			name:      "reader error",
			username:  "eve",
			email:     "eve@example.com",
			readerErr: errors.New("db error"),
			wantErr:   errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockReader := services.NewMockUserReader(ctrl)
			mockWriter := services.NewMockUserWriter(ctrl)
			svc := services.NewUserService(mockReader, mockWriter)

			mockReader.EXPECT().
				GetByUsernameOrEmail(gomock.Any(), &tt.username, &tt.email).
				Return(tt.existingUser, tt.readerErr)

			if tt.existingUser == nil && tt.readerErr == nil {
				mockWriter.EXPECT().
					Save(gomock.Any(), gomock.Any()).
					Return(tt.writerErr)
			}

			user, err := svc.Create(context.Background(), tt.username, tt.email, "pass123", "First", "Last", tt.role)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Nil(t, user)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.username, user.Username)
			assert.Equal(t, tt.email, user.Email)
			assert.Equal(t, tt.wantRole, user.Role)
			assert.True(t, user.IsActive)
			assert.NotEqual(t, uuid.Nil, user.ID)

			// Password is stored hashed
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("pass123")))
		})
	}
}

func TestUserService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	users := []models.UserDB{{ID: uuid.New(), Username: "alice"}, {ID: uuid.New(), Username: "bob"}}

	tests := []struct {
		name      string
		page      int
		perPage   int
		listErr   error
		countErr  error
		wantErr   bool
		wantTotal int64
	}{
		{name: "first page", page: 1, perPage: 10, wantTotal: 25},
		{name: "third page offset", page: 3, perPage: 5, wantTotal: 25},
		{name: "list error", page: 1, perPage: 10, listErr: errors.New("db error"), wantErr: true},
		{name: "count error", page: 1, perPage: 10, countErr: errors.New("db error"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockReader := services.NewMockUserReader(ctrl)
			mockWriter := services.NewMockUserWriter(ctrl)
			svc := services.NewUserService(mockReader, mockWriter)

			mockReader.EXPECT().
				List(gomock.Any(), uint64(tt.perPage), uint64((tt.page-1)*tt.perPage)).
				Return(users, tt.listErr)

			if tt.listErr == nil {
				mockReader.EXPECT().Count(gomock.Any()).Return(tt.wantTotal, tt.countErr)
			}

			got, total, err := svc.List(context.Background(), tt.page, tt.perPage)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, users, got)
			assert.Equal(t, tt.wantTotal, total)
		})
	}
}

func TestUserService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	id := uuid.New()

	tests := []struct {
		name    string
		user    *models.UserDB
		getErr  error
		wantErr error
	}{
		{name: "found", user: &models.UserDB{ID: id, Username: "alice"}},
		{name: "not found", user: nil, wantErr: services.ErrUserNotFound},
		{name: "reader error", getErr: errors.New("db error"), wantErr: errors.New("db error")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockReader := services.NewMockUserReader(ctrl)
			mockWriter := services.NewMockUserWriter(ctrl)
			svc := services.NewUserService(mockReader, mockWriter)

			mockReader.EXPECT().GetByID(gomock.Any(), id).Return(tt.user, tt.getErr)

			user, err := svc.Get(context.Background(), id)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.user, user)
			}
		})
	}
}

func TestUserService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	id := uuid.New()
	username := "renamed"
	upd := models.UserUpdate{Username: &username}

	tests := []struct {
		name      string
		rows      int64
		updateErr error
		wantErr   error
	}{
		{name: "successful update", rows: 1},
		{name: "not found", rows: 0, wantErr: services.ErrUserNotFound},
		{
			name:      "unique violation",
			updateErr: &pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"},
			wantErr:   services.ErrUserAlreadyExists,
		},
		{name: "writer error", updateErr: errors.New("db error"), wantErr: errors.New("db error")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockReader := services.NewMockUserReader(ctrl)
			mockWriter := services.NewMockUserWriter(ctrl)
			svc := services.NewUserService(mockReader, mockWriter)

			mockWriter.EXPECT().Update(gomock.Any(), id, upd).Return(tt.rows, tt.updateErr)

			if tt.updateErr == nil && tt.rows > 0 {
				mockReader.EXPECT().
					GetByID(gomock.Any(), id).
					Return(&models.UserDB{ID: id, Username: username}, nil)
			}

			user, err := svc.Update(context.Background(), id, upd)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, username, user.Username)
			}
		})
	}
}

func TestUserService_Delete(t *testing.T) {
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
		{name: "not found", rows: 0, wantErr: services.ErrUserNotFound},
		{name: "writer error", deleteErr: errors.New("db error"), wantErr: errors.New("db error")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockReader := services.NewMockUserReader(ctrl)
			mockWriter := services.NewMockUserWriter(ctrl)
			svc := services.NewUserService(mockReader, mockWriter)

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
