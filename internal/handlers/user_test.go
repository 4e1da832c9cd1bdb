package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/blog-api/internal/models"
	"github.com/sbilibin2017/blog-api/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestCreateUserHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	user := &models.UserDB{
		ID:        uuid.New(),
		Username:  "john_doe",
		Email:     "john@example.com",
		Firstname: "John",
		Lastname:  "Doe",
		CreatedAt: now,
		UpdatedAt: now,
		IsActive:  true,
		Role:      "author",
	}

	tests := []struct {
		name          string
		body          string
		mockSetup     func(m *MockUserCreator)
		expectedCode  int
		expectedError string
	}{
		{
			name: "success",
			body: `{"username":"john_doe","email":"john@example.com","password":"secret123","firstname":"John","lastname":"Doe"}`,
			mockSetup: func(m *MockUserCreator) {
				m.EXPECT().
					Create(gomock.Any(), "john_doe", "john@example.com", "secret123", "John", "Doe", "").
					Return(user, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:         "invalid json",
			body:         `{invalid`,
			mockSetup:    func(m *MockUserCreator) {},
			expectedCode: http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
		{
			name:          "missing fields",
			body:          `{"username":"john_doe","email":"john@example.com"}`,
			mockSetup:     func(m *MockUserCreator) {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Missing required fields",
		},
		{
			name:          "invalid email",
			body:          `{"username":"john_doe","email":"not-an-email","password":"secret123","firstname":"John","lastname":"Doe"}`,
			mockSetup:     func(m *MockUserCreator) {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid email address",
		},
		{
			name: "duplicate user",
			body: `{"username":"john_doe","email":"john@example.com","password":"secret123","firstname":"John","lastname":"Doe"}`,
			mockSetup: func(m *MockUserCreator) {
				m.EXPECT().
					Create(gomock.Any(), "john_doe", "john@example.com", "secret123", "John", "Doe", "").
					Return(nil, services.ErrUserAlreadyExists)
			},
			expectedCode:  http.StatusConflict,
			expectedError: "User with that username or email already exists",
		},
		{
			name: "internal error",
			body: `{"username":"john_doe","email":"john@example.com","password":"secret123","firstname":"John","lastname":"Doe"}`,
			mockSetup: func(m *MockUserCreator) {
				m.EXPECT().
					Create(gomock.Any(), "john_doe", "john@example.com", "secret123", "John", "Doe", "").
					Return(nil, errors.New("db error"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockUserCreator(ctrl)
			tt.mockSetup(mockSvc)

			handler := NewCreateUserHandler(mockSvc)

			req := httptest.NewRequest(http.MethodPost, "/users", bytes.NewBufferString(tt.body))
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedError != "" {
				var got ErrorResponse
				assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
				assert.Equal(t, tt.expectedError, got.Message)
				return
			}

			var got CreateUserResponse
			assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
			assert.Equal(t, "User created successfully", got.Message)
			assert.Equal(t, user.ID.String(), got.ID)
			assert.Equal(t, "2025-06-01 12:00:00", got.CreatedAt)

			// The password hash never leaves the server
			assert.NotContains(t, rr.Body.String(), "password")
		})
	}
}

func TestListUsersHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	users := []models.UserDB{
		{ID: uuid.New(), Username: "alice"},
		{ID: uuid.New(), Username: "bob"},
	}

	tests := []struct {
		name          string
		query         string
		mockSetup     func(m *MockUserLister)
		expectedCode  int
		expectedError string
		wantNext      *int
		wantPrev      *int
	}{
		{
			name:  "defaults",
			query: "",
			mockSetup: func(m *MockUserLister) {
				m.EXPECT().List(gomock.Any(), 1, 10).Return(users, int64(2), nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:  "middle page",
			query: "?page=2&per_page=1",
			mockSetup: func(m *MockUserLister) {
				m.EXPECT().List(gomock.Any(), 2, 1).Return(users[1:], int64(3), nil)
			},
			expectedCode: http.StatusOK,
			wantNext:     intPtr(3),
			wantPrev:     intPtr(1),
		},
		{
			name:          "invalid page",
			query:         "?page=0",
			mockSetup:     func(m *MockUserLister) {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Page number and per_page must be positive integers",
		},
		{
			name:          "non-numeric per_page",
			query:         "?per_page=abc",
			mockSetup:     func(m *MockUserLister) {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Page number and per_page must be positive integers",
		},
		{
			name:  "internal error",
			query: "",
			mockSetup: func(m *MockUserLister) {
				m.EXPECT().List(gomock.Any(), 1, 10).Return(nil, int64(0), errors.New("db error"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockUserLister(ctrl)
			tt.mockSetup(mockSvc)

			handler := NewListUsersHandler(mockSvc)

			req := httptest.NewRequest(http.MethodGet, "/users"+tt.query, nil)
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedError != "" {
				var got ErrorResponse
				assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
				assert.Equal(t, tt.expectedError, got.Message)
				return
			}

			var got UserListResponse
			assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
			assert.Equal(t, tt.wantNext, got.NextPage)
			assert.Equal(t, tt.wantPrev, got.PrevPage)
			assert.NotEmpty(t, got.Users)
		})
	}
}

func TestGetUserHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	id := uuid.New()
	user := &models.UserDB{ID: id, Username: "alice", Email: "alice@example.com"}

	tests := []struct {
		name          string
		id            string
		mockSetup     func(m *MockUserGetter)
		expectedCode  int
		expectedError string
	}{
		{
			name: "found",
			id:   id.String(),
			mockSetup: func(m *MockUserGetter) {
				m.EXPECT().Get(gomock.Any(), id).Return(user, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:          "malformed id",
			id:            "not-a-uuid",
			mockSetup:     func(m *MockUserGetter) {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid id format",
		},
		{
			name: "not found",
			id:   id.String(),
			mockSetup: func(m *MockUserGetter) {
				m.EXPECT().Get(gomock.Any(), id).Return(nil, services.ErrUserNotFound)
			},
			expectedCode:  http.StatusNotFound,
			expectedError: "User not found",
		},
		{
			name: "internal error",
			id:   id.String(),
			mockSetup: func(m *MockUserGetter) {
				m.EXPECT().Get(gomock.Any(), id).Return(nil, errors.New("db error"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockUserGetter(ctrl)
			tt.mockSetup(mockSvc)

			r := chi.NewRouter()
			r.Get("/users/{id}", NewGetUserHandler(mockSvc))

			req := httptest.NewRequest(http.MethodGet, "/users/"+tt.id, nil)
			rr := httptest.NewRecorder()

			r.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedError != "" {
				var got ErrorResponse
				assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
				assert.Equal(t, tt.expectedError, got.Message)
				return
			}

			var got UserResponse
			assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
			assert.Equal(t, id.String(), got.ID)
			assert.Equal(t, "alice", got.Username)
		})
	}
}

func TestUpdateUserHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	id := uuid.New()
	updated := &models.UserDB{ID: id, Username: "renamed", Email: "alice@example.com"}

	tests := []struct {
		name          string
		id            string
		body          string
		mockSetup     func(m *MockUserUpdater)
		expectedCode  int
		expectedError string
	}{
		{
			name: "success",
			id:   id.String(),
			body: `{"username":"renamed"}`,
			mockSetup: func(m *MockUserUpdater) {
				m.EXPECT().
					Update(gomock.Any(), id, gomock.Any()).
					Return(updated, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:          "malformed id",
			id:            "not-a-uuid",
			body:          `{"username":"renamed"}`,
			mockSetup:     func(m *MockUserUpdater) {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid id format",
		},
		{
			name:          "invalid json",
			id:            id.String(),
			body:          `{invalid`,
			mockSetup:     func(m *MockUserUpdater) {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
		{
			name:          "empty update",
			id:            id.String(),
			body:          `{}`,
			mockSetup:     func(m *MockUserUpdater) {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Missing fields to update",
		},
		{
			name: "not found",
			id:   id.String(),
			body: `{"username":"renamed"}`,
			mockSetup: func(m *MockUserUpdater) {
				m.EXPECT().
					Update(gomock.Any(), id, gomock.Any()).
					Return(nil, services.ErrUserNotFound)
			},
			expectedCode:  http.StatusNotFound,
			expectedError: "User not found",
		},
		{
			name: "duplicate username",
			id:   id.String(),
			body: `{"username":"taken"}`,
			mockSetup: func(m *MockUserUpdater) {
				m.EXPECT().
					Update(gomock.Any(), id, gomock.Any()).
					Return(nil, services.ErrUserAlreadyExists)
			},
			expectedCode:  http.StatusConflict,
			expectedError: "User with that username or email already exists",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockUserUpdater(ctrl)
			tt.mockSetup(mockSvc)

			r := chi.NewRouter()
			r.Put("/users/{id}", NewUpdateUserHandler(mockSvc))

			req := httptest.NewRequest(http.MethodPut, "/users/"+tt.id, strings.NewReader(tt.body))
			rr := httptest.NewRecorder()

			r.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedError != "" {
				var got ErrorResponse
				assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
				assert.Equal(t, tt.expectedError, got.Message)
				return
			}

			var got UpdateUserResponse
			assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
			assert.Equal(t, "User updated successfully", got.Message)
			assert.Equal(t, "renamed", got.Username)
		})
	}
}

func TestDeleteUserHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	id := uuid.New()

	tests := []struct {
		name          string
		id            string
		mockSetup     func(m *MockUserDeleter)
		expectedCode  int
		expectedBody  string
	}{
		{
			name: "success",
			id:   id.String(),
			mockSetup: func(m *MockUserDeleter) {
				m.EXPECT().Delete(gomock.Any(), id).Return(nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: "User deleted successfully",
		},
		{
			name:         "malformed id",
			id:           "not-a-uuid",
			mockSetup:    func(m *MockUserDeleter) {},
			expectedCode: http.StatusBadRequest,
			expectedBody: "Invalid id format",
		},
		{
			name: "not found",
			id:   id.String(),
			mockSetup: func(m *MockUserDeleter) {
				m.EXPECT().Delete(gomock.Any(), id).Return(services.ErrUserNotFound)
			},
			expectedCode: http.StatusNotFound,
			expectedBody: "User not found",
		},
		{
			name: "internal error",
			id:   id.String(),
			mockSetup: func(m *MockUserDeleter) {
				m.EXPECT().Delete(gomock.Any(), id).Return(errors.New("db error"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockUserDeleter(ctrl)
			tt.mockSetup(mockSvc)

			r := chi.NewRouter()
			r.Delete("/users/{id}", NewDeleteUserHandler(mockSvc))

			req := httptest.NewRequest(http.MethodDelete, "/users/"+tt.id, nil)
			rr := httptest.NewRecorder()

			r.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			var got map[string]string
			assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
			assert.Equal(t, tt.expectedBody, got["message"])
		})
	}
}

func intPtr(v int) *int { return &v }
