package repositories

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/blog-api/internal/middlewares"
	"github.com/sbilibin2017/blog-api/internal/models"
	"github.com/stretchr/testify/assert"
)

func commentRows(id, blogPostID, userID uuid.UUID, text string) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "blog_post_id", "user_id", "comment", "created_at"}).
		AddRow(id.String(), blogPostID.String(), userID.String(), text, time.Now().UTC())
}

func TestCommentReadRepository_GetByID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCommentReadRepository(db)
	id := uuid.New()

	mock.ExpectQuery(`SELECT .+ FROM comments WHERE id = \$1`).
		WithArgs(id).
		WillReturnRows(commentRows(id, uuid.New(), uuid.New(), "Nice post!"))

	comment, err := repo.GetByID(context.Background(), id)
	assert.NoError(t, err)
	assert.Equal(t, id, comment.ID)
	assert.Equal(t, "Nice post!", comment.Comment)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCommentReadRepository_GetByID_NoRows(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCommentReadRepository(db)
	id := uuid.New()

	mock.ExpectQuery(`SELECT .+ FROM comments WHERE id = \$1`).
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	comment, err := repo.GetByID(context.Background(), id)
	assert.NoError(t, err)
	assert.Nil(t, comment)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCommentReadRepository_ListByBlogPost(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCommentReadRepository(db)
	blogPostID := uuid.New()

	mock.ExpectQuery(`SELECT .+ FROM comments WHERE blog_post_id = \$1 ORDER BY created_at ASC, id ASC LIMIT 10 OFFSET 0`).
		WithArgs(blogPostID).
		WillReturnRows(commentRows(uuid.New(), blogPostID, uuid.New(), "first"))

	comments, err := repo.ListByBlogPost(context.Background(), blogPostID, 10, 0)
	assert.NoError(t, err)
	assert.Len(t, comments, 1)
	assert.Equal(t, blogPostID, comments[0].BlogPostID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCommentReadRepository_CountByBlogPost(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCommentReadRepository(db)
	blogPostID := uuid.New()

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM comments WHERE blog_post_id = \$1`).
		WithArgs(blogPostID).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(3)))

	total, err := repo.CountByBlogPost(context.Background(), blogPostID)
	assert.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCommentWriteRepository_Save(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCommentWriteRepository(db)

	comment := &models.CommentDB{
		ID:         uuid.New(),
		BlogPostID: uuid.New(),
		UserID:     uuid.New(),
		Comment:    "Nice post!",
		CreatedAt:  time.Now().UTC(),
	}

	mock.ExpectExec(`INSERT INTO comments`).
		WithArgs(comment.ID, comment.BlogPostID, comment.UserID, comment.Comment, comment.CreatedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Save(context.Background(), comment)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCommentWriteRepository_Update(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCommentWriteRepository(db)
	id := uuid.New()

	mock.ExpectExec(`UPDATE comments SET comment = \$1 WHERE id = \$2`).
		WithArgs("edited", id).
		WillReturnResult(sqlmock.NewResult(0, 1))

	rows, err := repo.Update(context.Background(), id, "edited")
	assert.NoError(t, err)
	assert.Equal(t, int64(1), rows)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCommentWriteRepository_Delete(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCommentWriteRepository(db)
	id := uuid.New()

	mock.ExpectExec(`DELETE FROM comments WHERE id = \$1`).
		WithArgs(id).
		WillReturnResult(sqlmock.NewResult(0, 1))

	rows, err := repo.Delete(context.Background(), id)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), rows)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// Statements issued while the tx middleware is active run on the request
// transaction, not the pooled connection.
func TestRepositories_UseTxFromContext(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()
	sqlxDB := sqlx.NewDb(db, "sqlmock")

	id := uuid.New()

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM comments WHERE id = \$1`).
		WithArgs(id).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	repo := NewCommentWriteRepository(sqlxDB)

	handler := middlewares.TxMiddleware(sqlxDB)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rows, err := repo.Delete(r.Context(), id)
		assert.NoError(t, err)
		assert.Equal(t, int64(1), rows)
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodDelete, "/comments/"+id.String(), nil)
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}
