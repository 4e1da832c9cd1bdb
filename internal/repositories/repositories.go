package repositories

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/blog-api/internal/middlewares"
)

// qb builds all repository SQL with Postgres placeholders.
var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// ext returns the executor for the current request: the transaction opened by
// the tx middleware when present, otherwise the pooled connection.
func ext(ctx context.Context, db *sqlx.DB) sqlx.ExtContext {
	if tx := middlewares.GetTxFromContext(ctx); tx != nil {
		return tx
	}
	return db
}
