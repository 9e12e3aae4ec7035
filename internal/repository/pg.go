package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// pgQuerier es la parte de *pgxpool.Pool que usan los repos de lectura.
type pgQuerier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}
