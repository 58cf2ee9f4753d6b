package checker

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// RowQuerier is the slice of pgx the Postgres checker needs. Both
// *pgxpool.Pool and *pgx.Conn satisfy it.
type RowQuerier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

var _ RowQuerier = (*pgxpool.Pool)(nil)

// Postgres returns an existence check that runs
//
//	SELECT EXISTS(SELECT 1 FROM <table> WHERE <column> = $1)
//
// against db. The table may be schema-qualified with a dot; both identifiers
// are quote-sanitized. Panics when table or column is empty.
func Postgres(db RowQuerier, table, column string) func(ctx context.Context, value string) (bool, error) {
	if db == nil {
		panic("checker: db must not be nil")
	}
	if table == "" {
		panic("checker: table must not be empty")
	}
	if column == "" {
		panic("checker: column must not be empty")
	}

	query := fmt.Sprintf(
		"SELECT EXISTS(SELECT 1 FROM %s WHERE %s = $1)",
		pgx.Identifier(strings.Split(table, ".")).Sanitize(),
		pgx.Identifier{column}.Sanitize(),
	)

	return func(ctx context.Context, value string) (bool, error) {
		var exists bool
		if err := db.QueryRow(ctx, query, value).Scan(&exists); err != nil {
			return false, errors.Join(ErrPostgresQueryFailed, err)
		}
		return exists, nil
	}
}
