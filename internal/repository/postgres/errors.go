package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	"logidocs/internal/repository"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`)

// containsPattern turns user input into an ILIKE substring pattern. LIKE
// metacharacters match literally under Postgres' default backslash escape.
func containsPattern(term string) string {
	return "%" + likeEscaper.Replace(term) + "%"
}

// mapError translates constraint violations into repository errors and leaves
// everything else untouched.
func mapError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}
	switch pgErr.Code {
	case pgUniqueViolation:
		return fmt.Errorf("%w: %s", repository.ErrDuplicate, pgErr.ConstraintName)
	case pgForeignKeyViolation:
		return fmt.Errorf("%w: %s", repository.ErrReferenced, pgErr.ConstraintName)
	default:
		return err
	}
}

// execTx runs stmts in a single transaction. The rows affected by the last
// statement decide whether the target existed; none means sql.ErrNoRows.
func execTx(ctx context.Context, db *sql.DB, id string, stmts ...string) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	var last sql.Result
	for _, q := range stmts {
		res, err := tx.ExecContext(ctx, q, id)
		if err != nil {
			return mapError(err)
		}
		last = res
	}
	n, err := last.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return tx.Commit()
}

func nullString(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}
