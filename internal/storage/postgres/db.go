package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"newsgate/internal/domain"
)

const uniqueViolation = "23505"

// Open connects with either the "postgres" (lib/pq) or "pgx" driver and
// checks the connection.
func Open(ctx context.Context, driver, dsn string) (*sqlx.DB, error) {
	db, err := sqlx.ConnectContext(ctx, driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("connect %s: %w", driver, err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return db, nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == uniqueViolation
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == uniqueViolation
	}
	return false
}

// Schema locates the blog tables. WordPress installs may use a prefix
// other than "wp_".
type Schema struct {
	TablePrefix string
}

func (s Schema) expand(query string) string {
	return strings.NewReplacer(
		"{posts}", s.TablePrefix+"posts",
		"{comments}", s.TablePrefix+"comments",
		"{users}", s.TablePrefix+"users",
	).Replace(query)
}

// rangeClause restricts column to rng, numbering placeholders from next.
func rangeClause(column string, rng domain.Range, next int) (string, []any) {
	if rng.Open {
		return fmt.Sprintf(" AND %s >= $%d", column, next), []any{rng.Low}
	}
	return fmt.Sprintf(" AND %s BETWEEN $%d AND $%d", column, next, next+1), []any{rng.Low, rng.High}
}
