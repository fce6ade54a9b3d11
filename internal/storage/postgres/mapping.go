package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"newsgate/internal/apperr"
	"newsgate/internal/domain"
)

// MappingStore persists article numbers and message-ids for blog rows.
// Numbers come from a per-newsgroup counter row that is bumped in the same
// transaction as the mapping insert, so concurrent appends are serialized
// per group and a rejected insert leaves no gap.
type MappingStore struct {
	db *sqlx.DB
	tx *TransactionManager
}

func NewMappingStore(db *sqlx.DB) *MappingStore {
	return &MappingStore{db: db, tx: NewTransactionManager(db)}
}

func (s *MappingStore) Append(ctx context.Context, group string, ref domain.SourceRef, messageID string) (int64, error) {
	if GetTxFromContext(ctx) == nil {
		var number int64
		err := s.tx.WithTransaction(ctx, func(txCtx context.Context) error {
			n, err := s.Append(txCtx, group, ref, messageID)
			number = n
			return err
		})
		return number, err
	}

	exec := GetExecutor(ctx, s.db)

	var number int64
	err := exec.QueryRowxContext(ctx, `
		INSERT INTO nntp_newsgroups (name, last_number) VALUES ($1, 1)
		ON CONFLICT (name) DO UPDATE SET last_number = nntp_newsgroups.last_number + 1
		RETURNING last_number`,
		group,
	).Scan(&number)
	if err != nil {
		return 0, apperr.NewStorage("allocate article number", err)
	}

	_, err = exec.ExecContext(ctx, `
		INSERT INTO nntp_articles (newsgroup, article_number, message_id, source_kind, native_id)
		VALUES ($1, $2, $3, $4, $5)`,
		group, number, messageID, ref.Kind, ref.NativeID,
	)
	if isUniqueViolation(err) {
		return 0, fmt.Errorf("%s %d: %w", ref.Kind, ref.NativeID, apperr.ErrConflict)
	}
	if err != nil {
		return 0, apperr.NewStorage("insert mapping entry", err)
	}

	return number, nil
}

func (s *MappingStore) MessageID(ctx context.Context, group string, number int64) (string, error) {
	var id string
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &id,
		`SELECT message_id FROM nntp_articles WHERE newsgroup = $1 AND article_number = $2`,
		group, number,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return "", fmt.Errorf("article %d: %w", number, apperr.ErrNotFound)
	}
	if err != nil {
		return "", apperr.NewStorage("select message-id", err)
	}
	return id, nil
}

func (s *MappingStore) MessageIDBySource(ctx context.Context, group string, ref domain.SourceRef) (string, error) {
	var id string
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &id, `
		SELECT message_id FROM nntp_articles
		WHERE newsgroup = $1 AND source_kind = $2 AND native_id = $3`,
		group, ref.Kind, ref.NativeID,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return "", fmt.Errorf("%s %d: %w", ref.Kind, ref.NativeID, apperr.ErrNotFound)
	}
	if err != nil {
		return "", apperr.NewStorage("select message-id by source", err)
	}
	return id, nil
}

func (s *MappingStore) NumberByMessageID(ctx context.Context, messageID string) (string, int64, error) {
	var entry domain.MappingEntry
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &entry, `
		SELECT newsgroup, article_number, message_id, source_kind, native_id
		FROM nntp_articles WHERE message_id = $1`,
		messageID,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return "", 0, fmt.Errorf("message %s: %w", messageID, apperr.ErrNotFound)
	}
	if err != nil {
		return "", 0, apperr.NewStorage("select article number", err)
	}
	return entry.Newsgroup, entry.Number, nil
}

func (s *MappingStore) Stats(ctx context.Context, group string) (domain.GroupStats, error) {
	var stats domain.GroupStats
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &stats, `
		SELECT
			COUNT(*) AS total,
			COALESCE(MIN(article_number), 0) AS low,
			COALESCE(MAX(article_number), 0) AS high
		FROM nntp_articles
		WHERE newsgroup = $1`,
		group,
	)
	if err != nil {
		return domain.GroupStats{}, apperr.NewStorage("select group stats", err)
	}
	return stats, nil
}

func (s *MappingStore) Count(ctx context.Context, group string, rng domain.Range) (int64, error) {
	clause, args := rangeClause("article_number", rng, 2)

	var count int64
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &count,
		`SELECT COUNT(*) FROM nntp_articles WHERE newsgroup = $1`+clause,
		append([]any{group}, args...)...,
	)
	if err != nil {
		return 0, apperr.NewStorage("count articles", err)
	}
	return count, nil
}

// Before returns the greatest number strictly less than n.
func (s *MappingStore) Before(ctx context.Context, group string, n int64) (int64, error) {
	return s.neighbor(ctx, `
		SELECT article_number FROM nntp_articles
		WHERE newsgroup = $1 AND article_number < $2
		ORDER BY article_number DESC
		LIMIT 1`, group, n)
}

// After returns the least number strictly greater than n.
func (s *MappingStore) After(ctx context.Context, group string, n int64) (int64, error) {
	return s.neighbor(ctx, `
		SELECT article_number FROM nntp_articles
		WHERE newsgroup = $1 AND article_number > $2
		ORDER BY article_number ASC
		LIMIT 1`, group, n)
}

func (s *MappingStore) neighbor(ctx context.Context, query, group string, n int64) (int64, error) {
	var number int64
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &number, query, group, n)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("neighbor of %d: %w", n, apperr.ErrNotFound)
	}
	if err != nil {
		return 0, apperr.NewStorage("select neighbor", err)
	}
	return number, nil
}

func (s *MappingStore) Numbers(ctx context.Context, group string) ([]int64, error) {
	var numbers []int64
	err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &numbers,
		`SELECT article_number FROM nntp_articles WHERE newsgroup = $1 ORDER BY article_number`,
		group,
	)
	if err != nil {
		return nil, apperr.NewStorage("list article numbers", err)
	}
	return numbers, nil
}
