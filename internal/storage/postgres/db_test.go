package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"

	"newsgate/internal/domain"
)

func TestIsUniqueViolation(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"plain error", errors.New("boom"), false},
		{"pq unique", &pq.Error{Code: "23505"}, true},
		{"pq other", &pq.Error{Code: "23503"}, false},
		{"pgx unique", &pgconn.PgError{Code: "23505"}, true},
		{"pgx other", &pgconn.PgError{Code: "40001"}, false},
		{"wrapped pgx unique", fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505"}), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isUniqueViolation(tt.err))
		})
	}
}

func TestSchemaExpand(t *testing.T) {
	schema := Schema{TablePrefix: "blog_"}

	got := schema.expand("SELECT * FROM {posts} JOIN {comments} ON true JOIN {users} ON true")

	assert.Equal(t, "SELECT * FROM blog_posts JOIN blog_comments ON true JOIN blog_users ON true", got)
}

func TestRangeClause(t *testing.T) {
	clause, args := rangeClause("m.article_number", domain.From(5), 2)
	assert.Equal(t, " AND m.article_number >= $2", clause)
	assert.Equal(t, []any{int64(5)}, args)

	clause, args = rangeClause("article_number", domain.Between(3, 9), 4)
	assert.Equal(t, " AND article_number BETWEEN $4 AND $5", clause)
	assert.Equal(t, []any{int64(3), int64(9)}, args)
}

func TestArticleRowToDomain(t *testing.T) {
	row := articleRow{
		Number:    3,
		MessageID: "<comment-4@news.example.com>",
		Kind:      domain.SourceKindComment,
		NativeID:  4,
		Subject:   "Re: Hello",
	}
	row.PostReference.String, row.PostReference.Valid = "<post-7@news.example.com>", true
	row.CommentReference.String, row.CommentReference.Valid = "<comment-3@news.example.com>", true

	a := row.toDomain()

	assert.Equal(t, domain.SourceRef{Kind: domain.SourceKindComment, NativeID: 4}, a.Ref)
	assert.Equal(t, []string{"<post-7@news.example.com>", "<comment-3@news.example.com>"}, a.References)

	row.CommentReference.Valid = false
	assert.Equal(t, []string{"<post-7@news.example.com>"}, row.toDomain().References)
}
