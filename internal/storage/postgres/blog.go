package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"

	"newsgate/internal/apperr"
	"newsgate/internal/domain"
)

const unnumberedPostsQuery = `
	SELECT 'post' AS source_kind, p.id AS native_id, p.post_date_gmt AS created_at
	FROM {posts} p
	WHERE p.post_type = 'post' AND p.post_status = 'publish'
	  AND NOT EXISTS (
		SELECT 1 FROM nntp_articles m
		WHERE m.source_kind = 'post' AND m.native_id = p.id
	  )`

const unnumberedCommentsQuery = `
	SELECT 'comment' AS source_kind, c.comment_id AS native_id, c.comment_date_gmt AS created_at
	FROM {comments} c
	JOIN {posts} p ON p.id = c.comment_post_id
	WHERE c.comment_approved = '1'
	  AND p.post_type = 'post' AND p.post_status = 'publish'
	  AND NOT EXISTS (
		SELECT 1 FROM nntp_articles m
		WHERE m.source_kind = 'comment' AND m.native_id = c.comment_id
	  )`

// BlogStore reads the blog's own tables. It never writes to them.
type BlogStore struct {
	db            *sqlx.DB
	postsQuery    string
	commentsQuery string
}

func NewBlogStore(db *sqlx.DB, schema Schema) *BlogStore {
	return &BlogStore{
		db:            db,
		postsQuery:    schema.expand(unnumberedPostsQuery),
		commentsQuery: schema.expand(unnumberedCommentsQuery),
	}
}

// Unnumbered returns published posts and approved comments on published
// posts that have no mapping entry yet. The result is unordered.
func (s *BlogStore) Unnumbered(ctx context.Context) ([]domain.SourceArticle, error) {
	var posts []domain.SourceArticle
	if err := sqlx.SelectContext(ctx, s.db, &posts, s.postsQuery); err != nil {
		return nil, apperr.NewStorage("select unnumbered posts", err)
	}

	var comments []domain.SourceArticle
	if err := sqlx.SelectContext(ctx, s.db, &comments, s.commentsQuery); err != nil {
		return nil, apperr.NewStorage("select unnumbered comments", err)
	}

	return append(posts, comments...), nil
}
