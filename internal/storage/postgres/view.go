package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"

	"newsgate/internal/apperr"
	"newsgate/internal/domain"
)

// sourceArticles projects posts and comments onto one column set.
// Comments take "Re: <post title>" as subject since WordPress stores none.
const sourceArticles = `
	WITH source AS (
		SELECT
			'post'::text                     AS source_kind,
			p.id                             AS native_id,
			COALESCE(u.display_name, '')     AS author_name,
			COALESCE(u.user_email, '')       AS author_email,
			p.post_title                     AS subject,
			p.post_date_gmt                  AS created_at,
			p.post_content                   AS body,
			NULLIF(p.post_parent, 0)         AS parent_post_id,
			NULL::bigint                     AS parent_comment_id
		FROM {posts} p
		LEFT JOIN {users} u ON u.id = p.post_author
		UNION ALL
		SELECT
			'comment'::text,
			c.comment_id,
			COALESCE(NULLIF(u.display_name, ''), c.comment_author),
			COALESCE(NULLIF(c.comment_author_email, ''), u.user_email, ''),
			'Re: ' || p.post_title,
			c.comment_date_gmt,
			c.comment_content,
			c.comment_post_id,
			NULLIF(c.comment_parent, 0)
		FROM {comments} c
		JOIN {posts} p ON p.id = c.comment_post_id
		LEFT JOIN {users} u ON u.id = c.user_id AND c.user_id <> 0
	)`

const articlesQuery = sourceArticles + `
	SELECT
		m.article_number,
		m.message_id,
		s.source_kind,
		s.native_id,
		s.author_name,
		s.author_email,
		s.subject,
		s.created_at,
		s.body,
		pp.message_id AS post_reference,
		pc.message_id AS comment_reference
	FROM nntp_articles m
	JOIN source s ON s.source_kind = m.source_kind AND s.native_id = m.native_id
	LEFT JOIN nntp_articles pp
		ON pp.newsgroup = m.newsgroup AND pp.source_kind = 'post' AND pp.native_id = s.parent_post_id
	LEFT JOIN nntp_articles pc
		ON pc.newsgroup = m.newsgroup AND pc.source_kind = 'comment' AND pc.native_id = s.parent_comment_id
	WHERE m.newsgroup = $1`

const sinceQuery = sourceArticles + `
	SELECT m.newsgroup, m.article_number, m.message_id, m.source_kind, m.native_id
	FROM nntp_articles m
	JOIN source s ON s.source_kind = m.source_kind AND s.native_id = m.native_id
	WHERE m.newsgroup = $1 AND s.created_at >= $2
	ORDER BY m.article_number`

type articleRow struct {
	Number           int64             `db:"article_number"`
	MessageID        string            `db:"message_id"`
	Kind             domain.SourceKind `db:"source_kind"`
	NativeID         int64             `db:"native_id"`
	AuthorName       string            `db:"author_name"`
	AuthorEmail      string            `db:"author_email"`
	Subject          string            `db:"subject"`
	CreatedAt        time.Time         `db:"created_at"`
	Body             string            `db:"body"`
	PostReference    sql.NullString    `db:"post_reference"`
	CommentReference sql.NullString    `db:"comment_reference"`
}

func (r articleRow) toDomain() domain.Article {
	a := domain.Article{
		Number:      r.Number,
		MessageID:   r.MessageID,
		Ref:         domain.SourceRef{Kind: r.Kind, NativeID: r.NativeID},
		AuthorName:  r.AuthorName,
		AuthorEmail: r.AuthorEmail,
		Subject:     r.Subject,
		Date:        r.CreatedAt.UTC(),
		Body:        r.Body,
	}
	if r.PostReference.Valid {
		a.References = append(a.References, r.PostReference.String)
	}
	if r.CommentReference.Valid {
		a.References = append(a.References, r.CommentReference.String)
	}
	return a
}

// ArticleView answers article queries by joining the blog tables with the
// mapping. Rows stay visible after being unpublished; numbering is permanent.
type ArticleView struct {
	db          *sqlx.DB
	articlesSQL string
	sinceSQL    string
}

func NewArticleView(db *sqlx.DB, schema Schema) *ArticleView {
	return &ArticleView{
		db:          db,
		articlesSQL: schema.expand(articlesQuery),
		sinceSQL:    schema.expand(sinceQuery),
	}
}

// Articles returns the articles of group within rng ordered by number.
// References to parents without a mapping entry are left out.
func (v *ArticleView) Articles(ctx context.Context, group string, rng domain.Range) ([]domain.Article, error) {
	clause, args := rangeClause("m.article_number", rng, 2)
	query := v.articlesSQL + clause + " ORDER BY m.article_number"

	var rows []articleRow
	if err := sqlx.SelectContext(ctx, v.db, &rows, query, append([]any{group}, args...)...); err != nil {
		return nil, apperr.NewStorage("select articles", err)
	}

	articles := make([]domain.Article, 0, len(rows))
	for _, r := range rows {
		articles = append(articles, r.toDomain())
	}
	return articles, nil
}

// Since returns entries whose source row was created at or after t.
func (v *ArticleView) Since(ctx context.Context, group string, t time.Time) ([]domain.MappingEntry, error) {
	var entries []domain.MappingEntry
	if err := sqlx.SelectContext(ctx, v.db, &entries, v.sinceSQL, group, t); err != nil {
		return nil, apperr.NewStorage("select new articles", err)
	}
	return entries, nil
}
