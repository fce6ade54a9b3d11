package domain

import (
	"cmp"
	"slices"
	"time"
)

// Newsgroup is the only group served. Operations still take the group name
// so that more groups can be added without interface changes.
const (
	Newsgroup            = "blog.singpolyma"
	NewsgroupDescription = "Singpolyma"
)

// SourceKind tells which blog table a row comes from.
type SourceKind string

const (
	SourceKindPost    SourceKind = "post"
	SourceKindComment SourceKind = "comment"
)

func (k SourceKind) Valid() bool {
	return k == SourceKindPost || k == SourceKindComment
}

// rank orders posts before comments when timestamps tie.
func (k SourceKind) rank() int {
	if k == SourceKindPost {
		return 0
	}
	return 1
}

// SourceRef identifies a row by its native id within its own table.
type SourceRef struct {
	Kind     SourceKind `db:"source_kind" json:"source_kind"`
	NativeID int64      `db:"native_id" json:"native_id"`
}

// SourceArticle is an eligible post or comment waiting to be numbered.
type SourceArticle struct {
	SourceRef
	CreatedAt time.Time `db:"created_at"`
}

// MappingEntry is the persisted identity of an article inside a newsgroup.
// Entries are never updated or removed once written.
type MappingEntry struct {
	Newsgroup string `db:"newsgroup" json:"newsgroup"`
	Number    int64  `db:"article_number" json:"article_number"`
	MessageID string `db:"message_id" json:"message_id"`
	SourceRef
}

// Article is a source row joined with its mapping entry.
type Article struct {
	Number      int64
	MessageID   string
	Ref         SourceRef
	AuthorName  string
	AuthorEmail string
	Subject     string
	Date        time.Time
	Body        string
	// References holds the post parent first, then the comment parent.
	References []string
}

// Author renders the From value.
func (a Article) Author() string {
	if a.AuthorEmail == "" {
		return a.AuthorName
	}
	return a.AuthorName + " <" + a.AuthorEmail + ">"
}

// InReplyTo returns the most specific reference, or "" for top-level posts.
func (a Article) InReplyTo() string {
	if len(a.References) == 0 {
		return ""
	}
	return a.References[len(a.References)-1]
}

type GroupStats struct {
	Count int64 `db:"total"`
	Low   int64 `db:"low"`
	High  int64 `db:"high"`
}

// SortChronological orders candidates by creation time, then kind, then
// native id, so that every synchronizer appends them in the same order.
func SortChronological(articles []SourceArticle) {
	slices.SortFunc(articles, func(a, b SourceArticle) int {
		if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
			return c
		}
		if c := cmp.Compare(a.Kind.rank(), b.Kind.rank()); c != 0 {
			return c
		}
		return cmp.Compare(a.NativeID, b.NativeID)
	})
}
