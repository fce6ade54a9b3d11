package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewsgroupIsPinned(t *testing.T) {
	assert.Equal(t, "blog.singpolyma", Newsgroup)
}

func TestFormatMessageID(t *testing.T) {
	assert.Equal(t, "<post-7@news.example.com>",
		FormatMessageID(SourceRef{Kind: SourceKindPost, NativeID: 7}, "news.example.com"))
	assert.Equal(t, "<comment-3@host>",
		FormatMessageID(SourceRef{Kind: SourceKindComment, NativeID: 3}, "host"))
}

func TestParseMessageID_RoundTrip(t *testing.T) {
	ref := SourceRef{Kind: SourceKindComment, NativeID: 42}

	got, host, err := ParseMessageID(FormatMessageID(ref, "blog.example.org"))
	require.NoError(t, err)
	assert.Equal(t, ref, got)
	assert.Equal(t, "blog.example.org", host)
}

func TestParseMessageID_Malformed(t *testing.T) {
	for _, id := range []string{"", "<>", "post-1@host", "<post-1>", "<page-1@host>", "<post-x@host>", "<post-1@>"} {
		_, _, err := ParseMessageID(id)
		assert.Error(t, err, id)
	}
}

func TestParseRange(t *testing.T) {
	cases := map[string]Range{
		"5":     Single(5),
		"3-":    From(3),
		"2-9":   Between(2, 9),
		" 1-1 ": Between(1, 1),
	}
	for in, want := range cases {
		got, err := ParseRange(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	for _, in := range []string{"", "-", "-4", "a-b", "1-x"} {
		_, err := ParseRange(in)
		assert.Error(t, err, in)
	}
}

func TestRange_Contains(t *testing.T) {
	assert.True(t, From(3).Contains(1000))
	assert.False(t, From(3).Contains(2))
	assert.True(t, Between(2, 4).Contains(4))
	assert.False(t, Between(2, 4).Contains(5))
	assert.Equal(t, "7", Single(7).String())
	assert.Equal(t, "1-", From(1).String())
	assert.Equal(t, "1-3", Between(1, 3).String())
}

func TestArticle_AuthorAndInReplyTo(t *testing.T) {
	a := Article{AuthorName: "Stephen"}
	assert.Equal(t, "Stephen", a.Author())
	assert.Equal(t, "", a.InReplyTo())

	a.AuthorEmail = "s@example.com"
	a.References = []string{"<post-7@h>", "<comment-2@h>"}
	assert.Equal(t, "Stephen <s@example.com>", a.Author())
	assert.Equal(t, "<comment-2@h>", a.InReplyTo())
}

func TestSortChronological(t *testing.T) {
	base := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	articles := []SourceArticle{
		{SourceRef: SourceRef{Kind: SourceKindComment, NativeID: 9}, CreatedAt: base.Add(time.Hour)},
		{SourceRef: SourceRef{Kind: SourceKindComment, NativeID: 2}, CreatedAt: base},
		{SourceRef: SourceRef{Kind: SourceKindPost, NativeID: 8}, CreatedAt: base},
		{SourceRef: SourceRef{Kind: SourceKindPost, NativeID: 7}, CreatedAt: base},
		{SourceRef: SourceRef{Kind: SourceKindPost, NativeID: 1}, CreatedAt: base.Add(-time.Hour)},
	}

	SortChronological(articles)

	want := []SourceRef{
		{Kind: SourceKindPost, NativeID: 1},
		{Kind: SourceKindPost, NativeID: 7},
		{Kind: SourceKindPost, NativeID: 8},
		{Kind: SourceKindComment, NativeID: 2},
		{Kind: SourceKindComment, NativeID: 9},
	}
	for i, a := range articles {
		assert.Equal(t, want[i], a.SourceRef, "position %d", i)
	}
}
