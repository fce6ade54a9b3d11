package nntp

import (
	"context"
	"fmt"
	"path"
	"time"

	"newsgate/internal/apperr"
	"newsgate/internal/domain"
)

// ListEntry is one line of a LIST response.
type ListEntry struct {
	Name    string
	High    int64
	Low     int64
	Posting string
}

func (l ListEntry) String() string {
	return fmt.Sprintf("%s %d %d %s", l.Name, l.High, l.Low, l.Posting)
}

// Backend is the storage surface an NNTP command loop calls into. It serves
// a single newsgroup and rejects every other name with ErrNotFound.
type Backend struct {
	engine      *Engine
	group       string
	description string
}

func NewBackend(engine *Engine) *Backend {
	return &Backend{
		engine:      engine,
		group:       domain.Newsgroup,
		description: domain.NewsgroupDescription,
	}
}

func (b *Backend) GroupExists(name string) bool {
	return name == b.group
}

func (b *Backend) checkGroup(name string) error {
	if !b.GroupExists(name) {
		return fmt.Errorf("group %s: %w", name, apperr.ErrNotFound)
	}
	return nil
}

func (b *Backend) Group(ctx context.Context, name string) (domain.GroupStats, error) {
	if err := b.checkGroup(name); err != nil {
		return domain.GroupStats{}, err
	}
	return b.engine.GroupStats(ctx, name)
}

// List reports posting as "n" since POST is not supported.
func (b *Backend) List(ctx context.Context) ([]ListEntry, error) {
	stats, err := b.engine.GroupStats(ctx, b.group)
	if err != nil {
		return nil, err
	}
	return []ListEntry{{Name: b.group, High: stats.High, Low: stats.Low, Posting: "n"}}, nil
}

func (b *Backend) Stat(ctx context.Context, name string, n int64) (bool, error) {
	if err := b.checkGroup(name); err != nil {
		return false, err
	}
	return b.engine.Stat(ctx, name, n)
}

func (b *Backend) Article(ctx context.Context, name, id string) (*Result, error) {
	return b.article(ctx, name, id, PartFull)
}

func (b *Backend) Head(ctx context.Context, name, id string) (*Result, error) {
	return b.article(ctx, name, id, PartHead)
}

func (b *Backend) Body(ctx context.Context, name, id string) (*Result, error) {
	return b.article(ctx, name, id, PartBody)
}

func (b *Backend) article(ctx context.Context, name, id string, part Part) (*Result, error) {
	if err := b.checkGroup(name); err != nil {
		return nil, err
	}
	return b.engine.Article(ctx, name, id, part)
}

func (b *Backend) Last(ctx context.Context, name string, current int64) (int64, error) {
	if err := b.checkGroup(name); err != nil {
		return 0, err
	}
	return b.engine.Last(ctx, name, current)
}

func (b *Backend) Next(ctx context.Context, name string, current int64) (int64, error) {
	if err := b.checkGroup(name); err != nil {
		return 0, err
	}
	return b.engine.Next(ctx, name, current)
}

func (b *Backend) XOver(ctx context.Context, name string, rng domain.Range) ([]string, error) {
	if err := b.checkGroup(name); err != nil {
		return nil, err
	}
	return b.engine.Overview(ctx, name, rng)
}

func (b *Backend) XHdr(ctx context.Context, name, header string, rng domain.Range) ([]string, error) {
	if err := b.checkGroup(name); err != nil {
		return nil, err
	}
	return b.engine.XHdr(ctx, name, header, rng)
}

// XPat is not implemented: header names do not map onto blog columns.
func (b *Backend) XPat(ctx context.Context, name, header string, rng domain.Range, patterns ...string) ([]string, error) {
	return nil, fmt.Errorf("xpat: %w", apperr.ErrUnsupported)
}

func (b *Backend) ListGroup(ctx context.Context, name string) ([]int64, error) {
	if err := b.checkGroup(name); err != nil {
		return nil, err
	}
	return b.engine.ListGroup(ctx, name)
}

func (b *Backend) XGTitle(pattern string) []string {
	if pattern != "" {
		if ok, _ := path.Match(pattern, b.group); !ok {
			return nil
		}
	}
	return []string{b.group + " " + b.description}
}

func (b *Backend) NewGroups(ctx context.Context, since time.Time) ([]string, error) {
	return nil, fmt.Errorf("newgroups: %w", apperr.ErrUnsupported)
}

// NewNews returns message-ids of articles created at or after since in the
// groups matching the wildmat pattern.
func (b *Backend) NewNews(ctx context.Context, pattern string, since time.Time) ([]string, error) {
	if pattern != "" {
		if ok, _ := path.Match(pattern, b.group); !ok {
			return nil, nil
		}
	}

	entries, err := b.engine.NewNews(ctx, b.group, since)
	if err != nil {
		return nil, err
	}

	ids := make([]string, len(entries))
	for i, e := range entries {
		ids[i] = e.MessageID
	}
	return ids, nil
}

func (b *Backend) Post(ctx context.Context, name string, article []byte) error {
	return fmt.Errorf("post: %w", apperr.ErrUnsupported)
}
