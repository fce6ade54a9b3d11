// Package nntp answers NNTP read commands from the article mapping and the
// blog tables.
package nntp

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"newsgate/internal/apperr"
	"newsgate/internal/domain"
	"newsgate/internal/render"
)

// Engine runs every group-scoped read after a catch-up sync, so a read
// always sees rows published before it started.
type Engine struct {
	syncer   Syncer
	mapping  Mapping
	view     ArticleView
	renderer render.Renderer
	hostname string
	logger   *slog.Logger
}

// NewEngine builds an Engine. A nil renderer falls back to render.Plain.
func NewEngine(
	syncer Syncer,
	mapping Mapping,
	view ArticleView,
	renderer render.Renderer,
	hostname string,
	logger *slog.Logger,
) *Engine {
	if renderer == nil {
		renderer = render.Plain{}
	}
	return &Engine{
		syncer:   syncer,
		mapping:  mapping,
		view:     view,
		renderer: renderer,
		hostname: hostname,
		logger:   logger.With("component", "engine"),
	}
}

func (e *Engine) sync(ctx context.Context, group string) error {
	if _, err := e.syncer.Sync(ctx, group); err != nil {
		return fmt.Errorf("sync %s: %w", group, err)
	}
	return nil
}

// Exists counts the articles in rng.
func (e *Engine) Exists(ctx context.Context, group string, rng domain.Range) (int64, error) {
	if err := e.sync(ctx, group); err != nil {
		return 0, err
	}
	return e.mapping.Count(ctx, group, rng)
}

// FirstArticle returns the lowest number, or 0 for an empty group.
func (e *Engine) FirstArticle(ctx context.Context, group string) (int64, error) {
	stats, err := e.GroupStats(ctx, group)
	if err != nil {
		return 0, err
	}
	return stats.Low, nil
}

func (e *Engine) GroupStats(ctx context.Context, group string) (domain.GroupStats, error) {
	if err := e.sync(ctx, group); err != nil {
		return domain.GroupStats{}, err
	}
	return e.mapping.Stats(ctx, group)
}

func (e *Engine) Stat(ctx context.Context, group string, n int64) (bool, error) {
	if err := e.sync(ctx, group); err != nil {
		return false, err
	}
	_, err := e.mapping.MessageID(ctx, group, n)
	if errors.Is(err, apperr.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Article fetches one article by number or by "<message-id>".
func (e *Engine) Article(ctx context.Context, group, id string, part Part) (*Result, error) {
	if err := e.sync(ctx, group); err != nil {
		return nil, err
	}

	articleGroup, n, err := e.resolve(ctx, group, id)
	if err != nil {
		return nil, err
	}

	articles, err := e.view.Articles(ctx, articleGroup, domain.Single(n))
	if err != nil {
		return nil, err
	}
	if len(articles) == 0 {
		return nil, fmt.Errorf("article %s: %w", id, apperr.ErrNotFound)
	}
	a := articles[0]

	result := &Result{Number: a.Number, MessageID: a.MessageID}
	if part != PartBody {
		result.Headers = e.headers(articleGroup, a)
	}
	if part != PartHead {
		body, err := e.renderer.Render(a.Body)
		if err != nil {
			return nil, fmt.Errorf("render article %d: %w", a.Number, err)
		}
		result.Body = body
	}
	return result, nil
}

func (e *Engine) resolve(ctx context.Context, group, id string) (string, int64, error) {
	if domain.IsMessageID(id) {
		return e.mapping.NumberByMessageID(ctx, id)
	}
	n, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return "", 0, fmt.Errorf("article %q: %w", id, apperr.ErrNotFound)
	}
	return group, n, nil
}

// Last returns the greatest number strictly less than n.
func (e *Engine) Last(ctx context.Context, group string, n int64) (int64, error) {
	if err := e.sync(ctx, group); err != nil {
		return 0, err
	}
	return e.mapping.Before(ctx, group, n)
}

// Next returns the least number strictly greater than n.
func (e *Engine) Next(ctx context.Context, group string, n int64) (int64, error) {
	if err := e.sync(ctx, group); err != nil {
		return 0, err
	}
	return e.mapping.After(ctx, group, n)
}

func (e *Engine) Overview(ctx context.Context, group string, rng domain.Range) ([]string, error) {
	if err := e.sync(ctx, group); err != nil {
		return nil, err
	}

	articles, err := e.view.Articles(ctx, group, rng)
	if err != nil {
		return nil, err
	}

	lines := make([]string, 0, len(articles))
	for _, a := range articles {
		body, err := e.renderer.Render(a.Body)
		if err != nil {
			return nil, fmt.Errorf("render article %d: %w", a.Number, err)
		}
		lines = append(lines, e.overviewLine(group, a, body))
	}
	return lines, nil
}

func (e *Engine) ListGroup(ctx context.Context, group string) ([]int64, error) {
	if err := e.sync(ctx, group); err != nil {
		return nil, err
	}
	return e.mapping.Numbers(ctx, group)
}

// XHdr returns "number value" rows. Headers outside the supported set
// produce no rows.
func (e *Engine) XHdr(ctx context.Context, group, header string, rng domain.Range) ([]string, error) {
	if !supportedHeader(header) {
		e.logger.Debug("unsupported xhdr header", "header", header)
		return nil, nil
	}
	if err := e.sync(ctx, group); err != nil {
		return nil, err
	}

	articles, err := e.view.Articles(ctx, group, rng)
	if err != nil {
		return nil, err
	}

	var rows []string
	for _, a := range articles {
		value, ok, err := e.headerValue(group, header, a)
		if err != nil {
			return nil, err
		}
		if ok {
			rows = append(rows, strconv.FormatInt(a.Number, 10)+" "+value)
		}
	}
	return rows, nil
}

// NewNews lists articles whose source row was created at or after since.
func (e *Engine) NewNews(ctx context.Context, group string, since time.Time) ([]domain.MappingEntry, error) {
	if err := e.sync(ctx, group); err != nil {
		return nil, err
	}
	return e.view.Since(ctx, group, since)
}
