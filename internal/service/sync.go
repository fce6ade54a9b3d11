package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"newsgate/internal/apperr"
	"newsgate/internal/domain"
)

// SyncService numbers blog rows that appeared since the last run. It is
// called inline before every read and may race with itself; a lost race
// on a row surfaces as a conflict and is treated as already synced.
type SyncService struct {
	source    BlogSource
	mapping   MappingWriter
	txManager TransactionManager
	publisher Publisher
	hostname  string
	logger    *slog.Logger
}

func NewSyncService(
	source BlogSource,
	mapping MappingWriter,
	txManager TransactionManager,
	publisher Publisher,
	hostname string,
	logger *slog.Logger,
) *SyncService {
	return &SyncService{
		source:    source,
		mapping:   mapping,
		txManager: txManager,
		publisher: publisher,
		hostname:  hostname,
		logger:    logger.With("component", "sync"),
	}
}

func (s *SyncService) Sync(ctx context.Context, group string) (*domain.SyncStats, error) {
	startTime := time.Now()

	candidates, err := s.source.Unnumbered(ctx)
	if err != nil {
		return nil, fmt.Errorf("scan blog: %w", err)
	}

	stats := &domain.SyncStats{
		Newsgroup: group,
		Scanned:   len(candidates),
	}
	if len(candidates) == 0 {
		stats.Duration = time.Since(startTime)
		return stats, nil
	}

	domain.SortChronological(candidates)

	for _, c := range candidates {
		entry, err := s.appendEntry(ctx, group, c.SourceRef)
		if errors.Is(err, apperr.ErrConflict) {
			s.logger.Debug("article numbered concurrently",
				"kind", c.Kind,
				"native_id", c.NativeID,
			)
			stats.Skipped++
			continue
		}
		if err != nil {
			return stats, fmt.Errorf("number %s %d: %w", c.Kind, c.NativeID, err)
		}
		stats.New++

		if s.publisher != nil {
			if err := s.publisher.Publish(ctx, entry); err != nil {
				s.logger.Warn("failed to publish numbered article",
					"message_id", entry.MessageID,
					"error", err,
				)
				stats.Errors++
			} else {
				stats.Published++
			}
		}
	}

	stats.Duration = time.Since(startTime)

	s.logger.Info("sync completed",
		"newsgroup", group,
		"scanned", stats.Scanned,
		"new", stats.New,
		"skipped", stats.Skipped,
		"errors", stats.Errors,
		"published", stats.Published,
		"duration", stats.Duration,
	)

	return stats, nil
}

func (s *SyncService) appendEntry(ctx context.Context, group string, ref domain.SourceRef) (*domain.MappingEntry, error) {
	entry := &domain.MappingEntry{
		Newsgroup: group,
		MessageID: domain.FormatMessageID(ref, s.hostname),
		SourceRef: ref,
	}

	err := s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		number, err := s.mapping.Append(txCtx, group, ref, entry.MessageID)
		if err != nil {
			return err
		}
		entry.Number = number
		return nil
	})
	if err != nil {
		return nil, err
	}

	return entry, nil
}
