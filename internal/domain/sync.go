package domain

import "time"

// SyncStats holds statistics about a sync operation.
type SyncStats struct {
	Newsgroup string
	Scanned   int
	New       int
	Skipped   int
	Errors    int
	Published int
	Duration  time.Duration
}
