package domain

import "time"

// TopicGroup maps a set of aggregation topic strings to the catalog entity
// whose tag ingested articles receive. League is an optional extra tag for
// scoped coverage.
type TopicGroup struct {
	Label    string
	Entity   EntityRef
	LeagueID *int64
	Topics   []string
}

// RefreshStats holds statistics about one background refresh run.
type RefreshStats struct {
	Groups    int
	Fetched   int
	New       int
	Skipped   int
	Errors    int
	Published int
	Duration  time.Duration
}

// RefreshState tracks the last completed refresh per topic group.
type RefreshState struct {
	ID            int64     `db:"id"`
	GroupLabel    string    `db:"group_label"`
	LastRefreshed time.Time `db:"last_refreshed_at"`
	TotalIngested int64     `db:"total_ingested"`
}
