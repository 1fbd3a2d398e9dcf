// internal/model/timeline.go
package model

import "time"

// TimelineEntry is one row on the history page: either a single practice
// response or a grouped test session.
type TimelineEntry interface {
	EntryTime() time.Time
}

// PracticeEntry wraps one practice-mode response. Practice answers are
// never grouped.
type PracticeEntry struct {
	Response *Response `json:"response"`
}

func (e PracticeEntry) EntryTime() time.Time {
	return e.Response.CreatedAt
}

// TestSessionEntry is a contiguous run of test-mode responses treated as
// one logical test attempt. Derived on every history view, never stored.
type TestSessionEntry struct {
	Responses []*Response `json:"responses"`
	StartTime time.Time   `json:"start_time"`
}

func (e TestSessionEntry) EntryTime() time.Time {
	return e.StartTime
}

// TimelineDay buckets entries by calendar date for display. Entries are
// ordered newest-first within the day.
type TimelineDay struct {
	Date    string          `json:"date"` // YYYY-MM-DD
	Entries []TimelineEntry `json:"entries"`
}
