package analysis

import (
	"time"

	"github.com/akeller/spotify-history-tools/internal/history"
)

// FilterByDateRange retains events whose timestamp falls within the
// inclusive [start, end] window. A nil bound is open-ended. Events without a
// timestamp are always dropped, so any aggregator can be re-run over a
// bounded window without carrying its own date logic.
func FilterByDateRange(events []history.PlayEvent, start, end *time.Time) []history.PlayEvent {
	var out []history.PlayEvent
	for _, e := range events {
		if !e.HasTimestamp() {
			continue
		}
		if start != nil && e.Timestamp.Before(*start) {
			continue
		}
		if end != nil && e.Timestamp.After(*end) {
			continue
		}
		out = append(out, e)
	}
	return out
}
