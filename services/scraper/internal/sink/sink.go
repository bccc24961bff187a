package sink

import (
	"context"

	"github.com/quetzal-labs/queue-watch/services/scraper/internal/calendar"
)

// Sink accepts batches of normalized calendar records for durable
// storage. Implementations need not be transactional across a batch;
// a partial append must leave already-written rows intact.
type Sink interface {
	Append(ctx context.Context, records []calendar.CalendarDayRecord) error
}
