package out

import (
	"context"
	"time"
)

// CachePort caches extracted title maps per document source. The source
// document is static for the process lifetime, so entries are never
// invalidated.
type CachePort interface {
	GetTitles(ctx context.Context, source string) (map[time.Time]string, bool)
	StoreTitles(ctx context.Context, source string, titles map[time.Time]string)
}
