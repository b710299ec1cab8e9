package out

import "context"

// DocumentTextPort exposes the static liturgical titles document as raw text
// lines, page by page, in page order.
type DocumentTextPort interface {
	// PageLines returns one slice of lines per page. A missing document is
	// reported as an error wrapping fs.ErrNotExist; callers treat any error
	// as "no document" rather than a failure.
	PageLines(ctx context.Context) ([][]string, error)

	// Source identifies the document (its path), used as the cache key.
	Source() string
}
