// Package pagination normalizes page and limit values of list requests.
package pagination

const (
	DefaultPage  = 1
	DefaultLimit = 100
	MaxLimit     = 1000
)

// Normalize clamps page to at least 1 and limit to 1..MaxLimit. A limit of
// zero or less selects DefaultLimit.
func Normalize(page, limit int) (int, int) {
	if page < 1 {
		page = DefaultPage
	}

	if limit <= 0 {
		limit = DefaultLimit
	} else if limit > MaxLimit {
		limit = MaxLimit
	}

	return page, limit
}

func ComputeTotals(total, limit int) int {
	pages := 0
	if limit > 0 {
		pages = (total + limit - 1) / limit
	}

	return pages
}

// HasNext reports whether a page after page exists.
func HasNext(page, pages int) bool {
	return page < pages
}
