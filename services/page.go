package services

// Page is a resolved limit/offset window.
type Page struct {
	Limit  int
	Offset int
}

// NewPage clamps a 1-based page number and a requested limit. Values that
// are missing or not positive fall back to the defaults.
func NewPage(page, limit, defaultLimit, maxLimit int) Page {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	return Page{Limit: limit, Offset: (page - 1) * limit}
}
