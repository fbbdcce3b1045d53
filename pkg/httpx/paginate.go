package httpx

import (
	"fmt"
	"net/http"
	"strconv"
)

// Pagination defaults for the from/size query parameters.
const (
	DefaultFrom = 0
	DefaultSize = 10
	maxSize     = 100
)

// Page is an offset/limit pair parsed from the from/size query parameters.
// "from" is a record offset, not a page index; the same convention applies
// to every paginated endpoint.
type Page struct {
	From int
	Size int
}

// ParsePage reads from/size from the query string, applying defaults when
// absent. Negative from, non-positive size, or size above the cap is an error.
func ParsePage(r *http.Request) (Page, error) {
	p := Page{From: DefaultFrom, Size: DefaultSize}

	if raw := r.URL.Query().Get("from"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 0 {
			return Page{}, fmt.Errorf("from must be a non-negative integer")
		}
		p.From = v
	}
	if raw := r.URL.Query().Get("size"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v <= 0 {
			return Page{}, fmt.Errorf("size must be a positive integer")
		}
		if v > maxSize {
			return Page{}, fmt.Errorf("size must not exceed %d", maxSize)
		}
		p.Size = v
	}
	return p, nil
}
