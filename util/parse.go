package util

import "strconv"

// ParseId parses a numeric path parameter. A malformed id is surfaced as
// not-found so unknown-looking paths get the 404 page rather than a 400.
func ParseId(raw string) (int64, *HTTPError) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, NotFoundErr("page not found")
	}
	return id, nil
}
