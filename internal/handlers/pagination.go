package handlers

import "strconv"

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// parsePageParams clamps rather than rejects: page into [1,∞), pageSize into
// [1,100], whatever the caller asked for.
func parsePageParams(pageStr, pageSizeStr string) (int, int) {
	page := 1
	pageSize := defaultPageSize

	if pageStr != "" {
		if p, err := strconv.Atoi(pageStr); err == nil {
			page = p
		}
	}
	if pageSizeStr != "" {
		if s, err := strconv.Atoi(pageSizeStr); err == nil {
			pageSize = s
		}
	}

	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 1
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	return page, pageSize
}
