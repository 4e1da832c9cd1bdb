package handlers

import (
	"errors"
	"net/http"
	"strconv"
)

const (
	defaultPage    = 1
	defaultPerPage = 10
)

var errInvalidPagination = errors.New("page number and per_page must be positive integers")

// PageMeta carries the pagination counters every list response includes
// swagger:model PageMeta
type PageMeta struct {
	// Total matching rows
	Total int64 `json:"total"`
	// Total pages at the requested page size
	Pages int `json:"pages"`
	// The page this response holds
	CurrentPage int `json:"current_page"`
	// Next page number, null on the last page
	NextPage *int `json:"next_page"`
	// Previous page number, null on the first page
	PrevPage *int `json:"prev_page"`
}

func newPageMeta(total int64, page, perPage int) PageMeta {
	pages := int((total + int64(perPage) - 1) / int64(perPage))

	meta := PageMeta{
		Total:       total,
		Pages:       pages,
		CurrentPage: page,
	}
	if page > 1 {
		prev := page - 1
		meta.PrevPage = &prev
	}
	if page < pages {
		next := page + 1
		meta.NextPage = &next
	}
	return meta
}

// parsePageParams reads page and per_page from the query string. Both default
// when absent and must be positive integers.
func parsePageParams(r *http.Request) (page, perPage int, err error) {
	page, perPage = defaultPage, defaultPerPage

	if raw := r.URL.Query().Get("page"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 1 {
			return 0, 0, errInvalidPagination
		}
		page = v
	}

	if raw := r.URL.Query().Get("per_page"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 1 {
			return 0, 0, errInvalidPagination
		}
		perPage = v
	}

	return page, perPage, nil
}
