package http

import (
	"net/http"
	"strconv"

	"tixbox/pkg/config"
	apperrors "tixbox/pkg/errors"
)

// ExtractLimitOffset parses limit/offset query parameters, normalized to
// the configured pagination bounds.
func ExtractLimitOffset(r *http.Request) (int, int, error) {
	query := r.URL.Query()

	limit := 0
	if s := query.Get("limit"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil {
			return 0, 0, apperrors.InvalidInput("invalid limit parameter: " + s)
		}
		limit = v
	}

	offset := 0
	if s := query.Get("offset"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil {
			return 0, 0, apperrors.InvalidInput("invalid offset parameter: " + s)
		}
		offset = v
	}

	return config.NormalizePaginationLimit(limit), max(0, offset), nil
}

// ExtractPage parses page/page_size query parameters for seat listings.
// Bounds checking is left to the store so direct callers get the same
// contract as HTTP callers.
func ExtractPage(r *http.Request, defaultPageSize int) (int, int, error) {
	query := r.URL.Query()

	page := 1
	if s := query.Get("page"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil {
			return 0, 0, apperrors.InvalidInput("invalid page parameter: " + s)
		}
		page = v
	}

	pageSize := defaultPageSize
	if s := query.Get("page_size"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil {
			return 0, 0, apperrors.InvalidInput("invalid page_size parameter: " + s)
		}
		pageSize = v
	}

	return page, pageSize, nil
}
