// Copyright (c) 2026 Userhub. All rights reserved.

// Package listquery provides shared types and helpers for API list endpoints.
//
// # Overview
//
// It standardizes how offset-based navigation and sort direction are requested
// via query parameters. Pagination is skip/limit based, not cursor based, so
// results may shift under concurrent inserts and deletes.
package listquery

import (
	"net/http"
	"strconv"
	"strings"
)

const (
	// DefaultLimit is the number of items returned if the limit parameter is
	// absent or unparseable. The documented 5-100 schema range is advisory
	// and intentionally not enforced here.
	DefaultLimit = 10

	// DefaultOffset is the number of items skipped if the offset parameter is
	// absent or unparseable.
	DefaultOffset = 0

	// OrderAsc and OrderDesc are the accepted sort directions.
	OrderAsc  = "asc"
	OrderDesc = "desc"
)

// Params holds the parsed limit, offset, and order from a request's query string.
type Params struct {
	Limit  int
	Offset int
	Order  string
}

// Ascending reports whether results should be sorted oldest-first.
func (p Params) Ascending() bool {
	return p.Order == OrderAsc
}

// FromRequest parses "limit", "offset", and "order" query parameters.
//
// # Defaults
//
// Invalid or missing values fall back to [DefaultLimit] and [DefaultOffset].
// The order comparison is case-insensitive; anything other than "asc" is
// treated as [OrderDesc].
func FromRequest(r *http.Request) Params {
	limit := parseIntParam(r, "limit", DefaultLimit)
	if limit < 0 {
		limit = DefaultLimit
	}

	offset := parseIntParam(r, "offset", DefaultOffset)
	if offset < 0 {
		offset = DefaultOffset
	}

	order := OrderDesc
	if strings.EqualFold(r.URL.Query().Get("order"), OrderAsc) {
		order = OrderAsc
	}

	return Params{Limit: limit, Offset: offset, Order: order}
}

// parseIntParam parses a single integer query parameter with a fallback default.
func parseIntParam(r *http.Request, key string, defaultVal int) int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return defaultVal
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		return defaultVal
	}

	return n
}
