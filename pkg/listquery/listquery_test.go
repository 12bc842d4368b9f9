// Copyright (c) 2026 Userhub. All rights reserved.

package listquery_test

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/userhub-io/userhub/pkg/listquery"
)

/*
TestFromRequest covers defaulting and parsing of limit, offset, and order.
*/
func TestFromRequest(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		wantLimit  int
		wantOffset int
		wantOrder  string
	}{
		{"all_defaults", "", 10, 0, "desc"},
		{"explicit_values", "limit=25&offset=50&order=asc", 25, 50, "asc"},
		{"invalid_limit", "limit=abc", 10, 0, "desc"},
		{"negative_limit", "limit=-5", 10, 0, "desc"},
		{"invalid_offset", "offset=xyz", 10, 0, "desc"},
		{"negative_offset", "offset=-1", 10, 0, "desc"},
		{"order_case_insensitive", "order=ASC", 10, 0, "asc"},
		{"order_unknown_falls_back", "order=sideways", 10, 0, "desc"},
		{"limit_out_of_documented_range_passes", "limit=500", 500, 0, "desc"},
		{"zero_limit_passes", "limit=0", 0, 0, "desc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := httptest.NewRequest("GET", "/api/v1/users?"+tt.query, nil)
			params := listquery.FromRequest(request)

			assert.Equal(t, tt.wantLimit, params.Limit)
			assert.Equal(t, tt.wantOffset, params.Offset)
			assert.Equal(t, tt.wantOrder, params.Order)
		})
	}
}

/*
TestParams_Ascending checks the sort direction helper.
*/
func TestParams_Ascending(t *testing.T) {
	assert.True(t, listquery.Params{Order: listquery.OrderAsc}.Ascending())
	assert.False(t, listquery.Params{Order: listquery.OrderDesc}.Ascending())
	assert.False(t, listquery.Params{}.Ascending())
}
