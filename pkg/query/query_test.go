// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package query_test

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/kaamelott/pkg/query"
)

func TestParseList(t *testing.T) {
	values, err := url.ParseQuery("search=+faux+&sortBy=firstName&sortOrder=asc&limit=10&offset=20")
	require.NoError(t, err)

	params, err := query.ParseList(values)

	require.NoError(t, err)
	assert.Equal(t, "faux", params.Search)
	assert.Equal(t, "firstName", params.SortBy)
	assert.Equal(t, "ASC", params.SortOrder)
	require.NotNil(t, params.Limit)
	require.NotNil(t, params.Offset)
	assert.Equal(t, 10, *params.Limit)
	assert.Equal(t, 20, *params.Offset)
}

func TestParseList_Empty(t *testing.T) {
	params, err := query.ParseList(url.Values{})

	require.NoError(t, err)
	assert.Equal(t, query.ListParams{}, params)
}

func TestParseList_MalformedNumber(t *testing.T) {
	_, err := query.ParseList(url.Values{"limit": {"ten"}})

	assert.EqualError(t, err, "limit: must be an integer")
}

func TestInt(t *testing.T) {
	value, err := query.Int(url.Values{"showId": {"3"}}, "showId")
	require.NoError(t, err)
	require.NotNil(t, value)
	assert.Equal(t, 3, *value)

	value, err = query.Int(url.Values{}, "showId")
	assert.NoError(t, err)
	assert.Nil(t, value)
}
