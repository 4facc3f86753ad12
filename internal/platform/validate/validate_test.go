// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package validate_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/kaamelott/internal/platform/apperr"
	"github.com/taibuivan/kaamelott/internal/platform/validate"
)

func TestValidator_Required(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		hasError bool
	}{
		{"valid_string", "Kaamelott", false},
		{"empty_string", "", true},
		{"whitespace_only", "   ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := (&validate.Validator{}).Required("name", tt.value).Err()

			if !tt.hasError {
				assert.NoError(t, err)
				return
			}
			appError := apperr.As(err)
			require.NotNil(t, appError)
			assert.Equal(t, "VALIDATION_ERROR", appError.Code)
			assert.Equal(t, []apperr.FieldError{{Field: "name", Message: "This field is required"}}, appError.Details)
		})
	}
}

func TestValidator_MaxLenCountsRunes(t *testing.T) {
	assert.False(t, (&validate.Validator{}).MaxLen("name", strings.Repeat("é", 5), 5).HasErrors())
	assert.True(t, (&validate.Validator{}).MaxLen("name", strings.Repeat("é", 6), 5).HasErrors())
}

func TestValidator_Identifiers(t *testing.T) {
	tests := []struct {
		name    string
		id      int
		ids     []int
		isValid bool
	}{
		{"valid", 4, []int{1, 2}, true},
		{"zero_id", 0, nil, false},
		{"negative_in_list", 3, []int{1, -2}, false},
		{"empty_list", 9, []int{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := (&validate.Validator{}).Positive("characterId", tt.id).PositiveAll("actorsId", tt.ids)

			assert.Equal(t, !tt.isValid, v.HasErrors())
		})
	}
}

func TestValidator_PositiveAllReportsOnce(t *testing.T) {
	err := (&validate.Validator{}).PositiveAll("actorsId", []int{0, -1, 2}).Err()

	require.NotNil(t, apperr.As(err))
	assert.Len(t, apperr.As(err).Details, 1)
}

func TestValidator_OptionalMinLen(t *testing.T) {
	assert.False(t, (&validate.Validator{}).OptionalMinLen("search", "", 3).HasErrors())
	assert.False(t, (&validate.Validator{}).OptionalMinLen("search", "art", 3).HasErrors())
	assert.True(t, (&validate.Validator{}).OptionalMinLen("search", "ar", 3).HasErrors())
}

func TestValidator_Slug(t *testing.T) {
	assert.False(t, (&validate.Validator{}).Slug("name", "kaamelott-livre-i").HasErrors())
	assert.True(t, (&validate.Validator{}).Slug("name", "-kaamelott").HasErrors())
	assert.True(t, (&validate.Validator{}).Slug("name", "").HasErrors())
}

func TestValidator_ChainAccumulates(t *testing.T) {
	err := (&validate.Validator{}).
		Required("name", "").
		OptionalMinLen("search", "a", 3).
		OneOf("sortBy", "color", "id", "name").
		Range("limit", 0, 1, 100).
		Min("offset", 0, 0).
		Custom("movieId", false, "unused").
		Err()

	appError := apperr.As(err)
	require.NotNil(t, appError)
	fields := make([]string, 0, len(appError.Details))
	for _, detail := range appError.Details {
		fields = append(fields, detail.Field)
	}
	assert.Equal(t, []string{"name", "search", "sortBy", "limit"}, fields)
}
