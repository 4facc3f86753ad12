// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package validate collects field errors for catalogue input and reports
// them as one VALIDATION_ERROR.
//
// A zero [Validator] is ready to use. It is not safe for concurrent use.
package validate

import (
	"fmt"
	"regexp"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/taibuivan/kaamelott/internal/platform/apperr"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// ErrInvalidJSON is returned when a request body cannot be decoded.
var ErrInvalidJSON = apperr.ValidationError("Invalid JSON payload")

type Validator struct {
	errs []apperr.FieldError
}

// check records message against field unless ok holds.
func (v *Validator) check(ok bool, field, message string) *Validator {
	if !ok {
		v.errs = append(v.errs, apperr.FieldError{Field: field, Message: message})
	}
	return v
}

// Required rejects blank strings.
func (v *Validator) Required(field, value string) *Validator {
	return v.check(strings.TrimSpace(value) != "", field, "This field is required")
}

// MaxLen counts runes, not bytes.
func (v *Validator) MaxLen(field, value string, max int) *Validator {
	return v.check(utf8.RuneCountInString(value) <= max, field, fmt.Sprintf("Maximum %d characters", max))
}

// OptionalMinLen enforces a minimum length on non-empty values only.
func (v *Validator) OptionalMinLen(field, value string, min int) *Validator {
	if value == "" {
		return v
	}
	return v.check(utf8.RuneCountInString(value) >= min, field, fmt.Sprintf("Minimum %d characters", min))
}

func (v *Validator) Range(field string, value, min, max int) *Validator {
	return v.check(value >= min && value <= max, field, fmt.Sprintf("Must be between %d and %d", min, max))
}

func (v *Validator) Min(field string, value, min int) *Validator {
	return v.check(value >= min, field, fmt.Sprintf("Must be at least %d", min))
}

// Positive accepts record identifiers.
func (v *Validator) Positive(field string, value int) *Validator {
	return v.check(value > 0, field, "Must be a positive integer")
}

// PositiveAll reports at most one error for a list of identifiers.
func (v *Validator) PositiveAll(field string, values []int) *Validator {
	valid := !slices.ContainsFunc(values, func(value int) bool { return value < 1 })
	return v.check(valid, field, "Must only contain positive integers")
}

// Slug accepts lowercase ASCII words joined by single hyphens.
func (v *Validator) Slug(field, value string) *Validator {
	return v.check(slugPattern.MatchString(value), field, "Must be a valid URL slug (lowercase letters, digits, hyphens only)")
}

func (v *Validator) OneOf(field, value string, allowed ...string) *Validator {
	return v.check(slices.Contains(allowed, value), field, "Must be one of: "+strings.Join(allowed, ", "))
}

// Custom records message when failed is true.
func (v *Validator) Custom(field string, failed bool, message string) *Validator {
	return v.check(!failed, field, message)
}

func (v *Validator) HasErrors() bool {
	return len(v.errs) > 0
}

// Err returns nil when every rule passed.
func (v *Validator) Err() error {
	if len(v.errs) == 0 {
		return nil
	}
	return apperr.ValidationError("Validation failed", v.errs...)
}

// RequiredError builds a single-field validation error.
func RequiredError(field, message string) *apperr.AppError {
	return apperr.ValidationError("Validation failed", apperr.FieldError{Field: field, Message: message})
}
