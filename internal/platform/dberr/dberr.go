// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package dberr provides a bridge between low-level database errors and
// higher-level application errors.
//
// # Classification
//
//  1. An error that already is an [apperr.AppError] passes through unchanged.
//  2. [pgx.ErrNoRows] becomes NO_DATA_FOUND.
//  3. A [pgconn.PgError] is classified by its SQLSTATE.
//  4. Anything else becomes OPERATION_FAILED, keeping the original message.
package dberr

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/taibuivan/kaamelott/internal/platform/apperr"
)

// fallbackDescription is used when an unclassified error carries no message.
const fallbackDescription = "Unknown error"

// Translate inspects a data-access error and converts it into an [apperr.AppError].
//
// The context is the entity name (e.g. "Actor") rendered as the "(Context)" prefix
// of the message. A nil error stays nil; every other input yields a non-nil error.
func Translate(err error, context string) error {
	if err == nil {
		return nil
	}

	// Already classified: never re-wrap, otherwise contexts would stack.
	if appError := apperr.As(err); appError != nil {
		return appError
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return apperr.New(apperr.KindNoDataFound, context, err)
	}

	var pgError *pgconn.PgError
	if errors.As(err, &pgError) {
		kind := kindOf(pgError.Code)
		if kind == apperr.KindOperationFailed {
			return operationFailed(pgError.Message, context, err)
		}
		return apperr.New(kind, context, err)
	}

	return operationFailed(err.Error(), context, err)
}

// operationFailed builds the 500 fallback, keeping the input's own message when it has one.
func operationFailed(description, context string, cause error) error {
	if description == "" {
		description = fallbackDescription
	}
	return apperr.Newf(apperr.KindOperationFailed, context, description, cause)
}

// kindOf maps a PostgreSQL SQLSTATE to the error taxonomy.
func kindOf(code string) apperr.Kind {
	switch code {
	case pgerrcode.NoData, pgerrcode.NoDataFound:
		return apperr.KindNoDataFound
	case pgerrcode.StringDataRightTruncationDataException:
		return apperr.KindTooLongString
	case pgerrcode.NumericValueOutOfRange:
		return apperr.KindNumOutOfRange
	case pgerrcode.InvalidDatetimeFormat:
		return apperr.KindInvalidDatetimeFormat
	case pgerrcode.RestrictViolation:
		return apperr.KindRestrictViolation
	case pgerrcode.NotNullViolation:
		return apperr.KindNotNullViolation
	case pgerrcode.ForeignKeyViolation:
		return apperr.KindFkViolation
	case pgerrcode.UniqueViolation:
		return apperr.KindUniqueViolation
	default:
		return apperr.KindOperationFailed
	}
}
