// Package dataset provides the HOA financial records and the ports used to read them.
package dataset

import (
	"context"
	"errors"

	"hoadash/internal/core"
)

// ErrYearNotFound is returned when no record exists for the requested year.
var ErrYearNotFound = errors.New("year not found")

// Ports for outbound adapters.
type (
	// Reader hands out copies of financial year records.
	Reader interface {
		// Years lists the available fiscal years in ascending order.
		Years(ctx context.Context) ([]int, error)
		// ReadYear returns the record for year or ErrYearNotFound.
		ReadYear(ctx context.Context, year int) (core.FinancialYearRecord, error)
	}

	// Writer persists a record, replacing any existing one for the same year.
	Writer interface {
		SaveYear(ctx context.Context, r core.FinancialYearRecord) error
	}
)
