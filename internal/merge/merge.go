// Package merge joins trail attribute rows with a coordinates list by position.
package merge

import (
	"errors"
	"fmt"

	"github.com/woozymasta/trails/internal/source"
	"github.com/woozymasta/trails/internal/trail"
)

// ErrCountMismatch aborts a merge before any row is processed.
var ErrCountMismatch = errors.New("the number of entries in the CSV file and the JSON coordinates file do not match")

// CountPolicy decides which row/coordinate count differences abort a merge.
type CountPolicy int

const (
	// Lenient aborts only when there are fewer coordinates than rows.
	// Surplus coordinates are ignored.
	Lenient CountPolicy = iota
	// Strict aborts on any count difference.
	Strict
)

// String returns the flag spelling of the policy.
func (p CountPolicy) String() string {
	if p == Strict {
		return "strict"
	}
	return "lenient"
}

// RowError records a skipped row.
type RowError struct {
	Err   error
	Index int
}

func (e RowError) Error() string {
	return fmt.Sprintf("index %d: %v", e.Index, e.Err)
}

func (e RowError) Unwrap() error { return e.Err }

// Result holds the merged records and the rows that were skipped.
type Result struct {
	Records []trail.Record
	Skipped []RowError
}

// CheckCounts applies the policy to the input sizes.
func CheckCounts(rows, coords int, policy CountPolicy) error {
	mismatch := rows != coords
	if policy == Lenient {
		mismatch = mismatch && coords < rows
	}
	if mismatch {
		return fmt.Errorf("%w (%d rows, %d coordinates)", ErrCountMismatch, rows, coords)
	}
	return nil
}

// Merge pairs rows[i] with coords[i]. Rows that fail conversion are skipped
// and reported in Result.Skipped; only the count check fails the whole merge.
func Merge(rows []source.Row, coords []source.Coordinate, policy CountPolicy) (*Result, error) {
	if err := CheckCounts(len(rows), len(coords), policy); err != nil {
		return nil, err
	}

	res := &Result{Records: make([]trail.Record, 0, len(rows))}
	for i, row := range rows {
		rec, err := mergeRow(row, coords[i])
		if err != nil {
			res.Skipped = append(res.Skipped, RowError{Index: i, Err: err})
			continue
		}
		res.Records = append(res.Records, rec)
	}

	return res, nil
}

func mergeRow(row source.Row, coord source.Coordinate) (trail.Record, error) {
	attrs, err := trail.FromRow(row)
	if err != nil {
		return trail.Record{}, err
	}

	lat, err := coord.Value(source.KeyLatitude)
	if err != nil {
		return trail.Record{}, err
	}
	lon, err := coord.Value(source.KeyLongitude)
	if err != nil {
		return trail.Record{}, err
	}

	return trail.Record{Attributes: attrs, Latitude: lat, Longitude: lon}, nil
}
