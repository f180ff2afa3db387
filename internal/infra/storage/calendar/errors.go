package calendar

import "errors"

var (
	// ErrRuleNotFound is returned when no rule exists for the weekday
	ErrRuleNotFound = errors.New("calendar.repository: rule not found")

	// ErrBuildQuery is returned when the SQL query cannot be built
	ErrBuildQuery = errors.New("calendar.repository: failed to build query")

	// ErrExecQuery is returned when the SQL query fails to execute
	ErrExecQuery = errors.New("calendar.repository: failed to execute query")

	// ErrScanRow is returned when a result row cannot be scanned
	ErrScanRow = errors.New("calendar.repository: failed to scan row")
)
