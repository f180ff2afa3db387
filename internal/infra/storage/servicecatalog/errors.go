package servicecatalog

import "errors"

var (
	ErrServiceNotFound = errors.New("servicecatalog.repository: service not found")
	ErrBuildQuery      = errors.New("servicecatalog.repository: failed to build query")
	ErrExecQuery       = errors.New("servicecatalog.repository: failed to execute query")
	ErrScanRow         = errors.New("servicecatalog.repository: failed to scan row")
)
