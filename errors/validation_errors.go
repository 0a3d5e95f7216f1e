// api/errors/validation_errors.go
package errors

import "errors"

var (
	ErrInvalidValidationRequest = errors.New("invalid validation request")
	ErrReportNotFound           = errors.New("compliance report not found")
	ErrReportConflict           = errors.New("compliance report conflict")
	ErrDatabaseOperation        = errors.New("database operation failed")
	ErrInternalServer           = errors.New("internal server error")
	ErrInvalidPagination        = errors.New("invalid pagination parameters")
	ErrInvalidSearchCriteria    = errors.New("invalid search criteria")
	ErrInvalidTimeRange         = errors.New("invalid time range")
)
