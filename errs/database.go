package errs

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

var (
	ErrNotFound        = errors.New("not found")
	ErrStoreQuery      = errors.New("store query failed")
	ErrStoreConnection = errors.New("store connection failed")
)

func NewNotFound(entity string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusNotFound,
		err:        fmt.Errorf("%s %w", entity, ErrNotFound),
		Kind:       KindNotFound,
	}
}

// NewStoreError converts a failed CRUD call into an ApiErr, keeping the
// store's own message as the cause so it can be surfaced to the admin.
func NewStoreError(operation, entity string, cause error) *ApiErr {
	details := fmt.Sprintf("Failed to %s %s", operation, entity)

	if cause != nil {
		errStr := cause.Error()
		switch {
		case strings.Contains(errStr, "duplicate key"):
			return &ApiErr{
				StatusCode: http.StatusConflict,
				err:        fmt.Errorf("%s already exists", entity),
				Kind:       KindStore,
				Details:    details,
				Cause:      cause,
			}
		case strings.Contains(errStr, "record not found"), strings.Contains(errStr, "not found"):
			return &ApiErr{
				StatusCode: http.StatusNotFound,
				err:        fmt.Errorf("%s %w", entity, ErrNotFound),
				Kind:       KindNotFound,
				Details:    details,
				Cause:      cause,
			}
		case strings.Contains(errStr, "connection"):
			return &ApiErr{
				StatusCode: http.StatusServiceUnavailable,
				err:        ErrStoreConnection,
				Kind:       KindStore,
				Details:    "Unable to connect to the store",
				Cause:      cause,
			}
		}
	}

	return &ApiErr{
		StatusCode: http.StatusInternalServerError,
		err:        ErrStoreQuery,
		Kind:       KindStore,
		Details:    details,
		Cause:      cause,
	}
}

func IsStoreError(err error) bool {
	return errors.Is(err, ErrStoreQuery) || errors.Is(err, ErrStoreConnection)
}
