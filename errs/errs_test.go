package errs

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewStoreErrorMapsCauses(t *testing.T) {
	cases := []struct {
		name       string
		cause      error
		wantStatus int
		wantKind   string
	}{
		{"duplicate key", errors.New(`duplicate key value violates unique constraint "projects_pkey"`), http.StatusConflict, KindStore},
		{"record not found", errors.New("record not found"), http.StatusNotFound, KindNotFound},
		{"connection failure", errors.New("connection refused"), http.StatusServiceUnavailable, KindStore},
		{"generic failure", errors.New("syntax error"), http.StatusInternalServerError, KindStore},
		{"nil cause", nil, http.StatusInternalServerError, KindStore},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := NewStoreError("find", "project", tc.cause)
			assert.Equal(t, tc.wantStatus, err.StatusCode)
			assert.Equal(t, tc.wantKind, err.Kind)
		})
	}
}

func TestNotFoundMatchesSentinel(t *testing.T) {
	err := NewNotFound("project")
	assert.True(t, IsNotFound(err))
	assert.Equal(t, http.StatusNotFound, err.StatusCode)
	assert.Equal(t, "project not found", err.Error())
}

func TestValidationErrorsCarryFieldAndKind(t *testing.T) {
	err := NewMissingRequiredFieldError("email")
	assert.True(t, IsMissingRequiredFieldError(err))
	assert.Equal(t, KindValidation, err.Kind)
	assert.Equal(t, "email", err.Field)
	assert.Equal(t, http.StatusBadRequest, err.StatusCode)

	err = NewInvalidFieldError("section", "unknown portfolio section")
	assert.True(t, IsInvalidFieldError(err))
	assert.Equal(t, "section", err.Field)
}

func TestGetFullErrorChainsCauses(t *testing.T) {
	inner := NewStoreError("find", "project", fmt.Errorf("connection refused"))
	outer := &ApiErr{
		StatusCode: http.StatusInternalServerError,
		err:        ErrStoreQuery,
		Cause:      inner,
	}

	full := outer.GetFullError()
	assert.Contains(t, full, "store query failed")
	assert.Contains(t, full, "Unable to connect to the store")
}

func TestWrappedApiErrSurvivesErrorsAs(t *testing.T) {
	var apiErr *ApiErr
	wrapped := fmt.Errorf("handling request: %w", NewNotFound("skill"))
	assert.True(t, errors.As(wrapped, &apiErr))
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
}
