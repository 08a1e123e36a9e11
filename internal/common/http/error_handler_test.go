package http_test

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	commonerrors "github.com/AlibekovAA/user-registry/internal/common/errors"
	commonhttp "github.com/AlibekovAA/user-registry/internal/common/http"
	"github.com/AlibekovAA/user-registry/internal/common/logger"
	"github.com/AlibekovAA/user-registry/internal/common/validation"
)

func handle(err error) *httptest.ResponseRecorder {
	h := commonhttp.NewErrorHandler(logger.NewWithWriter(io.Discard, "test", "debug"))
	rec := httptest.NewRecorder()
	h.HandleError(rec, httptest.NewRequest(http.MethodGet, "/users/alice", nil), err)
	return rec
}

func TestErrorHandler_DomainErrors(t *testing.T) {
	testCases := []struct {
		name   string
		err    error
		status int
		body   string
	}{
		{"not found", commonerrors.ErrUserNotFound, http.StatusNotFound, `{"detail":"User not found"}`},
		{"duplicate", commonerrors.ErrUsernameTaken.WithCause(errors.New("exists")), http.StatusBadRequest, `{"detail":"Username already registered"}`},
		{"wrapped", fmt.Errorf("get: %w", commonerrors.ErrUserNotFound), http.StatusNotFound, `{"detail":"User not found"}`},
		{"timeout", context.DeadlineExceeded, http.StatusServiceUnavailable, `{"detail":"Request timed out"}`},
		{"unhandled", errors.New("boom"), http.StatusInternalServerError, `{"detail":"Internal Server Error"}`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rec := handle(tc.err)

			assert.Equal(t, tc.status, rec.Code)
			assert.JSONEq(t, tc.body, rec.Body.String())
		})
	}
}

func TestErrorHandler_ValidationDetails(t *testing.T) {
	err := &validation.Error{Fields: []validation.FieldError{
		{Loc: []any{"body", "age"}, Msg: "Input should be greater than 0", Type: "greater_than"},
	}}

	rec := handle(err)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.JSONEq(t, `{"detail":[{"loc":["body","age"],"msg":"Input should be greater than 0","type":"greater_than"}]}`, rec.Body.String())
}

func TestErrorHandler_MaxBytes(t *testing.T) {
	rec := handle(&http.MaxBytesError{Limit: 10})

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}

func TestErrorHandler_NilIsNoop(t *testing.T) {
	rec := handle(nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Body.String())
}
