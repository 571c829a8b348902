package failure_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"innkeep/shared/failure"
)

func TestFailure_Codes(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{"bad request", failure.BadRequestFromString("missing field"), http.StatusBadRequest},
		{"unauthorized", failure.Unauthorized("no token"), http.StatusUnauthorized},
		{"forbidden", failure.Forbidden("admins only"), http.StatusForbidden},
		{"not found", failure.NotFound("booking not found"), http.StatusNotFound},
		{"conflict", failure.Conflict("review already exists for this booking"), http.StatusConflict},
		{"internal", failure.InternalError(errors.New("boom")), http.StatusInternalServerError},
		{"plain error defaults to 500", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantCode, failure.GetCode(tt.err))
		})
	}
}

func TestFailure_WrappedErrorKeepsCode(t *testing.T) {
	err := fmt.Errorf("creating booking: %w", failure.NotFound("room not found"))

	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	assert.ErrorContains(t, err, "room not found")
}

func TestFailure_NilErrors(t *testing.T) {
	assert.NoError(t, failure.BadRequest(nil))
	assert.NoError(t, failure.InternalError(nil))
}
