package user

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusOf(t *testing.T) {
	tests := []struct {
		err     error
		status  int
		message string
	}{
		{ErrInvalidUserID, http.StatusBadRequest, "invalid user id"},
		{ErrInvalidInput, http.StatusMethodNotAllowed, "invalid input"},
		{ErrInvalidEmail, http.StatusMethodNotAllowed, "invalid email input"},
		{ErrInvalidDate, http.StatusMethodNotAllowed, "invalid date input"},
		{ErrNotFound, http.StatusNotFound, "user not found"},
		{fmt.Errorf("lookup: %w", ErrNotFound), http.StatusNotFound, "user not found"},
		{errors.New("connection reset by peer"), http.StatusInternalServerError, "internal server error"},
	}

	for _, tt := range tests {
		status, message := StatusOf(tt.err)
		assert.Equal(t, tt.status, status, tt.err.Error())
		assert.Equal(t, tt.message, message, tt.err.Error())
	}
}

func TestErrorKinds(t *testing.T) {
	assert.Equal(t, KindMalformedInput, ErrInvalidUserID.Kind)
	assert.Equal(t, KindMalformedInput, ErrInvalidInput.Kind)
	assert.Equal(t, KindValidationFailure, ErrInvalidEmail.Kind)
	assert.Equal(t, KindValidationFailure, ErrInvalidDate.Kind)
	assert.Equal(t, KindNotFound, ErrNotFound.Kind)
	assert.Equal(t, "not found", KindNotFound.String())
}
