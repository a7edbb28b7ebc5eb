package usecase

import (
	"net/http"
	"testing"

	"agora-server/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The business-error convention: every failure condition carries its HTTP
// status so nothing downstream has to translate.
func TestErrorStatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		apiErr     *shared.ApiError
		wantType   shared.ApiErrorType
		wantStatus int
	}{
		{"not found", notFoundErr("x"), shared.ApiErrorTypeNotFound, http.StatusNotFound},
		{"forbidden", forbiddenErr("x"), shared.ApiErrorTypeForbidden, http.StatusForbidden},
		{"validation", validationErr("x"), shared.ApiErrorTypeValidation, http.StatusUnprocessableEntity},
		{"duplicate email", duplicateEmailErr("a@b.com"), shared.ApiErrorTypeDuplicateEmail, http.StatusConflict},
		{"duplicate name", duplicateNameErr("x"), shared.ApiErrorTypeDuplicateName, http.StatusConflict},
		{"capacity exceeded", capacityExceededErr(25), shared.ApiErrorTypeCapacityExceeded, http.StatusUnprocessableEntity},
		{"invalid credentials", invalidCredentialsErr(), shared.ApiErrorTypeInvalidToken, http.StatusUnauthorized},
		{"internal", internalErr("x"), shared.ApiErrorTypeOther, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantType, tt.apiErr.Type)
			assert.Equal(t, tt.wantStatus, tt.apiErr.Status)
		})
	}
}

func TestCapacityExceededPayload(t *testing.T) {
	apiErr := capacityExceededErr(25)
	require.NotNil(t, apiErr.CapacityExceededError)
	assert.Equal(t, 25, apiErr.CapacityExceededError.MaxMembers)
}
