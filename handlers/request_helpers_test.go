package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"agora-server/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRequestValid(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/accounts/email_verifications", strings.NewReader(`{"email":"gopher@example.com"}`))
	rr := httptest.NewRecorder()

	var parsed shared.CreateEmailVerificationRequest
	ok := parseRequest(rr, req, &parsed)

	assert.True(t, ok)
	assert.Equal(t, "gopher@example.com", parsed.Email)
}

func TestParseRequestInvalidJson(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/accounts", strings.NewReader(`{not json`))
	rr := httptest.NewRecorder()

	var parsed shared.CreateAccountRequest
	ok := parseRequest(rr, req, &parsed)

	assert.False(t, ok)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestParseRequestValidationFailure(t *testing.T) {
	// missing password, malformed email
	req := httptest.NewRequest(http.MethodPost, "/api/v1/accounts", strings.NewReader(`{"email":"not-an-email","pin":"abc123","userName":"Gopher"}`))
	rr := httptest.NewRecorder()

	var parsed shared.CreateAccountRequest
	ok := parseRequest(rr, req, &parsed)

	assert.False(t, ok)
	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)

	var apiErr shared.ApiError
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &apiErr))
	assert.Equal(t, shared.ApiErrorTypeValidation, apiErr.Type)
	require.NotNil(t, apiErr.ValidationError)

	fields := map[string]string{}
	for _, fieldErr := range apiErr.ValidationError.Fields {
		fields[fieldErr.Field] = fieldErr.Rule
	}
	assert.Equal(t, "email", fields["email"])
	assert.Equal(t, "required", fields["password"])
}

func TestAuthenticateMissingHeader(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/users", nil)
	rr := httptest.NewRecorder()

	auth := authenticate(rr, req)

	assert.Nil(t, auth)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestAuthenticateMalformedHeader(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/users", nil)
	req.Header.Set("Authorization", "Basic abc123")
	rr := httptest.NewRecorder()

	auth := authenticate(rr, req)

	assert.Nil(t, auth)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestAuthenticateBadBase64(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/users", nil)
	req.Header.Set("Authorization", "Bearer %%%not-base64%%%")
	rr := httptest.NewRecorder()

	auth := authenticate(rr, req)

	assert.Nil(t, auth)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}
