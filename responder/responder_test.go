package responder

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"agora-server/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteData(t *testing.T) {
	rr := httptest.NewRecorder()
	WriteData(rr, map[string]string{"hello": "world"})

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var body map[string]map[string]string
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, "world", body["data"]["hello"])
}

func TestWriteCreated(t *testing.T) {
	rr := httptest.NewRecorder()
	WriteCreated(rr, map[string]string{"id": "abc"})

	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.JSONEq(t, `{"data":{"id":"abc"}}`, rr.Body.String())
}

func TestWriteNoContent(t *testing.T) {
	rr := httptest.NewRecorder()
	WriteNoContent(rr)

	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Empty(t, rr.Body.String())
}

func TestWriteApiError(t *testing.T) {
	rr := httptest.NewRecorder()
	WriteApiError(rr, shared.ApiError{
		Type:   shared.ApiErrorTypeCapacityExceeded,
		Status: http.StatusUnprocessableEntity,
		Msg:    "Community is at capacity",
		CapacityExceededError: &shared.CapacityExceededError{
			MaxMembers: 10,
		},
	})

	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var apiErr shared.ApiError
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &apiErr))
	assert.Equal(t, shared.ApiErrorTypeCapacityExceeded, apiErr.Type)
	assert.Equal(t, "Community is at capacity", apiErr.Msg)
	require.NotNil(t, apiErr.CapacityExceededError)
	assert.Equal(t, 10, apiErr.CapacityExceededError.MaxMembers)
}
