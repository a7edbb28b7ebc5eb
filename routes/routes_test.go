package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
)

func TestRouteTable(t *testing.T) {
	RegisterHandleAgora(func(router *mux.Router, path string, handler AgoraHandler) *mux.Route {
		return router.HandleFunc(path, handler)
	})

	r := mux.NewRouter()
	AddRoutes(r)

	tests := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/health"},
		{http.MethodPost, "/api/v1/accounts/email_verifications"},
		{http.MethodPost, "/api/v1/accounts"},
		{http.MethodPost, "/api/v1/accounts/sign_in"},
		{http.MethodPost, "/api/v1/accounts/sign_out"},
		{http.MethodGet, "/api/v1/users"},
		{http.MethodPut, "/api/v1/users/123"},
		{http.MethodPost, "/api/v1/communities"},
		{http.MethodPost, "/api/v1/communities/abc/members"},
		{http.MethodDelete, "/api/v1/communities/abc/members"},
		{http.MethodPost, "/api/v1/communities/abc/posts"},
		{http.MethodGet, "/api/v1/communities/abc/posts/drafts"},
		{http.MethodPatch, "/api/v1/posts/xyz/publish"},
		{http.MethodPatch, "/api/v1/posts/xyz/archive"},
		{http.MethodPatch, "/api/v1/posts/xyz/unarchive"},
		{http.MethodPost, "/api/v1/posts/xyz/comments"},
		{http.MethodDelete, "/api/v1/comments/c1"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			var match mux.RouteMatch
			assert.True(t, r.Match(req, &match), "expected route to match")
		})
	}
}

func TestUnknownRouteDoesNotMatch(t *testing.T) {
	RegisterHandleAgora(func(router *mux.Router, path string, handler AgoraHandler) *mux.Route {
		return router.HandleFunc(path, handler)
	})

	r := mux.NewRouter()
	AddRoutes(r)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/nope", nil)
	var match mux.RouteMatch
	assert.False(t, r.Match(req, &match))
}
