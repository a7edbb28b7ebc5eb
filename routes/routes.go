package routes

import (
	"fmt"
	"net/http"

	"agora-server/handlers"

	"github.com/gorilla/mux"
)

type AgoraHandler func(w http.ResponseWriter, r *http.Request)
type HandleAgora func(router *mux.Router, path string, handler AgoraHandler) *mux.Route

// HandleAgoraFn lets embedders wrap every route registration (request
// logging, metrics, instrumentation) without touching the route table.
var HandleAgoraFn HandleAgora

func RegisterHandleAgora(fn HandleAgora) {
	HandleAgoraFn = fn
}

func EnsureHandleAgora() {
	if HandleAgoraFn == nil {
		panic("HandleAgoraFn is not set")
	}
}

func AddRoutes(r *mux.Router) {
	AddHealthRoutes(r)
	AddApiRoutes(r)
}

func AddHealthRoutes(r *mux.Router) {
	EnsureHandleAgora()

	HandleAgoraFn(r, "/health", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "OK")
	})
}

func AddApiRoutes(r *mux.Router) {
	addApiRoutes(r, "/api/v1")
}

func AddApiRoutesWithPrefix(r *mux.Router, prefix string) {
	addApiRoutes(r, prefix)
}

func addApiRoutes(r *mux.Router, prefix string) {
	EnsureHandleAgora()

	HandleAgoraFn(r, prefix+"/accounts/email_verifications", handlers.CreateEmailVerificationHandler).Methods("POST")
	HandleAgoraFn(r, prefix+"/accounts", handlers.CreateAccountHandler).Methods("POST")
	HandleAgoraFn(r, prefix+"/accounts/sign_in", handlers.SignInHandler).Methods("POST")
	HandleAgoraFn(r, prefix+"/accounts/sign_out", handlers.SignOutHandler).Methods("POST")

	HandleAgoraFn(r, prefix+"/users", handlers.ListUsersHandler).Methods("GET")
	HandleAgoraFn(r, prefix+"/users/{userId}", handlers.GetUserHandler).Methods("GET")
	HandleAgoraFn(r, prefix+"/users/{userId}", handlers.UpdateUserHandler).Methods("PUT")
	HandleAgoraFn(r, prefix+"/users/{userId}", handlers.DeleteUserHandler).Methods("DELETE")

	HandleAgoraFn(r, prefix+"/communities", handlers.CreateCommunityHandler).Methods("POST")
	HandleAgoraFn(r, prefix+"/communities", handlers.ListCommunitiesHandler).Methods("GET")
	HandleAgoraFn(r, prefix+"/communities/{communityId}", handlers.GetCommunityHandler).Methods("GET")
	HandleAgoraFn(r, prefix+"/communities/{communityId}", handlers.UpdateCommunityHandler).Methods("PUT")
	HandleAgoraFn(r, prefix+"/communities/{communityId}", handlers.DeleteCommunityHandler).Methods("DELETE")
	HandleAgoraFn(r, prefix+"/communities/{communityId}/members", handlers.JoinCommunityHandler).Methods("POST")
	HandleAgoraFn(r, prefix+"/communities/{communityId}/members", handlers.ListCommunityMembersHandler).Methods("GET")
	HandleAgoraFn(r, prefix+"/communities/{communityId}/members", handlers.LeaveCommunityHandler).Methods("DELETE")

	HandleAgoraFn(r, prefix+"/communities/{communityId}/posts", handlers.CreatePostHandler).Methods("POST")
	HandleAgoraFn(r, prefix+"/communities/{communityId}/posts", handlers.ListPostsHandler).Methods("GET")
	HandleAgoraFn(r, prefix+"/communities/{communityId}/posts/drafts", handlers.ListDraftPostsHandler).Methods("GET")
	HandleAgoraFn(r, prefix+"/posts/{postId}", handlers.GetPostHandler).Methods("GET")
	HandleAgoraFn(r, prefix+"/posts/{postId}", handlers.UpdatePostHandler).Methods("PUT")
	HandleAgoraFn(r, prefix+"/posts/{postId}", handlers.DeletePostHandler).Methods("DELETE")
	HandleAgoraFn(r, prefix+"/posts/{postId}/publish", handlers.PublishPostHandler).Methods("PATCH")
	HandleAgoraFn(r, prefix+"/posts/{postId}/archive", handlers.ArchivePostHandler).Methods("PATCH")
	HandleAgoraFn(r, prefix+"/posts/{postId}/unarchive", handlers.UnarchivePostHandler).Methods("PATCH")

	HandleAgoraFn(r, prefix+"/posts/{postId}/comments", handlers.CreateCommentHandler).Methods("POST")
	HandleAgoraFn(r, prefix+"/posts/{postId}/comments", handlers.ListCommentsHandler).Methods("GET")
	HandleAgoraFn(r, prefix+"/comments/{commentId}", handlers.UpdateCommentHandler).Methods("PUT")
	HandleAgoraFn(r, prefix+"/comments/{commentId}", handlers.DeleteCommentHandler).Methods("DELETE")
}
