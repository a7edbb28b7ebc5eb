package handlers

import (
	"log"
	"net/http"

	"agora-server/responder"
	"agora-server/shared"
	"agora-server/usecase"

	"github.com/gorilla/mux"
)

func CreatePostHandler(w http.ResponseWriter, r *http.Request) {
	log.Println("Received request for CreatePostHandler")

	auth := authenticate(w, r)
	if auth == nil {
		return
	}

	vars := mux.Vars(r)
	communityId := vars["communityId"]

	var req shared.CreatePostRequest
	if !parseRequest(w, r, &req) {
		return
	}

	post, apiErr := usecase.CreatePost(r.Context(), auth, communityId, req)

	if apiErr != nil {
		responder.WriteApiError(w, *apiErr)
		return
	}

	log.Println("Successfully created post")

	responder.WriteCreated(w, post)
}

func ListPostsHandler(w http.ResponseWriter, r *http.Request) {
	log.Println("Received request for ListPostsHandler")

	auth := authenticate(w, r)
	if auth == nil {
		return
	}

	vars := mux.Vars(r)
	communityId := vars["communityId"]

	posts, apiErr := usecase.ListPosts(r.Context(), communityId)

	if apiErr != nil {
		responder.WriteApiError(w, *apiErr)
		return
	}

	log.Println("Successfully listed posts")

	responder.WriteData(w, posts)
}

func ListDraftPostsHandler(w http.ResponseWriter, r *http.Request) {
	log.Println("Received request for ListDraftPostsHandler")

	auth := authenticate(w, r)
	if auth == nil {
		return
	}

	vars := mux.Vars(r)
	communityId := vars["communityId"]

	posts, apiErr := usecase.ListDraftPosts(r.Context(), auth, communityId)

	if apiErr != nil {
		responder.WriteApiError(w, *apiErr)
		return
	}

	log.Println("Successfully listed draft posts")

	responder.WriteData(w, posts)
}

func GetPostHandler(w http.ResponseWriter, r *http.Request) {
	log.Println("Received request for GetPostHandler")

	auth := authenticate(w, r)
	if auth == nil {
		return
	}

	vars := mux.Vars(r)
	postId := vars["postId"]

	post, apiErr := usecase.GetPost(r.Context(), auth, postId)

	if apiErr != nil {
		responder.WriteApiError(w, *apiErr)
		return
	}

	log.Println("Successfully got post")

	responder.WriteData(w, post)
}

func UpdatePostHandler(w http.ResponseWriter, r *http.Request) {
	log.Println("Received request for UpdatePostHandler")

	auth := authenticate(w, r)
	if auth == nil {
		return
	}

	vars := mux.Vars(r)
	postId := vars["postId"]

	var req shared.UpdatePostRequest
	if !parseRequest(w, r, &req) {
		return
	}

	post, apiErr := usecase.UpdatePost(r.Context(), auth, postId, req)

	if apiErr != nil {
		responder.WriteApiError(w, *apiErr)
		return
	}

	log.Println("Successfully updated post")

	responder.WriteData(w, post)
}

func PublishPostHandler(w http.ResponseWriter, r *http.Request) {
	log.Println("Received request for PublishPostHandler")

	auth := authenticate(w, r)
	if auth == nil {
		return
	}

	vars := mux.Vars(r)
	postId := vars["postId"]

	post, apiErr := usecase.PublishPost(r.Context(), auth, postId)

	if apiErr != nil {
		responder.WriteApiError(w, *apiErr)
		return
	}

	log.Println("Successfully published post")

	responder.WriteData(w, post)
}

func ArchivePostHandler(w http.ResponseWriter, r *http.Request) {
	log.Println("Received request for ArchivePostHandler")

	auth := authenticate(w, r)
	if auth == nil {
		return
	}

	vars := mux.Vars(r)
	postId := vars["postId"]

	post, apiErr := usecase.ArchivePost(r.Context(), auth, postId)

	if apiErr != nil {
		responder.WriteApiError(w, *apiErr)
		return
	}

	log.Println("Successfully archived post")

	responder.WriteData(w, post)
}

func UnarchivePostHandler(w http.ResponseWriter, r *http.Request) {
	log.Println("Received request for UnarchivePostHandler")

	auth := authenticate(w, r)
	if auth == nil {
		return
	}

	vars := mux.Vars(r)
	postId := vars["postId"]

	post, apiErr := usecase.UnarchivePost(r.Context(), auth, postId)

	if apiErr != nil {
		responder.WriteApiError(w, *apiErr)
		return
	}

	log.Println("Successfully unarchived post")

	responder.WriteData(w, post)
}

func DeletePostHandler(w http.ResponseWriter, r *http.Request) {
	log.Println("Received request for DeletePostHandler")

	auth := authenticate(w, r)
	if auth == nil {
		return
	}

	vars := mux.Vars(r)
	postId := vars["postId"]

	apiErr := usecase.DeletePost(r.Context(), auth, postId)

	if apiErr != nil {
		responder.WriteApiError(w, *apiErr)
		return
	}

	log.Println("Successfully deleted post")

	responder.WriteNoContent(w)
}
