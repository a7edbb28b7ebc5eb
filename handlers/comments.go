package handlers

import (
	"log"
	"net/http"

	"agora-server/responder"
	"agora-server/shared"
	"agora-server/usecase"

	"github.com/gorilla/mux"
)

func CreateCommentHandler(w http.ResponseWriter, r *http.Request) {
	log.Println("Received request for CreateCommentHandler")

	auth := authenticate(w, r)
	if auth == nil {
		return
	}

	vars := mux.Vars(r)
	postId := vars["postId"]

	var req shared.CreateCommentRequest
	if !parseRequest(w, r, &req) {
		return
	}

	comment, apiErr := usecase.CreateComment(r.Context(), auth, postId, req)

	if apiErr != nil {
		responder.WriteApiError(w, *apiErr)
		return
	}

	log.Println("Successfully created comment")

	responder.WriteCreated(w, comment)
}

func ListCommentsHandler(w http.ResponseWriter, r *http.Request) {
	log.Println("Received request for ListCommentsHandler")

	auth := authenticate(w, r)
	if auth == nil {
		return
	}

	vars := mux.Vars(r)
	postId := vars["postId"]

	comments, apiErr := usecase.ListComments(r.Context(), postId)

	if apiErr != nil {
		responder.WriteApiError(w, *apiErr)
		return
	}

	log.Println("Successfully listed comments")

	responder.WriteData(w, comments)
}

func UpdateCommentHandler(w http.ResponseWriter, r *http.Request) {
	log.Println("Received request for UpdateCommentHandler")

	auth := authenticate(w, r)
	if auth == nil {
		return
	}

	vars := mux.Vars(r)
	commentId := vars["commentId"]

	var req shared.UpdateCommentRequest
	if !parseRequest(w, r, &req) {
		return
	}

	comment, apiErr := usecase.UpdateComment(r.Context(), auth, commentId, req)

	if apiErr != nil {
		responder.WriteApiError(w, *apiErr)
		return
	}

	log.Println("Successfully updated comment")

	responder.WriteData(w, comment)
}

func DeleteCommentHandler(w http.ResponseWriter, r *http.Request) {
	log.Println("Received request for DeleteCommentHandler")

	auth := authenticate(w, r)
	if auth == nil {
		return
	}

	vars := mux.Vars(r)
	commentId := vars["commentId"]

	apiErr := usecase.DeleteComment(r.Context(), auth, commentId)

	if apiErr != nil {
		responder.WriteApiError(w, *apiErr)
		return
	}

	log.Println("Successfully deleted comment")

	responder.WriteNoContent(w)
}
