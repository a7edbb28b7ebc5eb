package handlers

import (
	"log"
	"net/http"

	"agora-server/responder"
	"agora-server/shared"
	"agora-server/usecase"

	"github.com/gorilla/mux"
)

func ListUsersHandler(w http.ResponseWriter, r *http.Request) {
	log.Println("Received request for ListUsersHandler")

	auth := authenticate(w, r)
	if auth == nil {
		return
	}

	users, apiErr := usecase.ListUsers(r.Context(), auth)

	if apiErr != nil {
		responder.WriteApiError(w, *apiErr)
		return
	}

	log.Println("Successfully listed users")

	responder.WriteData(w, users)
}

func GetUserHandler(w http.ResponseWriter, r *http.Request) {
	log.Println("Received request for GetUserHandler")

	auth := authenticate(w, r)
	if auth == nil {
		return
	}

	vars := mux.Vars(r)
	userId := vars["userId"]

	user, apiErr := usecase.GetUser(r.Context(), userId)

	if apiErr != nil {
		responder.WriteApiError(w, *apiErr)
		return
	}

	log.Println("Successfully got user")

	responder.WriteData(w, user)
}

func UpdateUserHandler(w http.ResponseWriter, r *http.Request) {
	log.Println("Received request for UpdateUserHandler")

	auth := authenticate(w, r)
	if auth == nil {
		return
	}

	vars := mux.Vars(r)
	userId := vars["userId"]

	var req shared.UpdateUserRequest
	if !parseRequest(w, r, &req) {
		return
	}

	user, apiErr := usecase.UpdateUser(r.Context(), auth, userId, req)

	if apiErr != nil {
		responder.WriteApiError(w, *apiErr)
		return
	}

	log.Println("Successfully updated user")

	responder.WriteData(w, user)
}

func DeleteUserHandler(w http.ResponseWriter, r *http.Request) {
	log.Println("Received request for DeleteUserHandler")

	auth := authenticate(w, r)
	if auth == nil {
		return
	}

	vars := mux.Vars(r)
	userId := vars["userId"]

	apiErr := usecase.DeleteUser(r.Context(), auth, userId)

	if apiErr != nil {
		responder.WriteApiError(w, *apiErr)
		return
	}

	log.Println("Successfully deleted user")

	responder.WriteNoContent(w)
}
