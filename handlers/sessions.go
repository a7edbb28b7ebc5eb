package handlers

import (
	"log"
	"net/http"

	"agora-server/responder"
	"agora-server/shared"
	"agora-server/usecase"
)

func SignInHandler(w http.ResponseWriter, r *http.Request) {
	log.Println("Received request for SignInHandler")

	var req shared.SignInRequest
	if !parseRequest(w, r, &req) {
		return
	}

	res, apiErr := usecase.SignIn(r.Context(), req)

	if apiErr != nil {
		responder.WriteApiError(w, *apiErr)
		return
	}

	log.Println("Successfully signed in")

	responder.WriteData(w, res)
}

func SignOutHandler(w http.ResponseWriter, r *http.Request) {
	log.Println("Received request for SignOutHandler")

	auth := authenticate(w, r)
	if auth == nil {
		return
	}

	apiErr := usecase.SignOut(r.Context(), auth)

	if apiErr != nil {
		responder.WriteApiError(w, *apiErr)
		return
	}

	log.Println("Successfully signed out")

	responder.WriteNoContent(w)
}
