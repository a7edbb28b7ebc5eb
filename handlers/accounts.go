package handlers

import (
	"log"
	"net/http"

	"agora-server/responder"
	"agora-server/shared"
	"agora-server/usecase"
)

func CreateEmailVerificationHandler(w http.ResponseWriter, r *http.Request) {
	log.Println("Received request for CreateEmailVerificationHandler")

	var req shared.CreateEmailVerificationRequest
	if !parseRequest(w, r, &req) {
		return
	}

	res, apiErr := usecase.CreateEmailVerification(r.Context(), req)

	if apiErr != nil {
		responder.WriteApiError(w, *apiErr)
		return
	}

	log.Println("Successfully created email verification")

	responder.WriteData(w, res)
}

func CreateAccountHandler(w http.ResponseWriter, r *http.Request) {
	log.Println("Received request for CreateAccountHandler")

	var req shared.CreateAccountRequest
	if !parseRequest(w, r, &req) {
		return
	}

	res, apiErr := usecase.CreateAccount(r.Context(), req)

	if apiErr != nil {
		responder.WriteApiError(w, *apiErr)
		return
	}

	log.Println("Successfully created account")

	responder.WriteCreated(w, res)
}
