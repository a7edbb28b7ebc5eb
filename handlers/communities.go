package handlers

import (
	"log"
	"net/http"

	"agora-server/responder"
	"agora-server/shared"
	"agora-server/usecase"

	"github.com/gorilla/mux"
)

func CreateCommunityHandler(w http.ResponseWriter, r *http.Request) {
	log.Println("Received request for CreateCommunityHandler")

	auth := authenticate(w, r)
	if auth == nil {
		return
	}

	var req shared.CreateCommunityRequest
	if !parseRequest(w, r, &req) {
		return
	}

	community, apiErr := usecase.CreateCommunity(r.Context(), auth, req)

	if apiErr != nil {
		responder.WriteApiError(w, *apiErr)
		return
	}

	log.Println("Successfully created community")

	responder.WriteCreated(w, community)
}

func ListCommunitiesHandler(w http.ResponseWriter, r *http.Request) {
	log.Println("Received request for ListCommunitiesHandler")

	auth := authenticate(w, r)
	if auth == nil {
		return
	}

	communities, apiErr := usecase.ListCommunities(r.Context())

	if apiErr != nil {
		responder.WriteApiError(w, *apiErr)
		return
	}

	log.Println("Successfully listed communities")

	responder.WriteData(w, communities)
}

func GetCommunityHandler(w http.ResponseWriter, r *http.Request) {
	log.Println("Received request for GetCommunityHandler")

	auth := authenticate(w, r)
	if auth == nil {
		return
	}

	vars := mux.Vars(r)
	communityId := vars["communityId"]

	community, apiErr := usecase.GetCommunity(r.Context(), communityId)

	if apiErr != nil {
		responder.WriteApiError(w, *apiErr)
		return
	}

	log.Println("Successfully got community")

	responder.WriteData(w, community)
}

func UpdateCommunityHandler(w http.ResponseWriter, r *http.Request) {
	log.Println("Received request for UpdateCommunityHandler")

	auth := authenticate(w, r)
	if auth == nil {
		return
	}

	vars := mux.Vars(r)
	communityId := vars["communityId"]

	var req shared.UpdateCommunityRequest
	if !parseRequest(w, r, &req) {
		return
	}

	community, apiErr := usecase.UpdateCommunity(r.Context(), auth, communityId, req)

	if apiErr != nil {
		responder.WriteApiError(w, *apiErr)
		return
	}

	log.Println("Successfully updated community")

	responder.WriteData(w, community)
}

func DeleteCommunityHandler(w http.ResponseWriter, r *http.Request) {
	log.Println("Received request for DeleteCommunityHandler")

	auth := authenticate(w, r)
	if auth == nil {
		return
	}

	vars := mux.Vars(r)
	communityId := vars["communityId"]

	apiErr := usecase.DeleteCommunity(r.Context(), auth, communityId)

	if apiErr != nil {
		responder.WriteApiError(w, *apiErr)
		return
	}

	log.Println("Successfully deleted community")

	responder.WriteNoContent(w)
}

func JoinCommunityHandler(w http.ResponseWriter, r *http.Request) {
	log.Println("Received request for JoinCommunityHandler")

	auth := authenticate(w, r)
	if auth == nil {
		return
	}

	vars := mux.Vars(r)
	communityId := vars["communityId"]

	member, apiErr := usecase.JoinCommunity(r.Context(), auth, communityId)

	if apiErr != nil {
		responder.WriteApiError(w, *apiErr)
		return
	}

	log.Println("Successfully joined community")

	responder.WriteCreated(w, member)
}

func LeaveCommunityHandler(w http.ResponseWriter, r *http.Request) {
	log.Println("Received request for LeaveCommunityHandler")

	auth := authenticate(w, r)
	if auth == nil {
		return
	}

	vars := mux.Vars(r)
	communityId := vars["communityId"]

	apiErr := usecase.LeaveCommunity(r.Context(), auth, communityId)

	if apiErr != nil {
		responder.WriteApiError(w, *apiErr)
		return
	}

	log.Println("Successfully left community")

	responder.WriteNoContent(w)
}

func ListCommunityMembersHandler(w http.ResponseWriter, r *http.Request) {
	log.Println("Received request for ListCommunityMembersHandler")

	auth := authenticate(w, r)
	if auth == nil {
		return
	}

	vars := mux.Vars(r)
	communityId := vars["communityId"]

	members, apiErr := usecase.ListCommunityMembers(r.Context(), communityId)

	if apiErr != nil {
		responder.WriteApiError(w, *apiErr)
		return
	}

	log.Println("Successfully listed community members")

	responder.WriteData(w, members)
}
