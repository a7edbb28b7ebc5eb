// Package responder is the only place response bodies are shaped. Handlers
// hand it a result or a shared.ApiError and never touch json.Marshal or
// status codes themselves.
package responder

import (
	"encoding/json"
	"log"
	"net/http"

	"agora-server/shared"
)

type dataEnvelope struct {
	Data interface{} `json:"data"`
}

func WriteData(w http.ResponseWriter, payload interface{}) {
	writeJson(w, http.StatusOK, dataEnvelope{Data: payload})
}

func WriteCreated(w http.ResponseWriter, payload interface{}) {
	writeJson(w, http.StatusCreated, dataEnvelope{Data: payload})
}

func WriteNoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

func WriteApiError(w http.ResponseWriter, apiErr shared.ApiError) {
	bytes, err := json.Marshal(apiErr)
	if err != nil {
		log.Printf("Error marshalling response: %v\n", err)
		// If marshalling fails, fall back to a simpler error message
		http.Error(w, "Error marshalling response", http.StatusInternalServerError)
		return
	}

	log.Printf("API Error: %v\n", apiErr.Msg)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(apiErr.Status)
	w.Write(bytes)
}

func writeJson(w http.ResponseWriter, status int, payload interface{}) {
	bytes, err := json.Marshal(payload)
	if err != nil {
		log.Printf("Error marshalling response: %v\n", err)
		http.Error(w, "Error marshalling response", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(bytes)
}
