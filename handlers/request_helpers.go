package handlers

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"strings"

	"agora-server/responder"
	"agora-server/shared"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// parseRequest reads the body into req and runs field validation. A failed
// rule becomes a 422 validation ApiError listing the offending fields. The
// handler should return immediately when this returns false.
func parseRequest(w http.ResponseWriter, r *http.Request, req interface{}) bool {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		log.Printf("Error reading request body: %v\n", err)
		http.Error(w, "Error reading request body: "+err.Error(), http.StatusInternalServerError)
		return false
	}

	err = json.Unmarshal(body, req)
	if err != nil {
		log.Printf("Error unmarshalling request: %v\n", err)
		http.Error(w, "Error unmarshalling request: "+err.Error(), http.StatusBadRequest)
		return false
	}

	err = validate.Struct(req)
	if err != nil {
		invalidErrs, ok := err.(validator.ValidationErrors)
		if !ok {
			log.Printf("Error validating request: %v\n", err)
			http.Error(w, "Error validating request: "+err.Error(), http.StatusInternalServerError)
			return false
		}

		fields := make([]shared.FieldError, len(invalidErrs))
		for i, fieldErr := range invalidErrs {
			fields[i] = shared.FieldError{
				Field: lowerFirst(fieldErr.Field()),
				Rule:  fieldErr.Tag(),
			}
		}

		responder.WriteApiError(w, shared.ApiError{
			Type:   shared.ApiErrorTypeValidation,
			Status: http.StatusUnprocessableEntity,
			Msg:    "Validation failed",
			ValidationError: &shared.ValidationError{
				Fields: fields,
			},
		})
		return false
	}

	return true
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}
