package usecase

import (
	"net/http"

	"agora-server/shared"
)

// Every use case maps its failure conditions onto shared.ApiError so the
// handler layer never has to translate business errors to HTTP statuses.

func notFoundErr(msg string) *shared.ApiError {
	return &shared.ApiError{
		Type:   shared.ApiErrorTypeNotFound,
		Status: http.StatusNotFound,
		Msg:    msg,
	}
}

func forbiddenErr(msg string) *shared.ApiError {
	return &shared.ApiError{
		Type:   shared.ApiErrorTypeForbidden,
		Status: http.StatusForbidden,
		Msg:    msg,
	}
}

func validationErr(msg string) *shared.ApiError {
	return &shared.ApiError{
		Type:   shared.ApiErrorTypeValidation,
		Status: http.StatusUnprocessableEntity,
		Msg:    msg,
	}
}

func duplicateEmailErr(email string) *shared.ApiError {
	return &shared.ApiError{
		Type:   shared.ApiErrorTypeDuplicateEmail,
		Status: http.StatusConflict,
		Msg:    "An account already exists for email: " + email,
	}
}

func duplicateNameErr(msg string) *shared.ApiError {
	return &shared.ApiError{
		Type:   shared.ApiErrorTypeDuplicateName,
		Status: http.StatusConflict,
		Msg:    msg,
	}
}

func capacityExceededErr(maxMembers int) *shared.ApiError {
	return &shared.ApiError{
		Type:   shared.ApiErrorTypeCapacityExceeded,
		Status: http.StatusUnprocessableEntity,
		Msg:    "Community is at capacity",
		CapacityExceededError: &shared.CapacityExceededError{
			MaxMembers: maxMembers,
		},
	}
}

func invalidCredentialsErr() *shared.ApiError {
	return &shared.ApiError{
		Type:   shared.ApiErrorTypeInvalidToken,
		Status: http.StatusUnauthorized,
		Msg:    "Invalid credentials",
	}
}

func internalErr(msg string) *shared.ApiError {
	return &shared.ApiError{
		Type:   shared.ApiErrorTypeOther,
		Status: http.StatusInternalServerError,
		Msg:    msg,
	}
}
