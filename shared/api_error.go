package shared

type ApiErrorType string

const (
	ApiErrorTypeInvalidToken     ApiErrorType = "invalid_token"
	ApiErrorTypeValidation       ApiErrorType = "validation"
	ApiErrorTypeDuplicateEmail   ApiErrorType = "duplicate_email"
	ApiErrorTypeDuplicateName    ApiErrorType = "duplicate_name"
	ApiErrorTypeNotFound         ApiErrorType = "not_found"
	ApiErrorTypeForbidden        ApiErrorType = "forbidden"
	ApiErrorTypeCapacityExceeded ApiErrorType = "capacity_exceeded"

	ApiErrorTypeOther ApiErrorType = "other"
)

type ApiError struct {
	Type   ApiErrorType `json:"type"`
	Status int          `json:"status"`
	Msg    string       `json:"msg"`

	// only used for validation errors
	ValidationError *ValidationError `json:"validationError,omitempty"`

	// only used for capacity exceeded errors
	CapacityExceededError *CapacityExceededError `json:"capacityExceededError,omitempty"`
}

type ValidationError struct {
	Fields []FieldError `json:"fields"`
}

type FieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
}

type CapacityExceededError struct {
	MaxMembers int `json:"maxMembers"`
}

func (e *ApiError) Error() string {
	return e.Msg
}
