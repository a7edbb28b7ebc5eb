package shared

type AuthHeader struct {
	Token string `json:"token"`
}

type CreateEmailVerificationRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type CreateEmailVerificationResponse struct {
	HasAccount bool `json:"hasAccount"`
}

type CreateAccountRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Pin      string `json:"pin" validate:"required"`
	UserName string `json:"userName" validate:"required,max=100"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

// SignInRequest authenticates with either a password or an emailed pin.
type SignInRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required_without=Pin"`
	Pin      string `json:"pin" validate:"required_without=Password"`
}

type SessionResponse struct {
	UserId   string `json:"userId"`
	Token    string `json:"token"`
	Email    string `json:"email"`
	UserName string `json:"userName"`
}

type UpdateUserRequest struct {
	Name   string     `json:"name" validate:"required,max=100"`
	Status UserStatus `json:"status" validate:"omitempty,oneof=active suspended"`
}

type CreateCommunityRequest struct {
	Name        string `json:"name" validate:"required,max=100"`
	Description string `json:"description" validate:"max=2000"`
	MaxMembers  *int   `json:"maxMembers" validate:"omitempty,min=1"`
}

type UpdateCommunityRequest struct {
	Name        string `json:"name" validate:"required,max=100"`
	Description string `json:"description" validate:"max=2000"`
	MaxMembers  *int   `json:"maxMembers" validate:"omitempty,min=1"`
}

type CreatePostRequest struct {
	Title string `json:"title" validate:"required,max=300"`
	Body  string `json:"body" validate:"required"`
	Draft bool   `json:"draft"`
}

type UpdatePostRequest struct {
	Title string `json:"title" validate:"required,max=300"`
	Body  string `json:"body" validate:"required"`
}

type CreateCommentRequest struct {
	Body     string  `json:"body" validate:"required,max=10000"`
	ParentId *string `json:"parentId" validate:"omitempty,uuid"`
}

type UpdateCommentRequest struct {
	Body string `json:"body" validate:"required,max=10000"`
}
