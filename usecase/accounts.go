package usecase

import (
	"context"
	"log"
	"strings"

	"agora-server/db"
	"agora-server/email"
	"agora-server/shared"
	"agora-server/types"

	"github.com/jmoiron/sqlx"
	"golang.org/x/crypto/bcrypt"
)

// CreateEmailVerification generates a 6-character pin, stores its hash, and
// emails the pin to the address. Reports whether an account already exists so
// the client can route to sign-in vs sign-up.
func CreateEmailVerification(ctx context.Context, req shared.CreateEmailVerificationRequest) (*shared.CreateEmailVerificationResponse, *shared.ApiError) {
	reqEmail := strings.ToLower(req.Email)

	pinBytes, err := shared.GetRandomAlphanumeric(6)
	if err != nil {
		log.Printf("Error generating random pin: %v\n", err)
		return nil, internalErr("Error generating random pin")
	}

	err = db.CreateEmailVerification(reqEmail, "", db.HashPin(string(pinBytes)))

	if err != nil {
		log.Printf("Error creating email verification: %v\n", err)
		return nil, internalErr("Error creating email verification")
	}

	err = email.SendVerificationEmail(reqEmail, string(pinBytes))

	if err != nil {
		log.Printf("Error sending verification email: %v\n", err)
		return nil, internalErr("Error sending verification email")
	}

	user, err := db.GetUserByEmail(reqEmail)

	if err != nil {
		log.Printf("Error getting user: %v\n", err)
		return nil, internalErr("Error getting user")
	}

	return &shared.CreateEmailVerificationResponse{
		HasAccount: user != nil,
	}, nil
}

// CreateAccount verifies the emailed pin, creates the user with a bcrypt
// password hash, and issues an auth token, all in one transaction. A welcome
// email goes out after commit.
func CreateAccount(ctx context.Context, req shared.CreateAccountRequest) (*shared.SessionResponse, *shared.ApiError) {
	reqEmail := strings.ToLower(req.Email)

	verificationId, err := db.ValidateEmailVerification(reqEmail, req.Pin)

	if err != nil {
		log.Printf("Error validating email verification: %v\n", err)
		return nil, invalidCredentialsErr()
	}

	emailSplit := strings.Split(reqEmail, "@")
	if len(emailSplit) != 2 {
		return nil, validationErr("Invalid email: " + reqEmail)
	}
	domain := emailSplit[1]

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("Error hashing password: %v\n", err)
		return nil, internalErr("Error hashing password")
	}

	user := db.User{
		Name:         req.UserName,
		Email:        reqEmail,
		Domain:       domain,
		PasswordHash: string(passwordHash),
		Status:       string(shared.UserStatusActive),
	}

	var token string

	err = db.WithTx(ctx, "create account", func(tx *sqlx.Tx) error {
		err := db.CreateUser(&user, tx)
		if err != nil {
			return err
		}

		var authTokenId string
		token, authTokenId, err = db.CreateAuthToken(user.Id, tx)
		if err != nil {
			return err
		}

		return db.ConsumeEmailVerification(verificationId, authTokenId, tx)
	})

	if err != nil {
		if db.IsNonUniqueErr(err) {
			log.Printf("User already exists for email: %v\n", reqEmail)
			return nil, duplicateEmailErr(reqEmail)
		}

		log.Printf("Error creating account: %v\n", err)
		return nil, internalErr("Error creating account")
	}

	if err := email.SendWelcomeEmail(user.Email, user.Name); err != nil {
		// the account exists either way; don't fail the request
		log.Printf("Error sending welcome email: %v\n", err)
	}

	return &shared.SessionResponse{
		UserId:   user.Id,
		Token:    token,
		Email:    user.Email,
		UserName: user.Name,
	}, nil
}

// SignIn authenticates with a password or an emailed pin and issues a new
// auth token.
func SignIn(ctx context.Context, req shared.SignInRequest) (*shared.SessionResponse, *shared.ApiError) {
	reqEmail := strings.ToLower(req.Email)

	user, err := db.GetUserByEmail(reqEmail)

	if err != nil {
		log.Printf("Error getting user: %v\n", err)
		return nil, internalErr("Error getting user")
	}

	if user == nil {
		return nil, invalidCredentialsErr()
	}

	if user.Status == string(shared.UserStatusSuspended) {
		return nil, forbiddenErr("Account is suspended")
	}

	var verificationId string
	if req.Pin != "" {
		verificationId, err = db.ValidateEmailVerification(reqEmail, req.Pin)

		if err != nil {
			log.Printf("Error validating email verification: %v\n", err)
			return nil, invalidCredentialsErr()
		}
	} else {
		err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password))
		if err != nil {
			return nil, invalidCredentialsErr()
		}
	}

	var token string

	err = db.WithTx(ctx, "sign in", func(tx *sqlx.Tx) error {
		var authTokenId string
		token, authTokenId, err = db.CreateAuthToken(user.Id, tx)
		if err != nil {
			return err
		}

		if verificationId != "" {
			return db.ConsumeEmailVerification(verificationId, authTokenId, tx)
		}

		return nil
	})

	if err != nil {
		log.Printf("Error signing in: %v\n", err)
		return nil, internalErr("Error signing in")
	}

	return &shared.SessionResponse{
		UserId:   user.Id,
		Token:    token,
		Email:    user.Email,
		UserName: user.Name,
	}, nil
}

func SignOut(ctx context.Context, auth *types.ServerAuth) *shared.ApiError {
	err := db.DeleteAuthToken(auth.AuthToken.Id)

	if err != nil {
		log.Printf("Error deleting auth token: %v\n", err)
		return internalErr("Error signing out")
	}

	return nil
}
