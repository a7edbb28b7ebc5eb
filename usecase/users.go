package usecase

import (
	"context"
	"log"

	"agora-server/db"
	"agora-server/shared"
	"agora-server/types"

	"github.com/jmoiron/sqlx"
)

func ListUsers(ctx context.Context, auth *types.ServerAuth) ([]*shared.User, *shared.ApiError) {
	users, err := db.ListUsers()

	if err != nil {
		log.Printf("Error listing users: %v\n", err)
		return nil, internalErr("Error listing users")
	}

	apiUsers := make([]*shared.User, len(users))
	for i, user := range users {
		apiUsers[i] = user.ToApi()
	}

	return apiUsers, nil
}

func GetUser(ctx context.Context, userId string) (*shared.User, *shared.ApiError) {
	user, err := db.GetUser(userId)

	if err != nil {
		log.Printf("Error getting user: %v\n", err)
		return nil, internalErr("Error getting user")
	}

	if user == nil {
		return nil, notFoundErr("User not found")
	}

	return user.ToApi(), nil
}

// UpdateUser lets a user rename themselves. Status changes are reserved for
// the user's own account too - there is no admin surface here.
func UpdateUser(ctx context.Context, auth *types.ServerAuth, userId string, req shared.UpdateUserRequest) (*shared.User, *shared.ApiError) {
	if auth.User.Id != userId {
		return nil, forbiddenErr("Can't update another user")
	}

	user, err := db.GetUser(userId)

	if err != nil {
		log.Printf("Error getting user: %v\n", err)
		return nil, internalErr("Error getting user")
	}

	if user == nil {
		return nil, notFoundErr("User not found")
	}

	user.Name = req.Name
	if req.Status != "" {
		user.Status = string(req.Status)
	}

	err = db.WithTx(ctx, "update user", func(tx *sqlx.Tx) error {
		return db.UpdateUser(user, tx)
	})

	if err != nil {
		log.Printf("Error updating user: %v\n", err)
		return nil, internalErr("Error updating user")
	}

	return user.ToApi(), nil
}

// DeleteUser removes the account and revokes its tokens. Owned communities
// block deletion - ownership has to be handed off or the community deleted
// first.
func DeleteUser(ctx context.Context, auth *types.ServerAuth, userId string) *shared.ApiError {
	if auth.User.Id != userId {
		return forbiddenErr("Can't delete another user")
	}

	communities, err := db.ListCommunitiesForUser(userId)

	if err != nil {
		log.Printf("Error listing communities for user: %v\n", err)
		return internalErr("Error listing communities")
	}

	for _, community := range communities {
		if community.OwnerId == userId {
			return forbiddenErr("Can't delete an account that owns a community: " + community.Name)
		}
	}

	err = db.WithTx(ctx, "delete user", func(tx *sqlx.Tx) error {
		for _, community := range communities {
			if err := db.DeleteCommunityMember(community.Id, userId, tx); err != nil {
				return err
			}
		}

		return db.DeleteUser(userId, tx)
	})

	if err != nil {
		log.Printf("Error deleting user: %v\n", err)
		return internalErr("Error deleting user")
	}

	return nil
}
