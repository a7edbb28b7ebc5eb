package usecase

import (
	"context"
	"log"
	"net/http"

	"agora-server/db"
	"agora-server/shared"
	"agora-server/types"

	"github.com/jmoiron/sqlx"
)

// CreateCommunity creates the community and adds the creator as its owner
// member in the same transaction.
func CreateCommunity(ctx context.Context, auth *types.ServerAuth, req shared.CreateCommunityRequest) (*shared.Community, *shared.ApiError) {
	slug := shared.Slugify(req.Name)
	if slug == "" {
		return nil, validationErr("Community name must contain at least one letter or number")
	}

	community := db.Community{
		Name:        req.Name,
		Slug:        slug,
		Description: req.Description,
		OwnerId:     auth.User.Id,
		MaxMembers:  req.MaxMembers,
	}

	err := db.WithTx(ctx, "create community", func(tx *sqlx.Tx) error {
		err := db.CreateCommunity(&community, tx)
		if err != nil {
			return err
		}

		member := db.CommunityMember{
			CommunityId: community.Id,
			UserId:      auth.User.Id,
			Role:        string(shared.MemberRoleOwner),
		}

		// CreateCommunity seeded num_members at 1 for the owner row
		return db.CreateOwnerMember(&member, tx)
	})

	if err != nil {
		if db.IsNonUniqueErr(err) {
			return nil, duplicateNameErr("A community named " + req.Name + " already exists")
		}

		log.Printf("Error creating community: %v\n", err)
		return nil, internalErr("Error creating community")
	}

	return community.ToApi(), nil
}

func ListCommunities(ctx context.Context) ([]*shared.Community, *shared.ApiError) {
	communities, err := db.ListCommunities()

	if err != nil {
		log.Printf("Error listing communities: %v\n", err)
		return nil, internalErr("Error listing communities")
	}

	apiCommunities := make([]*shared.Community, len(communities))
	for i, community := range communities {
		apiCommunities[i] = community.ToApi()
	}

	return apiCommunities, nil
}

func GetCommunity(ctx context.Context, communityId string) (*shared.Community, *shared.ApiError) {
	community, err := db.GetCommunity(communityId)

	if err != nil {
		log.Printf("Error getting community: %v\n", err)
		return nil, internalErr("Error getting community")
	}

	if community == nil {
		return nil, notFoundErr("Community not found")
	}

	return community.ToApi(), nil
}

func UpdateCommunity(ctx context.Context, auth *types.ServerAuth, communityId string, req shared.UpdateCommunityRequest) (*shared.Community, *shared.ApiError) {
	slug := shared.Slugify(req.Name)
	if slug == "" {
		return nil, validationErr("Community name must contain at least one letter or number")
	}

	community, member, apiErr := getCommunityAndMember(communityId, auth.User.Id)
	if apiErr != nil {
		return nil, apiErr
	}

	if member == nil || !shared.MemberRole(member.Role).CanModerate() {
		return nil, forbiddenErr("Only the owner or a moderator can update a community")
	}

	community.Name = req.Name
	community.Slug = slug
	community.Description = req.Description
	community.MaxMembers = req.MaxMembers

	err := db.WithTx(ctx, "update community", func(tx *sqlx.Tx) error {
		return db.UpdateCommunity(community, tx)
	})

	if err != nil {
		if db.IsNonUniqueErr(err) {
			return nil, duplicateNameErr("A community named " + req.Name + " already exists")
		}

		log.Printf("Error updating community: %v\n", err)
		return nil, internalErr("Error updating community")
	}

	return community.ToApi(), nil
}

func DeleteCommunity(ctx context.Context, auth *types.ServerAuth, communityId string) *shared.ApiError {
	community, _, apiErr := getCommunityAndMember(communityId, auth.User.Id)
	if apiErr != nil {
		return apiErr
	}

	if community.OwnerId != auth.User.Id {
		return forbiddenErr("Only the owner can delete a community")
	}

	err := db.WithTx(ctx, "delete community", func(tx *sqlx.Tx) error {
		return db.DeleteCommunity(communityId, tx)
	})

	if err != nil {
		log.Printf("Error deleting community: %v\n", err)
		return internalErr("Error deleting community")
	}

	return nil
}

// JoinCommunity adds the user as a member. The capacity check and the member
// insert run against a row-locked community so a full community can't be
// joined twice concurrently.
func JoinCommunity(ctx context.Context, auth *types.ServerAuth, communityId string) (*shared.CommunityMember, *shared.ApiError) {
	var member db.CommunityMember
	var apiErr *shared.ApiError

	err := db.WithTx(ctx, "join community", func(tx *sqlx.Tx) error {
		community, err := db.GetCommunityForUpdate(communityId, tx)
		if err != nil {
			return err
		}

		if community == nil {
			apiErr = notFoundErr("Community not found")
			return apiErr
		}

		if community.MaxMembers != nil && community.NumMembers >= *community.MaxMembers {
			apiErr = capacityExceededErr(*community.MaxMembers)
			return apiErr
		}

		member = db.CommunityMember{
			CommunityId: communityId,
			UserId:      auth.User.Id,
			Role:        string(shared.MemberRoleMember),
		}

		return db.CreateCommunityMember(&member, tx)
	})

	if apiErr != nil {
		return nil, apiErr
	}

	if err != nil {
		if db.IsNonUniqueErr(err) {
			return nil, &shared.ApiError{
				Type:   shared.ApiErrorTypeOther,
				Status: http.StatusConflict,
				Msg:    "Already a member of this community",
			}
		}

		log.Printf("Error joining community: %v\n", err)
		return nil, internalErr("Error joining community")
	}

	return member.ToApi(), nil
}

func LeaveCommunity(ctx context.Context, auth *types.ServerAuth, communityId string) *shared.ApiError {
	community, member, apiErr := getCommunityAndMember(communityId, auth.User.Id)
	if apiErr != nil {
		return apiErr
	}

	if member == nil {
		return notFoundErr("Not a member of this community")
	}

	if community.OwnerId == auth.User.Id {
		return forbiddenErr("The owner can't leave their community")
	}

	err := db.WithTx(ctx, "leave community", func(tx *sqlx.Tx) error {
		return db.DeleteCommunityMember(communityId, auth.User.Id, tx)
	})

	if err != nil {
		log.Printf("Error leaving community: %v\n", err)
		return internalErr("Error leaving community")
	}

	return nil
}

func ListCommunityMembers(ctx context.Context, communityId string) ([]*shared.CommunityMember, *shared.ApiError) {
	community, err := db.GetCommunity(communityId)

	if err != nil {
		log.Printf("Error getting community: %v\n", err)
		return nil, internalErr("Error getting community")
	}

	if community == nil {
		return nil, notFoundErr("Community not found")
	}

	members, err := db.ListCommunityMembers(communityId)

	if err != nil {
		log.Printf("Error listing community members: %v\n", err)
		return nil, internalErr("Error listing community members")
	}

	apiMembers := make([]*shared.CommunityMember, len(members))
	for i, member := range members {
		apiMembers[i] = member.ToApi()
	}

	return apiMembers, nil
}

func getCommunityAndMember(communityId, userId string) (*db.Community, *db.CommunityMember, *shared.ApiError) {
	community, err := db.GetCommunity(communityId)

	if err != nil {
		log.Printf("Error getting community: %v\n", err)
		return nil, nil, internalErr("Error getting community")
	}

	if community == nil {
		return nil, nil, notFoundErr("Community not found")
	}

	member, err := db.GetCommunityMember(communityId, userId)

	if err != nil {
		log.Printf("Error getting community member: %v\n", err)
		return nil, nil, internalErr("Error getting community member")
	}

	return community, member, nil
}
