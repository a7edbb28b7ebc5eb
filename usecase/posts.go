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

// CreatePost requires community membership. Posts start published unless the
// request flags a draft.
func CreatePost(ctx context.Context, auth *types.ServerAuth, communityId string, req shared.CreatePostRequest) (*shared.Post, *shared.ApiError) {
	_, member, apiErr := getCommunityAndMember(communityId, auth.User.Id)
	if apiErr != nil {
		return nil, apiErr
	}

	if member == nil {
		return nil, forbiddenErr("Only members can post in a community")
	}

	status := shared.PostStatusPublished
	if req.Draft {
		status = shared.PostStatusDraft
	}

	post := db.Post{
		CommunityId: communityId,
		AuthorId:    auth.User.Id,
		Title:       req.Title,
		Body:        req.Body,
		Status:      string(status),
	}

	err := db.WithTx(ctx, "create post", func(tx *sqlx.Tx) error {
		return db.CreatePost(&post, tx)
	})

	if err != nil {
		log.Printf("Error creating post: %v\n", err)
		return nil, internalErr("Error creating post")
	}

	return post.ToApi(), nil
}

func ListPosts(ctx context.Context, communityId string) ([]*shared.Post, *shared.ApiError) {
	community, err := db.GetCommunity(communityId)

	if err != nil {
		log.Printf("Error getting community: %v\n", err)
		return nil, internalErr("Error getting community")
	}

	if community == nil {
		return nil, notFoundErr("Community not found")
	}

	posts, err := db.ListPosts(communityId)

	if err != nil {
		log.Printf("Error listing posts: %v\n", err)
		return nil, internalErr("Error listing posts")
	}

	apiPosts := make([]*shared.Post, len(posts))
	for i, post := range posts {
		apiPosts[i] = post.ToApi()
	}

	return apiPosts, nil
}

// ListDraftPosts lists the caller's own drafts in a community.
func ListDraftPosts(ctx context.Context, auth *types.ServerAuth, communityId string) ([]*shared.Post, *shared.ApiError) {
	community, err := db.GetCommunity(communityId)

	if err != nil {
		log.Printf("Error getting community: %v\n", err)
		return nil, internalErr("Error getting community")
	}

	if community == nil {
		return nil, notFoundErr("Community not found")
	}

	posts, err := db.ListDraftPosts(communityId, auth.User.Id)

	if err != nil {
		log.Printf("Error listing draft posts: %v\n", err)
		return nil, internalErr("Error listing draft posts")
	}

	apiPosts := make([]*shared.Post, len(posts))
	for i, post := range posts {
		apiPosts[i] = post.ToApi()
	}

	return apiPosts, nil
}

// GetPost hides drafts from everyone but their author.
func GetPost(ctx context.Context, auth *types.ServerAuth, postId string) (*shared.Post, *shared.ApiError) {
	post, err := db.GetPost(postId)

	if err != nil {
		log.Printf("Error getting post: %v\n", err)
		return nil, internalErr("Error getting post")
	}

	if post == nil {
		return nil, notFoundErr("Post not found")
	}

	if post.Status == string(shared.PostStatusDraft) && post.AuthorId != auth.User.Id {
		return nil, notFoundErr("Post not found")
	}

	return post.ToApi(), nil
}

func UpdatePost(ctx context.Context, auth *types.ServerAuth, postId string, req shared.UpdatePostRequest) (*shared.Post, *shared.ApiError) {
	post, apiErr := getPostForWrite(postId)
	if apiErr != nil {
		return nil, apiErr
	}

	if post.AuthorId != auth.User.Id {
		return nil, forbiddenErr("Only the author can edit a post")
	}

	post.Title = req.Title
	post.Body = req.Body

	err := db.WithTx(ctx, "update post", func(tx *sqlx.Tx) error {
		return db.UpdatePost(post, tx)
	})

	if err != nil {
		log.Printf("Error updating post: %v\n", err)
		return nil, internalErr("Error updating post")
	}

	return post.ToApi(), nil
}

// PublishPost moves a draft to published. Author only.
func PublishPost(ctx context.Context, auth *types.ServerAuth, postId string) (*shared.Post, *shared.ApiError) {
	post, apiErr := getPostForWrite(postId)
	if apiErr != nil {
		return nil, apiErr
	}

	if post.AuthorId != auth.User.Id {
		return nil, forbiddenErr("Only the author can publish a post")
	}

	if post.Status != string(shared.PostStatusDraft) {
		return nil, &shared.ApiError{
			Type:   shared.ApiErrorTypeOther,
			Status: http.StatusConflict,
			Msg:    "Post is not a draft",
		}
	}

	post.Status = string(shared.PostStatusPublished)

	err := db.WithTx(ctx, "publish post", func(tx *sqlx.Tx) error {
		return db.UpdatePost(post, tx)
	})

	if err != nil {
		log.Printf("Error publishing post: %v\n", err)
		return nil, internalErr("Error publishing post")
	}

	return post.ToApi(), nil
}

// ArchivePost moves a published post to archived so it drops out of the
// community feed and stops accepting comments. Author, moderators, and the
// owner can archive.
func ArchivePost(ctx context.Context, auth *types.ServerAuth, postId string) (*shared.Post, *shared.ApiError) {
	post, apiErr := getPostForWrite(postId)
	if apiErr != nil {
		return nil, apiErr
	}

	if apiErr := requireAuthorOrModerator(post, auth.User.Id, "archive a post"); apiErr != nil {
		return nil, apiErr
	}

	if post.Status != string(shared.PostStatusPublished) {
		return nil, &shared.ApiError{
			Type:   shared.ApiErrorTypeOther,
			Status: http.StatusConflict,
			Msg:    "Post is not published",
		}
	}

	post.Status = string(shared.PostStatusArchived)

	err := db.WithTx(ctx, "archive post", func(tx *sqlx.Tx) error {
		return db.UpdatePost(post, tx)
	})

	if err != nil {
		log.Printf("Error archiving post: %v\n", err)
		return nil, internalErr("Error archiving post")
	}

	return post.ToApi(), nil
}

// UnarchivePost returns an archived post to the feed.
func UnarchivePost(ctx context.Context, auth *types.ServerAuth, postId string) (*shared.Post, *shared.ApiError) {
	post, apiErr := getPostForWrite(postId)
	if apiErr != nil {
		return nil, apiErr
	}

	if apiErr := requireAuthorOrModerator(post, auth.User.Id, "unarchive a post"); apiErr != nil {
		return nil, apiErr
	}

	if post.Status != string(shared.PostStatusArchived) {
		return nil, &shared.ApiError{
			Type:   shared.ApiErrorTypeOther,
			Status: http.StatusConflict,
			Msg:    "Post is not archived",
		}
	}

	post.Status = string(shared.PostStatusPublished)

	err := db.WithTx(ctx, "unarchive post", func(tx *sqlx.Tx) error {
		return db.UpdatePost(post, tx)
	})

	if err != nil {
		log.Printf("Error unarchiving post: %v\n", err)
		return nil, internalErr("Error unarchiving post")
	}

	return post.ToApi(), nil
}

// DeletePost is allowed for the author, and for community moderators and the
// owner.
func DeletePost(ctx context.Context, auth *types.ServerAuth, postId string) *shared.ApiError {
	post, apiErr := getPostForWrite(postId)
	if apiErr != nil {
		return apiErr
	}

	if apiErr := requireAuthorOrModerator(post, auth.User.Id, "delete a post"); apiErr != nil {
		return apiErr
	}

	err := db.WithTx(ctx, "delete post", func(tx *sqlx.Tx) error {
		return db.DeletePost(postId, tx)
	})

	if err != nil {
		log.Printf("Error deleting post: %v\n", err)
		return internalErr("Error deleting post")
	}

	return nil
}

func requireAuthorOrModerator(post *db.Post, userId, action string) *shared.ApiError {
	if post.AuthorId == userId {
		return nil
	}

	member, err := db.GetCommunityMember(post.CommunityId, userId)

	if err != nil {
		log.Printf("Error getting community member: %v\n", err)
		return internalErr("Error getting community member")
	}

	if member == nil || !shared.MemberRole(member.Role).CanModerate() {
		return forbiddenErr("Only the author or a moderator can " + action)
	}

	return nil
}

func getPostForWrite(postId string) (*db.Post, *shared.ApiError) {
	post, err := db.GetPost(postId)

	if err != nil {
		log.Printf("Error getting post: %v\n", err)
		return nil, internalErr("Error getting post")
	}

	if post == nil {
		return nil, notFoundErr("Post not found")
	}

	return post, nil
}
