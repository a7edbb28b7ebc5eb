package usecase

import (
	"context"
	"log"

	"agora-server/db"
	"agora-server/shared"
	"agora-server/types"

	"github.com/jmoiron/sqlx"
)

// CreateComment requires membership in the post's community. Replies are
// single-level: the parent must be a top-level comment on the same post.
func CreateComment(ctx context.Context, auth *types.ServerAuth, postId string, req shared.CreateCommentRequest) (*shared.Comment, *shared.ApiError) {
	post, err := db.GetPost(postId)

	if err != nil {
		log.Printf("Error getting post: %v\n", err)
		return nil, internalErr("Error getting post")
	}

	if post == nil || post.Status != string(shared.PostStatusPublished) {
		return nil, notFoundErr("Post not found")
	}

	member, err := db.GetCommunityMember(post.CommunityId, auth.User.Id)

	if err != nil {
		log.Printf("Error getting community member: %v\n", err)
		return nil, internalErr("Error getting community member")
	}

	if member == nil {
		return nil, forbiddenErr("Only members can comment")
	}

	if req.ParentId != nil {
		parent, err := db.GetComment(*req.ParentId)

		if err != nil {
			log.Printf("Error getting parent comment: %v\n", err)
			return nil, internalErr("Error getting parent comment")
		}

		if parent == nil || parent.PostId != postId {
			return nil, notFoundErr("Parent comment not found")
		}

		if parent.ParentId != nil {
			return nil, validationErr("Can't reply to a reply")
		}
	}

	comment := db.Comment{
		PostId:   postId,
		AuthorId: auth.User.Id,
		ParentId: req.ParentId,
		Body:     req.Body,
	}

	err = db.WithTx(ctx, "create comment", func(tx *sqlx.Tx) error {
		return db.CreateComment(&comment, tx)
	})

	if err != nil {
		log.Printf("Error creating comment: %v\n", err)
		return nil, internalErr("Error creating comment")
	}

	return comment.ToApi(), nil
}

func ListComments(ctx context.Context, postId string) ([]*shared.Comment, *shared.ApiError) {
	post, err := db.GetPost(postId)

	if err != nil {
		log.Printf("Error getting post: %v\n", err)
		return nil, internalErr("Error getting post")
	}

	if post == nil {
		return nil, notFoundErr("Post not found")
	}

	comments, err := db.ListComments(postId)

	if err != nil {
		log.Printf("Error listing comments: %v\n", err)
		return nil, internalErr("Error listing comments")
	}

	apiComments := make([]*shared.Comment, len(comments))
	for i, comment := range comments {
		apiComments[i] = comment.ToApi()
	}

	return apiComments, nil
}

func UpdateComment(ctx context.Context, auth *types.ServerAuth, commentId string, req shared.UpdateCommentRequest) (*shared.Comment, *shared.ApiError) {
	comment, apiErr := getCommentForWrite(commentId)
	if apiErr != nil {
		return nil, apiErr
	}

	if comment.AuthorId != auth.User.Id {
		return nil, forbiddenErr("Only the author can edit a comment")
	}

	comment.Body = req.Body

	err := db.WithTx(ctx, "update comment", func(tx *sqlx.Tx) error {
		return db.UpdateComment(comment, tx)
	})

	if err != nil {
		log.Printf("Error updating comment: %v\n", err)
		return nil, internalErr("Error updating comment")
	}

	return comment.ToApi(), nil
}

func DeleteComment(ctx context.Context, auth *types.ServerAuth, commentId string) *shared.ApiError {
	comment, apiErr := getCommentForWrite(commentId)
	if apiErr != nil {
		return apiErr
	}

	if comment.AuthorId != auth.User.Id {
		post, err := db.GetPost(comment.PostId)

		if err != nil {
			log.Printf("Error getting post: %v\n", err)
			return internalErr("Error getting post")
		}

		if post == nil {
			return notFoundErr("Post not found")
		}

		member, err := db.GetCommunityMember(post.CommunityId, auth.User.Id)

		if err != nil {
			log.Printf("Error getting community member: %v\n", err)
			return internalErr("Error getting community member")
		}

		if member == nil || !shared.MemberRole(member.Role).CanModerate() {
			return forbiddenErr("Only the author or a moderator can delete a comment")
		}
	}

	err := db.WithTx(ctx, "delete comment", func(tx *sqlx.Tx) error {
		return db.DeleteComment(comment, tx)
	})

	if err != nil {
		log.Printf("Error deleting comment: %v\n", err)
		return internalErr("Error deleting comment")
	}

	return nil
}

func getCommentForWrite(commentId string) (*db.Comment, *shared.ApiError) {
	comment, err := db.GetComment(commentId)

	if err != nil {
		log.Printf("Error getting comment: %v\n", err)
		return nil, internalErr("Error getting comment")
	}

	if comment == nil {
		return nil, notFoundErr("Comment not found")
	}

	return comment, nil
}
