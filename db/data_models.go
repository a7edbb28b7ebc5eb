package db

import (
	"time"

	"agora-server/shared"
)

// The models below should only be used server-side.
// They have corresponding models in the shared package for client-side use.
// This adds some duplication, but helps ensure that server-only data
// (password hashes, token hashes, pin hashes) doesn't leak to the client.
// Models used client-side have a ToApi() method.

type AuthToken struct {
	Id        string     `db:"id"`
	UserId    string     `db:"user_id"`
	TokenHash string     `db:"token_hash"`
	CreatedAt time.Time  `db:"created_at"`
	DeletedAt *time.Time `db:"deleted_at"`
}

type EmailVerification struct {
	Id          string    `db:"id"`
	Email       string    `db:"email"`
	PinHash     string    `db:"pin_hash"`
	UserId      *string   `db:"user_id"`
	AuthTokenId *string   `db:"auth_token_id"`
	CreatedAt   time.Time `db:"created_at"`
}

type User struct {
	Id           string    `db:"id"`
	Name         string    `db:"name"`
	Email        string    `db:"email"`
	Domain       string    `db:"domain"`
	PasswordHash string    `db:"password_hash"`
	Status       string    `db:"status"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

func (user *User) ToApi() *shared.User {
	return &shared.User{
		Id:        user.Id,
		Name:      user.Name,
		Email:     user.Email,
		Status:    shared.UserStatus(user.Status),
		CreatedAt: user.CreatedAt,
	}
}

type Community struct {
	Id          string    `db:"id"`
	Name        string    `db:"name"`
	Slug        string    `db:"slug"`
	Description string    `db:"description"`
	OwnerId     string    `db:"owner_id"`
	MaxMembers  *int      `db:"max_members"`
	NumMembers  int       `db:"num_members"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

func (community *Community) ToApi() *shared.Community {
	return &shared.Community{
		Id:          community.Id,
		Name:        community.Name,
		Slug:        community.Slug,
		Description: community.Description,
		OwnerId:     community.OwnerId,
		MaxMembers:  community.MaxMembers,
		NumMembers:  community.NumMembers,
		CreatedAt:   community.CreatedAt,
	}
}

type CommunityMember struct {
	Id          string    `db:"id"`
	CommunityId string    `db:"community_id"`
	UserId      string    `db:"user_id"`
	Role        string    `db:"role"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

func (member *CommunityMember) ToApi() *shared.CommunityMember {
	return &shared.CommunityMember{
		CommunityId: member.CommunityId,
		UserId:      member.UserId,
		Role:        shared.MemberRole(member.Role),
		CreatedAt:   member.CreatedAt,
	}
}

type Post struct {
	Id          string    `db:"id"`
	CommunityId string    `db:"community_id"`
	AuthorId    string    `db:"author_id"`
	Title       string    `db:"title"`
	Body        string    `db:"body"`
	Status      string    `db:"status"`
	NumComments int       `db:"num_comments"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

func (post *Post) ToApi() *shared.Post {
	return &shared.Post{
		Id:          post.Id,
		CommunityId: post.CommunityId,
		AuthorId:    post.AuthorId,
		Title:       post.Title,
		Body:        post.Body,
		Status:      shared.PostStatus(post.Status),
		NumComments: post.NumComments,
		CreatedAt:   post.CreatedAt,
		UpdatedAt:   post.UpdatedAt,
	}
}

type Comment struct {
	Id        string    `db:"id"`
	PostId    string    `db:"post_id"`
	AuthorId  string    `db:"author_id"`
	ParentId  *string   `db:"parent_id"`
	Body      string    `db:"body"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

func (comment *Comment) ToApi() *shared.Comment {
	return &shared.Comment{
		Id:        comment.Id,
		PostId:    comment.PostId,
		AuthorId:  comment.AuthorId,
		ParentId:  comment.ParentId,
		Body:      comment.Body,
		CreatedAt: comment.CreatedAt,
		UpdatedAt: comment.UpdatedAt,
	}
}
