package shared

import "time"

type UserStatus string

const (
	UserStatusActive    UserStatus = "active"
	UserStatusSuspended UserStatus = "suspended"
)

type MemberRole string

const (
	MemberRoleOwner     MemberRole = "owner"
	MemberRoleModerator MemberRole = "moderator"
	MemberRoleMember    MemberRole = "member"
)

func (r MemberRole) CanModerate() bool {
	return r == MemberRoleOwner || r == MemberRoleModerator
}

type PostStatus string

const (
	PostStatusDraft     PostStatus = "draft"
	PostStatusPublished PostStatus = "published"
	PostStatusArchived  PostStatus = "archived"
)

type User struct {
	Id        string     `json:"id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Status    UserStatus `json:"status"`
	CreatedAt time.Time  `json:"createdAt"`
}

type Community struct {
	Id          string    `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	OwnerId     string    `json:"ownerId"`
	MaxMembers  *int      `json:"maxMembers,omitempty"`
	NumMembers  int       `json:"numMembers"`
	CreatedAt   time.Time `json:"createdAt"`
}

type CommunityMember struct {
	CommunityId string     `json:"communityId"`
	UserId      string     `json:"userId"`
	Role        MemberRole `json:"role"`
	CreatedAt   time.Time  `json:"createdAt"`
}

type Post struct {
	Id          string     `json:"id"`
	CommunityId string     `json:"communityId"`
	AuthorId    string     `json:"authorId"`
	Title       string     `json:"title"`
	Body        string     `json:"body"`
	Status      PostStatus `json:"status"`
	NumComments int        `json:"numComments"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

type Comment struct {
	Id        string    `json:"id"`
	PostId    string    `json:"postId"`
	AuthorId  string    `json:"authorId"`
	ParentId  *string   `json:"parentId,omitempty"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
