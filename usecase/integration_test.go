//go:build integration

package usecase

import (
	"context"
	"log"
	"net/http"
	"os"
	"strings"
	"testing"

	"agora-server/db"
	"agora-server/shared"
	"agora-server/types"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// These tests run against a real Postgres database. Set TEST_DATABASE_URL to
// a throwaway database and run with the integration tag:
//
//	TEST_DATABASE_URL=postgres://... go test -tags integration ./usecase/...

var dbReady bool

func TestMain(m *testing.M) {
	dbUrl := os.Getenv("TEST_DATABASE_URL")
	if dbUrl != "" {
		os.Setenv("DATABASE_URL", dbUrl)

		if err := db.Connect(); err != nil {
			log.Fatalf("error connecting to test database: %v", err)
		}

		if err := db.MigrationsUpWithDir("../migrations"); err != nil {
			log.Fatalf("error migrating test database: %v", err)
		}

		dbReady = true
	}

	os.Exit(m.Run())
}

func requireDb(t *testing.T) {
	t.Helper()

	if !dbReady {
		t.Skip("TEST_DATABASE_URL not set")
	}
}

func createTestUser(t *testing.T) *types.ServerAuth {
	t.Helper()

	tag, err := shared.GetRandomAlphanumeric(8)
	require.NoError(t, err)

	user := db.User{
		Name:         "Test User " + string(tag),
		Email:        strings.ToLower(string(tag)) + "@example.com",
		Domain:       "example.com",
		PasswordHash: "not-a-real-hash",
		Status:       string(shared.UserStatusActive),
	}

	err = db.WithTx(context.Background(), "create test user", func(tx *sqlx.Tx) error {
		return db.CreateUser(&user, tx)
	})
	require.NoError(t, err)

	return &types.ServerAuth{User: &user}
}

func createTestCommunity(t *testing.T, auth *types.ServerAuth, maxMembers *int) *shared.Community {
	t.Helper()

	tag, err := shared.GetRandomAlphanumeric(8)
	require.NoError(t, err)

	community, apiErr := CreateCommunity(context.Background(), auth, shared.CreateCommunityRequest{
		Name:       "Test Community " + string(tag),
		MaxMembers: maxMembers,
	})
	require.Nil(t, apiErr)

	return community
}

func TestCreateAccountDuplicateEmailConflict(t *testing.T) {
	requireDb(t)

	existing := createTestUser(t)

	pin := "abc123"
	err := db.CreateEmailVerification(existing.User.Email, "", db.HashPin(pin))
	require.NoError(t, err)

	session, apiErr := CreateAccount(context.Background(), shared.CreateAccountRequest{
		Email:    existing.User.Email,
		Pin:      pin,
		UserName: "Someone Else",
		Password: "password123",
	})

	assert.Nil(t, session)
	require.NotNil(t, apiErr)
	assert.Equal(t, shared.ApiErrorTypeDuplicateEmail, apiErr.Type)
	assert.Equal(t, http.StatusConflict, apiErr.Status)
}

func TestJoinCommunityAtCapacity(t *testing.T) {
	requireDb(t)

	owner := createTestUser(t)
	joiner := createTestUser(t)

	// the owner seat fills the only slot
	maxMembers := 1
	community := createTestCommunity(t, owner, &maxMembers)

	member, apiErr := JoinCommunity(context.Background(), joiner, community.Id)

	assert.Nil(t, member)
	require.NotNil(t, apiErr)
	assert.Equal(t, shared.ApiErrorTypeCapacityExceeded, apiErr.Type)
	assert.Equal(t, http.StatusUnprocessableEntity, apiErr.Status)
	require.NotNil(t, apiErr.CapacityExceededError)
	assert.Equal(t, 1, apiErr.CapacityExceededError.MaxMembers)
}

func TestJoinCommunityBelowCapacity(t *testing.T) {
	requireDb(t)

	owner := createTestUser(t)
	joiner := createTestUser(t)

	maxMembers := 2
	community := createTestCommunity(t, owner, &maxMembers)

	member, apiErr := JoinCommunity(context.Background(), joiner, community.Id)
	require.Nil(t, apiErr)
	assert.Equal(t, joiner.User.Id, member.UserId)

	updated, apiErr := GetCommunity(context.Background(), community.Id)
	require.Nil(t, apiErr)
	assert.Equal(t, 2, updated.NumMembers)
}

func TestOwnerCannotLeaveCommunity(t *testing.T) {
	requireDb(t)

	owner := createTestUser(t)
	community := createTestCommunity(t, owner, nil)

	apiErr := LeaveCommunity(context.Background(), owner, community.Id)

	require.NotNil(t, apiErr)
	assert.Equal(t, shared.ApiErrorTypeForbidden, apiErr.Type)
	assert.Equal(t, http.StatusForbidden, apiErr.Status)
}

func TestDeleteUserRecountsPostComments(t *testing.T) {
	requireDb(t)

	owner := createTestUser(t)
	commenter := createTestUser(t)

	community := createTestCommunity(t, owner, nil)

	_, apiErr := JoinCommunity(context.Background(), commenter, community.Id)
	require.Nil(t, apiErr)

	post, apiErr := CreatePost(context.Background(), owner, community.Id, shared.CreatePostRequest{
		Title: "A post",
		Body:  "Body",
	})
	require.Nil(t, apiErr)

	_, apiErr = CreateComment(context.Background(), commenter, post.Id, shared.CreateCommentRequest{
		Body: "A comment",
	})
	require.Nil(t, apiErr)

	_, apiErr = CreateComment(context.Background(), owner, post.Id, shared.CreateCommentRequest{
		Body: "Another comment",
	})
	require.Nil(t, apiErr)

	updated, apiErr := GetPost(context.Background(), owner, post.Id)
	require.Nil(t, apiErr)
	require.Equal(t, 2, updated.NumComments)

	// deleting the commenter cascades their comment away; the counter has to
	// follow
	apiErr = DeleteUser(context.Background(), commenter, commenter.User.Id)
	require.Nil(t, apiErr)

	updated, apiErr = GetPost(context.Background(), owner, post.Id)
	require.Nil(t, apiErr)
	assert.Equal(t, 1, updated.NumComments)
}

func TestArchivePostLifecycle(t *testing.T) {
	requireDb(t)

	owner := createTestUser(t)
	community := createTestCommunity(t, owner, nil)

	post, apiErr := CreatePost(context.Background(), owner, community.Id, shared.CreatePostRequest{
		Title: "A post",
		Body:  "Body",
	})
	require.Nil(t, apiErr)

	archived, apiErr := ArchivePost(context.Background(), owner, post.Id)
	require.Nil(t, apiErr)
	assert.Equal(t, shared.PostStatusArchived, archived.Status)

	// archived posts drop out of the community feed
	posts, apiErr := ListPosts(context.Background(), community.Id)
	require.Nil(t, apiErr)
	for _, p := range posts {
		assert.NotEqual(t, post.Id, p.Id)
	}

	// and stop accepting comments
	_, apiErr = CreateComment(context.Background(), owner, post.Id, shared.CreateCommentRequest{
		Body: "Too late",
	})
	require.NotNil(t, apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.Status)

	// archiving twice conflicts
	_, apiErr = ArchivePost(context.Background(), owner, post.Id)
	require.NotNil(t, apiErr)
	assert.Equal(t, http.StatusConflict, apiErr.Status)

	restored, apiErr := UnarchivePost(context.Background(), owner, post.Id)
	require.Nil(t, apiErr)
	assert.Equal(t, shared.PostStatusPublished, restored.Status)
}

func TestArchivePostRequiresAuthorOrModerator(t *testing.T) {
	requireDb(t)

	owner := createTestUser(t)
	member := createTestUser(t)

	community := createTestCommunity(t, owner, nil)

	_, apiErr := JoinCommunity(context.Background(), member, community.Id)
	require.Nil(t, apiErr)

	post, apiErr := CreatePost(context.Background(), owner, community.Id, shared.CreatePostRequest{
		Title: "A post",
		Body:  "Body",
	})
	require.Nil(t, apiErr)

	archived, apiErr := ArchivePost(context.Background(), member, post.Id)

	assert.Nil(t, archived)
	require.NotNil(t, apiErr)
	assert.Equal(t, shared.ApiErrorTypeForbidden, apiErr.Type)
}
