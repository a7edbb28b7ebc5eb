package usecase

import (
	"context"
	"net/http"
	"testing"

	"agora-server/db"
	"agora-server/shared"
	"agora-server/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Names made entirely of symbols slugify to an empty string, which the slug
// column can't accept. Both create and update reject them up front, before
// touching the database.

func TestCreateCommunityRejectsUnsluggableName(t *testing.T) {
	auth := &types.ServerAuth{User: &db.User{Id: "user-1"}}

	community, apiErr := CreateCommunity(context.Background(), auth, shared.CreateCommunityRequest{
		Name: "???",
	})

	assert.Nil(t, community)
	require.NotNil(t, apiErr)
	assert.Equal(t, shared.ApiErrorTypeValidation, apiErr.Type)
	assert.Equal(t, http.StatusUnprocessableEntity, apiErr.Status)
}

func TestUpdateCommunityRejectsUnsluggableName(t *testing.T) {
	auth := &types.ServerAuth{User: &db.User{Id: "user-1"}}

	community, apiErr := UpdateCommunity(context.Background(), auth, "community-1", shared.UpdateCommunityRequest{
		Name: "!!! ***",
	})

	assert.Nil(t, community)
	require.NotNil(t, apiErr)
	assert.Equal(t, shared.ApiErrorTypeValidation, apiErr.Type)
	assert.Equal(t, http.StatusUnprocessableEntity, apiErr.Status)
}
