package db

import (
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"
)

func GetCommunity(communityId string) (*Community, error) {
	var community Community
	err := Conn.Get(&community, "SELECT * FROM communities WHERE id = $1", communityId)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}

		return nil, fmt.Errorf("error getting community: %v", err)
	}

	return &community, nil
}

// GetCommunityForUpdate locks the community row for the duration of the
// transaction. Used by membership writes so the capacity check and the
// member insert can't race.
func GetCommunityForUpdate(communityId string, tx *sqlx.Tx) (*Community, error) {
	var community Community
	err := tx.Get(&community, "SELECT * FROM communities WHERE id = $1 FOR UPDATE", communityId)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}

		return nil, fmt.Errorf("error getting community for update: %v", err)
	}

	return &community, nil
}

func ListCommunities() ([]*Community, error) {
	var communities []*Community
	err := Conn.Select(&communities, "SELECT * FROM communities ORDER BY created_at")

	if err != nil {
		return nil, fmt.Errorf("error listing communities: %v", err)
	}

	return communities, nil
}

func ListCommunitiesForUser(userId string) ([]*Community, error) {
	var communities []*Community
	err := Conn.Select(&communities, `
		SELECT c.* FROM communities c
		JOIN community_members cm ON cm.community_id = c.id
		WHERE cm.user_id = $1
		ORDER BY c.created_at
	`, userId)

	if err != nil {
		return nil, fmt.Errorf("error listing communities for user: %v", err)
	}

	return communities, nil
}

func CreateCommunity(community *Community, tx *sqlx.Tx) error {
	query := `INSERT INTO communities (name, slug, description, owner_id, max_members, num_members) VALUES ($1, $2, $3, $4, $5, 1)
	RETURNING id, num_members, created_at, updated_at`

	err := tx.QueryRow(query, community.Name, community.Slug, community.Description, community.OwnerId, community.MaxMembers).Scan(&community.Id, &community.NumMembers, &community.CreatedAt, &community.UpdatedAt)

	if err != nil {
		return err
	}

	return nil
}

func UpdateCommunity(community *Community, tx *sqlx.Tx) error {
	_, err := tx.Exec("UPDATE communities SET name = $1, slug = $2, description = $3, max_members = $4 WHERE id = $5", community.Name, community.Slug, community.Description, community.MaxMembers, community.Id)

	if err != nil {
		if IsNonUniqueErr(err) {
			return err
		}
		return fmt.Errorf("error updating community: %v", err)
	}

	return nil
}

func DeleteCommunity(communityId string, tx *sqlx.Tx) error {
	// members, posts, and comments go with it via ON DELETE CASCADE
	_, err := tx.Exec("DELETE FROM communities WHERE id = $1", communityId)

	if err != nil {
		return fmt.Errorf("error deleting community: %v", err)
	}

	return nil
}
