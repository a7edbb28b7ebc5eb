package db

import (
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"
)

func GetCommunityMember(communityId, userId string) (*CommunityMember, error) {
	var member CommunityMember
	err := Conn.Get(&member, "SELECT * FROM community_members WHERE community_id = $1 AND user_id = $2", communityId, userId)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}

		return nil, fmt.Errorf("error getting community member: %v", err)
	}

	return &member, nil
}

func ListCommunityMembers(communityId string) ([]*CommunityMember, error) {
	var members []*CommunityMember
	err := Conn.Select(&members, "SELECT * FROM community_members WHERE community_id = $1 ORDER BY created_at", communityId)

	if err != nil {
		return nil, fmt.Errorf("error listing community members: %v", err)
	}

	return members, nil
}

// CreateOwnerMember inserts the creator's membership row without touching
// num_members, which CreateCommunity already seeded at 1.
func CreateOwnerMember(member *CommunityMember, tx *sqlx.Tx) error {
	query := `INSERT INTO community_members (community_id, user_id, role) VALUES ($1, $2, $3)
	RETURNING id, created_at, updated_at`

	err := tx.QueryRow(query, member.CommunityId, member.UserId, member.Role).Scan(&member.Id, &member.CreatedAt, &member.UpdatedAt)

	if err != nil {
		return fmt.Errorf("error creating owner member: %v", err)
	}

	return nil
}

func CreateCommunityMember(member *CommunityMember, tx *sqlx.Tx) error {
	query := `INSERT INTO community_members (community_id, user_id, role) VALUES ($1, $2, $3)
	RETURNING id, created_at, updated_at`

	err := tx.QueryRow(query, member.CommunityId, member.UserId, member.Role).Scan(&member.Id, &member.CreatedAt, &member.UpdatedAt)

	if err != nil {
		return err
	}

	_, err = tx.Exec("UPDATE communities SET num_members = num_members + 1 WHERE id = $1", member.CommunityId)

	if err != nil {
		return fmt.Errorf("error incrementing member count: %v", err)
	}

	return nil
}

func DeleteCommunityMember(communityId, userId string, tx *sqlx.Tx) error {
	res, err := tx.Exec("DELETE FROM community_members WHERE community_id = $1 AND user_id = $2", communityId, userId)

	if err != nil {
		return fmt.Errorf("error deleting community member: %v", err)
	}

	numDeleted, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("error getting rows affected: %v", err)
	}

	if numDeleted > 0 {
		_, err = tx.Exec("UPDATE communities SET num_members = num_members - 1 WHERE id = $1", communityId)

		if err != nil {
			return fmt.Errorf("error decrementing member count: %v", err)
		}
	}

	return nil
}
