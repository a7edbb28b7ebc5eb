package db

import (
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

func GetUser(userId string) (*User, error) {
	var user User
	err := Conn.Get(&user, "SELECT * FROM users WHERE id = $1", userId)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}

		return nil, fmt.Errorf("error getting user: %v", err)
	}

	return &user, nil
}

func GetUserByEmail(email string) (*User, error) {
	var user User
	err := Conn.Get(&user, "SELECT * FROM users WHERE email = $1", email)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}

		return nil, fmt.Errorf("error getting user: %v", err)
	}

	return &user, nil
}

func ListUsers() ([]*User, error) {
	var users []*User
	err := Conn.Select(&users, "SELECT * FROM users ORDER BY created_at")

	if err != nil {
		return nil, fmt.Errorf("error listing users: %v", err)
	}

	return users, nil
}

func CreateUser(user *User, tx *sqlx.Tx) error {
	query := `INSERT INTO users (name, email, domain, password_hash, status) VALUES ($1, $2, $3, $4, $5)
	RETURNING id, created_at, updated_at`

	err := tx.QueryRow(query, user.Name, user.Email, user.Domain, user.PasswordHash, user.Status).Scan(&user.Id, &user.CreatedAt, &user.UpdatedAt)

	if err != nil {
		return err
	}

	return nil
}

func UpdateUser(user *User, tx *sqlx.Tx) error {
	_, err := tx.Exec("UPDATE users SET name = $1, status = $2 WHERE id = $3", user.Name, user.Status, user.Id)

	if err != nil {
		return fmt.Errorf("error updating user: %v", err)
	}

	return nil
}

func DeleteUser(userId string, tx *sqlx.Tx) error {
	// The cascade removes the user's comments, and replies to them, so
	// capture the posts they commented on and recount num_comments after
	// the delete. Posts the user authored cascade too; updating those ids
	// is a no-op.
	var postIds []string
	err := tx.Select(&postIds, "SELECT DISTINCT post_id FROM comments WHERE author_id = $1", userId)

	if err != nil {
		return fmt.Errorf("error listing commented posts: %v", err)
	}

	_, err = tx.Exec("DELETE FROM users WHERE id = $1", userId)

	if err != nil {
		return fmt.Errorf("error deleting user: %v", err)
	}

	if len(postIds) > 0 {
		_, err = tx.Exec("UPDATE posts SET num_comments = (SELECT COUNT(*) FROM comments WHERE post_id = posts.id) WHERE id = ANY($1)", pq.Array(postIds))

		if err != nil {
			return fmt.Errorf("error updating comment counts: %v", err)
		}
	}

	return nil
}
