package db

import (
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"
)

func GetComment(commentId string) (*Comment, error) {
	var comment Comment
	err := Conn.Get(&comment, "SELECT * FROM comments WHERE id = $1", commentId)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}

		return nil, fmt.Errorf("error getting comment: %v", err)
	}

	return &comment, nil
}

func ListComments(postId string) ([]*Comment, error) {
	var comments []*Comment
	err := Conn.Select(&comments, "SELECT * FROM comments WHERE post_id = $1 ORDER BY created_at", postId)

	if err != nil {
		return nil, fmt.Errorf("error listing comments: %v", err)
	}

	return comments, nil
}

func CreateComment(comment *Comment, tx *sqlx.Tx) error {
	query := `INSERT INTO comments (post_id, author_id, parent_id, body) VALUES ($1, $2, $3, $4)
	RETURNING id, created_at, updated_at`

	err := tx.QueryRow(query, comment.PostId, comment.AuthorId, comment.ParentId, comment.Body).Scan(&comment.Id, &comment.CreatedAt, &comment.UpdatedAt)

	if err != nil {
		return fmt.Errorf("error creating comment: %v", err)
	}

	_, err = tx.Exec("UPDATE posts SET num_comments = num_comments + 1 WHERE id = $1", comment.PostId)

	if err != nil {
		return fmt.Errorf("error incrementing comment count: %v", err)
	}

	return nil
}

func UpdateComment(comment *Comment, tx *sqlx.Tx) error {
	_, err := tx.Exec("UPDATE comments SET body = $1 WHERE id = $2", comment.Body, comment.Id)

	if err != nil {
		return fmt.Errorf("error updating comment: %v", err)
	}

	return nil
}

func DeleteComment(comment *Comment, tx *sqlx.Tx) error {
	_, err := tx.Exec("DELETE FROM comments WHERE id = $1", comment.Id)

	if err != nil {
		return fmt.Errorf("error deleting comment: %v", err)
	}

	// replies cascade with the parent, so recount instead of decrementing
	_, err = tx.Exec("UPDATE posts SET num_comments = (SELECT COUNT(*) FROM comments WHERE post_id = $1) WHERE id = $1", comment.PostId)

	if err != nil {
		return fmt.Errorf("error updating comment count: %v", err)
	}

	return nil
}
