package db

import (
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"
)

func GetPost(postId string) (*Post, error) {
	var post Post
	err := Conn.Get(&post, "SELECT * FROM posts WHERE id = $1", postId)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}

		return nil, fmt.Errorf("error getting post: %v", err)
	}

	return &post, nil
}

func ListPosts(communityId string) ([]*Post, error) {
	var posts []*Post
	err := Conn.Select(&posts, "SELECT * FROM posts WHERE community_id = $1 AND status = 'published' ORDER BY created_at DESC", communityId)

	if err != nil {
		return nil, fmt.Errorf("error listing posts: %v", err)
	}

	return posts, nil
}

func ListDraftPosts(communityId, authorId string) ([]*Post, error) {
	var posts []*Post
	err := Conn.Select(&posts, "SELECT * FROM posts WHERE community_id = $1 AND author_id = $2 AND status = 'draft' ORDER BY created_at DESC", communityId, authorId)

	if err != nil {
		return nil, fmt.Errorf("error listing draft posts: %v", err)
	}

	return posts, nil
}

func CreatePost(post *Post, tx *sqlx.Tx) error {
	query := `INSERT INTO posts (community_id, author_id, title, body, status) VALUES ($1, $2, $3, $4, $5)
	RETURNING id, created_at, updated_at`

	err := tx.QueryRow(query, post.CommunityId, post.AuthorId, post.Title, post.Body, post.Status).Scan(&post.Id, &post.CreatedAt, &post.UpdatedAt)

	if err != nil {
		return fmt.Errorf("error creating post: %v", err)
	}

	return nil
}

func UpdatePost(post *Post, tx *sqlx.Tx) error {
	_, err := tx.Exec("UPDATE posts SET title = $1, body = $2, status = $3 WHERE id = $4", post.Title, post.Body, post.Status, post.Id)

	if err != nil {
		return fmt.Errorf("error updating post: %v", err)
	}

	return nil
}

func DeletePost(postId string, tx *sqlx.Tx) error {
	// comments go with it via ON DELETE CASCADE
	_, err := tx.Exec("DELETE FROM posts WHERE id = $1", postId)

	if err != nil {
		return fmt.Errorf("error deleting post: %v", err)
	}

	return nil
}
