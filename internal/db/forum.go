package db

import (
	"fmt"

	"github.com/google/uuid"
)

func CreateForumPost(authorUID, title, content string) (*ForumPost, error) {
	p := &ForumPost{
		ID:        uuid.NewString(),
		AuthorUID: authorUID,
		Title:     title,
		Content:   content,
		CreatedAt: now(),
	}
	_, err := DB.Exec(
		"INSERT INTO forum_posts (id, author_uid, title, content, created_at) VALUES (?, ?, ?, ?, ?)",
		p.ID, p.AuthorUID, p.Title, p.Content, p.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("insert forum post: %w", err)
	}
	return p, nil
}

const forumQuery = `
	SELECT p.id, p.author_uid, u.name, p.title, p.content,
	       COALESCE((SELECT SUM(v.vote) FROM forum_votes v WHERE v.post_id = p.id), 0),
	       p.created_at
	FROM forum_posts p JOIN users u ON u.uid = p.author_uid`

func queryForumPosts(query string, args ...any) ([]ForumPost, error) {
	rows, err := DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	posts := []ForumPost{}
	for rows.Next() {
		var p ForumPost
		if err := rows.Scan(&p.ID, &p.AuthorUID, &p.AuthorName, &p.Title, &p.Content,
			&p.Votes, &p.CreatedAt); err != nil {
			return nil, err
		}
		posts = append(posts, p)
	}
	return posts, rows.Err()
}

// ListForumPosts sorts by recency ("new", the default) or score ("top").
func ListForumPosts(sortBy string) ([]ForumPost, error) {
	order := "p.created_at DESC"
	if sortBy == "top" {
		order = "6 DESC, p.created_at DESC"
	}
	return queryForumPosts(forumQuery + " ORDER BY " + order + " LIMIT 100")
}

func PostsByUser(uid string) ([]ForumPost, error) {
	return queryForumPosts(forumQuery+" WHERE p.author_uid = ? ORDER BY p.created_at DESC", uid)
}

// VoteOnPost records a single vote per user per post; voting again replaces
// the previous vote.
func VoteOnPost(postID, uid string, vote int) error {
	if vote != 1 && vote != -1 {
		return fmt.Errorf("invalid vote %d", vote)
	}
	_, err := DB.Exec(
		`INSERT INTO forum_votes (post_id, uid, vote) VALUES (?, ?, ?)
		 ON CONFLICT(post_id, uid) DO UPDATE SET vote = excluded.vote`,
		postID, uid, vote,
	)
	if err != nil {
		return fmt.Errorf("vote: %w", err)
	}
	return nil
}

func DeleteForumPost(postID, uid string) error {
	res, err := DB.Exec("DELETE FROM forum_posts WHERE id = ? AND author_uid = ?", postID, uid)
	if err != nil {
		return fmt.Errorf("delete post: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
