package db

import (
	"fmt"

	"github.com/google/uuid"
)

// CreateCommunity creates the community, a default "general" channel, and
// joins the creator.
func CreateCommunity(creatorUID, name, description string) (*Community, error) {
	c := &Community{
		ID:          uuid.NewString(),
		Name:        name,
		Description: description,
		CreatedBy:   creatorUID,
		CreatedAt:   now(),
	}

	tx, err := DB.Begin()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(
		"INSERT INTO communities (id, name, description, created_by, created_at) VALUES (?, ?, ?, ?, ?)",
		c.ID, c.Name, c.Description, c.CreatedBy, c.CreatedAt,
	); err != nil {
		return nil, fmt.Errorf("insert community: %w", err)
	}

	general := Channel{ID: uuid.NewString(), CommunityID: c.ID, Name: "general"}
	if _, err := tx.Exec(
		"INSERT INTO channels (id, community_id, name) VALUES (?, ?, ?)",
		general.ID, general.CommunityID, general.Name,
	); err != nil {
		return nil, fmt.Errorf("insert channel: %w", err)
	}

	if _, err := tx.Exec(
		"INSERT INTO community_members (community_id, uid) VALUES (?, ?)", c.ID, creatorUID,
	); err != nil {
		return nil, fmt.Errorf("join creator: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	c.Channels = []Channel{general}
	c.Members = 1
	return c, nil
}

const communityQuery = `
	SELECT c.id, c.name, c.description, c.created_by,
	       (SELECT COUNT(*) FROM community_members m WHERE m.community_id = c.id),
	       c.created_at
	FROM communities c`

func queryCommunities(query string, args ...any) ([]Community, error) {
	rows, err := DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Community{}
	for rows.Next() {
		var c Community
		if err := rows.Scan(&c.ID, &c.Name, &c.Description, &c.CreatedBy, &c.Members, &c.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func ListCommunities() ([]Community, error) {
	return queryCommunities(communityQuery + " ORDER BY c.name")
}

func CommunitiesForUser(uid string) ([]Community, error) {
	return queryCommunities(communityQuery+
		" JOIN community_members m ON m.community_id = c.id WHERE m.uid = ? ORDER BY c.name", uid)
}

func GetCommunity(id string) (*Community, error) {
	communities, err := queryCommunities(communityQuery+" WHERE c.id = ?", id)
	if err != nil {
		return nil, err
	}
	if len(communities) == 0 {
		return nil, ErrNotFound
	}
	c := communities[0]

	rows, err := DB.Query("SELECT id, community_id, name FROM channels WHERE community_id = ? ORDER BY name", id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var ch Channel
		if err := rows.Scan(&ch.ID, &ch.CommunityID, &ch.Name); err != nil {
			return nil, err
		}
		c.Channels = append(c.Channels, ch)
	}
	return &c, rows.Err()
}

func JoinCommunity(uid, communityID string) error {
	_, err := DB.Exec(
		"INSERT OR IGNORE INTO community_members (community_id, uid) VALUES (?, ?)", communityID, uid,
	)
	if err != nil {
		return fmt.Errorf("join community: %w", err)
	}
	return nil
}

func LeaveCommunity(uid, communityID string) error {
	_, err := DB.Exec(
		"DELETE FROM community_members WHERE community_id = ? AND uid = ?", communityID, uid,
	)
	if err != nil {
		return fmt.Errorf("leave community: %w", err)
	}
	return nil
}

func CommunityMembers(communityID string) ([]User, error) {
	return queryUsers(`
		SELECT u.uid, u.email, u.password_hash, u.name, u.role, u.bio, u.location,
		       u.skills, u.expertise, u.created_at
		FROM users u
		JOIN community_members m ON m.uid = u.uid
		WHERE m.community_id = ? ORDER BY u.name`, communityID)
}

// ChannelPosts returns the channel's full ordered history, oldest first.
// The poll contract is a complete list replace, not a delta.
func ChannelPosts(communityID, channelID string) ([]Message, error) {
	rows, err := DB.Query(`
		SELECT p.id, p.sender_uid, u.name, p.content, p.created_at
		FROM channel_posts p
		JOIN channels ch ON ch.id = p.channel_id
		JOIN users u ON u.uid = p.sender_uid
		WHERE p.channel_id = ? AND ch.community_id = ?
		ORDER BY p.created_at ASC LIMIT 200`, channelID, communityID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	msgs := []Message{}
	for rows.Next() {
		var m Message
		if err := rows.Scan(&m.ID, &m.SenderUID, &m.SenderName, &m.Content, &m.Timestamp); err != nil {
			return nil, err
		}
		msgs = append(msgs, m)
	}
	return msgs, rows.Err()
}

func CreateChannelPost(channelID, senderUID, content string) (*Message, error) {
	m := &Message{
		ID:        uuid.NewString(),
		SenderUID: senderUID,
		Content:   content,
		Timestamp: now(),
	}
	_, err := DB.Exec(
		"INSERT INTO channel_posts (id, channel_id, sender_uid, content, created_at) VALUES (?, ?, ?, ?, ?)",
		m.ID, channelID, m.SenderUID, m.Content, m.Timestamp,
	)
	if err != nil {
		return nil, fmt.Errorf("insert channel post: %w", err)
	}
	return m, nil
}
