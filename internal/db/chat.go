package db

import (
	"fmt"
	"sort"

	"github.com/google/uuid"
)

// PairChatID is the deterministic stream id for a direct conversation, so
// either participant's first message lands in the same chat.
func PairChatID(a, b string) string {
	pair := []string{a, b}
	sort.Strings(pair)
	return "dm_" + pair[0] + "_" + pair[1]
}

// SendChatMessage verifies the recipient, creates the pair chat on first
// contact, inserts the message, and refreshes the conversation index row.
func SendChatMessage(senderUID, recipientUID, content string) (chatID string, err error) {
	if _, err := GetUserByUID(recipientUID); err != nil {
		return "", fmt.Errorf("recipient %s: %w", recipientUID, err)
	}

	chatID = PairChatID(senderUID, recipientUID)
	ts := now()

	tx, err := DB.Begin()
	if err != nil {
		return "", err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(
		`INSERT INTO chats (id, user_a, user_b, last_message_at, last_sender, last_message_content)
		 VALUES (?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
		   last_message_at = excluded.last_message_at,
		   last_sender = excluded.last_sender,
		   last_message_content = excluded.last_message_content`,
		chatID, senderUID, recipientUID, ts, senderUID, truncate(content, 50),
	); err != nil {
		return "", fmt.Errorf("upsert chat: %w", err)
	}

	if _, err := tx.Exec(
		"INSERT INTO messages (id, chat_id, sender_uid, recipient_uid, content, created_at) VALUES (?, ?, ?, ?, ?, ?)",
		uuid.NewString(), chatID, senderUID, recipientUID, content, ts,
	); err != nil {
		return "", fmt.Errorf("insert message: %w", err)
	}

	return chatID, tx.Commit()
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}

// ChatMessages returns the full ordered history of a conversation, oldest
// first. Callers poll this and replace their displayed list wholesale.
func ChatMessages(uid, chatID string) ([]Message, error) {
	rows, err := DB.Query(`
		SELECT m.id, m.sender_uid, u.name, m.content, m.created_at
		FROM messages m JOIN users u ON u.uid = m.sender_uid
		WHERE m.chat_id = ? AND (m.sender_uid = ? OR m.recipient_uid = ?)
		ORDER BY m.created_at ASC LIMIT 200`, chatID, uid, uid)
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

func Conversations(uid string) ([]Conversation, error) {
	rows, err := DB.Query(`
		SELECT c.id, c.last_message_content, c.last_message_at,
		       u.uid, u.name, u.role
		FROM chats c
		JOIN users u ON u.uid = CASE WHEN c.user_a = ? THEN c.user_b ELSE c.user_a END
		WHERE c.user_a = ? OR c.user_b = ?
		ORDER BY c.last_message_at DESC LIMIT 100`, uid, uid, uid)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	convos := []Conversation{}
	for rows.Next() {
		var c Conversation
		if err := rows.Scan(&c.ChatID, &c.LastMessageContent, &c.LastMessageAt,
			&c.OtherUser.UID, &c.OtherUser.Name, &c.OtherUser.Role); err != nil {
			return nil, err
		}
		convos = append(convos, c)
	}
	return convos, rows.Err()
}
