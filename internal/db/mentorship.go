package db

import (
	"fmt"

	"github.com/google/uuid"
)

func CreateMentorshipRequest(artisanUID, mentorUID, message string) (*MentorshipRequest, error) {
	if _, err := GetUserByUID(mentorUID); err != nil {
		return nil, fmt.Errorf("mentor %s: %w", mentorUID, err)
	}

	r := &MentorshipRequest{
		ID:         uuid.NewString(),
		ArtisanUID: artisanUID,
		MentorUID:  mentorUID,
		Message:    message,
		Status:     "pending",
		CreatedAt:  now(),
	}
	_, err := DB.Exec(
		"INSERT INTO mentorship_requests (id, artisan_uid, mentor_uid, message, status, created_at) VALUES (?, ?, ?, ?, ?, ?)",
		r.ID, r.ArtisanUID, r.MentorUID, r.Message, r.Status, r.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("insert mentorship request: %w", err)
	}
	return r, nil
}

const mentorshipQuery = `
	SELECT r.id, r.artisan_uid, a.name, r.mentor_uid, m.name, r.message, r.status, r.created_at
	FROM mentorship_requests r
	JOIN users a ON a.uid = r.artisan_uid
	JOIN users m ON m.uid = r.mentor_uid`

func queryMentorshipRequests(query string, args ...any) ([]MentorshipRequest, error) {
	rows, err := DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []MentorshipRequest{}
	for rows.Next() {
		var r MentorshipRequest
		if err := rows.Scan(&r.ID, &r.ArtisanUID, &r.ArtisanName, &r.MentorUID, &r.MentorName,
			&r.Message, &r.Status, &r.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func RequestsForMentor(mentorUID string) ([]MentorshipRequest, error) {
	return queryMentorshipRequests(mentorshipQuery+
		" WHERE r.mentor_uid = ? AND r.status = 'pending' ORDER BY r.created_at", mentorUID)
}

func UpdateMentorshipRequest(requestID, mentorUID, status string) error {
	if status != "accepted" && status != "declined" {
		return fmt.Errorf("invalid status %q", status)
	}
	res, err := DB.Exec(
		"UPDATE mentorship_requests SET status = ? WHERE id = ? AND mentor_uid = ? AND status = 'pending'",
		status, requestID, mentorUID,
	)
	if err != nil {
		return fmt.Errorf("update mentorship request: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

func ArtisansForMentor(mentorUID string) ([]User, error) {
	return queryUsers(`
		SELECT u.uid, u.email, u.password_hash, u.name, u.role, u.bio, u.location,
		       u.skills, u.expertise, u.created_at
		FROM users u
		JOIN mentorship_requests r ON r.artisan_uid = u.uid
		WHERE r.mentor_uid = ? AND r.status = 'accepted' ORDER BY u.name`, mentorUID)
}

func MentorsForArtisan(artisanUID string) ([]User, error) {
	return queryUsers(`
		SELECT u.uid, u.email, u.password_hash, u.name, u.role, u.bio, u.location,
		       u.skills, u.expertise, u.created_at
		FROM users u
		JOIN mentorship_requests r ON r.mentor_uid = u.uid
		WHERE r.artisan_uid = ? AND r.status = 'accepted' ORDER BY u.name`, artisanUID)
}
