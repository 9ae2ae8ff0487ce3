package db

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"
)

func CreateBusiness(ownerUID, name, description, category string) (*Business, error) {
	b := &Business{
		ID:           uuid.NewString(),
		OwnerUID:     ownerUID,
		BusinessName: name,
		Description:  description,
		Category:     category,
		Active:       true,
		CreatedAt:    now(),
	}
	_, err := DB.Exec(
		"INSERT INTO businesses (id, owner_uid, business_name, description, category, created_at) VALUES (?, ?, ?, ?, ?, ?)",
		b.ID, b.OwnerUID, b.BusinessName, b.Description, b.Category, b.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("insert business: %w", err)
	}
	return b, nil
}

func scanBusinesses(rows *sql.Rows) ([]Business, error) {
	defer rows.Close()
	out := []Business{}
	for rows.Next() {
		var b Business
		if err := rows.Scan(&b.ID, &b.OwnerUID, &b.OwnerName, &b.BusinessName,
			&b.Description, &b.Category, &b.Verified, &b.VerifiedBy, &b.Active, &b.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

const businessQuery = `
	SELECT b.id, b.owner_uid, u.name, b.business_name, b.description, b.category,
	       b.verified, b.verified_by, b.active, b.created_at
	FROM businesses b JOIN users u ON u.uid = b.owner_uid`

func GetBusinessesByOwner(ownerUID string) ([]Business, error) {
	rows, err := DB.Query(businessQuery+" WHERE b.owner_uid = ? ORDER BY b.created_at DESC", ownerUID)
	if err != nil {
		return nil, err
	}
	return scanBusinesses(rows)
}

func GetBusinessByID(id string) (*Business, error) {
	rows, err := DB.Query(businessQuery+" WHERE b.id = ?", id)
	if err != nil {
		return nil, err
	}
	businesses, err := scanBusinesses(rows)
	if err != nil {
		return nil, err
	}
	if len(businesses) == 0 {
		return nil, ErrNotFound
	}
	return &businesses[0], nil
}

func DeactivateBusiness(id, ownerUID string) error {
	res, err := DB.Exec(
		"UPDATE businesses SET active = 0 WHERE id = ? AND owner_uid = ?", id, ownerUID,
	)
	if err != nil {
		return fmt.Errorf("deactivate business: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// UnverifiedBusinesses lists active businesses awaiting mentor review.
func UnverifiedBusinesses() ([]Business, error) {
	rows, err := DB.Query(businessQuery + " WHERE b.verified = 0 AND b.active = 1 ORDER BY b.created_at")
	if err != nil {
		return nil, err
	}
	return scanBusinesses(rows)
}

func VerifyBusiness(id, mentorUID string) error {
	res, err := DB.Exec(
		"UPDATE businesses SET verified = 1, verified_by = ? WHERE id = ? AND verified = 0",
		mentorUID, id,
	)
	if err != nil {
		return fmt.Errorf("verify business: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
