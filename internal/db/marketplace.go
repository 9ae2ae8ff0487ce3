package db

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

func CreatePitch(businessID, ownerUID, title, summary, details string, fundingGoal, equityOffered float64) (*Pitch, error) {
	p := &Pitch{
		ID:            uuid.NewString(),
		BusinessID:    businessID,
		OwnerUID:      ownerUID,
		PitchTitle:    title,
		Summary:       summary,
		PitchDetails:  details,
		FundingGoal:   fundingGoal,
		EquityOffered: equityOffered,
		Status:        "open",
		CreatedAt:     now(),
	}
	_, err := DB.Exec(
		`INSERT INTO pitches (id, business_id, owner_uid, pitch_title, summary, pitch_details,
			funding_goal, equity_offered, status, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.BusinessID, p.OwnerUID, p.PitchTitle, p.Summary, p.PitchDetails,
		p.FundingGoal, p.EquityOffered, p.Status, p.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("insert pitch: %w", err)
	}
	return p, nil
}

const pitchQuery = `
	SELECT p.id, p.business_id, b.business_name, p.owner_uid, p.pitch_title, p.summary,
	       p.pitch_details, p.funding_goal, p.current_funding, p.equity_offered, p.status,
	       (SELECT COUNT(*) FROM pitch_interest pi WHERE pi.pitch_id = p.id), p.created_at
	FROM pitches p JOIN businesses b ON b.id = p.business_id`

func scanPitches(rows *sql.Rows) ([]Pitch, error) {
	defer rows.Close()
	out := []Pitch{}
	for rows.Next() {
		var p Pitch
		if err := rows.Scan(&p.ID, &p.BusinessID, &p.BusinessName, &p.OwnerUID, &p.PitchTitle,
			&p.Summary, &p.PitchDetails, &p.FundingGoal, &p.CurrentFunding, &p.EquityOffered,
			&p.Status, &p.Interested, &p.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func ListPitches() ([]Pitch, error) {
	rows, err := DB.Query(pitchQuery + " WHERE p.status = 'open' ORDER BY p.created_at DESC")
	if err != nil {
		return nil, err
	}
	return scanPitches(rows)
}

func GetPitch(id string) (*Pitch, error) {
	rows, err := DB.Query(pitchQuery+" WHERE p.id = ?", id)
	if err != nil {
		return nil, err
	}
	pitches, err := scanPitches(rows)
	if err != nil {
		return nil, err
	}
	if len(pitches) == 0 {
		return nil, ErrNotFound
	}
	return &pitches[0], nil
}

func AddPitchInterest(pitchID, investorUID string) error {
	_, err := DB.Exec(
		"INSERT OR IGNORE INTO pitch_interest (pitch_id, investor_uid) VALUES (?, ?)",
		pitchID, investorUID,
	)
	if err != nil {
		return fmt.Errorf("add interest: %w", err)
	}
	return nil
}

// FundPitch records an investment and bumps the pitch's running total in one
// transaction.
func FundPitch(pitchID, investorUID string, amount float64) (*Pitch, error) {
	if amount <= 0 {
		return nil, errors.New("amount must be positive")
	}

	tx, err := DB.Begin()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	res, err := tx.Exec(
		"UPDATE pitches SET current_funding = current_funding + ? WHERE id = ? AND status = 'open'",
		amount, pitchID,
	)
	if err != nil {
		return nil, fmt.Errorf("fund pitch: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, errors.New("pitch missing or closed")
	}

	_, err = tx.Exec(
		"INSERT INTO investments (id, pitch_id, investor_uid, amount, created_at) VALUES (?, ?, ?, ?, ?)",
		uuid.NewString(), pitchID, investorUID, amount, now(),
	)
	if err != nil {
		return nil, fmt.Errorf("record investment: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return GetPitch(pitchID)
}

func PortfolioFor(investorUID string) ([]Investment, error) {
	rows, err := DB.Query(`
		SELECT i.id, i.pitch_id, p.pitch_title, i.investor_uid, i.amount, i.created_at
		FROM investments i JOIN pitches p ON p.id = i.pitch_id
		WHERE i.investor_uid = ? ORDER BY i.created_at DESC`, investorUID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Investment{}
	for rows.Next() {
		var inv Investment
		if err := rows.Scan(&inv.ID, &inv.PitchID, &inv.PitchTitle, &inv.InvestorUID,
			&inv.Amount, &inv.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, inv)
	}
	return out, rows.Err()
}
