package db

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("not found")

const userCols = "uid, email, password_hash, name, role, bio, location, skills, expertise, created_at"

func scanUser(row interface{ Scan(...any) error }) (*User, error) {
	var u User
	err := row.Scan(&u.UID, &u.Email, &u.PasswordHash, &u.Name, &u.Role,
		&u.Bio, &u.Location, &u.Skills, &u.Expertise, &u.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func CreateUser(email, passwordHash, name, role string) (*User, error) {
	u := &User{
		UID:          uuid.NewString(),
		Email:        email,
		PasswordHash: passwordHash,
		Name:         name,
		Role:         role,
		CreatedAt:    now(),
	}
	_, err := DB.Exec(
		"INSERT INTO users (uid, email, password_hash, name, role, created_at) VALUES (?, ?, ?, ?, ?, ?)",
		u.UID, u.Email, u.PasswordHash, u.Name, u.Role, u.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("insert user: %w", err)
	}
	return u, nil
}

func GetUserByEmail(email string) (*User, error) {
	return scanUser(DB.QueryRow("SELECT "+userCols+" FROM users WHERE email = ?", email))
}

func GetUserByUID(uid string) (*User, error) {
	return scanUser(DB.QueryRow("SELECT "+userCols+" FROM users WHERE uid = ?", uid))
}

func UpdateProfile(uid, name, bio, location, skills, expertise string) error {
	res, err := DB.Exec(
		"UPDATE users SET name = ?, bio = ?, location = ?, skills = ?, expertise = ? WHERE uid = ?",
		name, bio, location, skills, expertise, uid,
	)
	if err != nil {
		return fmt.Errorf("update profile: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

func queryUsers(query string, args ...any) ([]User, error) {
	rows, err := DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := []User{}
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, *u)
	}
	return users, rows.Err()
}

func SearchUsersByName(name string) ([]User, error) {
	return queryUsers(
		"SELECT "+userCols+" FROM users WHERE name LIKE ? ORDER BY name LIMIT 50",
		"%"+name+"%",
	)
}

func SearchArtisans(skill string) ([]User, error) {
	return queryUsers(
		"SELECT "+userCols+" FROM users WHERE role = 'artisan' AND skills LIKE ? ORDER BY name LIMIT 50",
		"%"+skill+"%",
	)
}

func SearchMentors(expertise string) ([]User, error) {
	return queryUsers(
		"SELECT "+userCols+" FROM users WHERE role = 'mentor' AND expertise LIKE ? ORDER BY name LIMIT 50",
		"%"+expertise+"%",
	)
}

func ListSchemes() ([]Scheme, error) {
	rows, err := DB.Query("SELECT id, name, description, eligibility, link FROM schemes ORDER BY name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	schemes := []Scheme{}
	for rows.Next() {
		var s Scheme
		if err := rows.Scan(&s.ID, &s.Name, &s.Description, &s.Eligibility, &s.Link); err != nil {
			return nil, err
		}
		schemes = append(schemes, s)
	}
	return schemes, rows.Err()
}
