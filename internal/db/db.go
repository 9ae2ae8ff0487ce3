package db

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

var DB *sql.DB

func Init(dataDir string) error {
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	dbPath := filepath.Join(dataDir, "kalasetu.db")
	var err error
	DB, err = sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=foreign_keys(on)")
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}

	if err := migrate(); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	if err := seedSchemes(); err != nil {
		return fmt.Errorf("seed schemes: %w", err)
	}

	return nil
}

func migrate() error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS users (
			uid TEXT PRIMARY KEY,
			email TEXT NOT NULL UNIQUE,
			password_hash TEXT NOT NULL,
			name TEXT NOT NULL DEFAULT '',
			role TEXT NOT NULL CHECK(role IN ('artisan','mentor','investor')),
			bio TEXT NOT NULL DEFAULT '',
			location TEXT NOT NULL DEFAULT '',
			skills TEXT NOT NULL DEFAULT '',
			expertise TEXT NOT NULL DEFAULT '',
			created_at TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS businesses (
			id TEXT PRIMARY KEY,
			owner_uid TEXT NOT NULL REFERENCES users(uid),
			business_name TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			category TEXT NOT NULL DEFAULT '',
			verified INTEGER NOT NULL DEFAULT 0,
			verified_by TEXT NOT NULL DEFAULT '',
			active INTEGER NOT NULL DEFAULT 1,
			created_at TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS pitches (
			id TEXT PRIMARY KEY,
			business_id TEXT NOT NULL REFERENCES businesses(id),
			owner_uid TEXT NOT NULL REFERENCES users(uid),
			pitch_title TEXT NOT NULL,
			summary TEXT NOT NULL DEFAULT '',
			pitch_details TEXT NOT NULL DEFAULT '',
			funding_goal REAL NOT NULL DEFAULT 0,
			current_funding REAL NOT NULL DEFAULT 0,
			equity_offered REAL NOT NULL DEFAULT 0,
			status TEXT NOT NULL DEFAULT 'open',
			created_at TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS pitch_interest (
			pitch_id TEXT NOT NULL REFERENCES pitches(id) ON DELETE CASCADE,
			investor_uid TEXT NOT NULL REFERENCES users(uid),
			UNIQUE(pitch_id, investor_uid)
		)`,
		`CREATE TABLE IF NOT EXISTS investments (
			id TEXT PRIMARY KEY,
			pitch_id TEXT NOT NULL REFERENCES pitches(id),
			investor_uid TEXT NOT NULL REFERENCES users(uid),
			amount REAL NOT NULL,
			created_at TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS forum_posts (
			id TEXT PRIMARY KEY,
			author_uid TEXT NOT NULL REFERENCES users(uid),
			title TEXT NOT NULL,
			content TEXT NOT NULL DEFAULT '',
			created_at TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS forum_votes (
			post_id TEXT NOT NULL REFERENCES forum_posts(id) ON DELETE CASCADE,
			uid TEXT NOT NULL REFERENCES users(uid),
			vote INTEGER NOT NULL CHECK(vote IN (-1, 1)),
			UNIQUE(post_id, uid)
		)`,
		`CREATE TABLE IF NOT EXISTS communities (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			created_by TEXT NOT NULL DEFAULT '',
			created_at TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS community_members (
			community_id TEXT NOT NULL REFERENCES communities(id) ON DELETE CASCADE,
			uid TEXT NOT NULL REFERENCES users(uid),
			UNIQUE(community_id, uid)
		)`,
		`CREATE TABLE IF NOT EXISTS channels (
			id TEXT PRIMARY KEY,
			community_id TEXT NOT NULL REFERENCES communities(id) ON DELETE CASCADE,
			name TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS channel_posts (
			id TEXT PRIMARY KEY,
			channel_id TEXT NOT NULL REFERENCES channels(id) ON DELETE CASCADE,
			sender_uid TEXT NOT NULL REFERENCES users(uid),
			content TEXT NOT NULL,
			created_at TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS chats (
			id TEXT PRIMARY KEY,
			user_a TEXT NOT NULL REFERENCES users(uid),
			user_b TEXT NOT NULL REFERENCES users(uid),
			last_message_at TEXT NOT NULL,
			last_sender TEXT NOT NULL DEFAULT '',
			last_message_content TEXT NOT NULL DEFAULT ''
		)`,
		`CREATE TABLE IF NOT EXISTS messages (
			id TEXT PRIMARY KEY,
			chat_id TEXT NOT NULL REFERENCES chats(id) ON DELETE CASCADE,
			sender_uid TEXT NOT NULL REFERENCES users(uid),
			recipient_uid TEXT NOT NULL REFERENCES users(uid),
			content TEXT NOT NULL,
			created_at TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS mentorship_requests (
			id TEXT PRIMARY KEY,
			artisan_uid TEXT NOT NULL REFERENCES users(uid),
			mentor_uid TEXT NOT NULL REFERENCES users(uid),
			message TEXT NOT NULL DEFAULT '',
			status TEXT NOT NULL DEFAULT 'pending' CHECK(status IN ('pending','accepted','declined')),
			created_at TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS schemes (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			eligibility TEXT NOT NULL DEFAULT '',
			link TEXT NOT NULL DEFAULT ''
		)`,
	}

	for _, m := range migrations {
		if _, err := DB.Exec(m); err != nil {
			return fmt.Errorf("exec migration: %w", err)
		}
	}

	return nil
}

// Government scheme listings are static reference data.
func seedSchemes() error {
	var count int
	if err := DB.QueryRow("SELECT COUNT(*) FROM schemes").Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	schemes := []Scheme{
		{ID: "pmvishwakarma", Name: "PM Vishwakarma", Description: "Credit support and skill training for traditional artisans and craftspeople.", Eligibility: "Artisans working with hands and tools in family-based trades.", Link: "https://pmvishwakarma.gov.in"},
		{ID: "mudra", Name: "PM MUDRA Yojana", Description: "Collateral-free loans up to 10 lakh for micro enterprises.", Eligibility: "Non-corporate, non-farm small and micro enterprises.", Link: "https://www.mudra.org.in"},
		{ID: "sfurti", Name: "SFURTI", Description: "Cluster development for traditional industries and artisans.", Eligibility: "Artisan clusters of 500+ members.", Link: "https://sfurti.msme.gov.in"},
	}
	for _, s := range schemes {
		if _, err := DB.Exec(
			"INSERT INTO schemes (id, name, description, eligibility, link) VALUES (?, ?, ?, ?, ?)",
			s.ID, s.Name, s.Description, s.Eligibility, s.Link,
		); err != nil {
			return err
		}
	}
	return nil
}

func Close() {
	if DB != nil {
		DB.Close()
	}
}

func now() string {
	return time.Now().UTC().Format(time.RFC3339Nano)
}
