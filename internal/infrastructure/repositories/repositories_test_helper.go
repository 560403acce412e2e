package repositories

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", t.Name(), time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err, "open sqlite")
	return db
}

func mustExec(t *testing.T, db *gorm.DB, q string, args ...interface{}) {
	t.Helper()
	require.NoError(t, db.Exec(q, args...).Error, "exec failed: query=%s", q)
}

func createUserTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE users (
		id TEXT PRIMARY KEY,
		email TEXT UNIQUE,
		password_hash TEXT,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
}

func createProfileTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE profiles (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL UNIQUE,
		name TEXT NOT NULL,
		role TEXT NOT NULL,
		bio TEXT,
		location TEXT,
		avatar_url TEXT,
		associations TEXT,
		rating REAL,
		verification_status TEXT NOT NULL,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createWallTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE walls (
		id TEXT PRIMARY KEY,
		profile_id TEXT NOT NULL,
		title TEXT NOT NULL,
		description TEXT,
		tagline TEXT,
		journey_content TEXT,
		logo_url TEXT,
		hero_media_url TEXT,
		hero_media_type TEXT,
		showreel_url TEXT,
		showreel_type TEXT,
		brand_primary TEXT,
		brand_secondary TEXT,
		social_twitter TEXT,
		social_linkedin TEXT,
		social_instagram TEXT,
		social_website TEXT,
		awards TEXT,
		published BOOLEAN NOT NULL DEFAULT 0,
		view_count INTEGER NOT NULL DEFAULT 0,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createProjectTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE projects (
		id TEXT PRIMARY KEY,
		wall_id TEXT NOT NULL,
		title TEXT NOT NULL,
		description TEXT,
		category TEXT,
		media_url TEXT,
		media_type TEXT,
		order_index INTEGER NOT NULL DEFAULT 0,
		created_at DATETIME
	);`)
}

func createTeamMemberTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE team_members (
		id TEXT PRIMARY KEY,
		studio_wall_id TEXT NOT NULL,
		artist_id TEXT NOT NULL,
		role TEXT,
		created_at DATETIME,
		UNIQUE (studio_wall_id, artist_id)
	);`)
}

func createConnectionTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE connections (
		id TEXT PRIMARY KEY,
		sender_id TEXT NOT NULL,
		receiver_id TEXT NOT NULL,
		message TEXT,
		status TEXT NOT NULL,
		created_at DATETIME
	);`)
}
