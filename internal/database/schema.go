package database

import "database/sql"

// schema mirrors the migrations for callers without a migrations
// directory on disk (tests, installed binaries).
const schema = `
CREATE TABLE IF NOT EXISTS submissions (
    id            TEXT PRIMARY KEY,
    intent        TEXT NOT NULL,
    payload       TEXT NOT NULL DEFAULT '{}',
    page_category TEXT,
    created_at    TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_submissions_intent ON submissions(intent);
CREATE INDEX IF NOT EXISTS idx_submissions_created ON submissions(created_at);
`

// EnsureSchema applies the built-in schema.
func EnsureSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	return err
}
