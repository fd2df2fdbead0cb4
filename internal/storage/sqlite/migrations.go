package sqlite

import "database/sql"

// schema contains the SQL statements to set up the database schema.
// These run on startup to ensure tables exist.
const schema = `
CREATE TABLE IF NOT EXISTS sessions (
    id TEXT PRIMARY KEY,
    title TEXT NOT NULL,
    bill_text TEXT NOT NULL DEFAULT '',
    bill_amount REAL NOT NULL,
    tip_percent INTEGER NOT NULL CHECK (tip_percent BETWEEN 0 AND 100),
    party_size INTEGER NOT NULL CHECK (party_size >= 1),
    amount_per_person REAL NOT NULL,
    created_at INTEGER NOT NULL,
    updated_at INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_sessions_updated_at ON sessions(updated_at);
`

// runMigrations executes the schema setup.
func runMigrations(db *sql.DB) error {
	_, err := db.Exec(schema)
	return err
}
