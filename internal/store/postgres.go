// internal/store/postgres.go
package store

import (
	"database/sql"
	"log"
)

// PostgresStore persists the key space in a single session_kv table. It is the
// backend to pick when the worker runs on another host and needs to see the
// server's writes.
type PostgresStore struct {
	DB *sql.DB
}

func NewPostgresStore(db *sql.DB) (*PostgresStore, error) {
	_, err := db.Exec(`
        CREATE TABLE IF NOT EXISTS session_kv (
            key   TEXT PRIMARY KEY,
            value BYTEA NOT NULL
        )
    `)
	if err != nil {
		return nil, err
	}
	return &PostgresStore{DB: db}, nil
}

func (p *PostgresStore) Get(key string) ([]byte, bool) {
	var raw []byte
	err := p.DB.QueryRow(`SELECT value FROM session_kv WHERE key=$1`, key).Scan(&raw)
	if err != nil {
		if err != sql.ErrNoRows {
			log.Println("⚠️ failed to read session key", key+":", err)
		}
		return nil, false
	}
	return raw, true
}

func (p *PostgresStore) Set(key string, value []byte) error {
	_, err := p.DB.Exec(`
        INSERT INTO session_kv (key, value) VALUES ($1, $2)
        ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value
    `, key, value)
	return err
}

func (p *PostgresStore) Remove(key string) {
	if _, err := p.DB.Exec(`DELETE FROM session_kv WHERE key=$1`, key); err != nil {
		log.Println("⚠️ failed to remove session key", key+":", err)
	}
}
