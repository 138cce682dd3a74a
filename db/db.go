package db

import (
	"database/sql"
	"fmt"

	_ "github.com/go-sql-driver/mysql"
)

// Connect opens the MySQL handle and ensures the schema exists.
func Connect(dsn string) (*sql.DB, error) {
	conn, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	if err := Migrate(conn); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return conn, nil
}

func Migrate(conn *sql.DB) error {
	userTable := `
	CREATE TABLE IF NOT EXISTS users (
		id CHAR(36) PRIMARY KEY,
		username VARCHAR(50) UNIQUE NOT NULL,
		password_hash VARCHAR(255) NOT NULL,
		created_at DATETIME(6) DEFAULT CURRENT_TIMESTAMP(6)
	);`

	notesTable := `
	CREATE TABLE IF NOT EXISTS notes (
		id CHAR(36) PRIMARY KEY,
		user_id CHAR(36) NOT NULL,
		title VARCHAR(200) NOT NULL DEFAULT '',
		content TEXT NOT NULL,
		created_at DATETIME(6) NOT NULL,
		updated_at DATETIME(6) NOT NULL,
		FOREIGN KEY (user_id) REFERENCES users(id) ON DELETE CASCADE
	);`

	if _, err := conn.Exec(userTable); err != nil {
		return fmt.Errorf("create users table: %w", err)
	}
	if _, err := conn.Exec(notesTable); err != nil {
		return fmt.Errorf("create notes table: %w", err)
	}
	return nil
}
