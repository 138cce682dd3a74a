package store

import (
	"database/sql"
	"os"
	"testing"

	"github.com/joho/godotenv"
	"github.com/stretchr/testify/require"

	"secure-notes/db"
)

// testDB opens a fresh schema against the database named by TEST_DSN. The
// DSN needs parseTime=true. Tests that need a database skip without it.
func testDB(t *testing.T) *sql.DB {
	t.Helper()

	godotenv.Load("../.env.test")
	dsn := os.Getenv("TEST_DSN")
	if dsn == "" {
		t.Skip("TEST_DSN not set; skipping database tests")
	}

	conn, err := sql.Open("mysql", dsn)
	require.NoError(t, err)
	require.NoError(t, conn.Ping())

	conn.Exec("DROP TABLE IF EXISTS notes")
	conn.Exec("DROP TABLE IF EXISTS users")
	require.NoError(t, db.Migrate(conn))

	t.Cleanup(func() {
		conn.Exec("DROP TABLE IF EXISTS notes")
		conn.Exec("DROP TABLE IF EXISTS users")
		conn.Close()
	})
	return conn
}
