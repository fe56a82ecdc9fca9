package repository

import (
	"database/sql"
	"fmt"
	"testing"
	"time"

	"github.com/CryptoXApp/CryptoX_Api.git/internal/database"
	"github.com/CryptoXApp/CryptoX_Api.git/internal/models"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) *sql.DB {
	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)

	require.NoError(t, database.CreateTables(db))

	t.Cleanup(func() { db.Close() })
	return db
}

func createTestUser(t *testing.T, db *sql.DB) *models.User {
	user := &models.User{
		ID:          fmt.Sprintf("%d", time.Now().UnixNano()),
		Email:       fmt.Sprintf("test-%d@cryptox.app", time.Now().UnixNano()),
		Password:    "hash",
		DisplayName: fmt.Sprintf("tester-%d", time.Now().UnixNano()),
	}
	require.NoError(t, NewUserRepository(db).CreateUser(user))
	return user
}
