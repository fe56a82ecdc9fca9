package repository

import (
	"testing"

	"github.com/CryptoXApp/CryptoX_Api.git/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPortfolioRoundTrip(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db)
	repo := NewPortfolioRepository(db)

	entry := &models.PortfolioEntry{
		UserID:        user.ID,
		CoinID:        "bitcoin",
		Amount:        0.5,
		PurchasePrice: 40000,
		PurchaseDate:  "2024-01-15",
	}
	require.NoError(t, repo.CreateEntry(entry))
	assert.NotEmpty(t, entry.ID, "el repositorio asigna el id si falta")

	entries, err := repo.GetUserEntries(user.ID)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "bitcoin", entries[0].CoinID)
	assert.Equal(t, 0.5, entries[0].Amount)
	assert.Equal(t, "2024-01-15", entries[0].PurchaseDate)
}

func TestPortfolioAllowsDuplicateCoin(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db)
	repo := NewPortfolioRepository(db)

	first := &models.PortfolioEntry{UserID: user.ID, CoinID: "bitcoin", Amount: 1, PurchasePrice: 40000}
	second := &models.PortfolioEntry{UserID: user.ID, CoinID: "bitcoin", Amount: 2, PurchasePrice: 45000}
	require.NoError(t, repo.CreateEntry(first))
	require.NoError(t, repo.CreateEntry(second))

	entries, err := repo.GetUserEntries(user.ID)
	require.NoError(t, err)
	assert.Len(t, entries, 2, "no se fuerza unicidad por moneda")
}

func TestPortfolioUpdateMergesFields(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db)
	repo := NewPortfolioRepository(db)

	entry := &models.PortfolioEntry{UserID: user.ID, CoinID: "bitcoin", Amount: 1, PurchasePrice: 40000}
	require.NoError(t, repo.CreateEntry(entry))

	newAmount := 2.5
	require.NoError(t, repo.UpdateEntry(user.ID, entry.ID, models.PortfolioEntryUpdate{Amount: &newAmount}))

	updated, err := repo.GetEntry(user.ID, entry.ID)
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, entry.ID, updated.ID, "el id es inmutable")
	assert.Equal(t, 2.5, updated.Amount)
	assert.Equal(t, 40000.0, updated.PurchasePrice, "los campos no enviados se conservan")
	assert.Equal(t, "bitcoin", updated.CoinID)
}

func TestPortfolioUpdateMissingIdIsNoOp(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db)
	repo := NewPortfolioRepository(db)

	amount := 5.0
	assert.NoError(t, repo.UpdateEntry(user.ID, "id-inexistente", models.PortfolioEntryUpdate{Amount: &amount}))
}

func TestPortfolioDelete(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db)
	repo := NewPortfolioRepository(db)

	entry := &models.PortfolioEntry{UserID: user.ID, CoinID: "bitcoin", Amount: 1, PurchasePrice: 40000}
	require.NoError(t, repo.CreateEntry(entry))

	require.NoError(t, repo.DeleteEntry(user.ID, entry.ID))

	entries, err := repo.GetUserEntries(user.ID)
	require.NoError(t, err)
	assert.Empty(t, entries)

	// Eliminar de nuevo no falla
	assert.NoError(t, repo.DeleteEntry(user.ID, entry.ID))
}

func TestPortfolioScopedByUser(t *testing.T) {
	db := setupTestDB(t)
	alice := createTestUser(t, db)
	bob := createTestUser(t, db)
	repo := NewPortfolioRepository(db)

	entry := &models.PortfolioEntry{UserID: alice.ID, CoinID: "bitcoin", Amount: 1, PurchasePrice: 40000}
	require.NoError(t, repo.CreateEntry(entry))

	// Bob no ve ni puede tocar la entrada de Alice
	entries, err := repo.GetUserEntries(bob.ID)
	require.NoError(t, err)
	assert.Empty(t, entries)

	require.NoError(t, repo.DeleteEntry(bob.ID, entry.ID))
	remaining, err := repo.GetUserEntries(alice.ID)
	require.NoError(t, err)
	assert.Len(t, remaining, 1)
}
