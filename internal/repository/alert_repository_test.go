package repository

import (
	"testing"

	"github.com/CryptoXApp/CryptoX_Api.git/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAlertCreateDefaultsUntriggered(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db)
	repo := NewAlertRepository(db)

	alert := &models.PriceAlert{
		UserID:      user.ID,
		CoinID:      "bitcoin",
		TargetPrice: 90000,
		Condition:   models.AlertConditionAbove,
		Triggered:   true, // el cliente no puede crear alertas ya disparadas
	}
	require.NoError(t, repo.CreateAlert(alert))
	assert.NotEmpty(t, alert.ID)
	assert.False(t, alert.Triggered)

	alerts, err := repo.GetUserAlerts(user.ID)
	require.NoError(t, err)
	require.Len(t, alerts, 1)
	assert.False(t, alerts[0].Triggered)
	assert.False(t, alerts[0].CreatedAt.IsZero())
}

func TestAlertMarkTriggeredIsOneWay(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db)
	repo := NewAlertRepository(db)

	alert := &models.PriceAlert{UserID: user.ID, CoinID: "bitcoin", TargetPrice: 90000, Condition: models.AlertConditionAbove}
	require.NoError(t, repo.CreateAlert(alert))

	require.NoError(t, repo.MarkTriggered(alert.ID))

	stored, err := repo.GetAlert(user.ID, alert.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.True(t, stored.Triggered)

	// Un update no puede resetear triggered
	newTarget := 95000.0
	require.NoError(t, repo.UpdateAlert(user.ID, alert.ID, models.PriceAlertUpdate{TargetPrice: &newTarget}))

	stored, err = repo.GetAlert(user.ID, alert.ID)
	require.NoError(t, err)
	assert.True(t, stored.Triggered, "triggered es de una sola dirección")
	assert.Equal(t, 95000.0, stored.TargetPrice)

	// Una vez disparada ya no aparece entre las pendientes
	pending, err := repo.GetPendingAlerts()
	require.NoError(t, err)
	assert.Empty(t, pending)
}

func TestAlertOnlyDeleteClears(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db)
	repo := NewAlertRepository(db)

	alert := &models.PriceAlert{UserID: user.ID, CoinID: "bitcoin", TargetPrice: 90000, Condition: models.AlertConditionBelow}
	require.NoError(t, repo.CreateAlert(alert))
	require.NoError(t, repo.MarkTriggered(alert.ID))

	require.NoError(t, repo.DeleteAlert(user.ID, alert.ID))

	alerts, err := repo.GetUserAlerts(user.ID)
	require.NoError(t, err)
	assert.Empty(t, alerts)
}

func TestAlertUpdateMissingIdIsNoOp(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db)
	repo := NewAlertRepository(db)

	target := 100.0
	assert.NoError(t, repo.UpdateAlert(user.ID, "id-inexistente", models.PriceAlertUpdate{TargetPrice: &target}))
}

func TestGetPendingAlertsAcrossUsers(t *testing.T) {
	db := setupTestDB(t)
	alice := createTestUser(t, db)
	bob := createTestUser(t, db)
	repo := NewAlertRepository(db)

	require.NoError(t, repo.CreateAlert(&models.PriceAlert{UserID: alice.ID, CoinID: "bitcoin", TargetPrice: 1, Condition: models.AlertConditionAbove}))
	require.NoError(t, repo.CreateAlert(&models.PriceAlert{UserID: bob.ID, CoinID: "ethereum", TargetPrice: 1, Condition: models.AlertConditionBelow}))

	pending, err := repo.GetPendingAlerts()
	require.NoError(t, err)
	assert.Len(t, pending, 2, "el verificador evalúa las alertas de todos los usuarios")
}

func TestGetPendingAlertsCarriesOwnerCurrency(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db)
	repo := NewAlertRepository(db)

	require.NoError(t, NewUserRepository(db).UpdateCurrency(user.ID, "eur"))
	require.NoError(t, repo.CreateAlert(&models.PriceAlert{UserID: user.ID, CoinID: "bitcoin", TargetPrice: 90000, Condition: models.AlertConditionAbove}))

	pending, err := repo.GetPendingAlerts()
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "eur", pending[0].VsCurrency,
		"el precio objetivo se evalúa en la moneda en que fue ingresado")

	// Una alerta cuyo dueño ya no existe cae a usd
	require.NoError(t, repo.CreateAlert(&models.PriceAlert{UserID: "usuario-borrado", CoinID: "ethereum", TargetPrice: 1, Condition: models.AlertConditionBelow}))

	pending, err = repo.GetPendingAlerts()
	require.NoError(t, err)
	require.Len(t, pending, 2)
	for _, alert := range pending {
		if alert.UserID == "usuario-borrado" {
			assert.Equal(t, "usd", alert.VsCurrency)
		}
	}
}
