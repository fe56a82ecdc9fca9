package database

import (
	"database/sql"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

var DB *sql.DB

func InitDB() error {
	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		// Crear el directorio database si no existe
		if err := os.MkdirAll("database", 0755); err != nil {
			return err
		}
		dbPath = filepath.Join("database", "cryptox.db")
	}

	var err error
	DB, err = sql.Open("sqlite3", dbPath)
	if err != nil {
		return err
	}

	return CreateTables(DB)
}

// CreateTables crea el esquema completo. Se usa también desde los tests
// con una base en memoria.
func CreateTables(db *sql.DB) error {
	// Crear tabla de usuarios si no existe
	createUsersTableSQL := `
	CREATE TABLE IF NOT EXISTS users (
		id TEXT PRIMARY KEY,
		email TEXT UNIQUE NOT NULL,
		password TEXT NOT NULL,
		display_name TEXT UNIQUE NOT NULL,
		vs_currency TEXT DEFAULT 'usd',
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);`

	_, err := db.Exec(createUsersTableSQL)
	if err != nil {
		return err
	}

	// Crear tabla de entradas de portafolio
	createPortfolioTableSQL := `
	CREATE TABLE IF NOT EXISTS portfolio_entries (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		coin_id TEXT NOT NULL,
		amount REAL NOT NULL,
		purchase_price REAL NOT NULL DEFAULT 0,
		purchase_date TEXT,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		FOREIGN KEY(user_id) REFERENCES users(id) ON DELETE CASCADE
	);`

	_, err = db.Exec(createPortfolioTableSQL)
	if err != nil {
		return err
	}

	// Crear tabla de alertas de precio
	createAlertsTableSQL := `
	CREATE TABLE IF NOT EXISTS price_alerts (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		coin_id TEXT NOT NULL,
		target_price REAL NOT NULL,
		condition TEXT NOT NULL,
		triggered INTEGER DEFAULT 0,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		FOREIGN KEY(user_id) REFERENCES users(id) ON DELETE CASCADE
	);`

	_, err = db.Exec(createAlertsTableSQL)
	if err != nil {
		return err
	}

	// Crear tabla de watchlist. La moneda se guarda como snapshot JSON para
	// tolerar cambios de formato entre versiones (campos desconocidos se
	// ignoran al cargar).
	createWatchlistTableSQL := `
	CREATE TABLE IF NOT EXISTS watchlist_items (
		user_id TEXT NOT NULL,
		coin_id TEXT NOT NULL,
		coin_data TEXT NOT NULL,
		added_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		PRIMARY KEY(user_id, coin_id),
		FOREIGN KEY(user_id) REFERENCES users(id) ON DELETE CASCADE
	);`

	_, err = db.Exec(createWatchlistTableSQL)
	if err != nil {
		return err
	}

	// Crear índices para búsqueda rápida por usuario
	createIndexesSQL := `
	CREATE INDEX IF NOT EXISTS idx_portfolio_entries_user ON portfolio_entries(user_id);
	CREATE INDEX IF NOT EXISTS idx_price_alerts_user ON price_alerts(user_id);
	CREATE INDEX IF NOT EXISTS idx_price_alerts_triggered ON price_alerts(triggered);`

	_, err = db.Exec(createIndexesSQL)
	if err != nil {
		return err
	}

	// Ejecutar migraciones para actualizar el esquema
	return RunMigrations(db)
}
