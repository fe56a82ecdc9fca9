package database

import (
	"database/sql"
	"log"
)

// RunMigrations ejecuta las migraciones necesarias para actualizar el esquema de la base de datos
func RunMigrations(db *sql.DB) error {
	log.Println("Ejecutando migraciones de la base de datos...")

	// Migración para añadir la preferencia de moneda a usuarios existentes
	addVsCurrencyColumnSQL := `
	ALTER TABLE users ADD COLUMN vs_currency TEXT DEFAULT 'usd';
	`

	_, err := db.Exec(addVsCurrencyColumnSQL)
	if err != nil {
		// No retornamos error porque SQLite puede dar error si la columna ya existe
		// y queremos que la migración continúe
		log.Printf("Columna vs_currency ya existente: %v", err)
	} else {
		log.Println("Columna vs_currency añadida correctamente")
	}

	// Migración para añadir la fecha de compra a entradas antiguas
	addPurchaseDateColumnSQL := `
	ALTER TABLE portfolio_entries ADD COLUMN purchase_date TEXT;
	`

	_, err = db.Exec(addPurchaseDateColumnSQL)
	if err != nil {
		log.Printf("Columna purchase_date ya existente: %v", err)
	}

	return nil
}
