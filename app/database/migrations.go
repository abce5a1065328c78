package database

import (
	"database/sql"
	"log"
)

// RunMigrations creates the schema if it does not exist and applies
// incremental column additions.
func RunMigrations(db *sql.DB) error {
	log.Println("Running database migrations...")

	statements := []string{
		`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`,
		`CREATE TABLE IF NOT EXISTS students (
			id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
			reg_number TEXT NOT NULL UNIQUE,
			name TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS textbooks (
			id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
			name TEXT NOT NULL UNIQUE,
			price NUMERIC(10,2) NOT NULL CHECK (price > 0),
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS records (
			id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
			student_name TEXT NOT NULL,
			reg_number TEXT NOT NULL,
			name TEXT NOT NULL,
			amount_paid NUMERIC(10,2) NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			is_collected BOOLEAN NOT NULL DEFAULT FALSE,
			collected_by TEXT,
			collected_at TIMESTAMPTZ,
			receipt_text TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_records_reg_number ON records (reg_number)`,
		`CREATE TABLE IF NOT EXISTS manual_records (
			id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
			student_name TEXT NOT NULL,
			reg_number TEXT NOT NULL,
			product TEXT NOT NULL,
			price NUMERIC(10,2) NOT NULL,
			time TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			is_collected BOOLEAN NOT NULL DEFAULT FALSE,
			collected_by TEXT,
			collected_at TIMESTAMPTZ
		)`,
		`CREATE INDEX IF NOT EXISTS idx_manual_records_reg_number ON manual_records (reg_number)`,
		`CREATE TABLE IF NOT EXISTS balance_payments (
			id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
			student_reg_number TEXT NOT NULL,
			item_name TEXT NOT NULL,
			amount NUMERIC(10,2) NOT NULL,
			receipt_text TEXT,
			verified BOOLEAN NOT NULL DEFAULT FALSE,
			verified_at TIMESTAMPTZ,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_balance_payments_reg ON balance_payments (student_reg_number)`,
		`CREATE TABLE IF NOT EXISTS sessions (
			id UUID PRIMARY KEY,
			student_id UUID REFERENCES students(id) ON DELETE CASCADE,
			is_admin BOOLEAN NOT NULL DEFAULT FALSE,
			expires_at TIMESTAMPTZ NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
	}

	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			log.Printf("Migration failed: %v", err)
			return err
		}
	}

	log.Println("Database migrations completed successfully")
	return nil
}
