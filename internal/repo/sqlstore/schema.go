package sqlstore

import "context"

// sqliteSchema and postgresSchema carry the same tables and constraints in
// each dialect's DDL. Referential integrity is still enforced by explicit
// children-first delete ordering in the stores; the foreign keys are a
// backstop, not the cascade mechanism.
var sqliteSchema = []string{
	`CREATE TABLE IF NOT EXISTS types (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name VARCHAR(80) NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS owners (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		first_name VARCHAR(30) NOT NULL,
		last_name VARCHAR(30) NOT NULL,
		address VARCHAR(255) NOT NULL,
		city VARCHAR(80) NOT NULL,
		telephone VARCHAR(20) NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_owners_last_name ON owners (last_name)`,
	`CREATE TABLE IF NOT EXISTS pets (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name VARCHAR(30) NOT NULL,
		birth_date DATE,
		type_id INTEGER NOT NULL REFERENCES types (id),
		owner_id INTEGER NOT NULL REFERENCES owners (id)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_pets_owner_id ON pets (owner_id)`,
	`CREATE TABLE IF NOT EXISTS visits (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		pet_id INTEGER NOT NULL REFERENCES pets (id),
		visit_date TIMESTAMP,
		description VARCHAR(255) NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_visits_pet_id ON visits (pet_id)`,
	`CREATE TABLE IF NOT EXISTS vets (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		first_name VARCHAR(30) NOT NULL,
		last_name VARCHAR(30) NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS specialties (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name VARCHAR(80) NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS vet_specialties (
		vet_id INTEGER NOT NULL REFERENCES vets (id),
		specialty_id INTEGER NOT NULL REFERENCES specialties (id),
		PRIMARY KEY (vet_id, specialty_id)
	)`,
	`CREATE TABLE IF NOT EXISTS users (
		username VARCHAR(20) PRIMARY KEY,
		password VARCHAR(60) NOT NULL,
		enabled BOOLEAN NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS roles (
		username VARCHAR(20) NOT NULL REFERENCES users (username),
		role VARCHAR(20) NOT NULL,
		PRIMARY KEY (username, role)
	)`,
}

var postgresSchema = []string{
	`CREATE TABLE IF NOT EXISTS types (
		id SERIAL PRIMARY KEY,
		name VARCHAR(80) NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS owners (
		id SERIAL PRIMARY KEY,
		first_name VARCHAR(30) NOT NULL,
		last_name VARCHAR(30) NOT NULL,
		address VARCHAR(255) NOT NULL,
		city VARCHAR(80) NOT NULL,
		telephone VARCHAR(20) NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_owners_last_name ON owners (last_name)`,
	`CREATE TABLE IF NOT EXISTS pets (
		id SERIAL PRIMARY KEY,
		name VARCHAR(30) NOT NULL,
		birth_date DATE,
		type_id INTEGER NOT NULL REFERENCES types (id),
		owner_id INTEGER NOT NULL REFERENCES owners (id)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_pets_owner_id ON pets (owner_id)`,
	`CREATE TABLE IF NOT EXISTS visits (
		id SERIAL PRIMARY KEY,
		pet_id INTEGER NOT NULL REFERENCES pets (id),
		visit_date TIMESTAMP,
		description VARCHAR(255) NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_visits_pet_id ON visits (pet_id)`,
	`CREATE TABLE IF NOT EXISTS vets (
		id SERIAL PRIMARY KEY,
		first_name VARCHAR(30) NOT NULL,
		last_name VARCHAR(30) NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS specialties (
		id SERIAL PRIMARY KEY,
		name VARCHAR(80) NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS vet_specialties (
		vet_id INTEGER NOT NULL REFERENCES vets (id),
		specialty_id INTEGER NOT NULL REFERENCES specialties (id),
		PRIMARY KEY (vet_id, specialty_id)
	)`,
	`CREATE TABLE IF NOT EXISTS users (
		username VARCHAR(20) PRIMARY KEY,
		password VARCHAR(60) NOT NULL,
		enabled BOOLEAN NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS roles (
		username VARCHAR(20) NOT NULL REFERENCES users (username),
		role VARCHAR(20) NOT NULL,
		PRIMARY KEY (username, role)
	)`,
}

// EnsureSchema creates the clinic tables when they do not exist yet.
func (d *DB) EnsureSchema(ctx context.Context) error {
	schema := sqliteSchema
	if d.dialect == DialectPostgres {
		schema = postgresSchema
	}
	for _, stmt := range schema {
		if _, err := d.sql.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
