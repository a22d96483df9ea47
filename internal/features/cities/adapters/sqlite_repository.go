package adapters

import (
	"context"
	"database/sql"
	"fmt"

	"freight-cost/internal/features/cities/domain"

	_ "modernc.org/sqlite"
)

const createCitiesTable = `
	CREATE TABLE IF NOT EXISTS cities (
		id         INTEGER PRIMARY KEY,
		name       TEXT    NOT NULL,
		lat        REAL    NOT NULL,
		lng        REAL    NOT NULL,
		population INTEGER NOT NULL
	)
`

// SQLiteCityRepository implements ports.CityRepository on a SQLite table.
type SQLiteCityRepository struct {
	db *sql.DB
}

// OpenSQLiteCityRepository opens (or creates) the database at path and ensures the schema.
func OpenSQLiteCityRepository(ctx context.Context, path string) (*SQLiteCityRepository, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}

	// A single writer avoids SQLITE_BUSY on concurrent replaces.
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable WAL: %w", err)
	}
	if _, err := db.ExecContext(ctx, createCitiesTable); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create cities table: %w", err)
	}

	return &SQLiteCityRepository{db: db}, nil
}

// Replace swaps the table content for the catalog in one transaction.
func (r *SQLiteCityRepository) Replace(ctx context.Context, catalog *domain.Catalog) (err error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx, "DELETE FROM cities"); err != nil {
		return fmt.Errorf("failed to clear cities: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, "INSERT INTO cities (id, name, lat, lng, population) VALUES (?, ?, ?, ?, ?)")
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, c := range catalog.Cities {
		if _, err = stmt.ExecContext(ctx, c.ID, c.Name, c.Latitude, c.Longitude, c.Population); err != nil {
			return fmt.Errorf("failed to insert city %d: %w", c.ID, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit catalog: %w", err)
	}
	return nil
}

// Load reads every row ordered by id.
func (r *SQLiteCityRepository) Load(ctx context.Context) (*domain.Catalog, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT id, name, lat, lng, population FROM cities ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("failed to query cities: %w", err)
	}
	defer rows.Close()

	cities := []domain.City{}
	for rows.Next() {
		var c domain.City
		if err := rows.Scan(&c.ID, &c.Name, &c.Latitude, &c.Longitude, &c.Population); err != nil {
			return nil, fmt.Errorf("failed to scan city: %w", err)
		}
		cities = append(cities, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate cities: %w", err)
	}

	return &domain.Catalog{Cities: cities}, nil
}

// Close closes the underlying database.
func (r *SQLiteCityRepository) Close() error {
	return r.db.Close()
}
