package postgresql

import (
	"context"
	"fmt"

	"github.com/registro/attendance-backend-go/internal/pkg/database"
)

// Bootstrap creates the three tables when missing and applies additive
// migrations to pre-existing stores. The deleted column was added after the
// first release, so older databases gain it here without data loss.
func Bootstrap(ctx context.Context, db *database.DB) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS employees (
			id BIGSERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			position TEXT NOT NULL,
			password_hash TEXT,
			deleted BOOLEAN NOT NULL DEFAULT FALSE
		)`,
		`CREATE TABLE IF NOT EXISTS check_ins (
			id BIGSERIAL PRIMARY KEY,
			employee_id BIGINT NOT NULL REFERENCES employees(id),
			type INT NOT NULL,
			checked_at TIMESTAMP NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS late_minutes (
			id BIGSERIAL PRIMARY KEY,
			employee_id BIGINT NOT NULL REFERENCES employees(id),
			type INT NOT NULL,
			shift TEXT NOT NULL,
			date TIMESTAMP NOT NULL,
			minutes INT NOT NULL
		)`,
		// Additive migration for stores created before soft deletion.
		`ALTER TABLE employees ADD COLUMN IF NOT EXISTS deleted BOOLEAN NOT NULL DEFAULT FALSE`,
	}

	for _, stmt := range statements {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("bootstrap schema: %w", err)
		}
	}

	return nil
}
